// Package metrics provides Prometheus-compatible request counters for the
// mock service.
//
// It implements the Prometheus text exposition format (text/plain;
// version=0.0.4) without external dependencies — a scrape endpoint is all a
// mock needs, and pulling in the full client library for one counter family
// is not worth the dependency. All metrics are thread-safe.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Counter is a monotonically increasing metric with a fixed label set.
type Counter struct {
	name       string
	help       string
	labelNames []string

	mu     sync.Mutex
	values map[string]uint64
}

// NewCounter creates a counter. Label values are supplied per increment and
// must match the declared label names in number and order.
func NewCounter(name, help string, labelNames ...string) *Counter {
	return &Counter{
		name:       name,
		help:       help,
		labelNames: labelNames,
		values:     make(map[string]uint64),
	}
}

// Inc increments the counter for the given label values.
func (c *Counter) Inc(labelValues ...string) {
	c.Add(1, labelValues...)
}

// Add increments the counter by delta for the given label values.
// Mismatched label counts are ignored rather than panicking — a mock server
// must not crash over a metrics bug.
func (c *Counter) Add(delta uint64, labelValues ...string) {
	if len(labelValues) != len(c.labelNames) {
		return
	}
	key := strings.Join(labelValues, "\x00")

	c.mu.Lock()
	c.values[key] += delta
	c.mu.Unlock()
}

// Value returns the current count for the given label values.
func (c *Counter) Value(labelValues ...string) uint64 {
	key := strings.Join(labelValues, "\x00")

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key]
}

// write renders the counter in the Prometheus text format, series sorted for
// deterministic output.
func (c *Counter) write(b *strings.Builder) {
	fmt.Fprintf(b, "# HELP %s %s\n", c.name, c.help)
	fmt.Fprintf(b, "# TYPE %s counter\n", c.name)

	c.mu.Lock()
	keys := make([]string, 0, len(c.values))
	for key := range c.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := c.values[key]
		if len(c.labelNames) == 0 {
			fmt.Fprintf(b, "%s %d\n", c.name, value)
			continue
		}
		labelValues := strings.Split(key, "\x00")
		pairs := make([]string, len(c.labelNames))
		for i, name := range c.labelNames {
			pairs[i] = fmt.Sprintf("%s=%q", name, labelValues[i])
		}
		fmt.Fprintf(b, "%s{%s} %d\n", c.name, strings.Join(pairs, ","), value)
	}
	c.mu.Unlock()
}

// Registry holds a set of counters and serves them over HTTP.
type Registry struct {
	mu       sync.Mutex
	counters []*Counter
}

// NewRegistry creates an empty metrics registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a counter to the registry and returns it.
func (r *Registry) Register(c *Counter) *Counter {
	r.mu.Lock()
	r.counters = append(r.counters, c)
	r.mu.Unlock()
	return c
}

// Handler returns an http.Handler exposing the registry in the Prometheus
// text format.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var b strings.Builder

		r.mu.Lock()
		counters := make([]*Counter, len(r.counters))
		copy(counters, r.counters)
		r.mu.Unlock()

		for _, c := range counters {
			c.write(&b)
		}

		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(b.String()))
	})
}
