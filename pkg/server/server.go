package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/getmockd/awsmock/pkg/backend"
	"github.com/getmockd/awsmock/pkg/comprehend"
	"github.com/getmockd/awsmock/pkg/config"
	"github.com/getmockd/awsmock/pkg/logging"
	"github.com/getmockd/awsmock/pkg/metrics"
)

// readHeaderTimeout bounds how long a client can take to send headers.
const readHeaderTimeout = 10 * time.Second

// Server serves the mock Comprehend API over HTTP.
type Server struct {
	cfg      *config.Config
	registry *backend.Registry
	log      *slog.Logger

	httpServer      *http.Server
	metricsRegistry *metrics.Registry
	requests        *metrics.Counter
	startTime       time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the server logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithRegistry injects a backend registry, letting tests share state with
// the server. Defaults to a fresh registry.
func WithRegistry(r *backend.Registry) Option {
	return func(s *Server) { s.registry = r }
}

// New creates a Server from configuration. Seed recognizers are registered
// immediately.
func New(cfg *config.Config, opts ...Option) *Server {
	metricsRegistry := metrics.NewRegistry()

	s := &Server{
		cfg:             cfg,
		log:             logging.Nop(),
		metricsRegistry: metricsRegistry,
		requests: metricsRegistry.Register(metrics.NewCounter(
			"awsmock_requests_total", "Total API requests handled.", "operation", "status")),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = backend.NewRegistry(nil)
	}

	s.applySeed()
	return s
}

// Registry returns the partition registry backing this server.
func (s *Server) Registry() *backend.Registry {
	return s.registry
}

// Handler returns the server's HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /", s.handleDispatch)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metricsRegistry.Handler())
	return mux
}

// Start begins listening and blocks until the listener fails or Shutdown is
// called. http.ErrServerClosed is swallowed as a clean exit.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	s.startTime = time.Now()

	s.log.Info("mock server listening",
		"addr", addr,
		"region", s.cfg.DefaultRegion,
		"account", s.cfg.DefaultAccountID)

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	uptime := ""
	if !s.startTime.IsZero() {
		uptime = time.Since(s.startTime).Round(time.Second).String()
	}
	writeAmzJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"uptime":     uptime,
		"partitions": s.registry.Partitions(),
	})
}

// applySeed pre-registers configured recognizers and their tags.
func (s *Server) applySeed() {
	for _, seed := range s.cfg.Seed {
		region := seed.Region
		if region == "" {
			region = s.cfg.DefaultRegion
		}
		accountID := seed.AccountID
		if accountID == "" {
			accountID = s.cfg.DefaultAccountID
		}

		arn := s.registry.Get(region, accountID).CreateEntityRecognizer(comprehend.CreateParams{
			RecognizerName:    seed.RecognizerName,
			VersionName:       seed.VersionName,
			DataAccessRoleARN: seed.DataAccessRoleARN,
			InputDataConfig:   seed.InputDataConfig,
			LanguageCode:      seed.LanguageCode,
			VolumeKMSKeyID:    seed.VolumeKMSKeyID,
			VPCConfig:         seed.VPCConfig,
			ModelKMSKeyID:     seed.ModelKMSKeyID,
			ModelPolicy:       seed.ModelPolicy,
		}, seed.Tags)

		s.log.Debug("seeded recognizer", "arn", arn)
	}
}
