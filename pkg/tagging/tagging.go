package tagging

import (
	"sort"
	"sync"
)

// Tag is a single key/value pair in the AWS wire shape.
type Tag struct {
	Key   string `json:"Key" yaml:"key"`
	Value string `json:"Value" yaml:"value"`
}

// Service is an in-memory tag store keyed by resource ARN.
type Service struct {
	mu   sync.RWMutex
	tags map[string]map[string]string
}

// NewService creates an empty tag store.
func NewService() *Service {
	return &Service{
		tags: make(map[string]map[string]string),
	}
}

// TagResource attaches tags to an ARN. Existing tags with the same key are
// overwritten; tags with other keys are left intact.
func (s *Service) TagResource(arn string, tags []Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tags[arn]
	if !ok {
		existing = make(map[string]string)
		s.tags[arn] = existing
	}
	for _, tag := range tags {
		existing[tag.Key] = tag.Value
	}
}

// UntagResourceUsingNames removes exactly the named keys from an ARN.
// Unknown keys and unknown ARNs are ignored.
func (s *Service) UntagResourceUsingNames(arn string, keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tags[arn]
	if !ok {
		return
	}
	for _, key := range keys {
		delete(existing, key)
	}
}

// ListTagsForResource returns the tags attached to an ARN, sorted by key for
// deterministic output. Unknown ARNs yield an empty slice, not an error.
func (s *Service) ListTagsForResource(arn string) []Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	existing := s.tags[arn]
	result := make([]Tag, 0, len(existing))
	for key, value := range existing {
		result = append(result, Tag{Key: key, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// DeleteAllTagsForResource removes every tag attached to an ARN.
func (s *Service) DeleteAllTagsForResource(arn string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tags, arn)
}

// HasTags reports whether an ARN has at least one tag attached.
func (s *Service) HasTags(arn string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tags[arn]) > 0
}

// Copy returns an independent deep copy of the store.
func (s *Service) Copy() *Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dup := NewService()
	for arn, pairs := range s.tags {
		pairsCopy := make(map[string]string, len(pairs))
		for k, v := range pairs {
			pairsCopy[k] = v
		}
		dup.tags[arn] = pairsCopy
	}
	return dup
}
