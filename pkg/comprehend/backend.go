package comprehend

import (
	"sync"

	"github.com/getmockd/awsmock/pkg/tagging"
)

// Filter narrows ListEntityRecognizers results. Only RecognizerName is
// applied; Status and the submit-time window are accepted for API-shape
// compatibility but silently ignored, as is pagination.
type Filter struct {
	RecognizerName   string `json:"RecognizerName"`
	Status           string `json:"Status"`
	SubmitTimeBefore string `json:"SubmitTimeBefore"`
	SubmitTimeAfter  string `json:"SubmitTimeAfter"`
}

// Backend holds the entity recognizers for one region+account partition.
type Backend struct {
	mu          sync.RWMutex
	region      string
	accountID   string
	recognizers map[string]*EntityRecognizer
	tagger      *tagging.Service
}

// NewBackend creates an empty backend for the given partition.
func NewBackend(region, accountID string) *Backend {
	return &Backend{
		region:      region,
		accountID:   accountID,
		recognizers: make(map[string]*EntityRecognizer),
		tagger:      tagging.NewService(),
	}
}

// Region returns the partition region.
func (b *Backend) Region() string { return b.region }

// AccountID returns the partition account id.
func (b *Backend) AccountID() string { return b.accountID }

// CreateEntityRecognizer registers a new recognizer and its tags, returning
// the derived ARN. A second create with the same name and version produces
// the same ARN and silently overwrites the earlier entry.
func (b *Backend) CreateEntityRecognizer(params CreateParams, tags []tagging.Tag) string {
	recognizer := NewEntityRecognizer(b.region, b.accountID, params)

	b.mu.Lock()
	b.recognizers[recognizer.ARN] = recognizer
	b.mu.Unlock()

	b.tagger.TagResource(recognizer.ARN, tags)
	return recognizer.ARN
}

// DescribeEntityRecognizer looks up a recognizer by exact ARN match.
func (b *Backend) DescribeEntityRecognizer(arn string) (*EntityRecognizer, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	recognizer, ok := b.recognizers[arn]
	if !ok {
		return nil, &ResourceNotFoundError{ARN: arn}
	}
	return recognizer, nil
}

// ListEntityRecognizers returns all recognizers matching the filter via a
// linear scan. Result order follows map iteration and is not defined.
func (b *Backend) ListEntityRecognizers(filter Filter) []*EntityRecognizer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]*EntityRecognizer, 0, len(b.recognizers))
	for _, recognizer := range b.recognizers {
		if filter.RecognizerName != "" && recognizer.Name != filter.RecognizerName {
			continue
		}
		result = append(result, recognizer)
	}
	return result
}

// StopTrainingEntityRecognizer requests a stop for a recognizer that is
// currently TRAINING. Any other status is left unchanged. Unknown ARNs fail
// with ResourceNotFoundError.
func (b *Backend) StopTrainingEntityRecognizer(arn string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	recognizer, ok := b.recognizers[arn]
	if !ok {
		return &ResourceNotFoundError{ARN: arn}
	}
	if recognizer.Status == StatusTraining {
		recognizer.Status = StatusStopRequested
	}
	return nil
}

// DeleteEntityRecognizer removes a recognizer from the registry. Deleting an
// unknown ARN is a no-op.
func (b *Backend) DeleteEntityRecognizer(arn string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.recognizers, arn)
}

// TagResource attaches tags to an ARN. No existence check is made against
// the recognizer registry.
func (b *Backend) TagResource(arn string, tags []tagging.Tag) {
	b.tagger.TagResource(arn, tags)
}

// UntagResource removes the named tag keys from an ARN.
func (b *Backend) UntagResource(arn string, tagKeys []string) {
	b.tagger.UntagResourceUsingNames(arn, tagKeys)
}

// ListTagsForResource returns the tags attached to an ARN.
func (b *Backend) ListTagsForResource(arn string) []tagging.Tag {
	return b.tagger.ListTagsForResource(arn)
}

// Count returns the number of registered recognizers.
func (b *Backend) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.recognizers)
}
