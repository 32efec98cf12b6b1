package comprehend

import (
	"errors"
	"testing"

	"github.com/getmockd/awsmock/pkg/tagging"
)

func newTestBackend() *Backend {
	return NewBackend("us-east-1", "123456789012")
}

func TestCreateDescribe_Roundtrip(t *testing.T) {
	b := newTestBackend()

	arn := b.CreateEntityRecognizer(CreateParams{
		RecognizerName: "rec1",
		LanguageCode:   "en",
	}, nil)

	want := "arn:aws:comprehend:us-east-1:123456789012:entity-recognizer/rec1"
	if arn != want {
		t.Fatalf("CreateEntityRecognizer() = %q, want %q", arn, want)
	}

	r, err := b.DescribeEntityRecognizer(arn)
	if err != nil {
		t.Fatalf("DescribeEntityRecognizer() error: %v", err)
	}
	if r.Name != "rec1" || r.LanguageCode != "en" {
		t.Errorf("described recognizer = %+v, fields do not match create inputs", r)
	}
	if r.Status != StatusTrained {
		t.Errorf("Status = %q, want %q", r.Status, StatusTrained)
	}
}

func TestDescribe_NotFound(t *testing.T) {
	b := newTestBackend()

	_, err := b.DescribeEntityRecognizer("arn:aws:comprehend:us-east-1:123456789012:entity-recognizer/ghost")
	if err == nil {
		t.Fatal("expected error for unknown ARN")
	}

	var notFound *ResourceNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *ResourceNotFoundError", err)
	}
	if notFound.ErrorCode() != "ResourceNotFoundException" {
		t.Errorf("ErrorCode() = %q, want ResourceNotFoundException", notFound.ErrorCode())
	}
}

func TestCreate_SilentOverwrite(t *testing.T) {
	b := newTestBackend()

	first := b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1", LanguageCode: "en"}, nil)
	second := b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1", LanguageCode: "de"}, nil)

	if first != second {
		t.Fatalf("same name+version produced different ARNs: %q vs %q", first, second)
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1 after overwrite", b.Count())
	}

	r, err := b.DescribeEntityRecognizer(second)
	if err != nil {
		t.Fatalf("DescribeEntityRecognizer() error: %v", err)
	}
	if r.LanguageCode != "de" {
		t.Errorf("LanguageCode = %q, want the later create's %q", r.LanguageCode, "de")
	}
}

func TestCreate_ClientRequestTokenNotHonored(t *testing.T) {
	b := newTestBackend()

	// Distinct versions with the same token produce distinct resources:
	// the token performs no deduplication.
	b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1", VersionName: "v1", ClientRequestToken: "tok"}, nil)
	b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1", VersionName: "v2", ClientRequestToken: "tok"}, nil)

	if b.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (token must not deduplicate)", b.Count())
	}
}

func TestList(t *testing.T) {
	b := newTestBackend()
	b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1"}, nil)
	b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1", VersionName: "v2"}, nil)
	b.CreateEntityRecognizer(CreateParams{RecognizerName: "other"}, nil)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"no filter returns everything", Filter{}, 3},
		{"name filter matches both versions", Filter{RecognizerName: "rec1"}, 2},
		{"name filter single match", Filter{RecognizerName: "other"}, 1},
		{"name filter no match", Filter{RecognizerName: "ghost"}, 0},
		{"status filter is ignored", Filter{Status: StatusTraining}, 3},
		{"submit time window is ignored", Filter{SubmitTimeAfter: "2026-01-01"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.ListEntityRecognizers(tt.filter)
			if len(got) != tt.want {
				t.Errorf("ListEntityRecognizers(%+v) returned %d items, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestList_NameFilterReturnsExactSubset(t *testing.T) {
	b := newTestBackend()
	b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1"}, nil)
	b.CreateEntityRecognizer(CreateParams{RecognizerName: "other"}, nil)

	for _, r := range b.ListEntityRecognizers(Filter{RecognizerName: "rec1"}) {
		if r.Name != "rec1" {
			t.Errorf("filtered result contains %q, want only rec1", r.Name)
		}
	}
}

func TestStopTraining(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus string
	}{
		{"training transitions to stop requested", StatusTraining, StatusStopRequested},
		{"trained is a no-op", StatusTrained, StatusTrained},
		{"stop requested is a no-op", StatusStopRequested, StatusStopRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend()
			arn := b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1"}, nil)

			r, _ := b.DescribeEntityRecognizer(arn)
			r.Status = tt.status

			if err := b.StopTrainingEntityRecognizer(arn); err != nil {
				t.Fatalf("StopTrainingEntityRecognizer() error: %v", err)
			}

			r, _ = b.DescribeEntityRecognizer(arn)
			if r.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", r.Status, tt.wantStatus)
			}
		})
	}
}

func TestStopTraining_NotFound(t *testing.T) {
	b := newTestBackend()

	err := b.StopTrainingEntityRecognizer("arn:aws:comprehend:us-east-1:123456789012:entity-recognizer/ghost")

	var notFound *ResourceNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *ResourceNotFoundError", err)
	}
}

func TestDelete(t *testing.T) {
	b := newTestBackend()
	arn := b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1"}, nil)

	b.DeleteEntityRecognizer(arn)

	if _, err := b.DescribeEntityRecognizer(arn); err == nil {
		t.Error("expected NotFound after delete")
	}

	// Second delete of the same ARN is a silent no-op.
	b.DeleteEntityRecognizer(arn)
}

func TestDelete_UnknownARN(t *testing.T) {
	b := newTestBackend()
	b.DeleteEntityRecognizer("arn:aws:comprehend:us-east-1:123456789012:entity-recognizer/ghost")
}

func TestCreate_RegistersTags(t *testing.T) {
	b := newTestBackend()
	arn := b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1", LanguageCode: "en"},
		[]tagging.Tag{{Key: "env", Value: "test"}})

	tags := b.ListTagsForResource(arn)
	if len(tags) != 1 || tags[0].Key != "env" || tags[0].Value != "test" {
		t.Errorf("ListTagsForResource() = %+v, want [{env test}]", tags)
	}
}

func TestTagUntag(t *testing.T) {
	b := newTestBackend()
	arn := b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1"}, nil)

	b.TagResource(arn, []tagging.Tag{
		{Key: "env", Value: "test"},
		{Key: "team", Value: "nlp"},
	})
	b.UntagResource(arn, []string{"env"})

	tags := b.ListTagsForResource(arn)
	if len(tags) != 1 || tags[0].Key != "team" {
		t.Errorf("ListTagsForResource() = %+v, want only the team tag", tags)
	}
}

func TestTag_NoExistenceCheck(t *testing.T) {
	b := newTestBackend()
	arn := "arn:aws:comprehend:us-east-1:123456789012:entity-recognizer/never-created"

	// Tags attach to ARNs the registry has never seen.
	b.TagResource(arn, []tagging.Tag{{Key: "env", Value: "test"}})

	tags := b.ListTagsForResource(arn)
	if len(tags) != 1 {
		t.Errorf("expected 1 tag on unregistered ARN, got %d", len(tags))
	}
}

func TestTags_SurviveRecognizerDelete(t *testing.T) {
	b := newTestBackend()
	arn := b.CreateEntityRecognizer(CreateParams{RecognizerName: "rec1"},
		[]tagging.Tag{{Key: "env", Value: "test"}})

	// Delete removes the registry entry only; the tag store is independent.
	b.DeleteEntityRecognizer(arn)

	if len(b.ListTagsForResource(arn)) != 1 {
		t.Error("tags should remain after recognizer delete")
	}
}
