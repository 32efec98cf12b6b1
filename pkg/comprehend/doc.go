// Package comprehend implements an in-memory mock of the AWS Comprehend
// entity-recognizer resource lifecycle.
//
// A Backend holds the recognizers for one region+account partition, keyed by
// ARN, plus a tagging store. Operations mirror the real API surface:
//
//   - CreateEntityRecognizer / DescribeEntityRecognizer
//   - ListEntityRecognizers (RecognizerName filter only, no pagination)
//   - StopTrainingEntityRecognizer / DeleteEntityRecognizer
//   - TagResource / UntagResource / ListTagsForResource
//
// Training is simulated only through the Status field: recognizers are
// created already TRAINED, and StopTraining transitions TRAINING to
// STOP_REQUESTED. No input validation is performed anywhere — ARNs, KMS key
// ids, role ARNs and config shapes are trusted as-is, matching the lenient
// semantics expected from a mock.
//
// All operations are thread-safe via a per-backend RWMutex, but there is no
// atomicity across operations: create-then-tag is two separate mutations.
package comprehend
