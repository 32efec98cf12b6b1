// Package tagging provides a service-agnostic tag store keyed by resource ARN.
//
// AWS tagging semantics are shared across services: tags are key/value pairs
// attached to a resource identifier, re-tagging merges (same key overwrites,
// other keys are kept), and untagging removes exactly the named keys. The
// store performs no existence check against any resource registry — tags can
// be attached to ARNs that no backend knows about, matching the real APIs.
//
// Service backends embed a *Service and delegate their TagResource,
// UntagResource and ListTagsForResource operations to it.
package tagging
