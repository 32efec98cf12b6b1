// Package server exposes the mock backends over the AWS JSON 1.1 protocol.
//
// AWS JSON services multiplex every operation over POST / with the operation
// named in the X-Amz-Target header (for Comprehend:
// "Comprehend_20171127.CreateEntityRecognizer"). The server decodes the JSON
// body, resolves the (region, account) partition — region from the SigV4
// credential scope when present — dispatches to the backend, and encodes the
// result or the AWS error shape ({"__type": ..., "message": ...}).
//
// GET /health and GET /metrics are served alongside for operability.
package server
