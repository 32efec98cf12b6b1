// Package backend manages per-partition service backends.
//
// AWS mock state is partitioned by (region, account id): every partition
// gets its own backend instance with its own registry and tag store. The
// Registry creates backends lazily on first use and owns nothing globally —
// its lifecycle belongs to whoever constructs it (the server, or a test).
package backend
