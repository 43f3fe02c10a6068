package blobstore

import "context"

// Well-known blob keys.
const (
	KeyAnnouncements = "announcements"
	KeySettings      = "settings"
	KeyAPIKey        = "apiKey"
)

// Store is a durable key-value store for opaque JSON blobs.
//
// Load never fails: if the key is missing, unreadable, or does not decode
// into dst, dst keeps whatever default the caller pre-filled. Save is
// best-effort: failures are logged and swallowed, never returned. The
// in-memory state of callers stays authoritative for the session either way.
type Store interface {
	Load(ctx context.Context, key string, dst any)
	Save(ctx context.Context, key string, v any)
}
