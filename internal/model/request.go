package model

import (
	"strconv"
	"time"
)

// UploadRequest is the per-invocation view of an inbound upload event.
// HasFileName reports whether the caller supplied a key, even an empty one.
type UploadRequest struct {
	ContentType string
	Body        string
	FileName    string
	HasFileName bool
}

// GeneratedKey returns the default object key for an upload received at t.
func GeneratedKey(t time.Time) string {
	return GeneratedKeyPrefix + strconv.FormatInt(t.UnixMilli(), 10) + GeneratedKeyExt
}
