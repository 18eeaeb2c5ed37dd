package storage

import (
	"fmt"
	"math/rand"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

// NewObjectName generates a collision-resistant storage name for an
// uploaded file: millisecond timestamp, a random base-36 suffix, and the
// original file's extension. Two uploads of the same file therefore never
// collide in the bucket.
func NewObjectName(originalName string) string {
	ext := strings.TrimPrefix(path.Ext(originalName), ".")
	suffix := strconv.FormatUint(rand.Uint64(), 36)

	if ext == "" {
		return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
	}

	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), suffix, strings.ToLower(ext))
}

// ObjectNameFromURL recovers the storage object name from a public media
// URL: the last path segment, with any query string (access tokens and the
// like) stripped. Used by delete cleanup to find which object to remove.
func ObjectNameFromURL(publicUrl string) string {
	if parsed, err := url.Parse(publicUrl); err == nil {
		return path.Base(parsed.Path)
	}

	// Fall back to naive splitting for URLs the stdlib refuses to parse.
	trimmed := publicUrl
	if idx := strings.IndexByte(trimmed, '?'); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	parts := strings.Split(trimmed, "/")
	return parts[len(parts)-1]
}
