package utils

import (
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UploadsURLPrefix is the public mount point of the file store.
const UploadsURLPrefix = "/uploads/"

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// IsExternalURL reports whether a stored image reference points outside the
// file store (for example a Google profile picture).
func IsExternalURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ObjectKeyFromRef strips any "/uploads/" prefix a client or legacy row may
// carry, returning the bare object key.
func ObjectKeyFromRef(ref string) string {
	key := strings.ReplaceAll(ref, "\\", "/")
	key = strings.TrimLeft(key, "/")
	for strings.HasPrefix(strings.ToLower(key), "uploads/") {
		key = strings.TrimLeft(key[len("uploads/"):], "/")
	}
	return key
}

// PublicUploadPath converts a stored reference to the URL clients load.
func PublicUploadPath(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	if IsExternalURL(*ref) {
		out := *ref
		return &out
	}
	out := UploadsURLPrefix + ObjectKeyFromRef(*ref)
	return &out
}

// NewObjectKey builds a unique object key under dir for an uploaded file name.
func NewObjectKey(dir, filename string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = unsafeNameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "file"
	}
	if len(base) > 100 {
		base = base[len(base)-100:]
	}
	name := strconv.FormatInt(now.UnixNano(), 10) + "-" + base
	if dir == "" {
		return name
	}
	return strings.Trim(dir, "/") + "/" + name
}

// CleanObjectKey validates a key requested through the public uploads route.
// It returns false for anything that could escape the store root.
func CleanObjectKey(raw string) (string, bool) {
	key := strings.TrimLeft(strings.ReplaceAll(raw, "\\", "/"), "/")
	if key == "" {
		return "", false
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return "", false
		}
	}
	return path.Clean(key), true
}
