package helper

import (
	"path"
	"strings"
	"time"
)

// ObjectName joins object storage path segments, skipping empty ones
func ObjectName(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			kept = append(kept, p)
		}
	}
	return path.Join(kept...)
}

// Millis formats a duration as whole milliseconds
func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}

func IsNotFoundError(err error) bool {
	return strings.Contains(err.Error(), "notFound") ||
		strings.Contains(err.Error(), "Not found") ||
		strings.Contains(err.Error(), "does not exist")
}
