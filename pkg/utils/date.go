package utils

import (
	"time"
)

// FormatTimestamp renders a timestamp as UTC ISO-8601 with second precision
// and a literal 'Z' suffix, the format the incident API exposes.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}
