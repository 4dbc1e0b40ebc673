package pkg

import (
	"regexp"
	"strings"
)

var tagCleaner = regexp.MustCompile(`[^a-z0-9_ -]+`)

// DefaultTags derives a comma-separated tag list from a job title, used
// when a question arrives without tags of its own.
func DefaultTags(jobTitle string) string {
	lowered := tagCleaner.ReplaceAllString(strings.ToLower(jobTitle), "")
	fields := strings.Fields(lowered)
	if len(fields) == 0 {
		return "general"
	}
	return strings.Join(fields, ",")
}

// NormalizeTags trims each comma-separated tag and drops empties,
// preserving order.
func NormalizeTags(tags string) string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}
