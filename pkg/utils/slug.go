package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9 -]+`)
	slugSpaces  = regexp.MustCompile(`[ -]+`)
)

// GenerateSlug creates a URL-friendly slug from a display name.
// Non-latin titles (Hindi/Gujarati headlines) can slug to an empty
// string; callers fall back to a default base in that case.
func GenerateSlug(input string) string {
	slug := strings.ToLower(strings.TrimSpace(input))
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// TruncateSlug bounds a slug to maxLen without leaving a trailing hyphen.
func TruncateSlug(slug string, maxLen int) string {
	if len(slug) > maxLen {
		slug = slug[:maxLen]
	}
	return strings.Trim(slug, "-")
}
