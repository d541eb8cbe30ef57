package services

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 50

// Slugify turns a title into a lowercase, hyphenated, ASCII identifier:
// accents are stripped, punctuation dropped, runs of spaces and hyphens collapse
// to a single hyphen. "Web Design" becomes "web-design".
func Slugify(value string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range norm.NFKD.String(strings.ToLower(value)) {
		switch {
		case r > unicode.MaxASCII:
			continue
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = true
		}
	}
	slug := strings.Trim(b.String(), "-_")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-_")
	}
	if slug == "" {
		return uuid.NewString()
	}
	return slug
}

// SplitTechnologies splits a comma separated technologies field into trimmed items.
// An empty field yields an empty list.
func SplitTechnologies(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}
	return items
}
