package ingest

import (
	"regexp"
	"strings"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ResolveDriver maps a raw name string from a parsed row to a roster driver.
// Stages run in order, first hit wins: last-name substring, full-name
// containment either way, then slug with hyphens as spaces. The first roster
// entry in iteration order wins ties, which is deterministic but not
// guaranteed semantically right; callers must flag unresolved rows and keep
// them out of standings until corrected.
func ResolveDriver(rawName string, roster []driver.Driver) (string, bool) {
	clean := whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(rawName)), " ")
	if clean == "" {
		return "", false
	}

	for _, d := range roster {
		if lastName := strings.ToLower(d.LastName); lastName != "" && strings.Contains(clean, lastName) {
			return d.ID, true
		}
	}

	for _, d := range roster {
		full := strings.ToLower(d.FullName())
		if full == "" {
			continue
		}
		if strings.Contains(clean, full) || strings.Contains(full, clean) {
			return d.ID, true
		}
	}

	for _, d := range roster {
		slug := strings.ReplaceAll(strings.ToLower(d.Slug), "-", " ")
		if slug != "" && strings.Contains(clean, slug) {
			return d.ID, true
		}
	}

	return "", false
}
