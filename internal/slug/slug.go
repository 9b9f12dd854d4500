package slug

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a URL path segment from a display title. The mapping is
// deterministic and total but not injective: distinct titles may collide.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Resolve scans titles in order and returns the index of the first whose
// recomputed slug equals want, or -1. Slugs are never stored; a renamed
// entity silently changes its public URL.
func Resolve(titles []string, want string) int {
	for i, title := range titles {
		if Make(title) == want {
			return i
		}
	}
	return -1
}
