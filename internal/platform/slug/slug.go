package slug

import (
	"regexp"
	"strings"
)

// MaxLen caps slugs so journal file names stay short.
const MaxLen = 48

var separators = regexp.MustCompile(`[^a-z0-9]+`)

// Make turns a subject or title into a file-name-safe token. Inputs with no
// usable characters fall back to "untitled".
func Make(input string) string {
	s := separators.ReplaceAllString(strings.ToLower(input), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	if s == "" {
		return "untitled"
	}
	return s
}
