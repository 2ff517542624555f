package slug

import (
	"regexp"
	"strings"
)

var nonWordRegex = regexp.MustCompile(`[^\w ]+`)
var spaceRegex = regexp.MustCompile(` +`)

// Make derives a URL-safe slug from a title: lowercase, strip anything
// that is not a word character or space, collapse spaces to hyphens.
func Make(title string) string {
	out := strings.ToLower(strings.TrimSpace(title))
	out = nonWordRegex.ReplaceAllString(out, "")
	out = spaceRegex.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
