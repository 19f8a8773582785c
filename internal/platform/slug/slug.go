package slug

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	nonAlphaNum   = regexp.MustCompile(`[^a-z0-9]+`)
)

// Make turns a label such as "SportsWalking" into "sports-walking".
func Make(input string) string {
	s := camelBoundary.ReplaceAllString(strings.TrimSpace(input), "$1-$2")
	s = nonAlphaNum.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "workout"
	}
	return s
}
