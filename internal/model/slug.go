package model

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercase, hyphen separated form of a raw team name ("UC San Diego" -> "uc-san-diego").
// Used as the team id when a name is missing from the alias tables.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
