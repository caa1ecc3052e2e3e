// Package namematch resolves free-text participant names against a roster.
// Matching is case-insensitive on the full name with whitespace collapsed.
// Anything fuzzier than that belongs in the request submitter's hands, not
// here.
package namematch

import (
	"regexp"
	"strings"
)

var (
	spaceRe        = regexp.MustCompile(`\s+`)
	substitutionRe = regexp.MustCompile(`(?i)with\s+(.*)`)
)

// Normalize lowercases a name and collapses interior whitespace so that
// "  Maria   GARZA " and "maria garza" compare equal.
func Normalize(name string) string {
	return spaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}

// Equal reports whether two names refer to the same person under Normalize.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b) && Normalize(a) != ""
}

// ParseSubstitutionTarget extracts the incoming player's name from
// substitution details like "please sub with Jane Doe". The empty string
// means no target could be parsed.
func ParseSubstitutionTarget(details string) string {
	m := substitutionRe.FindStringSubmatch(details)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
