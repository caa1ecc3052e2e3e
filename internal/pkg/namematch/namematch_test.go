//go:build unit

package namematch

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact", "Maria Garza", "Maria Garza", true},
		{"case insensitive", "maria garza", "MARIA GARZA", true},
		{"collapses whitespace", "  Maria   Garza ", "Maria Garza", true},
		{"different people", "Maria Garza", "Mario Garza", false},
		{"empty never matches", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestParseSubstitutionTarget(t *testing.T) {
	cases := []struct {
		name    string
		details string
		want    string
	}{
		{"plain", "substitute with Jane Doe", "Jane Doe"},
		{"capitalized keyword", "Replace With Jane Doe", "Jane Doe"},
		{"trailing spaces", "sub with Jane Doe  ", "Jane Doe"},
		{"no target", "please withdraw", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseSubstitutionTarget(tc.details); got != tc.want {
				t.Errorf("ParseSubstitutionTarget(%q) = %q, want %q", tc.details, got, tc.want)
			}
		})
	}
}
