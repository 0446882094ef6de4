// Package markup extracts and compares the structural tokens embedded in
// translatable text: HTML-like tags such as <strong> or <br /> and
// placeholder tokens such as {ORGANIZATION}. It is used to verify that a
// translation preserved all formatting the source text carried.
package markup

import (
	"regexp"
	"sort"
)

// tokenPattern matches HTML-like tags (opening, closing or self-closing,
// attributes tolerated) and uppercase placeholder tokens in curly braces.
// This is a token scan, not a parser: unbalanced markup is fine.
var tokenPattern = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(?:\s[^<>]*)?/?>|\{[A-Z][A-Z0-9_]*\}`)

// Signature is the list of markup tokens found in a string, in order of
// appearance and with multiplicity.
type Signature []string

// Extract scans text and returns its markup signature. Text without any
// markup yields an empty signature.
func Extract(text string) Signature {
	return Signature(tokenPattern.FindAllString(text, -1))
}

// Matches reports whether two signatures contain the same tokens with the
// same multiplicity. Order is ignored: translations into other languages
// legitimately reorder tagged fragments and placeholders.
func (s Signature) Matches(other Signature) bool {
	if len(s) != len(other) {
		return false
	}

	a := append([]string(nil), s...)
	b := append([]string(nil), other...)
	sort.Strings(a)
	sort.Strings(b)

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Validate checks that translated preserved the markup tokens of source.
// It never fails on malformed input; it only compares token multisets.
func Validate(source, translated string) bool {
	return Extract(source).Matches(Extract(translated))
}
