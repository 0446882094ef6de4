package internal

import "strings"

// SanitizeLanguage converts a target language identifier into a form that
// is safe to embed in a file name. "French (Canada)" becomes "french_canada".
func SanitizeLanguage(language string) string {
	lowered := strings.ToLower(strings.TrimSpace(language))

	result := ""
	lastUnderscore := false
	for _, r := range lowered {
		if isWordRune(r) {
			result += string(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			result += "_"
			lastUnderscore = true
		}
	}

	return strings.Trim(result, "_")
}

// isWordRune checks if a rune may appear verbatim in a file name
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
