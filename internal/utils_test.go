package internal

import "testing"

func TestSanitizeLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"French (France)", "french_france"},
		{"French (Canada)", "french_canada"},
		{"Spanish (Latin America)", "spanish_latin_america"},
		{"German", "german"},
		{"Chinese (Simplified)", "chinese_simplified"},
		{"  Portuguese (Brazil)  ", "portuguese_brazil"},
		{"zh-TW", "zh-tw"},
		{"", ""},
	}

	for _, tt := range tests {
		got := SanitizeLanguage(tt.input)
		if got != tt.expected {
			t.Errorf("SanitizeLanguage(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
