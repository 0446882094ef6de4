package translator

import "fmt"

// systemPrompt primes the model for format-preserving translation
const systemPrompt = "You are a professional translator. Translate accurately while preserving all formatting and placeholders."

// buildPrompt creates the translation instruction for one cell. The
// target language is embedded verbatim, including regional qualifiers.
func buildPrompt(text, targetLanguage string) string {
	return fmt.Sprintf(`Translate the following text to %s.

Important instructions:
- Preserve all HTML tags and formatting exactly as they appear (e.g., <strong>, <br />, etc.)
- Keep all placeholders in curly braces unchanged (e.g., {ORGANIZATION})
- Maintain the same tone and style as the original
- Translate naturally and accurately
- Respond with only the translation, nothing else

Text to translate:
%s

Translation:`, targetLanguage, text)
}
