package utils

import "strings"

// StripCodeFence removes a wrapping Markdown code fence from an AI completion.
// Models frequently return structured output as ```json\n{...}\n``` even when
// asked for bare JSON, so the fence markers have to go before any parse attempt.
// Text without a fence is returned trimmed and otherwise untouched.
func StripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}

	return strings.TrimSpace(cleaned)
}
