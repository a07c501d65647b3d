package extractor

import (
	"encoding/json"
	"strings"
)

// choiceContent reads openai-style choices[0].message.content verbatim.
func choiceContent(body []byte) string {
	var obj struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &obj); err != nil || len(obj.Choices) == 0 {
		return ""
	}
	return obj.Choices[0].Message.Content
}

// extractContentFromChoices returns the JSON object inside choices[0].message.content.
func extractContentFromChoices(body []byte) string {
	return extractJSON(choiceContent(body))
}

// jsonCandidates lists the places a JSON answer may sit in a gateway body,
// most specific first.
func jsonCandidates(body []byte) []string {
	return []string{extractContentFromChoices(body), extractJSON(string(body))}
}

// extractJSON finds the first balanced JSON object in a string and returns it.
// Markdown fences are stripped first; braces inside string literals are skipped.
func extractJSON(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, r := range []string{"```json", "```", "`json"} {
		s = strings.ReplaceAll(s, r, "")
	}

	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}
