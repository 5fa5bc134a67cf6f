package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// Reasoning blocks emitted by thinking-mode models before the real answer
	thinkTagRe = regexp.MustCompile(`(?is)<think>.*?</think>`)
	// Any leftover markup-like tags
	anyTagRe = regexp.MustCompile(`<.*?>`)
	// Leading list markers: dashes, bullets, numbering, parentheses
	listPrefixRe = regexp.MustCompile(`^[\-\x{2022}\d\.\)\s]+`)
)

const (
	minSuggestionWords = 2
	maxSuggestionWords = 25
	maxSuggestionChars = 140
)

// CleanText strips reasoning-tag blocks and any remaining markup from raw
// AI output, returning the trimmed usable text. Empty input yields "".
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = thinkTagRe.ReplaceAllString(text, "")
	text = anyTagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ParseJSONArray interprets text strictly as a JSON array of strings.
// Elements are trimmed and empties dropped. Anything else (malformed
// JSON, or valid JSON that is not an array of strings) returns nil.
func ParseJSONArray(text string) []string {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}

	items := make([]string, 0, len(raw))
	for _, elem := range raw {
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			return nil
		}
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	return items
}

// ExtractSuggestionLines recovers suggestion-like lines from loosely
// formatted text: list prefixes are stripped, and only lines with 2-25
// words and at most 140 characters are kept.
func ExtractSuggestionLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.TrimSpace(listPrefixRe.ReplaceAllString(line, ""))

		words := len(strings.Fields(line))
		if words >= minSuggestionWords && words <= maxSuggestionWords && len(line) <= maxSuggestionChars {
			lines = append(lines, line)
		}
	}
	return lines
}
