package llm

import "strings"

// CleanJSONArray strips markdown fences and any prose around the outermost
// JSON array. ok is false when no "[ ... ]" span is present.
func CleanJSONArray(content string) (string, bool) {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}
