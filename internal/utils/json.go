package utils

import "strings"

// CleanJSONString sanitizes model output that is expected to contain a
// JSON object: strips markdown code fences, isolates the substring
// between the first '{' and the last '}', and removes control characters
// that would invalidate the JSON.
func CleanJSONString(s string) string {
	cleaned := strings.TrimPrefix(s, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	if first := strings.Index(cleaned, "{"); first > -1 {
		cleaned = cleaned[first:]
	}
	if last := strings.LastIndex(cleaned, "}"); last > -1 {
		cleaned = cleaned[:last+1]
	}

	cleaned = strings.TrimSpace(cleaned)

	replacer := strings.NewReplacer("\n", "", "\r", "", "\t", "")
	return replacer.Replace(cleaned)
}
