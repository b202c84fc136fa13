package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONString_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"overallScore\": 85}\n```"

	cleaned := CleanJSONString(raw)

	assert.Equal(t, `{"overallScore": 85}`, cleaned)
}

func TestCleanJSONString_IsolatesObjectFromChatter(t *testing.T) {
	raw := "Sure, here is the report:\n{\"overallScore\": 60, \"detailedAnalysis\": \"ok\"}\nLet me know if you need anything else."

	cleaned := CleanJSONString(raw)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(cleaned), &parsed))
	assert.Equal(t, float64(60), parsed["overallScore"])
}

func TestCleanJSONString_RemovesControlCharacters(t *testing.T) {
	raw := "{\n\t\"strengths\": [\"a\"],\r\n\t\"areasForImprovement\": []\n}"

	cleaned := CleanJSONString(raw)

	assert.Equal(t, `{"strengths": ["a"],"areasForImprovement": []}`, cleaned)
	assert.NotContains(t, cleaned, "\n")
	assert.NotContains(t, cleaned, "\t")
}

func TestCleanJSONString_PassesPlainObjectThrough(t *testing.T) {
	raw := `{"overallScore": 100}`

	assert.Equal(t, raw, CleanJSONString(raw))
}

func TestCleanJSONString_NoObjectPresent(t *testing.T) {
	raw := "I could not produce a report for this transcript."

	// Nothing to isolate; the caller's JSON parse will reject it.
	assert.Equal(t, raw, CleanJSONString(raw))
}
