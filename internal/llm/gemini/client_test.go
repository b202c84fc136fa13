package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"google.golang.org/genai"
)

func TestSampleRateFromMIME(t *testing.T) {
	assert.Equal(t, 24000, sampleRateFromMIME("audio/L16;codec=pcm;rate=24000"))
	assert.Equal(t, 16000, sampleRateFromMIME("audio/L16; rate=16000"))
	assert.Equal(t, 24000, sampleRateFromMIME("audio/L16"))
	assert.Equal(t, 24000, sampleRateFromMIME("audio/L16;rate=abc"))
	assert.Equal(t, 24000, sampleRateFromMIME(""))
}

func TestFirstInlineData(t *testing.T) {
	blob := &genai.Blob{MIMEType: "audio/L16;rate=24000", Data: []byte{1, 2}}
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "ignored"},
				{InlineData: blob},
			}}},
		},
	}

	assert.Same(t, blob, firstInlineData(result))
	assert.Nil(t, firstInlineData(nil))
	assert.Nil(t, firstInlineData(&genai.GenerateContentResponse{}))
}
