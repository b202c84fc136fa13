package gemini

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"voicehire/internal/llm"
	"voicehire/internal/speech"
)

// Client represents a Gemini client covering text generation, speech
// recognition and speech synthesis.

type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// GenerateText sends a system instruction plus a user payload and returns
// the raw model output.
func (c *Client) GenerateText(ctx context.Context, system, user string, opts *llm.GenerateOptions) (string, error) {
	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	if opts != nil && opts.ResponseMIMEType != "" {
		config.ResponseMIMEType = opts.ResponseMIMEType
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(user),
		config,
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate text",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	return text, nil
}

// Transcribe converts client-recorded compressed audio to text. An empty
// transcript (silence, unintelligible input) is returned as an empty
// string, not an error.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{Text: "Transcribe this audio recording verbatim. Return only the spoken words, with no commentary. If there is no intelligible speech, return an empty response."},
			{InlineData: &genai.Blob{MIMEType: "audio/webm", Data: audio}},
		},
	}}

	result, err := c.client.Models.GenerateContent(ctx, c.config.Model, contents, nil)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to transcribe audio",
			Err:      err,
		}
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", nil
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract transcript text",
			Err:      err,
		}
	}

	return strings.TrimSpace(text), nil
}

// Synthesize converts text into raw 16-bit PCM samples. The TTS models
// return audio/L16 inline data; the sample rate is parsed from the MIME
// type (rate=24000 unless stated otherwise).
func (c *Client) Synthesize(ctx context.Context, text string) (*speech.Audio, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: c.config.TTSVoice,
				},
			},
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.config.TTSModel, genai.Text(text), config)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to synthesize speech",
			Err:      err,
		}
	}

	blob := firstInlineData(result)
	if blob == nil || len(blob.Data) == 0 {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No audio data in response",
		}
	}

	return &speech.Audio{
		PCM:        blob.Data,
		SampleRate: sampleRateFromMIME(blob.MIMEType),
	}, nil
}

func firstInlineData(result *genai.GenerateContentResponse) *genai.Blob {
	if result == nil {
		return nil
	}
	for _, cand := range result.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil {
				return part.InlineData
			}
		}
	}
	return nil
}

// sampleRateFromMIME parses the rate parameter out of a MIME type such as
// "audio/L16;codec=pcm;rate=24000".
func sampleRateFromMIME(mimeType string) int {
	const defaultRate = 24000
	for _, param := range strings.Split(mimeType, ";") {
		param = strings.TrimSpace(param)
		if value, ok := strings.CutPrefix(param, "rate="); ok {
			if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
				return rate
			}
		}
	}
	return defaultRate
}

func (c *Client) GetProviderName() string {
	return "gemini"
}
