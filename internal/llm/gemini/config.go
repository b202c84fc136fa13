package gemini

import (
	"errors"
	"os"
)

// holds Gemini-specific configuration
type Config struct {
	APIKey   string
	Model    string
	TTSModel string
	TTSVoice string
}

func NewConfig() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash" // default model
	}

	ttsModel := os.Getenv("GEMINI_TTS_MODEL")
	if ttsModel == "" {
		ttsModel = "gemini-2.5-flash-preview-tts"
	}

	ttsVoice := os.Getenv("GEMINI_TTS_VOICE")
	if ttsVoice == "" {
		ttsVoice = "Kore"
	}

	return &Config{
		APIKey:   apiKey,
		Model:    model,
		TTSModel: ttsModel,
		TTSVoice: ttsVoice,
	}, nil
}
