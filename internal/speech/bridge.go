// Package speech defines the narrow bridge to the external speech
// provider. Both directions are single-attempt, fail-fast calls; the
// caller decides how to degrade.
package speech

import "context"

// Audio is raw 16-bit linear PCM as returned by the synthesizer.
// Container framing for playback is the caller's job (see WAV).
type Audio struct {
	PCM        []byte
	SampleRate int
}

// Transcriber converts recorded candidate audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer converts prompt text to speech.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Audio, error)
}

// RecognitionError marks a speech-to-text provider failure. It occurs
// before any transcript append, so session state is never corrupted.
type RecognitionError struct {
	Err error
}

func (e *RecognitionError) Error() string {
	return "speech recognition failed: " + e.Err.Error()
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// SynthesisError marks a text-to-speech provider failure. Callers fall
// back to a text-only transcript.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return "speech synthesis failed: " + e.Err.Error()
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
