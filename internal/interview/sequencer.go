package interview

import "voicehire/internal/models"

// Fixed AI lines that are transcript entries but never template questions.
const (
	ClarificationLine = "I couldn't hear you clearly. Could you please repeat that?"
	ClosingLine       = "Thank you for your answers. This concludes the interview. I am now generating your feedback report."
)

// NextQuestion computes the next unasked template question from the
// transcript, or signals that the interview is over.
//
// A question counts as asked when its exact text appears among the AI
// transcript entries and every question before it was also asked. The
// scan stops at the first gap, so clarification lines and other repeated
// AI interjections never advance the position.
func NextQuestion(transcript []models.TranscriptEntry, questions []string) (string, bool) {
	asked := make(map[string]bool, len(transcript))
	for _, entry := range transcript {
		if entry.Speaker == models.SpeakerAI {
			asked[entry.Text] = true
		}
	}

	next := 0
	for i, question := range questions {
		if asked[question] {
			next = i + 1
		} else {
			break
		}
	}

	if next >= len(questions) {
		return "", true
	}
	return questions[next], false
}
