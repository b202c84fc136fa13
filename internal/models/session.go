package models

import "time"

// Session lifecycle. COMPLETED is terminal; no transition leaves it.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
)

// Transcript speakers.
type Speaker string

const (
	SpeakerAI   Speaker = "AI"
	SpeakerUser Speaker = "USER"
)

// TranscriptEntry is one line of the interview transcript.
type TranscriptEntry struct {
	Speaker   Speaker   `bson:"speaker" json:"speaker"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Feedback is the structured scoring result produced once, at completion.
type Feedback struct {
	OverallScore        int      `bson:"overallScore" json:"overallScore"`
	Strengths           []string `bson:"strengths" json:"strengths"`
	AreasForImprovement []string `bson:"areasForImprovement" json:"areasForImprovement"`
	DetailedAnalysis    string   `bson:"detailedAnalysis" json:"detailedAnalysis"`
}

// FallbackFeedback is returned when the generation provider produces
// output that cannot be parsed. It is a valid terminal result; the
// session still completes.
func FallbackFeedback() *Feedback {
	return &Feedback{
		OverallScore:        0,
		Strengths:           []string{"Error generating feedback"},
		AreasForImprovement: []string{"Please contact support"},
		DetailedAnalysis:    "AI processing failed for this session.",
	}
}

// InterviewSession is one candidate's attempt at a template. The transcript
// is append-only; the document is read-modify-written wholesale on each
// operation, with last-write-wins semantics at the store.
type InterviewSession struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Template string `bson:"template" json:"template"`

	// User is empty until a recruiter-invited candidate claims the session
	// by authenticating with the matching email.
	User string `bson:"user,omitempty" json:"user,omitempty"`

	// ConductedBy is the inviting recruiter; empty for self-practice.
	// Immutable once set.
	ConductedBy string `bson:"conductedBy,omitempty" json:"conducted_by,omitempty"`

	// CandidateEmail is stored lower-cased so matching is reliable.
	CandidateEmail string `bson:"candidateEmail,omitempty" json:"candidate_email,omitempty"`

	Status     SessionStatus     `bson:"status" json:"status"`
	Transcript []TranscriptEntry `bson:"transcript" json:"transcript"`
	Feedback   *Feedback         `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt  time.Time         `bson:"createdAt" json:"created_at"`
}

// AppendEntry adds one transcript line stamped with the current time.
func (s *InterviewSession) AppendEntry(speaker Speaker, text string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
}
