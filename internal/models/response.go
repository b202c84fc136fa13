package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user,omitempty"`
}

type TemplateResponse struct {
	Template *InterviewTemplate `json:"template"`
}

type TemplatesResponse struct {
	Total int                 `json:"total"`
	Items []InterviewTemplate `json:"items"`
}

type StartInterviewResponse struct {
	SessionID     string `json:"session_id"`
	FirstQuestion string `json:"first_question"`
}

type StartInviteResponse struct {
	SessionID      string `json:"session_id"`
	FirstQuestion  string `json:"first_question"`
	CandidateEmail string `json:"candidate_email"`
}

type TurnResponse struct {
	NextQuestionText string `json:"next_question_text"`
	UserTranscript   string `json:"user_transcript"`
	IsInterviewOver  bool   `json:"is_interview_over"`
}

type FeedbackResponse struct {
	Feedback *Feedback `json:"feedback"`
}

type SessionResponse struct {
	Session *InterviewSession `json:"session"`
}

// SynthesizeResponse carries base64 WAV audio ready for browser playback.
type SynthesizeResponse struct {
	AudioData  string `json:"audio_data"`
	SampleRate int    `json:"sample_rate"`
}
