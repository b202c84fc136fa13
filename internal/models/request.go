package models

import (
	"encoding/base64"
	"strings"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// implements the Validator interface
func (r *SignupRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return &ErrorResponse{Code: "invalid_email", Message: "A valid email address is required"}
	}
	if len(r.Password) < 8 {
		return &ErrorResponse{Code: "weak_password", Message: "Password must be at least 8 characters long"}
	}
	if len(strings.TrimSpace(r.Name)) < 2 {
		return &ErrorResponse{Code: "invalid_name", Message: "Name must be at least 2 characters long"}
	}
	if !ValidSignupRoles[r.Role] {
		return &ErrorResponse{Code: "invalid_role", Message: "Role must be CANDIDATE or RECRUITER"}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return &ErrorResponse{Code: "missing_email", Message: "Email field is required"}
	}
	if r.Password == "" {
		return &ErrorResponse{Code: "missing_password", Message: "Password field is required"}
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return &ErrorResponse{Code: "missing_refresh_token", Message: "refresh_token field is required"}
	}
	return nil
}

// CreateTemplateRequest builds a template from a job description via the
// question generator.
type CreateTemplateRequest struct {
	Title          string `json:"title"`
	JobDescription string `json:"job_description"`
}

func (r *CreateTemplateRequest) Validate() error {
	if len(strings.TrimSpace(r.Title)) < 3 {
		return &ErrorResponse{Code: "invalid_title", Message: "Title must be at least 3 characters long"}
	}
	if len(strings.TrimSpace(r.JobDescription)) < 50 {
		return &ErrorResponse{Code: "invalid_job_description", Message: "Job description must be at least 50 characters"}
	}
	return nil
}

type StartInterviewRequest struct {
	TemplateID string `json:"template_id"`
}

func (r *StartInterviewRequest) Validate() error {
	if r.TemplateID == "" {
		return &ErrorResponse{Code: "missing_template_id", Message: "template_id field is required"}
	}
	return nil
}

// StartInviteRequest schedules an interview for a candidate known only by
// email; the session is claimed when that candidate first authenticates.
type StartInviteRequest struct {
	TemplateID     string `json:"template_id"`
	CandidateEmail string `json:"candidate_email"`
}

func (r *StartInviteRequest) Validate() error {
	if r.TemplateID == "" {
		return &ErrorResponse{Code: "missing_template_id", Message: "template_id field is required"}
	}
	r.CandidateEmail = strings.ToLower(strings.TrimSpace(r.CandidateEmail))
	if r.CandidateEmail == "" || !strings.Contains(r.CandidateEmail, "@") {
		return &ErrorResponse{Code: "invalid_candidate_email", Message: "A valid candidate email is required"}
	}
	return nil
}

// TurnRequest carries one recorded answer as base64 audio.
type TurnRequest struct {
	AudioBase64 string `json:"audio"`

	audio []byte
}

func (r *TurnRequest) Validate() error {
	if r.AudioBase64 == "" {
		return &ErrorResponse{Code: "missing_audio", Message: "audio field is required"}
	}
	raw, err := base64.StdEncoding.DecodeString(r.AudioBase64)
	if err != nil {
		return &ErrorResponse{Code: "invalid_audio", Message: "audio must be base64-encoded"}
	}
	r.audio = raw
	return nil
}

// Audio returns the decoded audio bytes. Valid only after Validate.
func (r *TurnRequest) Audio() []byte {
	return r.audio
}

type SynthesizeRequest struct {
	Text string `json:"text"`
}

func (r *SynthesizeRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &ErrorResponse{Code: "missing_text", Message: "Text is required"}
	}
	return nil
}
