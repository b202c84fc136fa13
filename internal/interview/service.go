// Package interview implements the session state machine: start an
// interview from a template, process one voice turn at a time, and finish
// with a scored feedback report.
package interview

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"voicehire/internal/access"
	"voicehire/internal/models"
	"voicehire/internal/repositories"
	"voicehire/internal/speech"
	"voicehire/internal/utils"
)

// TemplateStore is the read-only template lookup the service needs.
type TemplateStore interface {
	FindByID(ctx context.Context, id string) (*models.InterviewTemplate, error)
}

// SessionStore persists whole session documents. Every operation re-reads
// state through it; there is no in-memory session cache.
type SessionStore interface {
	Create(ctx context.Context, s *models.InterviewSession) (*models.InterviewSession, error)
	FindByID(ctx context.Context, id string) (*models.InterviewSession, error)
	Save(ctx context.Context, s *models.InterviewSession) error
}

// FeedbackGenerator produces the terminal report. It never fails; bad
// provider output degrades to a fallback result.
type FeedbackGenerator interface {
	Generate(ctx context.Context, transcript []models.TranscriptEntry) *models.Feedback
}

type StartResult struct {
	SessionID     string
	FirstQuestion string
}

type TurnResult struct {
	NextQuestionText string
	UserTranscript   string
	IsInterviewOver  bool
}

// Service orchestrates sessions across the store, the speech bridge and
// the feedback generator.
type Service struct {
	templates TemplateStore
	sessions  SessionStore
	stt       speech.Transcriber
	feedback  FeedbackGenerator
	logger    *zap.Logger
}

func NewService(templates TemplateStore, sessions SessionStore, stt speech.Transcriber, generator FeedbackGenerator, logger *zap.Logger) *Service {
	return &Service{
		templates: templates,
		sessions:  sessions,
		stt:       stt,
		feedback:  generator,
		logger:    logger,
	}
}

// Start creates a self-practice session: the actor is the session owner
// and the first template question opens the transcript.
func (s *Service) Start(ctx context.Context, templateID string, actor models.Actor) (*StartResult, error) {
	template, err := s.loadTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	firstQuestion := template.Questions[0]

	session := &models.InterviewSession{
		User:     actor.ID,
		Template: template.ID,
		Status:   models.StatusInProgress,
	}
	session.AppendEntry(models.SpeakerAI, firstQuestion)

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Interview started",
		zap.String("session_id", created.ID),
		zap.String("template_id", template.ID))

	return &StartResult{SessionID: created.ID, FirstQuestion: firstQuestion}, nil
}

// StartInvite schedules an interview for a candidate known only by email.
// The session has no bound account until that candidate first
// authenticates and is claimed by the access guard.
func (s *Service) StartInvite(ctx context.Context, templateID, candidateEmail string, actor models.Actor) (*StartResult, error) {
	if !actor.CanRecruit() {
		return nil, ErrUnauthorized
	}

	template, err := s.loadTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.CreatedBy != "" && !template.OwnedBy(actor.ID) && !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	firstQuestion := template.Questions[0]

	session := &models.InterviewSession{
		Template:       template.ID,
		ConductedBy:    actor.ID,
		CandidateEmail: utils.NormalizeEmail(candidateEmail),
		Status:         models.StatusInProgress,
	}
	session.AppendEntry(models.SpeakerAI, firstQuestion)

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Interview scheduled",
		zap.String("session_id", created.ID),
		zap.String("template_id", template.ID),
		zap.String("candidate_email", session.CandidateEmail))

	return &StartResult{SessionID: created.ID, FirstQuestion: firstQuestion}, nil
}

// ProcessTurn runs one round-trip: transcribe the answer, advance the
// transcript, and return the next prompt. An empty transcription appends
// a clarification line without advancing the question position.
func (s *Service) ProcessTurn(ctx context.Context, sessionID string, actor models.Actor, audio []byte) (*TurnResult, error) {
	session, err := s.authorize(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}
	if session.Status == models.StatusCompleted {
		return nil, ErrSessionCompleted
	}

	userText, err := s.stt.Transcribe(ctx, audio)
	if err != nil {
		// No transcript append has happened, so state stays clean and
		// the caller can simply retry the turn.
		return nil, &speech.RecognitionError{Err: err}
	}

	if userText == "" {
		session.AppendEntry(models.SpeakerAI, ClarificationLine)
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
		return &TurnResult{
			NextQuestionText: ClarificationLine,
			UserTranscript:   "(No speech detected)",
			IsInterviewOver:  false,
		}, nil
	}

	session.AppendEntry(models.SpeakerUser, userText)

	template, err := s.loadTemplate(ctx, session.Template)
	if err != nil {
		return nil, err
	}

	nextQuestion, over := NextQuestion(session.Transcript, template.Questions)
	nextText := nextQuestion
	if over {
		// The closing remark is spoken but never appended, so it can
		// not be mistaken for a template question later.
		nextText = ClosingLine
	} else {
		session.AppendEntry(models.SpeakerAI, nextQuestion)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &TurnResult{
		NextQuestionText: nextText,
		UserTranscript:   userText,
		IsInterviewOver:  over,
	}, nil
}

// Finish generates the feedback report and completes the session. Calling
// it on a completed session returns the stored feedback without invoking
// the provider again.
func (s *Service) Finish(ctx context.Context, sessionID string, actor models.Actor) (*models.Feedback, error) {
	session, err := s.authorize(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}

	if session.Status == models.StatusCompleted && session.Feedback != nil {
		return session.Feedback, nil
	}

	result := s.feedback.Generate(ctx, session.Transcript)

	session.Feedback = result
	session.Status = models.StatusCompleted
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Interview completed",
		zap.String("session_id", session.ID),
		zap.Int("overall_score", result.OverallScore))

	return result, nil
}

// GetSession returns the session for read-back (transcript and feedback
// report), guarded by the same access rules as mutations.
func (s *Service) GetSession(ctx context.Context, sessionID string, actor models.Actor) (*models.InterviewSession, error) {
	return s.authorize(ctx, sessionID, actor)
}

// authorize loads the session and runs the access guard, persisting the
// one-shot claim transition when it fires.
func (s *Service) authorize(ctx context.Context, sessionID string, actor models.Actor) (*models.InterviewSession, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	decision := access.Authorize(session, actor)
	if !decision.Allowed {
		s.logger.Warn("Unauthorized session access attempt",
			zap.String("session_id", sessionID),
			zap.String("actor_id", actor.ID))
		return nil, ErrUnauthorized
	}

	if decision.Claimed {
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
		s.logger.Info("Session claimed by invited candidate",
			zap.String("session_id", sessionID),
			zap.String("user_id", actor.ID))
	}

	return session, nil
}

func (s *Service) loadTemplate(ctx context.Context, id string) (*models.InterviewTemplate, error) {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if len(template.Questions) == 0 {
		return nil, ErrInvalidTemplate
	}
	return template, nil
}
