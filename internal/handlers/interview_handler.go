package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"voicehire/internal/interview"
	"voicehire/internal/metrics"
	"voicehire/internal/middleware"
	"voicehire/internal/models"
	"voicehire/internal/speech"
	"voicehire/internal/utils"
)

// InterviewHandler exposes the session state machine over HTTP.
type InterviewHandler struct {
	service *interview.Service
	tts     speech.Synthesizer
	logger  *zap.Logger
}

func NewInterviewHandler(service *interview.Service, tts speech.Synthesizer, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		service: service,
		tts:     tts,
		logger:  logger,
	}
}

func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	req := middleware.GetValidatedRequest[*models.StartInterviewRequest](r)

	result, err := h.service.Start(r.Context(), req.TemplateID, actor)
	if err != nil {
		h.writeInterviewError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, models.StartInterviewResponse{
		SessionID:     result.SessionID,
		FirstQuestion: result.FirstQuestion,
	})
}

func (h *InterviewHandler) StartInviteHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	req := middleware.GetValidatedRequest[*models.StartInviteRequest](r)

	result, err := h.service.StartInvite(r.Context(), req.TemplateID, req.CandidateEmail, actor)
	if err != nil {
		h.writeInterviewError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, models.StartInviteResponse{
		SessionID:      result.SessionID,
		FirstQuestion:  result.FirstQuestion,
		CandidateEmail: req.CandidateEmail,
	})
}

func (h *InterviewHandler) TurnHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	req := middleware.GetValidatedRequest[*models.TurnRequest](r)
	sessionID := chi.URLParam(r, "sessionID")

	result, err := h.service.ProcessTurn(r.Context(), sessionID, actor, req.Audio())
	if err != nil {
		metrics.ObserveTurn(metrics.TurnOutcomeFailed)
		h.writeInterviewError(w, err)
		return
	}

	switch {
	case result.IsInterviewOver:
		metrics.ObserveTurn(metrics.TurnOutcomeCompleted)
	case result.NextQuestionText == interview.ClarificationLine:
		metrics.ObserveTurn(metrics.TurnOutcomeClarified)
	default:
		metrics.ObserveTurn(metrics.TurnOutcomeAdvanced)
	}

	utils.JSON(w, http.StatusOK, models.TurnResponse{
		NextQuestionText: result.NextQuestionText,
		UserTranscript:   result.UserTranscript,
		IsInterviewOver:  result.IsInterviewOver,
	})
}

func (h *InterviewHandler) FinishHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	sessionID := chi.URLParam(r, "sessionID")

	result, err := h.service.Finish(r.Context(), sessionID, actor)
	if err != nil {
		h.writeInterviewError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.FeedbackResponse{Feedback: result})
}

func (h *InterviewHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.service.GetSession(r.Context(), sessionID, actor)
	if err != nil {
		h.writeInterviewError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.SessionResponse{Session: session})
}

// SynthesizeHandler converts prompt text to WAV audio for playback. On
// provider failure the client keeps going with the text transcript.
func (h *InterviewHandler) SynthesizeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SynthesizeRequest](r)

	audio, err := h.tts.Synthesize(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("Speech synthesis failed", zap.Error(err))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "speech_synthesis_failed",
			Message: "Failed to generate speech",
		})
		return
	}

	wav := speech.WAV(audio.PCM, audio.SampleRate, 1)

	utils.JSON(w, http.StatusOK, models.SynthesizeResponse{
		AudioData:  base64.StdEncoding.EncodeToString(wav),
		SampleRate: audio.SampleRate,
	})
}

// writeInterviewError maps state machine errors to short responses that
// leak no internals.
func (h *InterviewHandler) writeInterviewError(w http.ResponseWriter, err error) {
	var recognitionErr *speech.RecognitionError

	switch {
	case errors.Is(err, interview.ErrUnauthorized):
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "unauthorized",
			Message: "You are not authorized to access this interview session",
		})
	case errors.Is(err, interview.ErrTemplateNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "template_not_found",
			Message: "Interview template not found",
		})
	case errors.Is(err, interview.ErrInvalidTemplate):
		utils.JSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Code:    "invalid_template",
			Message: "This interview template is invalid (no questions found)",
		})
	case errors.Is(err, interview.ErrSessionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Interview session not found",
		})
	case errors.Is(err, interview.ErrSessionCompleted):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "session_completed",
			Message: "Interview is already completed",
		})
	case errors.As(err, &recognitionErr):
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "speech_recognition_failed",
			Message: "Speech recognition failed. Please try again",
		})
	default:
		h.logger.Error("Interview operation failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to process request",
		})
	}
}
