package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"voicehire/internal/llm"
	"voicehire/internal/middleware"
	"voicehire/internal/models"
	"voicehire/internal/prompts"
	"voicehire/internal/repositories"
	"voicehire/internal/utils"
)

// TemplateRepo is the template storage the catalog handlers need.
type TemplateRepo interface {
	Create(ctx context.Context, t *models.InterviewTemplate) (*models.InterviewTemplate, error)
	FindByID(ctx context.Context, id string) (*models.InterviewTemplate, error)
	FindByTitle(ctx context.Context, title string) (*models.InterviewTemplate, error)
	ListVisible(ctx context.Context, userID string) ([]models.InterviewTemplate, error)
	ListByOwner(ctx context.Context, userID string) ([]models.InterviewTemplate, error)
	SetPublic(ctx context.Context, id string, public bool) (*models.InterviewTemplate, error)
	Delete(ctx context.Context, id string) error
}

// TemplateHandler manages the interview template catalog, including
// AI-generated templates built from a job description.
type TemplateHandler struct {
	repo     TemplateRepo
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewTemplateHandler(repo TemplateRepo, provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		repo:     repo,
		provider: provider,
		prompts:  promptManager,
		logger:   logger,
	}
}

// generatedQuestions is the strict JSON shape requested from the provider.
type generatedQuestions struct {
	Questions []string `json:"questions"`
}

func (h *TemplateHandler) CreateFromJDHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	if !actor.CanRecruit() {
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "forbidden",
			Message: "Not authorized",
		})
		return
	}

	req := middleware.GetValidatedRequest[*models.CreateTemplateRequest](r)

	system, user, err := h.prompts.Build("questions", map[string]string{
		"JobDescription": req.JobDescription,
	})
	if err != nil {
		h.logger.Error("Failed to build question prompt", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "prompt_error",
			Message: "Failed to build AI prompt",
		})
		return
	}

	raw, err := h.provider.GenerateText(r.Context(), system, user, &llm.GenerateOptions{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		h.logger.Error("Question generation provider error", zap.Error(err))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "ai_error",
			Message: "AI failed to generate questions",
		})
		return
	}

	var generated generatedQuestions
	if err := json.Unmarshal([]byte(utils.CleanJSONString(raw)), &generated); err != nil || len(generated.Questions) == 0 {
		h.logger.Error("Failed to parse generated questions", zap.Error(err), zap.String("raw", raw))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "ai_error",
			Message: "AI failed to generate questions",
		})
		return
	}

	template, err := h.repo.Create(r.Context(), &models.InterviewTemplate{
		Title:         req.Title,
		Description:   req.JobDescription,
		CreatedBy:     actor.ID,
		IsPublic:      false,
		IsAIGenerated: true,
		Questions:     generated.Questions,
	})
	if err != nil {
		h.logger.Error("Failed to store template", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create template",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, models.TemplateResponse{Template: template})
}

// ListHandler returns the templates the caller may browse: public ones
// plus their own.
func (h *TemplateHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	templates, err := h.repo.ListVisible(r.Context(), actor.ID)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch templates",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.TemplatesResponse{Total: len(templates), Items: templates})
}

// ListMineHandler returns the templates the recruiter has authored.
func (h *TemplateHandler) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	if !actor.CanRecruit() {
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "forbidden",
			Message: "Not authorized",
		})
		return
	}

	templates, err := h.repo.ListByOwner(r.Context(), actor.ID)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch templates",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.TemplatesResponse{Total: len(templates), Items: templates})
}

func (h *TemplateHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	id := chi.URLParam(r, "templateID")

	template, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "template_not_found",
				Message: "Interview template not found",
			})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch template",
		})
		return
	}

	if !template.IsPublic && !template.OwnedBy(actor.ID) && !actor.IsAdmin() {
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "forbidden",
			Message: "Not authorized",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.TemplateResponse{Template: template})
}

// PublishHandler toggles template visibility between public and private.
func (h *TemplateHandler) PublishHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	id := chi.URLParam(r, "templateID")

	template, ok := h.loadOwned(w, r, id, actor)
	if !ok {
		return
	}

	updated, err := h.repo.SetPublic(r.Context(), id, !template.IsPublic)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to update template",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.TemplateResponse{Template: updated})
}

func (h *TemplateHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	id := chi.URLParam(r, "templateID")

	if _, ok := h.loadOwned(w, r, id, actor); !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to delete template",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches a template and enforces recruiter ownership. Writes
// the error response itself when the check fails.
func (h *TemplateHandler) loadOwned(w http.ResponseWriter, r *http.Request, id string, actor models.Actor) (*models.InterviewTemplate, bool) {
	if !actor.CanRecruit() {
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "forbidden",
			Message: "Not authorized",
		})
		return nil, false
	}

	template, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "template_not_found",
				Message: "Interview template not found",
			})
			return nil, false
		}
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch template",
		})
		return nil, false
	}

	if template.CreatedBy != "" && !template.OwnedBy(actor.ID) && !actor.IsAdmin() {
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "forbidden",
			Message: "You do not own this template",
		})
		return nil, false
	}

	return template, true
}

// SeedHandler creates the built-in public practice templates. Idempotent;
// admin only.
func (h *TemplateHandler) SeedHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	if !actor.IsAdmin() {
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "forbidden",
			Message: "Not authorized",
		})
		return
	}

	created := 0
	for _, seed := range seedTemplates() {
		if _, err := h.repo.FindByTitle(r.Context(), seed.Title); err == nil {
			continue
		}
		if _, err := h.repo.Create(r.Context(), &seed); err != nil {
			h.logger.Error("Failed to seed template", zap.Error(err), zap.String("title", seed.Title))
			utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Code:    "internal_error",
				Message: "Failed to seed templates",
			})
			return
		}
		created++
	}

	utils.JSON(w, http.StatusOK, map[string]int{"created": created})
}

func seedTemplates() []models.InterviewTemplate {
	return []models.InterviewTemplate{
		{
			Title:       "Frontend Developer Practice",
			Description: "General practice interview for frontend roles.",
			IsPublic:    true,
			Questions: []string{
				"Tell me about yourself and your experience with frontend development.",
				"How do you decide between client-side and server-side rendering for a page?",
				"Describe a time you improved the performance of a web application.",
				"How do you keep a large component codebase maintainable?",
				"Where do you see your frontend skills growing over the next two years?",
			},
		},
		{
			Title:       "Behavioral Interview Practice",
			Description: "General behavioral practice interview for any role.",
			IsPublic:    true,
			Questions: []string{
				"Walk me through a project you are proud of and your role in it.",
				"Tell me about a time you disagreed with a teammate. How did you resolve it?",
				"Describe a situation where you had to deliver under a tight deadline.",
				"Tell me about a mistake you made at work and what you learned from it.",
				"Why are you interested in this role?",
			},
		},
	}
}
