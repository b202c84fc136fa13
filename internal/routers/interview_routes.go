package routers

import (
	"voicehire/internal/handlers"
	"voicehire/internal/middleware"
	"voicehire/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, jwtSecret string) {
	router.Route("/api/v1/interviews", func(r chi.Router) {
		r.Use(middleware.RequireActor(jwtSecret))

		r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/", interviewHandler.StartHandler)
		r.With(middleware.ValidateRequest[*models.StartInviteRequest]()).Post("/invite", interviewHandler.StartInviteHandler)
		r.With(middleware.ValidateRequest[*models.TurnRequest]()).Post("/{sessionID}/turn", interviewHandler.TurnHandler)
		r.Post("/{sessionID}/finish", interviewHandler.FinishHandler)
		r.Get("/{sessionID}", interviewHandler.GetSessionHandler)
		r.With(middleware.ValidateRequest[*models.SynthesizeRequest]()).Post("/tts", interviewHandler.SynthesizeHandler)
	})
}
