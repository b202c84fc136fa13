package routers

import (
	"voicehire/internal/handlers"
	"voicehire/internal/middleware"
	"voicehire/internal/models"

	"github.com/go-chi/chi/v5"
)

func TemplateRoutes(router *chi.Mux, templateHandler *handlers.TemplateHandler, jwtSecret string) {
	router.Route("/api/v1/templates", func(r chi.Router) {
		r.Use(middleware.RequireActor(jwtSecret))

		r.Get("/", templateHandler.ListHandler)
		r.Get("/mine", templateHandler.ListMineHandler)
		r.Get("/{templateID}", templateHandler.GetHandler)
		r.With(middleware.ValidateRequest[*models.CreateTemplateRequest]()).Post("/", templateHandler.CreateFromJDHandler)
		r.Post("/{templateID}/publish", templateHandler.PublishHandler)
		r.Delete("/{templateID}", templateHandler.DeleteHandler)
		r.Post("/seed", templateHandler.SeedHandler)
	})
}
