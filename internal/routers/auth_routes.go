package routers

import (
	"voicehire/internal/handlers"
	"voicehire/internal/middleware"
	"voicehire/internal/models"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(router *chi.Mux, authHandler *handlers.AuthHandler) {
	router.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.SignupRequest]()).Post("/signup", authHandler.SignupHandler)
		r.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", authHandler.LoginHandler)
		r.With(middleware.ValidateRequest[*models.RefreshRequest]()).Post("/refresh", authHandler.RefreshHandler)
		r.With(middleware.ValidateRequest[*models.RefreshRequest]()).Post("/logout", authHandler.LogoutHandler)
	})
}
