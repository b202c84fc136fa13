package middleware

import (
	"context"
	"net/http"

	"voicehire/internal/models"
	"voicehire/internal/utils"
)

const actorKey contextKey = "actor"

// RequireActor verifies the Bearer token and stores the resolved actor in
// the request context. Core operations always receive the actor as an
// explicit parameter; this middleware is the only place identity is read
// from ambient request state.
func RequireActor(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, jwtSecret)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "unauthorized",
					Message: "Unauthorized. Please log in.",
				})
				return
			}

			actor, err := utils.ActorFromClaims(claims)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "unauthorized",
					Message: "Unauthorized. Please log in.",
				})
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetActor retrieves the authenticated actor from context.
func GetActor(r *http.Request) models.Actor {
	actor, _ := r.Context().Value(actorKey).(models.Actor)
	return actor
}
