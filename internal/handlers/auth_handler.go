package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"voicehire/internal/middleware"
	"voicehire/internal/models"
	"voicehire/internal/repositories"
	"voicehire/internal/utils"
)

const accessTokenTTL = 24 * time.Hour

// UserRepo is the account storage the auth handler needs.
type UserRepo interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// TokenStore issues and rotates opaque refresh tokens.
type TokenStore interface {
	Issue(ctx context.Context, userID string) (string, error)
	Rotate(ctx context.Context, token string) (string, string, error)
	Revoke(ctx context.Context, token string) error
}

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	users     UserRepo
	tokens    TokenStore
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthHandler(users UserRepo, tokens TokenStore, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:     users,
		tokens:    tokens,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SignupRequest](r)

	if existing, _ := h.users.FindByEmail(r.Context(), req.Email); existing != nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "email_taken",
			Message: "User with this email already exists",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create account",
		})
		return
	}

	user, err := h.users.Create(r.Context(), &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		h.logger.Error("Failed to create user", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create account",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, models.AuthResponse{User: user})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LoginRequest](r)

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "invalid_credentials",
			Message: "Invalid email or password",
		})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "invalid_credentials",
			Message: "Invalid email or password",
		})
		return
	}

	access, err := utils.SignActorToken(user.AsActor(), h.jwtSecret, accessTokenTTL)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to sign token",
		})
		return
	}

	refresh, err := h.tokens.Issue(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to issue refresh token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to issue token",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.AuthResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         user,
	})
}

func (h *AuthHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RefreshRequest](r)

	next, userID, err := h.tokens.Rotate(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
				Code:    "invalid_refresh_token",
				Message: "Refresh token is expired or revoked",
			})
			return
		}
		h.logger.Error("Failed to rotate refresh token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to refresh token",
		})
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "invalid_refresh_token",
			Message: "Account no longer exists",
		})
		return
	}

	access, err := utils.SignActorToken(user.AsActor(), h.jwtSecret, accessTokenTTL)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to sign token",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.AuthResponse{
		Token:        access,
		RefreshToken: next,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RefreshRequest](r)
	_ = h.tokens.Revoke(r.Context(), req.RefreshToken)
	w.WriteHeader(http.StatusNoContent)
}
