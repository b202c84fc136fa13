package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"voicehire/internal/models"
)

var parseJWT = func(tokenStr string, keyFunc jwt.Keyfunc) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, keyFunc)
}

var (
	ErrMissingAuthHeader = errors.New("missing or malformed Authorization header")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidClaims     = errors.New("invalid token claims")
)

// SignActorToken issues an HS256 access token carrying the actor identity.
func SignActorToken(actor models.Actor, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   actor.ID,
		"email": actor.Email,
		"role":  string(actor.Role),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken fetches the Authorization header, validates the JWT,
// and returns the claims if everything is valid.
func VerifyToken(r *http.Request, secret string) (jwt.MapClaims, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return nil, ErrMissingAuthHeader
	}
	tokenStr := strings.TrimPrefix(authz, "Bearer ")

	token, err := parseJWT(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// ActorFromClaims rebuilds the actor identity from verified claims.
func ActorFromClaims(claims jwt.MapClaims) (models.Actor, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return models.Actor{}, errors.New("missing sub claim")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return models.Actor{
		ID:    sub,
		Email: NormalizeEmail(email),
		Role:  models.Role(role),
	}, nil
}
