package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"voicehire/internal/middleware"
	"voicehire/internal/models"
	"voicehire/internal/repositories"
)

const testJWTSecret = "handler-test-secret"

type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) add(t *testing.T, email, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := f.Create(context.Background(), &models.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

type fakeTokenStore struct {
	tokens map[string]string
	nextID int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (f *fakeTokenStore) Issue(_ context.Context, userID string) (string, error) {
	f.nextID++
	token := fmt.Sprintf("refresh-%d", f.nextID)
	f.tokens[token] = userID
	return token, nil
}

func (f *fakeTokenStore) Rotate(ctx context.Context, token string) (string, string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", "", repositories.ErrNotFound
	}
	delete(f.tokens, token)
	next, _ := f.Issue(ctx, userID)
	return next, userID, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func newAuthRouter(users *fakeUserRepo, tokens *fakeTokenStore) *chi.Mux {
	h := NewAuthHandler(users, tokens, testJWTSecret, zap.NewNop())
	router := chi.NewRouter()
	router.With(middleware.ValidateRequest[*models.SignupRequest]()).Post("/signup", h.SignupHandler)
	router.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", h.LoginHandler)
	router.With(middleware.ValidateRequest[*models.RefreshRequest]()).Post("/refresh", h.RefreshHandler)
	router.With(middleware.ValidateRequest[*models.RefreshRequest]()).Post("/logout", h.LogoutHandler)
	return router
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	r := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSignup_CreatesAccount(t *testing.T) {
	router := newAuthRouter(newFakeUserRepo(), newFakeTokenStore())

	w := postJSON(t, router, "/signup", map[string]any{
		"email":    "New@Example.com",
		"password": "longenough",
		"name":     "New User",
		"role":     "CANDIDATE",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, models.RoleCandidate, resp.User.Role)
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "taken@example.com", "password1", models.RoleCandidate)
	router := newAuthRouter(users, newFakeTokenStore())

	w := postJSON(t, router, "/signup", map[string]any{
		"email":    "taken@example.com",
		"password": "longenough",
		"name":     "Dup",
		"role":     "CANDIDATE",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_taken", decodeError(t, w).Code)
}

func TestSignup_RejectsAdminRole(t *testing.T) {
	router := newAuthRouter(newFakeUserRepo(), newFakeTokenStore())

	w := postJSON(t, router, "/signup", map[string]any{
		"email":    "a@b.com",
		"password": "longenough",
		"name":     "Eve",
		"role":     "ADMIN",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_role", decodeError(t, w).Code)
}

func TestLogin_ReturnsTokenPair(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "cand@b.com", "password1", models.RoleCandidate)
	router := newAuthRouter(users, newFakeTokenStore())

	w := postJSON(t, router, "/login", map[string]any{
		"email":    "cand@b.com",
		"password": "password1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	users.add(t, "cand@b.com", "password1", models.RoleCandidate)
	router := newAuthRouter(users, newFakeTokenStore())

	w := postJSON(t, router, "/login", map[string]any{
		"email":    "cand@b.com",
		"password": "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeError(t, w).Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	router := newAuthRouter(newFakeUserRepo(), newFakeTokenStore())

	w := postJSON(t, router, "/login", map[string]any{
		"email":    "nobody@b.com",
		"password": "password1",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeError(t, w).Code)
}

func TestRefresh_RotatesToken(t *testing.T) {
	users := newFakeUserRepo()
	user := users.add(t, "cand@b.com", "password1", models.RoleCandidate)
	tokens := newFakeTokenStore()
	old, err := tokens.Issue(context.Background(), user.ID)
	require.NoError(t, err)
	router := newAuthRouter(users, tokens)

	w := postJSON(t, router, "/refresh", map[string]any{"refresh_token": old})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, old, resp.RefreshToken)

	// The rotated-out token is no longer accepted.
	w = postJSON(t, router, "/refresh", map[string]any{"refresh_token": old})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_refresh_token", decodeError(t, w).Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	users := newFakeUserRepo()
	user := users.add(t, "cand@b.com", "password1", models.RoleCandidate)
	tokens := newFakeTokenStore()
	token, err := tokens.Issue(context.Background(), user.ID)
	require.NoError(t, err)
	router := newAuthRouter(users, tokens)

	w := postJSON(t, router, "/logout", map[string]any{"refresh_token": token})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = postJSON(t, router, "/refresh", map[string]any{"refresh_token": token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
