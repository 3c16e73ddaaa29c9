package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"interview_quiz/internal/api/middleware"
	"interview_quiz/internal/app/service"
	"interview_quiz/internal/common"
	"interview_quiz/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

// AuthService is the narrow service surface this handler requires; tests
// substitute a mock.
type AuthService interface {
	Signup(ctx context.Context, req service.SignupRequest) (*service.SignupResponse, error)
	Login(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)

	r.Group(func(authed chi.Router) {
		authed.Use(middleware.Authenticator)
		authed.Post("/logout", h.logout)
	})
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to create user")
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to log in")
		return
	}

	// Browser clients carry the session in the jwt cookie; the verifier
	// accepts it from there as well as the Authorization header.
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    resp.Token,
		Path:     "/",
		Expires:  time.Now().Add(config.AppConfig.JWTExp),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	expiry, ok := middleware.GetTokenExpiryFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.authService.Logout(r.Context(), tokenID, expiry); err != nil {
		common.RespondWithServiceError(w, err, "Failed to log out")
		return
	}

	if userName, ok := middleware.GetUserNameFromContext(r.Context()); ok {
		log.Printf("User %q logged out", userName)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
