package handler

import (
	"context"
	"net/http"

	"interview_quiz/internal/api/middleware"
	"interview_quiz/internal/common"
	"interview_quiz/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ResultService interface {
	ResultsForUser(ctx context.Context, userID string) ([]model.Result, error)
	AllResults(ctx context.Context) ([]model.Result, error)
}

type ResultHandler struct {
	resultService ResultService
}

func NewResultHandler(rs ResultService) *ResultHandler {
	return &ResultHandler{resultService: rs}
}

func (h *ResultHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Get("/me", h.myResults) // GET /api/v1/results/me

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Get("/", h.listResults) // GET /api/v1/results
	})
}

func (h *ResultHandler) myResults(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	results, err := h.resultService.ResultsForUser(r.Context(), userID)
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to fetch results")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, results)
}

func (h *ResultHandler) listResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.AllResults(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to fetch results")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, results)
}
