package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"interview_quiz/internal/app/service"
	"interview_quiz/internal/common"
	"interview_quiz/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type InterviewService interface {
	GetQuestions(ctx context.Context) ([]model.PublicQuestion, error)
	Submit(ctx context.Context, req service.SubmitRequest) (*service.SubmitResponse, error)
}

type InterviewHandler struct {
	interviewService InterviewService
}

func NewInterviewHandler(is InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: is}
}

func (h *InterviewHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getQuestions) // GET /api/v1/interview
	r.Post("/", h.submit)      // POST /api/v1/interview
}

func (h *InterviewHandler) getQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.interviewService.GetQuestions(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to fetch questions")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, questions)
}

func (h *InterviewHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.interviewService.Submit(r.Context(), req)
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to process interview")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
