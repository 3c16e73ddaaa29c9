package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"interview_quiz/internal/api/middleware"
	"interview_quiz/internal/app/service"
	"interview_quiz/internal/common"
	"interview_quiz/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type QuestionService interface {
	AddQuestion(ctx context.Context, req service.AddQuestionRequest) (*service.AddQuestionResponse, error)
	ListQuestions(ctx context.Context) ([]model.Question, error)
}

type QuestionHandler struct {
	questionService QuestionService
}

func NewQuestionHandler(qs QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: qs}
}

// RegisterRoutes mounts the question bank routes. The whole group, reads
// included, is admin only; test-takers get their view from the interview
// routes instead.
func (h *QuestionHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Use(middleware.AdminOnly)
	r.Get("/", h.listQuestions)   // GET /api/v1/questions
	r.Post("/", h.createQuestion) // POST /api/v1/questions
}

func (h *QuestionHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.ListQuestions(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to fetch questions")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, questions)
}

func (h *QuestionHandler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req service.AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.questionService.AddQuestion(r.Context(), req)
	if err != nil {
		common.RespondWithServiceError(w, err, "Failed to add question")
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}
