package service

import (
	"context"

	"interview_quiz/internal/common"
	"interview_quiz/internal/domain/model"
	"interview_quiz/internal/domain/repository"
	"interview_quiz/internal/platform/metrics"

	"github.com/google/uuid"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
	metrics      *metrics.Collector
}

func NewQuestionService(questionRepo repository.QuestionRepository, collector *metrics.Collector) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, metrics: collector}
}

type AddQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type AddQuestionResponse struct {
	ID string `json:"id"`
}

// AddQuestion persists a new question. Whether correctAnswer appears among
// the options, or the options are non-empty, is deliberately not checked;
// callers must not rely on either being enforced.
func (s *QuestionService) AddQuestion(ctx context.Context, req AddQuestionRequest) (*AddQuestionResponse, error) {
	if req.Options == nil {
		return nil, common.Errorf("options must be an array: %w", common.ErrValidation)
	}

	question := &model.Question{
		ID:            uuid.NewString(),
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}

	if err := s.questionRepo.CreateQuestion(ctx, question); err != nil {
		return nil, common.Errorf("failed to add question: %w", err)
	}

	s.metrics.RecordQuestionCreated()
	return &AddQuestionResponse{ID: question.ID}, nil
}

// ListQuestions returns the full catalog including correct answers. Access
// control lives in the admin route group, not here.
func (s *QuestionService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	questions, err := s.questionRepo.ListQuestions(ctx)
	if err != nil {
		return nil, common.Errorf("failed to fetch questions: %w", err)
	}
	return questions, nil
}
