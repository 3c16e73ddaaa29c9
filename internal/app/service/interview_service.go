package service

import (
	"context"
	"log"

	"interview_quiz/internal/common"
	"interview_quiz/internal/domain/model"
	"interview_quiz/internal/domain/repository"
	"interview_quiz/internal/platform/metrics"

	"github.com/google/uuid"
)

type InterviewService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	metrics      *metrics.Collector
}

func NewInterviewService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	collector *metrics.Collector,
) *InterviewService {
	return &InterviewService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		metrics:      collector,
	}
}

type SubmitRequest struct {
	UserID   string   `json:"userId"`
	UserName string   `json:"userName"`
	Answers  []string `json:"answers"`
}

type SubmitResponse struct {
	Results []model.AnswerResult `json:"results"`
	Score   int                  `json:"score"`
	Total   int                  `json:"total"`
}

// GetQuestions returns the catalog with correct answers withheld.
func (s *InterviewService) GetQuestions(ctx context.Context) ([]model.PublicQuestion, error) {
	questions, err := s.questionRepo.ListQuestions(ctx)
	if err != nil {
		return nil, common.Errorf("failed to fetch questions: %w", err)
	}

	public := make([]model.PublicQuestion, 0, len(questions))
	for i := range questions {
		public = append(public, questions[i].Public())
	}
	return public, nil
}

// Submit grades a full answer set against the catalog and persists one
// immutable Result row. The answers are matched to questions by index, so
// the count must equal the question count exactly; there is no partial
// credit and no best-effort grading of a short or long answer list.
func (s *InterviewService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	if req.UserID == "" {
		return nil, common.Errorf("User ID is required: %w", common.ErrValidation)
	}
	if req.UserName == "" {
		return nil, common.Errorf("User name is required: %w", common.ErrValidation)
	}
	if req.Answers == nil {
		return nil, common.Errorf("Answers must be an array: %w", common.ErrValidation)
	}

	questions, err := s.questionRepo.ListQuestions(ctx)
	if err != nil {
		return nil, common.Errorf("failed to fetch questions: %w", err)
	}

	if len(req.Answers) != len(questions) {
		return nil, common.Errorf("expected %d answers, received %d: %w",
			len(questions), len(req.Answers), common.ErrValidation)
	}

	score := 0
	results := make([]model.AnswerResult, 0, len(req.Answers))
	for i, answer := range req.Answers {
		// Exact, case-sensitive string equality. No normalization.
		isCorrect := answer == questions[i].CorrectAnswer
		if isCorrect {
			score++
		}
		results = append(results, model.AnswerResult{
			QuestionID:     questions[i].ID,
			SelectedAnswer: answer,
			CorrectAnswer:  questions[i].CorrectAnswer,
			IsCorrect:      isCorrect,
		})
	}

	result := &model.Result{
		ID:       uuid.NewString(),
		UserID:   req.UserID,
		UserName: req.UserName,
		Score:    score,
		Total:    len(questions),
		Answers:  results,
	}
	if err := s.resultRepo.CreateResult(ctx, result); err != nil {
		return nil, common.Errorf("failed to save result: %w", err)
	}

	s.metrics.RecordSubmission(score, len(questions))
	log.Printf("Interview submitted by %s: score %d/%d", req.UserID, score, len(questions))

	return &SubmitResponse{Results: results, Score: score, Total: len(questions)}, nil
}

// ResultsForUser returns the caller's past results, newest first.
func (s *InterviewService) ResultsForUser(ctx context.Context, userID string) ([]model.Result, error) {
	results, err := s.resultRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to fetch results: %w", err)
	}
	return results, nil
}

// AllResults returns every stored result, newest first. Admin only.
func (s *InterviewService) AllResults(ctx context.Context) ([]model.Result, error) {
	results, err := s.resultRepo.ListAll(ctx)
	if err != nil {
		return nil, common.Errorf("failed to fetch results: %w", err)
	}
	return results, nil
}
