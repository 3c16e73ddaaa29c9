package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"interview_quiz/internal/domain/model"
)

type QuestionRepository interface {
	CreateQuestion(ctx context.Context, q *model.Question) error
	ListQuestions(ctx context.Context) ([]model.Question, error)
}

type pgQuestionRepository struct {
	db *sql.DB
}

func NewPgQuestionRepository(db *sql.DB) QuestionRepository {
	return &pgQuestionRepository{db: db}
}

func (r *pgQuestionRepository) CreateQuestion(ctx context.Context, q *model.Question) error {
	options, err := model.EncodeOptions(q.Options)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.CreateQuestion encode options: %w", err)
	}

	query := `INSERT INTO questions (id, question, options, correct_answer)
	          VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, q.ID, q.Question, options, q.CorrectAnswer); err != nil {
		return fmt.Errorf("pgQuestionRepository.CreateQuestion: %w", err)
	}
	return nil
}

// ListQuestions returns the full catalog in creation order. The interview
// flow matches submitted answers to questions by index, so the order has to
// be the same on every fetch.
func (r *pgQuestionRepository) ListQuestions(ctx context.Context) ([]model.Question, error) {
	query := `SELECT id, question, options, correct_answer, created_at
	          FROM questions ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.ListQuestions query: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		var rawOptions string
		if err := rows.Scan(&q.ID, &q.Question, &rawOptions, &q.CorrectAnswer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.ListQuestions scan: %w", err)
		}
		options, ok := model.DecodeOptions(rawOptions)
		if !ok {
			// A malformed row degrades to empty options rather than
			// failing the whole listing.
			log.Printf("Failed to parse options for question %s: %q", q.ID, rawOptions)
		}
		q.Options = options
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.ListQuestions rows.Err: %w", err)
	}

	return questions, nil
}
