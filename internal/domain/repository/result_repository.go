package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"interview_quiz/internal/domain/model"
)

type ResultRepository interface {
	CreateResult(ctx context.Context, result *model.Result) error
	ListByUserID(ctx context.Context, userID string) ([]model.Result, error)
	ListAll(ctx context.Context) ([]model.Result, error)
}

type pgResultRepository struct {
	db *sql.DB
}

func NewPgResultRepository(db *sql.DB) ResultRepository {
	return &pgResultRepository{db: db}
}

func (r *pgResultRepository) CreateResult(ctx context.Context, result *model.Result) error {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("pgResultRepository.CreateResult encode answers: %w", err)
	}

	query := `INSERT INTO results (id, user_id, user_name, score, total, answers)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.db.ExecContext(ctx, query,
		result.ID, result.UserID, result.UserName, result.Score, result.Total, string(answers))
	if err != nil {
		return fmt.Errorf("pgResultRepository.CreateResult: %w", err)
	}
	return nil
}

func (r *pgResultRepository) ListByUserID(ctx context.Context, userID string) ([]model.Result, error) {
	query := `SELECT id, user_id, user_name, score, total, answers, created_at
	          FROM results WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgResultRepository.ListByUserID query: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

func (r *pgResultRepository) ListAll(ctx context.Context) ([]model.Result, error) {
	query := `SELECT id, user_id, user_name, score, total, answers, created_at
	          FROM results ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgResultRepository.ListAll query: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]model.Result, error) {
	results := []model.Result{}
	for rows.Next() {
		var res model.Result
		var rawAnswers string
		if err := rows.Scan(&res.ID, &res.UserID, &res.UserName, &res.Score, &res.Total, &rawAnswers, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanResults scan: %w", err)
		}
		if err := json.Unmarshal([]byte(rawAnswers), &res.Answers); err != nil {
			// Same degradation rule as question options: one bad row
			// must not fail the listing.
			log.Printf("Failed to parse answers for result %s: %v", res.ID, err)
			res.Answers = []model.AnswerResult{}
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanResults rows.Err: %w", err)
	}
	return results, nil
}
