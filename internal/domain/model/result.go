package model

import "time"

// AnswerResult is one graded answer inside a Result. The JSON field names are
// the wire format stored in the answers column and returned to the client.
type AnswerResult struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// Result is one completed, scored submission of the full question set.
// Write-once: there is no update or delete path.
type Result struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	UserName  string         `json:"user_name"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Answers   []AnswerResult `json:"answers"`
	CreatedAt time.Time      `json:"created_at"`
}
