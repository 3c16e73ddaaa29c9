package model

import (
	"encoding/json"
	"time"
)

type Question struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicQuestion is the test-taker view. The correct answer is withheld.
type PublicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
	}
}

// EncodeOptions serializes the option list to the JSON-text column format.
func EncodeOptions(options []string) (string, error) {
	raw, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeOptions parses the stored JSON-text option list. A row whose options
// fail to parse is degraded to an empty list instead of failing the caller;
// the ok result tells the caller whether the stored text was valid.
func DecodeOptions(raw string) ([]string, bool) {
	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return []string{}, false
	}
	if options == nil {
		options = []string{}
	}
	return options, true
}
