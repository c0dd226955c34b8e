package models

import "time"

// Tag names are unique case-insensitively and normalized to lowercase on
// creation. QuestionCount is a denormalized counter kept in step with
// question creation and removal.
type Tag struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	QuestionCount int       `json:"question_count"`
	Color         string    `json:"color"`
	CreatedAt     time.Time `json:"created_at"`
}
