package models

import "time"

type Answer struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	Author      User      `json:"author"`
	QuestionID  string    `json:"question_id"`
	Votes       int       `json:"votes"`
	IsAccepted  bool      `json:"is_accepted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Viewer-scoped, filled in per request.
	UserVote VoteState `json:"user_vote"`
}
