package models

type VoteState string

const (
	VoteNone VoteState = ""
	VoteUp   VoteState = "up"
	VoteDown VoteState = "down"
)

type SubjectType string

const (
	SubjectQuestion SubjectType = "question"
	SubjectAnswer   SubjectType = "answer"
)

// VoteRecord keys a voter's current state against a single subject. The
// source collapsed this onto the shared record, which only works for one
// browser; here it is the multi-user form.
type VoteRecord struct {
	SubjectType SubjectType `json:"subject_type"`
	SubjectID   string      `json:"subject_id"`
	VoterID     string      `json:"voter_id"`
	State       VoteState   `json:"state"`
}

type Bookmark struct {
	QuestionID string `json:"question_id"`
	UserID     string `json:"user_id"`
}
