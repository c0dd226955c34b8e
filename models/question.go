package models

import "time"

// Question.Author is a snapshot of the asking user taken at creation
// time, not a live reference; later reputation or role changes do not
// rewrite old questions.
type Question struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	ContentHTML      string    `json:"content_html,omitempty"`
	Author           User      `json:"author"`
	Tags             []Tag     `json:"tags"`
	Votes            int       `json:"votes"`
	Views            int       `json:"views"`
	AnswerCount      int       `json:"answer_count"`
	AcceptedAnswerID string    `json:"accepted_answer_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Viewer-scoped, filled in per request and never stored on the
	// shared record. Backed by the votes and bookmarks collections.
	UserVote     VoteState `json:"user_vote"`
	IsBookmarked bool      `json:"is_bookmarked"`
}

type QuestionFilter string

const (
	FilterNewest     QuestionFilter = "newest"
	FilterHot        QuestionFilter = "hot"
	FilterTrending   QuestionFilter = "trending"
	FilterUnanswered QuestionFilter = "unanswered"
)

// HotScore is the ranking value behind the "hot" sort.
func (q *Question) HotScore() float64 {
	return float64(q.Votes)*2 + float64(q.Views)*0.1 + float64(q.AnswerCount)*3
}

// TrendingScore is the ranking value behind the "trending" sort.
func (q *Question) TrendingScore() int {
	return q.Votes + q.Views
}
