package services

import (
	"fmt"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/repositories"
)

// ApplyVote is the three-state transition behind every vote click.
// Requesting the current direction again toggles it off; switching
// direction undoes the old effect and applies the new one in one step.
func ApplyVote(current, requested models.VoteState) (models.VoteState, int) {
	if requested == current {
		if current == models.VoteUp {
			return models.VoteNone, -1
		}
		return models.VoteNone, +1
	}

	delta := 0
	switch current {
	case models.VoteUp:
		delta--
	case models.VoteDown:
		delta++
	}
	if requested == models.VoteUp {
		delta++
	} else {
		delta--
	}
	return requested, delta
}

type VoteService interface {
	Vote(subject models.SubjectType, subjectID, voterID string, direction models.VoteState) (*models.VoteResult, error)
}

type voteService struct {
	questionRepo     repositories.QuestionRepository
	answerRepo       repositories.AnswerRepository
	voteRepo         repositories.VoteRepository
	notificationRepo repositories.NotificationRepository
}

func NewVoteService(
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	voteRepo repositories.VoteRepository,
	notificationRepo repositories.NotificationRepository,
) VoteService {
	return &voteService{
		questionRepo:     questionRepo,
		answerRepo:       answerRepo,
		voteRepo:         voteRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *voteService) Vote(subject models.SubjectType, subjectID, voterID string, direction models.VoteState) (*models.VoteResult, error) {
	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, models.ErrorValidation{Fields: map[string]string{"direction": "Direction must be up or down"}}
	}

	current := s.voteRepo.Get(subject, subjectID, voterID)
	next, delta := ApplyVote(current, direction)

	var votes int
	var authorID string
	var subjectTitle string
	var actionURL string

	switch subject {
	case models.SubjectQuestion:
		question, err := s.questionRepo.GetByID(subjectID)
		if err != nil {
			return nil, err
		}
		question.Votes += delta
		if err := s.questionRepo.Update(question); err != nil {
			return nil, err
		}
		votes = question.Votes
		authorID = question.Author.ID
		subjectTitle = question.Title
		actionURL = "/questions/" + question.ID
	case models.SubjectAnswer:
		answer, err := s.answerRepo.GetByID(subjectID)
		if err != nil {
			return nil, err
		}
		answer.Votes += delta
		if err := s.answerRepo.Update(answer); err != nil {
			return nil, err
		}
		votes = answer.Votes
		authorID = answer.Author.ID
		actionURL = "/questions/" + answer.QuestionID
	default:
		return nil, models.ErrorValidation{Fields: map[string]string{"subject": "Unknown vote subject"}}
	}

	// The counter above and the vote record below are two collection
	// writes backing one logical update; with a single writer no request
	// observes the gap between them.
	if err := s.voteRepo.Set(models.VoteRecord{
		SubjectType: subject,
		SubjectID:   subjectID,
		VoterID:     voterID,
		State:       next,
	}); err != nil {
		return nil, err
	}

	// Upvote transitions notify the content author. Toggles back to none
	// and downvotes stay quiet, and nobody is notified about their own
	// vote.
	if next == models.VoteUp && authorID != voterID {
		message := "Someone upvoted your answer"
		if subject == models.SubjectQuestion {
			message = fmt.Sprintf("Someone upvoted your question %q", subjectTitle)
		}
		notification := &models.Notification{
			ID:        newNotificationID(),
			UserID:    authorID,
			Type:      models.NotificationVote,
			Title:     "New upvote",
			Message:   message,
			RelatedID: subjectID,
			ActionURL: actionURL,
			CreatedAt: timeNow(),
		}
		if err := s.notificationRepo.Create(notification); err != nil {
			return nil, err
		}
	}

	return &models.VoteResult{Votes: votes, UserVote: next}, nil
}
