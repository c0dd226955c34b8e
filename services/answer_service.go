package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/repositories"
)

type AnswerService interface {
	CreateAnswer(questionID string, req models.CreateAnswerRequest, authorID string) (*models.Answer, error)
	AcceptAnswer(questionID, answerID, requesterID string) (*models.Answer, error)
}

type answerService struct {
	questionRepo     repositories.QuestionRepository
	answerRepo       repositories.AnswerRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewAnswerService(
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) AnswerService {
	return &answerService{
		questionRepo:     questionRepo,
		answerRepo:       answerRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *answerService) CreateAnswer(questionID string, req models.CreateAnswerRequest, authorID string) (*models.Answer, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, models.ErrorValidation{Fields: map[string]string{"content": "Answer content is required"}}
	}

	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	authorSnapshot := *author
	authorSnapshot.Password = ""

	now := time.Now()
	answer := &models.Answer{
		ID:         helper.NewID("a"),
		Content:    req.Content,
		Author:     authorSnapshot,
		QuestionID: questionID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	question.AnswerCount++
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}

	if question.Author.ID != authorID {
		notification := &models.Notification{
			ID:        newNotificationID(),
			UserID:    question.Author.ID,
			Type:      models.NotificationAnswer,
			Title:     "New answer",
			Message:   fmt.Sprintf("%s answered your question %q", authorSnapshot.Username, question.Title),
			RelatedID: questionID,
			ActionURL: "/questions/" + questionID,
			CreatedAt: now,
		}
		if err := s.notificationRepo.Create(notification); err != nil {
			return nil, err
		}
	}

	return answer, nil
}

// AcceptAnswer toggles acceptance. Only the question's author may do it;
// at most one answer per question stays accepted, and the question's
// acceptedAnswerId always names that answer or is cleared.
func (s *answerService) AcceptAnswer(questionID, answerID, requesterID string) (*models.Answer, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if question.Author.ID != requesterID {
		return nil, models.ErrorForbidden{Message: "only the question author can accept an answer"}
	}

	answers := s.answerRepo.ListByQuestion(questionID)
	var target *models.Answer
	for i := range answers {
		if answers[i].ID == answerID {
			target = &answers[i]
			break
		}
	}
	if target == nil {
		return nil, models.ErrorNotFound{Message: "answer not found"}
	}

	accepting := !target.IsAccepted
	for i := range answers {
		answers[i].IsAccepted = accepting && answers[i].ID == answerID
	}
	if err := s.answerRepo.UpdateMany(answers); err != nil {
		return nil, err
	}

	if accepting {
		question.AcceptedAnswerID = answerID
	} else {
		question.AcceptedAnswerID = ""
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}

	if accepting && target.Author.ID != requesterID {
		notification := &models.Notification{
			ID:        newNotificationID(),
			UserID:    target.Author.ID,
			Type:      models.NotificationAccepted,
			Title:     "Answer accepted",
			Message:   fmt.Sprintf("Your answer on %q was accepted", question.Title),
			RelatedID: answerID,
			ActionURL: "/questions/" + questionID,
			CreatedAt: timeNow(),
		}
		if err := s.notificationRepo.Create(notification); err != nil {
			return nil, err
		}
	}

	accepted := *target
	accepted.IsAccepted = accepting
	return &accepted, nil
}
