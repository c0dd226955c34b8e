package services

import (
	"strings"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/repositories"
)

type AdminService interface {
	ListUsers() []models.User
	// ChangeRole covers promotion, demotion and bans: demoting to guest
	// is the ban, restoring to user lifts it.
	ChangeRole(userID string, role models.UserRole) (*models.User, error)
	RemoveQuestion(id string) error
	RemoveAnswer(id string) error
	CreateReport(req models.CreateReportRequest, reporterID string) (*models.Report, error)
	ListReports(params models.ReportListParams) []models.Report
	UpdateReportStatus(id string, req models.UpdateReportStatusRequest) (*models.Report, error)
}

type adminService struct {
	userRepo     repositories.UserRepository
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	tagRepo      repositories.TagRepository
	voteRepo     repositories.VoteRepository
	bookmarkRepo repositories.BookmarkRepository
	reportRepo   repositories.ReportRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	tagRepo repositories.TagRepository,
	voteRepo repositories.VoteRepository,
	bookmarkRepo repositories.BookmarkRepository,
	reportRepo repositories.ReportRepository,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		tagRepo:      tagRepo,
		voteRepo:     voteRepo,
		bookmarkRepo: bookmarkRepo,
		reportRepo:   reportRepo,
	}
}

func (s *adminService) ListUsers() []models.User {
	return s.userRepo.List()
}

func (s *adminService) ChangeRole(userID string, role models.UserRole) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveQuestion takes the question down along with its answers, votes
// and bookmarks, and gives each of its tags their count back.
func (s *adminService) RemoveQuestion(id string) error {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return err
	}

	answers := s.answerRepo.ListByQuestion(id)
	for _, a := range answers {
		if err := s.voteRepo.DeleteBySubject(models.SubjectAnswer, a.ID); err != nil {
			return err
		}
	}
	if err := s.answerRepo.DeleteByQuestion(id); err != nil {
		return err
	}
	if err := s.voteRepo.DeleteBySubject(models.SubjectQuestion, id); err != nil {
		return err
	}
	if err := s.bookmarkRepo.DeleteByQuestion(id); err != nil {
		return err
	}

	tags := question.Tags
	for i := range tags {
		current, err := s.tagRepo.GetByID(tags[i].ID)
		if err != nil {
			continue
		}
		if current.QuestionCount > 0 {
			current.QuestionCount--
		}
		tags[i] = *current
	}
	if err := s.tagRepo.BulkUpdate(tags); err != nil {
		return err
	}

	return s.questionRepo.Delete(id)
}

func (s *adminService) RemoveAnswer(id string) error {
	answer, err := s.answerRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.voteRepo.DeleteBySubject(models.SubjectAnswer, id); err != nil {
		return err
	}
	if err := s.answerRepo.Delete(id); err != nil {
		return err
	}

	question, err := s.questionRepo.GetByID(answer.QuestionID)
	if err != nil {
		// The question may have been removed already; the answer is gone
		// either way.
		return nil
	}
	if question.AnswerCount > 0 {
		question.AnswerCount--
	}
	if question.AcceptedAnswerID == id {
		question.AcceptedAnswerID = ""
	}
	return s.questionRepo.Update(question)
}

func (s *adminService) CreateReport(req models.CreateReportRequest, reporterID string) (*models.Report, error) {
	switch req.ContentType {
	case models.SubjectQuestion:
		if _, err := s.questionRepo.GetByID(req.ContentID); err != nil {
			return nil, err
		}
	case models.SubjectAnswer:
		if _, err := s.answerRepo.GetByID(req.ContentID); err != nil {
			return nil, err
		}
	default:
		return nil, models.ErrorValidation{Fields: map[string]string{"content_type": "Content type must be question or answer"}}
	}

	report := &models.Report{
		ID:          helper.NewID("rep"),
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Reason:      req.Reason,
		ReportedBy:  reporterID,
		Status:      models.ReportPending,
		CreatedAt:   timeNow(),
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *adminService) ListReports(params models.ReportListParams) []models.Report {
	reports := s.reportRepo.List()

	var out []models.Report
	for _, r := range reports {
		if params.Status != "" && string(r.Status) != params.Status {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(r.Reason), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, r)
	}
	if out == nil {
		out = []models.Report{}
	}
	return out
}

func (s *adminService) UpdateReportStatus(id string, req models.UpdateReportStatusRequest) (*models.Report, error) {
	report, err := s.reportRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.RemoveContent {
		switch report.ContentType {
		case models.SubjectQuestion:
			if err := s.RemoveQuestion(report.ContentID); err != nil {
				if _, ok := err.(models.ErrorNotFound); !ok {
					return nil, err
				}
			}
		case models.SubjectAnswer:
			if err := s.RemoveAnswer(report.ContentID); err != nil {
				if _, ok := err.(models.ErrorNotFound); !ok {
					return nil, err
				}
			}
		}
	}

	report.Status = req.Status
	if err := s.reportRepo.Update(report); err != nil {
		return nil, err
	}
	return report, nil
}
