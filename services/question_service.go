package services

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zealr3/stackit-qna/config"
	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/repositories"
)

type QuestionService interface {
	CreateQuestion(req models.CreateQuestionRequest, authorID string) (*models.Question, error)
	GetQuestions(params models.QuestionListParams, viewerID string) ([]models.Question, int, models.QuestionListParams, error)
	GetQuestion(id, viewerID string) (*models.QuestionDetail, error)
	ToggleBookmark(questionID, viewerID string) (*models.BookmarkResult, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	tagRepo      repositories.TagRepository
	userRepo     repositories.UserRepository
	voteRepo     repositories.VoteRepository
	bookmarkRepo repositories.BookmarkRepository
}

func NewQuestionService(
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	voteRepo repositories.VoteRepository,
	bookmarkRepo repositories.BookmarkRepository,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		voteRepo:     voteRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

func (s *questionService) CreateQuestion(req models.CreateQuestionRequest, authorID string) (*models.Question, error) {
	if err := validateQuestionDraft(req); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}

	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	authorSnapshot := *author
	authorSnapshot.Password = ""

	question := &models.Question{
		ID:        helper.NewID("q"),
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Author:    authorSnapshot,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	// Denormalized counter on each tag, decremented again if the
	// question is ever removed.
	for i := range tags {
		tags[i].QuestionCount++
	}
	if err := s.tagRepo.BulkUpdate(tags); err != nil {
		return nil, err
	}
	question.Tags = tags

	return question, nil
}

func validateQuestionDraft(req models.CreateQuestionRequest) error {
	fields := map[string]string{}

	// Limits count characters, not bytes, so multibyte text measures the
	// same as ASCII.
	title := strings.TrimSpace(req.Title)
	if title == "" {
		fields["title"] = "Title is required"
	} else if utf8.RuneCountInString(title) < 10 {
		fields["title"] = "Title must be at least 10 characters"
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		fields["content"] = "Question content is required"
	} else if utf8.RuneCountInString(content) < 30 {
		fields["content"] = "Question content must be at least 30 characters"
	}

	if len(req.Tags) == 0 {
		fields["tags"] = "At least one tag is required"
	} else if len(req.Tags) > 5 {
		fields["tags"] = "Maximum 5 tags allowed"
	}

	if len(fields) > 0 {
		return models.ErrorValidation{Fields: fields}
	}
	return nil
}

// processTags resolves tag names to tags, creating missing ones on the
// fly. Names are lowercased so "React" and "react" are one tag.
func (s *questionService) processTags(names []string) ([]models.Tag, error) {
	var tags []models.Tag
	seen := map[string]bool{}

	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := s.tagRepo.GetByName(name)
		if err == nil {
			tags = append(tags, *tag)
			continue
		}
		if _, ok := err.(models.ErrorNotFound); !ok {
			return nil, err
		}

		newTag := &models.Tag{
			ID:          helper.NewID("tag"),
			Name:        name,
			Description: "Tag for " + name,
			Color:       "#6366F1",
			CreatedAt:   time.Now(),
		}
		if err := s.tagRepo.Create(newTag); err != nil {
			return nil, err
		}
		tags = append(tags, *newTag)
	}

	if len(tags) == 0 {
		return nil, models.ErrorValidation{Fields: map[string]string{"tags": "At least one tag is required"}}
	}
	return tags, nil
}

// GetQuestions runs the list pipeline: tag filter, text search, sort,
// pagination, viewer decoration. The returned params carry the clamped
// page so the response envelope reports what was actually served.
func (s *questionService) GetQuestions(params models.QuestionListParams, viewerID string) ([]models.Question, int, models.QuestionListParams, error) {
	questions := s.questionRepo.List()

	if params.TagID != "" {
		questions = filterByTag(questions, params.TagID)
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		questions = filterBySearch(questions, search)
	}

	sortQuestions(questions, params.Filter)

	total := len(questions)

	if params.Limit <= 0 {
		params.Limit = config.DefaultPageSize
	}
	totalPages := (total + params.Limit - 1) / params.Limit
	if totalPages < 1 {
		totalPages = 1
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Page > totalPages {
		params.Page = totalPages
	}

	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	page := questions[start:end]

	for i := range page {
		s.decorateQuestion(&page[i], viewerID)
	}

	return page, total, params, nil
}

func filterByTag(questions []models.Question, tagID string) []models.Question {
	var out []models.Question
	for _, q := range questions {
		for _, t := range q.Tags {
			if t.ID == tagID {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

func filterBySearch(questions []models.Question, search string) []models.Question {
	needle := strings.ToLower(search)
	var out []models.Question
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Title), needle) ||
			strings.Contains(strings.ToLower(q.Content), needle) {
			out = append(out, q)
			continue
		}
		for _, t := range q.Tags {
			if strings.Contains(strings.ToLower(t.Name), needle) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

func sortQuestions(questions []models.Question, filter models.QuestionFilter) {
	switch filter {
	case models.FilterTrending:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].TrendingScore() > questions[j].TrendingScore()
		})
	case models.FilterHot:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].HotScore() > questions[j].HotScore()
		})
	case models.FilterUnanswered:
		// Stable partition: unanswered first, everything else keeps its
		// relative order.
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].AnswerCount == 0 && questions[j].AnswerCount != 0
		})
	default:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].CreatedAt.After(questions[j].CreatedAt)
		})
	}
}

func (s *questionService) decorateQuestion(q *models.Question, viewerID string) {
	if viewerID == "" {
		return
	}
	q.UserVote = s.voteRepo.Get(models.SubjectQuestion, q.ID, viewerID)
	q.IsBookmarked = s.bookmarkRepo.IsBookmarked(q.ID, viewerID)
}

// GetQuestion returns the detail view. Every read bumps the view
// counter, the way the original counted a page visit.
func (s *questionService) GetQuestion(id, viewerID string) (*models.QuestionDetail, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	question.Views++
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}

	s.decorateQuestion(question, viewerID)
	question.ContentHTML = helper.RenderMarkdown(question.Content)

	answers := s.answerRepo.ListByQuestion(id)
	sort.SliceStable(answers, func(i, j int) bool {
		if answers[i].IsAccepted != answers[j].IsAccepted {
			return answers[i].IsAccepted
		}
		return answers[i].Votes > answers[j].Votes
	})
	for i := range answers {
		answers[i].ContentHTML = helper.RenderMarkdown(answers[i].Content)
		if viewerID != "" {
			answers[i].UserVote = s.voteRepo.Get(models.SubjectAnswer, answers[i].ID, viewerID)
		}
	}

	return &models.QuestionDetail{Question: *question, Answers: answers}, nil
}

func (s *questionService) ToggleBookmark(questionID, viewerID string) (*models.BookmarkResult, error) {
	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		return nil, err
	}

	bookmarked, err := s.bookmarkRepo.Toggle(questionID, viewerID)
	if err != nil {
		return nil, err
	}
	return &models.BookmarkResult{IsBookmarked: bookmarked}, nil
}
