package services

import (
	"strings"
	"time"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/repositories"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags() []models.Tag
	GetTag(id string) (*models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// CreateTag is idempotent on the name: creating an existing tag returns
// it unchanged instead of failing.
func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" {
		return nil, models.ErrorValidation{Fields: map[string]string{"name": "Tag name is required"}}
	}

	existing, err := s.tagRepo.GetByName(name)
	if err == nil {
		return existing, nil
	}
	if _, ok := err.(models.ErrorNotFound); !ok {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = "Tag for " + name
	}
	color := req.Color
	if color == "" {
		color = "#6366F1"
	}

	tag := &models.Tag{
		ID:          helper.NewID("tag"),
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   time.Now(),
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTags() []models.Tag {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id string) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}
