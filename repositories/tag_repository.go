package repositories

import (
	"sort"
	"strings"
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type TagRepository interface {
	GetAll() []models.Tag
	GetByID(id string) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	Create(tag *models.Tag) error
	Update(tag *models.Tag) error
	BulkUpdate(tags []models.Tag) error
}

type tagRepository struct {
	mu    sync.RWMutex
	store *store.Store
	tags  []models.Tag
}

func NewTagRepository(s *store.Store) (TagRepository, error) {
	r := &tagRepository{store: s}
	if err := s.Load(store.KeyTags, &r.tags); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *tagRepository) persist() error {
	return r.store.Save(store.KeyTags, r.tags)
}

// GetAll returns tags ordered by question count, most used first.
func (r *tagRepository) GetAll() []models.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Tag, len(r.tags))
	copy(out, r.tags)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].QuestionCount > out[j].QuestionCount
	})
	return out
}

func (r *tagRepository) GetByID(id string) (*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tags {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "tag not found"}
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tags {
		if strings.EqualFold(t.Name, name) {
			found := t
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "tag not found"}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tags {
		if strings.EqualFold(t.Name, tag.Name) {
			return models.ErrorConflict{Message: "tag already exists"}
		}
	}

	r.tags = append(r.tags, *tag)
	return r.persist()
}

func (r *tagRepository) Update(tag *models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tags {
		if t.ID == tag.ID {
			r.tags[i] = *tag
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "tag not found"}
}

func (r *tagRepository) BulkUpdate(tags []models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, updated := range tags {
		for i, t := range r.tags {
			if t.ID == updated.ID {
				r.tags[i] = updated
				break
			}
		}
	}
	return r.persist()
}
