package repositories

import (
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type QuestionRepository interface {
	List() []models.Question
	GetByID(id string) (*models.Question, error)
	Create(question *models.Question) error
	Update(question *models.Question) error
	Delete(id string) error
}

type questionRepository struct {
	mu        sync.RWMutex
	store     *store.Store
	questions []models.Question
}

func NewQuestionRepository(s *store.Store) (QuestionRepository, error) {
	r := &questionRepository{store: s}
	if err := s.Load(store.KeyQuestions, &r.questions); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *questionRepository) persist() error {
	return r.store.Save(store.KeyQuestions, r.questions)
}

func (r *questionRepository) List() []models.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

func (r *questionRepository) GetByID(id string) (*models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "question not found"}
}

// Create puts the new question at the head of the collection, so the raw
// insertion order is newest-first.
func (r *questionRepository) Create(question *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = append([]models.Question{*question}, r.questions...)
	return r.persist()
}

func (r *questionRepository) Update(question *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, q := range r.questions {
		if q.ID == question.ID {
			r.questions[i] = *question
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "question not found"}
}

func (r *questionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "question not found"}
}
