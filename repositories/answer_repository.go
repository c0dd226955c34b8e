package repositories

import (
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type AnswerRepository interface {
	GetByID(id string) (*models.Answer, error)
	ListByQuestion(questionID string) []models.Answer
	Create(answer *models.Answer) error
	Update(answer *models.Answer) error
	// UpdateMany replaces every listed answer and persists once, so an
	// acceptance change over several siblings lands as one write.
	UpdateMany(answers []models.Answer) error
	Delete(id string) error
	DeleteByQuestion(questionID string) error
}

type answerRepository struct {
	mu      sync.RWMutex
	store   *store.Store
	answers []models.Answer
}

func NewAnswerRepository(s *store.Store) (AnswerRepository, error) {
	r := &answerRepository{store: s}
	if err := s.Load(store.KeyAnswers, &r.answers); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *answerRepository) persist() error {
	return r.store.Save(store.KeyAnswers, r.answers)
}

func (r *answerRepository) GetByID(id string) (*models.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.answers {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "answer not found"}
}

func (r *answerRepository) ListByQuestion(questionID string) []models.Answer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Answer
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out
}

func (r *answerRepository) Create(answer *models.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.answers = append(r.answers, *answer)
	return r.persist()
}

func (r *answerRepository) Update(answer *models.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.answers {
		if a.ID == answer.ID {
			r.answers[i] = *answer
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "answer not found"}
}

func (r *answerRepository) UpdateMany(answers []models.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, updated := range answers {
		for i, a := range r.answers {
			if a.ID == updated.ID {
				r.answers[i] = updated
				break
			}
		}
	}
	return r.persist()
}

func (r *answerRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.answers {
		if a.ID == id {
			r.answers = append(r.answers[:i], r.answers[i+1:]...)
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "answer not found"}
}

func (r *answerRepository) DeleteByQuestion(questionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.answers[:0]
	for _, a := range r.answers {
		if a.QuestionID != questionID {
			kept = append(kept, a)
		}
	}
	r.answers = kept
	return r.persist()
}
