package repositories

import (
	"strings"
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type UserRepository interface {
	List() []models.User
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

// userRecord carries the password hash when the collection is
// serialized; models.User hides it from API responses.
type userRecord struct {
	models.User
	PasswordHash string `json:"password_hash,omitempty"`
}

type userRepository struct {
	mu    sync.RWMutex
	store *store.Store
	users []models.User
}

func NewUserRepository(s *store.Store) (UserRepository, error) {
	r := &userRepository{store: s}

	var records []userRecord
	if err := s.Load(store.KeyUsers, &records); err != nil {
		return nil, err
	}
	for _, rec := range records {
		u := rec.User
		u.Password = rec.PasswordHash
		r.users = append(r.users, u)
	}
	return r, nil
}

// persist writes the whole collection back through the store. Callers
// must hold the lock.
func (r *userRepository) persist() error {
	records := make([]userRecord, 0, len(r.users))
	for _, u := range r.users {
		rec := userRecord{User: u, PasswordHash: u.Password}
		records = append(records, rec)
	}
	return r.store.Save(store.KeyUsers, records)
}

func (r *userRepository) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *userRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "user not found"}
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "user not found"}
}

func (r *userRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || strings.EqualFold(u.Username, user.Username) {
			return models.ErrorConflict{Message: "user already exists"}
		}
	}

	r.users = append(r.users, *user)
	return r.persist()
}

func (r *userRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID != user.ID && (strings.EqualFold(u.Email, user.Email) || strings.EqualFold(u.Username, user.Username)) {
			return models.ErrorConflict{Message: "username or email already taken"}
		}
	}

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "user not found"}
}
