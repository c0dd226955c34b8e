package repositories

import (
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type NotificationRepository interface {
	ListByUser(userID string) []models.Notification
	GetByID(id string) (*models.Notification, error)
	Create(notification *models.Notification) error
	Update(notification *models.Notification) error
	MarkAllRead(userID string) error
}

type notificationRepository struct {
	mu            sync.RWMutex
	store         *store.Store
	notifications []models.Notification
}

func NewNotificationRepository(s *store.Store) (NotificationRepository, error) {
	r := &notificationRepository{store: s}
	if err := s.Load(store.KeyNotifications, &r.notifications); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *notificationRepository) persist() error {
	return r.store.Save(store.KeyNotifications, r.notifications)
}

func (r *notificationRepository) ListByUser(userID string) []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (r *notificationRepository) GetByID(id string) (*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notifications {
		if n.ID == id {
			found := n
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "notification not found"}
}

// Create puts the newest notification first, the order the bell menu
// shows them.
func (r *notificationRepository) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append([]models.Notification{*notification}, r.notifications...)
	return r.persist()
}

func (r *notificationRepository) Update(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == notification.ID {
			r.notifications[i] = *notification
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "notification not found"}
}

func (r *notificationRepository) MarkAllRead(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
		}
	}
	return r.persist()
}
