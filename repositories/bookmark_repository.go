package repositories

import (
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type BookmarkRepository interface {
	IsBookmarked(questionID, userID string) bool
	// Toggle flips the bookmark and reports the new state.
	Toggle(questionID, userID string) (bool, error)
	DeleteByQuestion(questionID string) error
}

type bookmarkRepository struct {
	mu        sync.RWMutex
	store     *store.Store
	bookmarks []models.Bookmark
}

func NewBookmarkRepository(s *store.Store) (BookmarkRepository, error) {
	r := &bookmarkRepository{store: s}
	if err := s.Load(store.KeyBookmarks, &r.bookmarks); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *bookmarkRepository) persist() error {
	return r.store.Save(store.KeyBookmarks, r.bookmarks)
}

func (r *bookmarkRepository) IsBookmarked(questionID, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookmarks {
		if b.QuestionID == questionID && b.UserID == userID {
			return true
		}
	}
	return false
}

func (r *bookmarkRepository) Toggle(questionID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookmarks {
		if b.QuestionID == questionID && b.UserID == userID {
			r.bookmarks = append(r.bookmarks[:i], r.bookmarks[i+1:]...)
			return false, r.persist()
		}
	}

	r.bookmarks = append(r.bookmarks, models.Bookmark{QuestionID: questionID, UserID: userID})
	return true, r.persist()
}

func (r *bookmarkRepository) DeleteByQuestion(questionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.bookmarks[:0]
	for _, b := range r.bookmarks {
		if b.QuestionID != questionID {
			kept = append(kept, b)
		}
	}
	r.bookmarks = kept
	return r.persist()
}
