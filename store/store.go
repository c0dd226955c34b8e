package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Collection keys. Each key names one JSON document holding a whole
// collection; every save rewrites the document in a single upsert.
const (
	KeyUsers         = "users"
	KeyQuestions     = "questions"
	KeyAnswers       = "answers"
	KeyTags          = "tags"
	KeyNotifications = "notifications"
	KeyVotes         = "votes"
	KeyBookmarks     = "bookmarks"
	KeyReports       = "reports"
)

type document struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// Store is a named-document key-value adapter over a local sqlite file.
// There is no cross-document transaction: concurrent writers to the same
// key are last-writer-wins, matching the multi-tab behavior of the
// browser-storage original.
type Store struct {
	db *gorm.DB
}

// Open creates or opens the storage file. ":memory:" gives a throwaway
// database for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("migrate storage: %w", err)
	}
	return &Store{db: db}, nil
}

// Load unmarshals the document at key into out. An absent key is not an
// error; out is left untouched so an empty collection stays empty.
func (s *Store) Load(key string, out any) error {
	var doc document
	err := s.db.First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(doc.Value, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Save serializes value and upserts it under key in one statement.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	doc := document{Key: key, Value: raw}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Remove deletes the document at key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	if err := s.db.Delete(&document{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
