package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zealr3/stackit-qna/models"
)

func TestQuestionRepositoryPrependsOnCreate(t *testing.T) {
	st := newTestStore(t)
	repo, err := NewQuestionRepository(st)
	require.NoError(t, err)

	require.NoError(t, repo.Create(&models.Question{ID: "q_1", Title: "first"}))
	require.NoError(t, repo.Create(&models.Question{ID: "q_2", Title: "second"}))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "q_2", list[0].ID)
	assert.Equal(t, "q_1", list[1].ID)
}

func TestQuestionRepositoryReturnsCopies(t *testing.T) {
	st := newTestStore(t)
	repo, err := NewQuestionRepository(st)
	require.NoError(t, err)

	require.NoError(t, repo.Create(&models.Question{ID: "q_1", Title: "original"}))

	got, err := repo.GetByID("q_1")
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := repo.GetByID("q_1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}

func TestQuestionRepositorySurvivesRehydration(t *testing.T) {
	st := newTestStore(t)
	repo, err := NewQuestionRepository(st)
	require.NoError(t, err)

	require.NoError(t, repo.Create(&models.Question{ID: "q_1", Title: "persisted", Votes: 4}))

	rehydrated, err := NewQuestionRepository(st)
	require.NoError(t, err)

	got, err := rehydrated.GetByID("q_1")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title)
	assert.Equal(t, 4, got.Votes)
}

func TestQuestionRepositoryDelete(t *testing.T) {
	st := newTestStore(t)
	repo, err := NewQuestionRepository(st)
	require.NoError(t, err)

	require.NoError(t, repo.Create(&models.Question{ID: "q_1"}))
	require.NoError(t, repo.Delete("q_1"))

	_, err = repo.GetByID("q_1")
	assert.IsType(t, models.ErrorNotFound{}, err)

	err = repo.Delete("q_1")
	assert.IsType(t, models.ErrorNotFound{}, err)
}
