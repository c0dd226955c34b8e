package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zealr3/stackit-qna/models"
)

func TestApplyVote(t *testing.T) {
	tests := []struct {
		name      string
		current   models.VoteState
		requested models.VoteState
		wantState models.VoteState
		wantDelta int
	}{
		{"fresh upvote", models.VoteNone, models.VoteUp, models.VoteUp, +1},
		{"fresh downvote", models.VoteNone, models.VoteDown, models.VoteDown, -1},
		{"toggle off upvote", models.VoteUp, models.VoteUp, models.VoteNone, -1},
		{"toggle off downvote", models.VoteDown, models.VoteDown, models.VoteNone, +1},
		{"reverse up to down", models.VoteUp, models.VoteDown, models.VoteDown, -2},
		{"reverse down to up", models.VoteDown, models.VoteUp, models.VoteUp, +2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, delta := ApplyVote(tt.current, tt.requested)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}

// A voter clicking up, up again, down, then up walks the counter through
// 1, 0, -1, 1 with their recorded vote tracking each step.
func TestVoteSequenceOnQuestion(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	steps := []struct {
		direction models.VoteState
		wantVotes int
		wantState models.VoteState
	}{
		{models.VoteUp, 1, models.VoteUp},
		{models.VoteUp, 0, models.VoteNone},
		{models.VoteDown, -1, models.VoteDown},
		{models.VoteUp, 1, models.VoteUp},
	}

	for _, step := range steps {
		result, err := env.votes.Vote(models.SubjectQuestion, q.ID, env.answerer.ID, step.direction)
		require.NoError(t, err)
		assert.Equal(t, step.wantVotes, result.Votes)
		assert.Equal(t, step.wantState, result.UserVote)
	}

	stored, err := env.questionRepo.GetByID(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Votes)
}

func TestVoteRejectsBadDirection(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	_, err := env.votes.Vote(models.SubjectQuestion, q.ID, env.answerer.ID, "sideways")
	require.Error(t, err)
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestUpvoteNotifiesAuthor(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	_, err := env.votes.Vote(models.SubjectQuestion, q.ID, env.answerer.ID, models.VoteUp)
	require.NoError(t, err)

	list := env.notifications.GetNotifications(env.asker.ID)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, models.NotificationVote, list.Notifications[0].Type)
	assert.Equal(t, q.ID, list.Notifications[0].RelatedID)
	assert.Equal(t, 1, list.UnreadCount)
}

func TestSelfUpvoteStaysQuiet(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	_, err := env.votes.Vote(models.SubjectQuestion, q.ID, env.asker.ID, models.VoteUp)
	require.NoError(t, err)

	list := env.notifications.GetNotifications(env.asker.ID)
	assert.Empty(t, list.Notifications)
}

func TestDownvoteDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	_, err := env.votes.Vote(models.SubjectQuestion, q.ID, env.answerer.ID, models.VoteDown)
	require.NoError(t, err)

	list := env.notifications.GetNotifications(env.asker.ID)
	assert.Empty(t, list.Notifications)
}

func TestVotesAreIndependentPerVoter(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	third := models.User{ID: "usr_third", Username: "third", Email: "third@example.com", Role: models.RoleUser}
	require.NoError(t, env.userRepo.Create(&third))

	_, err := env.votes.Vote(models.SubjectQuestion, q.ID, env.answerer.ID, models.VoteUp)
	require.NoError(t, err)
	result, err := env.votes.Vote(models.SubjectQuestion, q.ID, third.ID, models.VoteUp)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Votes)
	assert.Equal(t, models.VoteUp, env.voteRepo.Get(models.SubjectQuestion, q.ID, env.answerer.ID))
	assert.Equal(t, models.VoteUp, env.voteRepo.Get(models.SubjectQuestion, q.ID, third.ID))
	assert.Equal(t, models.VoteNone, env.voteRepo.Get(models.SubjectQuestion, q.ID, env.asker.ID))
}

func TestVoteOnAnswer(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")
	a := env.mustCreateAnswer(t, q.ID)

	result, err := env.votes.Vote(models.SubjectAnswer, a.ID, env.asker.ID, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Votes)

	list := env.notifications.GetNotifications(env.answerer.ID)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, models.NotificationVote, list.Notifications[0].Type)
}
