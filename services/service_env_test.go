package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/repositories"
	"github.com/zealr3/stackit-qna/store"
)

// testEnv wires every repository over a throwaway in-memory store plus
// two users to act against each other.
type testEnv struct {
	store            *store.Store
	userRepo         repositories.UserRepository
	questionRepo     repositories.QuestionRepository
	answerRepo       repositories.AnswerRepository
	tagRepo          repositories.TagRepository
	voteRepo         repositories.VoteRepository
	bookmarkRepo     repositories.BookmarkRepository
	notificationRepo repositories.NotificationRepository
	reportRepo       repositories.ReportRepository

	questions     QuestionService
	answers       AnswerService
	votes         VoteService
	notifications NotificationService
	admin         AdminService

	asker    models.User
	answerer models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.Open(":memory:")
	require.NoError(t, err)

	env := &testEnv{store: st}

	env.userRepo, err = repositories.NewUserRepository(st)
	require.NoError(t, err)
	env.questionRepo, err = repositories.NewQuestionRepository(st)
	require.NoError(t, err)
	env.answerRepo, err = repositories.NewAnswerRepository(st)
	require.NoError(t, err)
	env.tagRepo, err = repositories.NewTagRepository(st)
	require.NoError(t, err)
	env.voteRepo, err = repositories.NewVoteRepository(st)
	require.NoError(t, err)
	env.bookmarkRepo, err = repositories.NewBookmarkRepository(st)
	require.NoError(t, err)
	env.notificationRepo, err = repositories.NewNotificationRepository(st)
	require.NoError(t, err)
	env.reportRepo, err = repositories.NewReportRepository(st)
	require.NoError(t, err)

	env.questions = NewQuestionService(env.questionRepo, env.answerRepo, env.tagRepo, env.userRepo, env.voteRepo, env.bookmarkRepo)
	env.answers = NewAnswerService(env.questionRepo, env.answerRepo, env.userRepo, env.notificationRepo)
	env.votes = NewVoteService(env.questionRepo, env.answerRepo, env.voteRepo, env.notificationRepo)
	env.notifications = NewNotificationService(env.notificationRepo)
	env.admin = NewAdminService(env.userRepo, env.questionRepo, env.answerRepo, env.tagRepo, env.voteRepo, env.bookmarkRepo, env.reportRepo)

	env.asker = models.User{ID: "usr_asker", Username: "asker", Email: "asker@example.com", Role: models.RoleUser}
	env.answerer = models.User{ID: "usr_answerer", Username: "answerer", Email: "answerer@example.com", Role: models.RoleUser}
	require.NoError(t, env.userRepo.Create(&env.asker))
	require.NoError(t, env.userRepo.Create(&env.answerer))

	return env
}

func (env *testEnv) mustCreateQuestion(t *testing.T, title string, tags ...string) *models.Question {
	t.Helper()

	if len(tags) == 0 {
		tags = []string{"go"}
	}
	q, err := env.questions.CreateQuestion(models.CreateQuestionRequest{
		Title:   title,
		Content: "This is a question body long enough to pass validation.",
		Tags:    tags,
	}, env.asker.ID)
	require.NoError(t, err)
	return q
}

func (env *testEnv) mustCreateAnswer(t *testing.T, questionID string) *models.Answer {
	t.Helper()

	a, err := env.answers.CreateAnswer(questionID, models.CreateAnswerRequest{
		Content: "Try this approach instead.",
	}, env.answerer.ID)
	require.NoError(t, err)
	return a
}
