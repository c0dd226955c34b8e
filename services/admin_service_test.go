package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zealr3/stackit-qna/models"
)

func TestChangeRole(t *testing.T) {
	env := newTestEnv(t)

	banned, err := env.admin.ChangeRole(env.answerer.ID, models.RoleGuest)
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, banned.Role)

	restored, err := env.admin.ChangeRole(env.answerer.ID, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, restored.Role)

	_, err = env.admin.ChangeRole("usr_missing", models.RoleAdmin)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestRemoveQuestionCascades(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?", "go")
	a := env.mustCreateAnswer(t, q.ID)

	_, err := env.votes.Vote(models.SubjectQuestion, q.ID, env.answerer.ID, models.VoteUp)
	require.NoError(t, err)
	_, err = env.votes.Vote(models.SubjectAnswer, a.ID, env.asker.ID, models.VoteUp)
	require.NoError(t, err)
	_, err = env.questions.ToggleBookmark(q.ID, env.answerer.ID)
	require.NoError(t, err)

	require.NoError(t, env.admin.RemoveQuestion(q.ID))

	_, err = env.questionRepo.GetByID(q.ID)
	assert.IsType(t, models.ErrorNotFound{}, err)
	assert.Empty(t, env.answerRepo.ListByQuestion(q.ID))
	assert.Equal(t, models.VoteNone, env.voteRepo.Get(models.SubjectQuestion, q.ID, env.answerer.ID))
	assert.Equal(t, models.VoteNone, env.voteRepo.Get(models.SubjectAnswer, a.ID, env.asker.ID))
	assert.False(t, env.bookmarkRepo.IsBookmarked(q.ID, env.answerer.ID))

	// The tag gets its counter back.
	tag, err := env.tagRepo.GetByName("go")
	require.NoError(t, err)
	assert.Equal(t, 0, tag.QuestionCount)
}

func TestRemoveAnswer(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")
	a := env.mustCreateAnswer(t, q.ID)

	_, err := env.answers.AcceptAnswer(q.ID, a.ID, env.asker.ID)
	require.NoError(t, err)

	require.NoError(t, env.admin.RemoveAnswer(a.ID))

	_, err = env.answerRepo.GetByID(a.ID)
	assert.IsType(t, models.ErrorNotFound{}, err)

	stored, err := env.questionRepo.GetByID(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AnswerCount)
	assert.Empty(t, stored.AcceptedAnswerID)
}

func TestCreateReportValidatesContent(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	report, err := env.admin.CreateReport(models.CreateReportRequest{
		ContentType: models.SubjectQuestion,
		ContentID:   q.ID,
		Reason:      "spam",
	}, env.answerer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportPending, report.Status)
	assert.Equal(t, env.answerer.ID, report.ReportedBy)

	_, err = env.admin.CreateReport(models.CreateReportRequest{
		ContentType: models.SubjectQuestion,
		ContentID:   "q_missing",
		Reason:      "spam",
	}, env.answerer.ID)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestListReportsFilters(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	spam, err := env.admin.CreateReport(models.CreateReportRequest{ContentType: models.SubjectQuestion, ContentID: q.ID, Reason: "Spam content"}, env.answerer.ID)
	require.NoError(t, err)
	_, err = env.admin.CreateReport(models.CreateReportRequest{ContentType: models.SubjectQuestion, ContentID: q.ID, Reason: "Harassment"}, env.answerer.ID)
	require.NoError(t, err)

	_, err = env.admin.UpdateReportStatus(spam.ID, models.UpdateReportStatusRequest{Status: models.ReportResolved})
	require.NoError(t, err)

	pending := env.admin.ListReports(models.ReportListParams{Status: "pending"})
	require.Len(t, pending, 1)
	assert.Equal(t, "Harassment", pending[0].Reason)

	matched := env.admin.ListReports(models.ReportListParams{Search: "spam"})
	require.Len(t, matched, 1)
	assert.Equal(t, spam.ID, matched[0].ID)

	assert.Empty(t, env.admin.ListReports(models.ReportListParams{Status: "pending", Search: "spam"}))
}

func TestDismissReportKeepsContent(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	report, err := env.admin.CreateReport(models.CreateReportRequest{ContentType: models.SubjectQuestion, ContentID: q.ID, Reason: "not actually spam"}, env.answerer.ID)
	require.NoError(t, err)

	dismissed, err := env.admin.UpdateReportStatus(report.ID, models.UpdateReportStatusRequest{Status: models.ReportDismissed})
	require.NoError(t, err)
	assert.Equal(t, models.ReportDismissed, dismissed.Status)

	// The reported question stays up.
	_, err = env.questionRepo.GetByID(q.ID)
	require.NoError(t, err)

	listed := env.admin.ListReports(models.ReportListParams{Status: "dismissed"})
	require.Len(t, listed, 1)
	assert.Equal(t, report.ID, listed[0].ID)
	assert.Empty(t, env.admin.ListReports(models.ReportListParams{Status: "pending"}))
}

func TestResolveReportWithContentRemoval(t *testing.T) {
	env := newTestEnv(t)
	q := env.mustCreateQuestion(t, "How do I profile a Go service?")

	first, err := env.admin.CreateReport(models.CreateReportRequest{ContentType: models.SubjectQuestion, ContentID: q.ID, Reason: "spam"}, env.answerer.ID)
	require.NoError(t, err)
	second, err := env.admin.CreateReport(models.CreateReportRequest{ContentType: models.SubjectQuestion, ContentID: q.ID, Reason: "duplicate report"}, env.answerer.ID)
	require.NoError(t, err)

	resolved, err := env.admin.UpdateReportStatus(first.ID, models.UpdateReportStatusRequest{Status: models.ReportResolved, RemoveContent: true})
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, resolved.Status)

	_, err = env.questionRepo.GetByID(q.ID)
	assert.IsType(t, models.ErrorNotFound{}, err)

	// Resolving the second report on the same, already removed content
	// still goes through.
	resolved, err = env.admin.UpdateReportStatus(second.ID, models.UpdateReportStatusRequest{Status: models.ReportResolved, RemoveContent: true})
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, resolved.Status)
}
