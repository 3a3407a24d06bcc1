package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"surveyforge/internal/model"
	"surveyforge/internal/repository"
)

func newTestSurveyService(t *testing.T) *SurveyService {
	t.Helper()
	return NewSurveyService(
		repository.NewSurveyRepo(),
		repository.NewTemplateRepo(repository.BuiltinTemplates()),
		"http://localhost:8080",
	)
}

func requireCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	require.Error(t, err)
	se, ok := AsServiceError(err)
	require.True(t, ok, "expected a service error, got %v", err)
	require.Equal(t, code, se.Code)
}

func TestCreateSurvey(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()

	survey, err := svc.Create(ctx, "Q1 Feedback", "quarterly check-in", "", "alice", "")
	require.NoError(t, err)
	require.NotEmpty(t, survey.ID)
	require.Equal(t, "General", survey.Category)
	require.Empty(t, survey.Questions)
	require.False(t, survey.IsPublished)
	require.Zero(t, survey.Metrics.TotalResponses)
}

func TestCreateSurveyInvalidCategory(t *testing.T) {
	svc := newTestSurveyService(t)

	_, err := svc.Create(context.Background(), "Feedback", "", "Astrology", "alice", "")
	requireCode(t, err, ErrorInvalid)
}

func TestCreateSurveyFromTemplate(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()

	template, err := svc.templateRepo.GetByID(ctx, "customer-satisfaction")
	require.NoError(t, err)
	require.NotNil(t, template)

	survey, err := svc.Create(ctx, "CSAT", "", "Customer Experience", "alice", "customer-satisfaction")
	require.NoError(t, err)
	require.Len(t, survey.Questions, len(template.Questions))

	seen := map[string]bool{}
	for i, q := range survey.Questions {
		require.Equal(t, template.Questions[i].Title, q.Title)
		require.Equal(t, template.Questions[i].Type, q.Type)
		require.NotEmpty(t, q.ID)
		require.NotEqual(t, template.Questions[i].ID, q.ID)
		require.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestCreateSurveyUnknownTemplate(t *testing.T) {
	svc := newTestSurveyService(t)

	_, err := svc.Create(context.Background(), "Feedback", "", "", "alice", "no-such-template")
	requireCode(t, err, ErrorNotFound)
}

func TestAddQuestionDefaults(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	choice, err := svc.AddQuestion(ctx, survey.ID, model.Question{
		Type:  model.QuestionMultipleChoice,
		Title: "Pick one",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Option 1", "Option 2", "Option 3"}, choice.Options)
	require.NotEmpty(t, choice.ID)

	rating, err := svc.AddQuestion(ctx, survey.ID, model.Question{
		Type:  model.QuestionRating,
		Title: "Rate it",
	})
	require.NoError(t, err)
	require.NotNil(t, rating.Scale)
	require.Equal(t, model.DefaultScaleSize, rating.Scale.Size)
}

func TestAddQuestionSingleOptionRejected(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	_, err = svc.AddQuestion(ctx, survey.ID, model.Question{
		Type:    model.QuestionDropdown,
		Title:   "Pick one",
		Options: []string{"Only"},
	})
	requireCode(t, err, ErrorInvalid)
}

func TestAddQuestionUnknownType(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	_, err = svc.AddQuestion(ctx, survey.ID, model.Question{Type: "matrix", Title: "Grid"})
	requireCode(t, err, ErrorInvalid)
}

func TestRemoveQuestionRestoresList(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	first, err := svc.AddQuestion(ctx, survey.ID, model.Question{Type: model.QuestionText, Title: "One"})
	require.NoError(t, err)
	added, err := svc.AddQuestion(ctx, survey.ID, model.Question{Type: model.QuestionText, Title: "Two"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveQuestion(ctx, survey.ID, added.ID))

	got, err := svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)
	require.Equal(t, first.ID, got.Questions[0].ID)

	requireCode(t, svc.RemoveQuestion(ctx, survey.ID, added.ID), ErrorNotFound)
}

func TestReorderQuestion(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	q1, err := svc.AddQuestion(ctx, survey.ID, model.Question{Type: model.QuestionText, Title: "One"})
	require.NoError(t, err)
	q2, err := svc.AddQuestion(ctx, survey.ID, model.Question{Type: model.QuestionText, Title: "Two"})
	require.NoError(t, err)

	// boundary moves are accepted but change nothing
	require.NoError(t, svc.ReorderQuestion(ctx, survey.ID, q1.ID, DirectionUp))
	got, err := svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.Equal(t, q1.ID, got.Questions[0].ID)

	require.NoError(t, svc.ReorderQuestion(ctx, survey.ID, q2.ID, DirectionUp))
	got, err = svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.Equal(t, q2.ID, got.Questions[0].ID)
	require.Equal(t, q1.ID, got.Questions[1].ID)

	requireCode(t, svc.ReorderQuestion(ctx, survey.ID, q1.ID, "sideways"), ErrorInvalid)
}

func TestPublish(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	requireCode(t, svc.Publish(ctx, survey.ID), ErrorInvalid)

	_, err = svc.AddQuestion(ctx, survey.ID, model.Question{Type: model.QuestionText, Title: "One"})
	require.NoError(t, err)

	require.NoError(t, svc.Publish(ctx, survey.ID))
	require.NoError(t, svc.Publish(ctx, survey.ID)) // idempotent

	got, err := svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.True(t, got.IsPublished)
}

func TestShareLink(t *testing.T) {
	svc := newTestSurveyService(t)
	require.Equal(t, "http://localhost:8080/survey/abc-123", svc.ShareLink("abc-123"))
}

func TestUpdateSurveyAtomic(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Original", "", "", "alice", "")
	require.NoError(t, err)

	title := "Renamed"
	_, err = svc.Update(ctx, survey.ID, SurveyPatch{
		Title: &title,
		Questions: []model.Question{
			{ID: "dup", Type: model.QuestionText, Title: "A"},
			{ID: "dup", Type: model.QuestionText, Title: "B"},
		},
	})
	requireCode(t, err, ErrorInvalid)

	got, err := svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.Equal(t, "Original", got.Title)
	require.Empty(t, got.Questions)
}

func TestRecordDistribution(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	require.NoError(t, svc.RecordDistribution(ctx, survey.ID, 25))
	require.NoError(t, svc.RecordDistribution(ctx, survey.ID, 25))

	got, err := svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.Equal(t, 50, got.Metrics.TotalSent)

	requireCode(t, svc.RecordDistribution(ctx, survey.ID, 0), ErrorInvalid)
}

func TestTeamMembers(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	admin := model.TeamMember{Email: "boss@example.com", Role: model.RoleAdmin}
	require.NoError(t, svc.AddTeamMember(ctx, survey.ID, admin))

	editor := model.TeamMember{Email: "ed@example.com", Role: model.RoleEditor}
	require.NoError(t, svc.AddTeamMember(ctx, survey.ID, editor))

	// duplicates and malformed addresses are rejected
	requireCode(t, svc.AddTeamMember(ctx, survey.ID, editor), ErrorConflict)
	requireCode(t, svc.AddTeamMember(ctx, survey.ID, model.TeamMember{Email: "not-an-email"}), ErrorInvalid)
	requireCode(t, svc.AddTeamMember(ctx, survey.ID, model.TeamMember{Email: "x@example.com", Role: "owner"}), ErrorInvalid)

	// admins can neither be demoted nor removed
	viewer := model.RoleViewer
	requireCode(t, svc.UpdateTeamMember(ctx, survey.ID, "boss@example.com", TeamMemberPatch{Role: &viewer}), ErrorInvalid)
	requireCode(t, svc.RemoveTeamMember(ctx, survey.ID, "boss@example.com"), ErrorInvalid)

	require.NoError(t, svc.UpdateTeamMember(ctx, survey.ID, "ed@example.com", TeamMemberPatch{Role: &viewer}))
	require.NoError(t, svc.RemoveTeamMember(ctx, survey.ID, "ed@example.com"))

	got, err := svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.Len(t, got.Collaborators, 1)
	require.Equal(t, model.RoleAdmin, got.Collaborators[0].Role)
}

func TestReminders(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	reminder, err := svc.AddReminder(ctx, survey.ID, model.Reminder{
		Message:   "Please respond",
		Frequency: model.ReminderWeekly,
	})
	require.NoError(t, err)
	require.NotEmpty(t, reminder.ID)
	require.Equal(t, "active", reminder.Status)

	_, err = svc.AddReminder(ctx, survey.ID, model.Reminder{Message: "x", Frequency: "hourly"})
	requireCode(t, err, ErrorInvalid)

	require.NoError(t, svc.UpdateReminder(ctx, survey.ID, reminder.ID, model.Reminder{Status: "paused"}))
	require.NoError(t, svc.RemoveReminder(ctx, survey.ID, reminder.ID))
	requireCode(t, svc.RemoveReminder(ctx, survey.ID, reminder.ID), ErrorNotFound)
}

func TestIntegrations(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	require.NoError(t, svc.AddIntegration(ctx, survey.ID, model.Integration{Type: "crm", Provider: "salesforce"}))
	requireCode(t, svc.AddIntegration(ctx, survey.ID, model.Integration{Type: "fax"}), ErrorInvalid)

	require.NoError(t, svc.RemoveIntegration(ctx, survey.ID, "crm"))
	requireCode(t, svc.RemoveIntegration(ctx, survey.ID, "crm"), ErrorNotFound)
}

func TestUpdateDeployment(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()
	survey, err := svc.Create(ctx, "Feedback", "", "", "alice", "")
	require.NoError(t, err)

	requireCode(t, svc.UpdateDeployment(ctx, survey.ID, model.DeploymentSettings{
		Channels: []string{"carrier-pigeon"},
	}), ErrorInvalid)

	require.NoError(t, svc.UpdateDeployment(ctx, survey.ID, model.DeploymentSettings{
		Channels: []string{"web", "email"},
	}))

	got, err := svc.Get(ctx, survey.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Deployment)
	require.Equal(t, []string{"web", "email"}, got.Deployment.Channels)
}

func TestListByOwner(t *testing.T) {
	svc := newTestSurveyService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "A", "", "", "alice", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "B", "", "", "bob", "")
	require.NoError(t, err)

	mine, err := svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "A", mine[0].Title)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
