package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"surveyforge/internal/model"
	"surveyforge/internal/repository"
)

func newTestTemplateService(t *testing.T) *TemplateService {
	t.Helper()
	return NewTemplateService(repository.NewTemplateRepo(repository.BuiltinTemplates()))
}

func TestListBuiltinTemplates(t *testing.T) {
	svc := newTestTemplateService(t)

	templates, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 5)
	for _, tpl := range templates {
		require.False(t, tpl.IsCustom)
		require.NotEmpty(t, tpl.Questions)
	}
}

func TestGetTemplate(t *testing.T) {
	svc := newTestTemplateService(t)
	ctx := context.Background()

	tpl, err := svc.Get(ctx, "event-feedback")
	require.NoError(t, err)
	require.Equal(t, "Event Feedback", tpl.Name)

	_, err = svc.Get(ctx, "missing")
	requireCode(t, err, ErrorNotFound)
}

func TestSaveCustomTemplate(t *testing.T) {
	svc := newTestTemplateService(t)
	ctx := context.Background()

	saved, err := svc.SaveCustom(ctx, &model.Template{
		Name: "Exit Interview",
		Questions: []model.Question{
			{ID: "live-question-id", Type: model.QuestionText, Title: "Why are you leaving?"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.True(t, saved.IsCustom)
	require.Equal(t, "General", saved.Category)
	require.NotEqual(t, "live-question-id", saved.Questions[0].ID)

	_, err = svc.SaveCustom(ctx, &model.Template{Name: ""})
	requireCode(t, err, ErrorInvalid)
}

func TestBuiltinTemplatesImmutable(t *testing.T) {
	svc := newTestTemplateService(t)
	ctx := context.Background()

	_, err := svc.UpdateCustom(ctx, "market-research", &model.Template{Name: "Hijacked"})
	requireCode(t, err, ErrorInvalid)

	requireCode(t, svc.DeleteCustom(ctx, "market-research"), ErrorInvalid)
}

func TestUpdateAndDeleteCustomTemplate(t *testing.T) {
	svc := newTestTemplateService(t)
	ctx := context.Background()

	saved, err := svc.SaveCustom(ctx, &model.Template{
		Name:      "Onboarding",
		Questions: []model.Question{{Type: model.QuestionText, Title: "First week?"}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCustom(ctx, saved.ID, &model.Template{Name: "Onboarding v2"})
	require.NoError(t, err)
	require.Equal(t, "Onboarding v2", updated.Name)

	require.NoError(t, svc.DeleteCustom(ctx, saved.ID))
	requireCode(t, svc.DeleteCustom(ctx, saved.ID), ErrorNotFound)
}
