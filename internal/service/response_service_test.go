package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"surveyforge/internal/model"
	"surveyforge/internal/repository"
)

func newPublishedSurvey(t *testing.T) (*SurveyService, *ResponseService, string) {
	t.Helper()
	repo := repository.NewSurveyRepo()
	surveys := NewSurveyService(repo, repository.NewTemplateRepo(nil), "http://localhost:8080")
	responses := NewResponseService(repo, nil)

	survey, err := surveys.Create(context.Background(), "Feedback", "", "", "alice", "")
	require.NoError(t, err)
	_, err = surveys.AddQuestion(context.Background(), survey.ID, model.Question{
		Type:  model.QuestionText,
		Title: "Thoughts?",
	})
	require.NoError(t, err)
	require.NoError(t, surveys.Publish(context.Background(), survey.ID))
	return surveys, responses, survey.ID
}

func TestSubmitRecomputesMetrics(t *testing.T) {
	surveys, responses, surveyID := newPublishedSurvey(t)
	ctx := context.Background()

	resp, err := responses.Submit(ctx, surveyID, SubmitRequest{
		Answers: []model.Answer{{QuestionID: "whatever", Value: model.AnswerValue{Text: "fine"}}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.False(t, resp.SubmittedAt.IsZero())

	got, err := surveys.Get(ctx, surveyID)
	require.NoError(t, err)
	require.Len(t, got.Responses, 1)
	require.Equal(t, 1, got.Metrics.TotalResponses)
	require.Equal(t, len(got.Responses), got.Metrics.TotalResponses)
}

func TestSubmitUnpublishedRejected(t *testing.T) {
	repo := repository.NewSurveyRepo()
	surveys := NewSurveyService(repo, repository.NewTemplateRepo(nil), "http://localhost:8080")
	responses := NewResponseService(repo, nil)

	survey, err := surveys.Create(context.Background(), "Draft", "", "", "alice", "")
	require.NoError(t, err)

	_, err = responses.Submit(context.Background(), survey.ID, SubmitRequest{
		Answers: []model.Answer{{QuestionID: "q", Value: model.AnswerValue{Text: "x"}}},
	})
	requireCode(t, err, ErrorInvalid)
}

func TestSubmitUnknownSurvey(t *testing.T) {
	responses := NewResponseService(repository.NewSurveyRepo(), nil)

	_, err := responses.Submit(context.Background(), "missing", SubmitRequest{
		Answers: []model.Answer{{QuestionID: "q", Value: model.AnswerValue{Text: "x"}}},
	})
	requireCode(t, err, ErrorNotFound)
}

func TestSubmitEmptyAnswersRejected(t *testing.T) {
	_, responses, surveyID := newPublishedSurvey(t)

	_, err := responses.Submit(context.Background(), surveyID, SubmitRequest{})
	requireCode(t, err, ErrorInvalid)
}

func TestSubmitDuplicateSuppression(t *testing.T) {
	_, responses, surveyID := newPublishedSurvey(t)
	ctx := context.Background()

	req := SubmitRequest{
		Answers:  []model.Answer{{QuestionID: "q", Value: model.AnswerValue{Text: "x"}}},
		Metadata: &model.ResponseMetadata{RespondentKey: "device-7"},
	}
	_, err := responses.Submit(ctx, surveyID, req)
	require.NoError(t, err)

	_, err = responses.Submit(ctx, surveyID, req)
	requireCode(t, err, ErrorConflict)
}

func TestSubmitDuplicatesAllowedWhenConfigured(t *testing.T) {
	surveys, responses, surveyID := newPublishedSurvey(t)
	ctx := context.Background()

	_, err := surveys.Update(ctx, surveyID, SurveyPatch{
		Settings: &model.SurveySettings{AllowDuplicateResponses: true},
	})
	require.NoError(t, err)

	req := SubmitRequest{
		Answers:  []model.Answer{{QuestionID: "q", Value: model.AnswerValue{Text: "x"}}},
		Metadata: &model.ResponseMetadata{RespondentKey: "device-7"},
	}
	_, err = responses.Submit(ctx, surveyID, req)
	require.NoError(t, err)
	_, err = responses.Submit(ctx, surveyID, req)
	require.NoError(t, err)

	list, err := responses.List(ctx, surveyID)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
