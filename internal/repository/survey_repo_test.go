package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"surveyforge/internal/model"
)

func TestSurveyRepoCreateAndGet(t *testing.T) {
	repo := NewSurveyRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, &model.Survey{Title: "Feedback", Owner: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Feedback", got.Title)
	require.False(t, got.CreatedAt.IsZero())

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSurveyRepoStoresCopies(t *testing.T) {
	repo := NewSurveyRepo()
	ctx := context.Background()

	survey := &model.Survey{Title: "Feedback", Questions: []model.Question{
		{ID: "q1", Type: model.QuestionText, Title: "original"},
	}}
	id, err := repo.Create(ctx, survey)
	require.NoError(t, err)

	// mutating the caller's copy must not leak into the store
	survey.Questions[0].Title = "mutated"

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "original", got.Questions[0].Title)
}

func TestSurveyRepoUpdatePreservesCreatedAt(t *testing.T) {
	repo := NewSurveyRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, &model.Survey{Title: "Feedback"})
	require.NoError(t, err)
	created, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	created.Title = "Renamed"
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)
	require.Equal(t, created.CreatedAt, got.CreatedAt)

	require.ErrorIs(t, repo.Update(ctx, &model.Survey{ID: "nope"}), ErrNotFound)
}

func TestSurveyRepoListOrder(t *testing.T) {
	repo := NewSurveyRepo()
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, &model.Survey{Title: title, Owner: "alice"})
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "A", all[0].Title)
	require.Equal(t, "C", all[2].Title)

	mine, err := repo.GetByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 3)
}

func TestSurveyRepoDelete(t *testing.T) {
	repo := NewSurveyRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, &model.Survey{Title: "Feedback"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	require.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)
}
