package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"surveyforge/internal/model"
)

// SurveyRepo handles storage operations for surveys
type SurveyRepo interface {
	Create(ctx context.Context, survey *model.Survey) (string, error)
	GetByID(ctx context.Context, id string) (*model.Survey, error)
	GetByOwner(ctx context.Context, owner string) ([]*model.Survey, error)
	List(ctx context.Context) ([]*model.Survey, error)
	Update(ctx context.Context, survey *model.Survey) error
	Delete(ctx context.Context, id string) error
}

// surveyRepo keeps all surveys in memory, guarded by a RWMutex. The service
// deliberately has no persistence layer; the repository exists so callers
// depend on an injected interface instead of ambient state.
type surveyRepo struct {
	mu      sync.RWMutex
	surveys map[string]*model.Survey
	order   []string // insertion order for stable listings
}

// NewSurveyRepo creates a new in-memory survey repository
func NewSurveyRepo() SurveyRepo {
	return &surveyRepo{
		surveys: make(map[string]*model.Survey),
	}
}

func (r *surveyRepo) Create(ctx context.Context, survey *model.Survey) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	survey.CreatedAt = now
	survey.UpdatedAt = now

	r.surveys[survey.ID] = survey.Clone()
	r.order = append(r.order, survey.ID)
	return survey.ID, nil
}

func (r *surveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	survey, ok := r.surveys[id]
	if !ok {
		return nil, nil
	}
	return survey.Clone(), nil
}

func (r *surveyRepo) GetByOwner(ctx context.Context, owner string) ([]*model.Survey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Survey
	for _, id := range r.order {
		if s, ok := r.surveys[id]; ok && s.Owner == owner {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

func (r *surveyRepo) List(ctx context.Context) ([]*model.Survey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Survey, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.surveys[id]; ok {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

func (r *surveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.surveys[survey.ID]
	if !ok {
		return ErrNotFound
	}
	survey.CreatedAt = stored.CreatedAt
	survey.UpdatedAt = time.Now().UTC()
	r.surveys[survey.ID] = survey.Clone()
	return nil
}

func (r *surveyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.surveys[id]; !ok {
		return ErrNotFound
	}
	delete(r.surveys, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
