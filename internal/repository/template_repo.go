package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"surveyforge/internal/model"
)

// ErrNotFound is returned when a keyed lookup misses.
var ErrNotFound = errors.New("not found")

// TemplateRepo handles storage operations for survey templates
type TemplateRepo interface {
	Create(ctx context.Context, template *model.Template) (string, error)
	GetByID(ctx context.Context, id string) (*model.Template, error)
	List(ctx context.Context) ([]*model.Template, error)
	Update(ctx context.Context, template *model.Template) error
	Delete(ctx context.Context, id string) error
}

type templateRepo struct {
	mu        sync.RWMutex
	templates map[string]*model.Template
	order     []string
}

// NewTemplateRepo creates an in-memory template repository seeded with the
// given templates.
func NewTemplateRepo(seed []*model.Template) TemplateRepo {
	r := &templateRepo{
		templates: make(map[string]*model.Template),
	}
	for _, t := range seed {
		r.templates[t.ID] = t.Clone()
		r.order = append(r.order, t.ID)
	}
	return r
}

func (r *templateRepo) Create(ctx context.Context, template *model.Template) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	r.templates[template.ID] = template.Clone()
	r.order = append(r.order, template.ID)
	return template.ID, nil
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	return t.Clone(), nil
}

func (r *templateRepo) List(ctx context.Context) ([]*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Template, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.templates[id]; ok {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (r *templateRepo) Update(ctx context.Context, template *model.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.templates[template.ID]
	if !ok {
		return ErrNotFound
	}
	template.CreatedAt = stored.CreatedAt
	template.UpdatedAt = time.Now().UTC()
	r.templates[template.ID] = template.Clone()
	return nil
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[id]; !ok {
		return ErrNotFound
	}
	delete(r.templates, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
