package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"surveyforge/internal/model"
	"surveyforge/internal/repository"
)

// TemplateService serves the template library: the seeded builtins plus
// user-saved custom templates. Builtins are read-only.
type TemplateService struct {
	templateRepo repository.TemplateRepo
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepo) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// List returns every template, builtins first.
func (s *TemplateService) List(ctx context.Context) ([]*model.Template, error) {
	return s.templateRepo.List(ctx)
}

// Get retrieves a template by id.
func (s *TemplateService) Get(ctx context.Context, id string) (*model.Template, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, NewNotFoundError("template not found")
	}
	return template, nil
}

// SaveCustom stores a user-defined template. Question ids are regenerated so
// the template never aliases a live survey's questions.
func (s *TemplateService) SaveCustom(ctx context.Context, template *model.Template) (*model.Template, error) {
	if template.Name == "" {
		return nil, NewInvalidError("template name must not be empty")
	}
	if template.Category == "" {
		template.Category = "General"
	}
	if !model.ValidCategory(template.Category) {
		return nil, NewInvalidError(fmt.Sprintf("unrecognized category %q", template.Category))
	}
	if err := validateQuestionTypes(template.Questions); err != nil {
		return nil, err
	}

	saved := template.Clone()
	saved.ID = ""
	saved.IsCustom = true
	for i := range saved.Questions {
		saved.Questions[i].ID = uuid.NewString()
	}
	if _, err := s.templateRepo.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateCustom replaces a custom template's content. Builtins are immutable.
func (s *TemplateService) UpdateCustom(ctx context.Context, id string, updates *model.Template) (*model.Template, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.IsCustom {
		return nil, NewInvalidError("builtin templates cannot be modified")
	}
	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.Description != "" {
		existing.Description = updates.Description
	}
	if updates.Category != "" {
		if !model.ValidCategory(updates.Category) {
			return nil, NewInvalidError(fmt.Sprintf("unrecognized category %q", updates.Category))
		}
		existing.Category = updates.Category
	}
	if updates.Questions != nil {
		if err := validateQuestionTypes(updates.Questions); err != nil {
			return nil, err
		}
		existing.Questions = updates.Questions
	}
	if err := s.templateRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCustom removes a custom template. Builtins are immutable.
func (s *TemplateService) DeleteCustom(ctx context.Context, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !existing.IsCustom {
		return NewInvalidError("builtin templates cannot be deleted")
	}
	return s.templateRepo.Delete(ctx, id)
}

func validateQuestionTypes(questions []model.Question) error {
	for i := range questions {
		if !model.ValidQuestionType(questions[i].Type) {
			return NewInvalidError(fmt.Sprintf("unrecognized question type %q", questions[i].Type))
		}
	}
	return nil
}
