package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"surveyforge/internal/model"
	"surveyforge/internal/repository"
)

// Default options substituted when a choice question is added without any.
var defaultChoiceOptions = []string{"Option 1", "Option 2", "Option 3"}

// Question reorder directions.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// SurveyService handles survey CRUD, question management, publication, team
// management and the distribution-related supplements.
type SurveyService struct {
	surveyRepo   repository.SurveyRepo
	templateRepo repository.TemplateRepo
	shareBaseURL string
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo, templateRepo repository.TemplateRepo, shareBaseURL string) *SurveyService {
	return &SurveyService{
		surveyRepo:   surveyRepo,
		templateRepo: templateRepo,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
	}
}

// SurveyPatch is a partial survey update. Nil fields are left untouched.
// The whole patch is validated before any field is applied.
type SurveyPatch struct {
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	Category    *string               `json:"category,omitempty"`
	Settings    *model.SurveySettings `json:"settings,omitempty"`
	Questions   []model.Question      `json:"questions,omitempty"`
}

// QuestionPatch is a partial question update.
type QuestionPatch struct {
	Type        *model.QuestionType `json:"type,omitempty"`
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Required    *bool               `json:"required,omitempty"`
	Options     []string            `json:"options,omitempty"`
	Scale       *model.ScaleConfig  `json:"scale,omitempty"`
}

// TeamMemberPatch is a partial collaborator update.
type TeamMemberPatch struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Create allocates a new survey. A known template id seeds the question list
// with clones carrying fresh ids; an unknown one is a not-found error. The
// aggregate accepts any title; blank-title refusal is the caller's policy.
func (s *SurveyService) Create(ctx context.Context, title, description, category, owner, templateID string) (*model.Survey, error) {
	if category == "" {
		category = "General"
	}
	if !model.ValidCategory(category) {
		return nil, NewInvalidError(fmt.Sprintf("unrecognized category %q", category))
	}

	survey := &model.Survey{
		Title:         title,
		Description:   description,
		Category:      category,
		Owner:         owner,
		Questions:     []model.Question{},
		Collaborators: []model.TeamMember{},
		Responses:     []model.Response{},
		Metrics:       model.ZeroMetrics(),
	}

	if templateID != "" {
		template, err := s.templateRepo.GetByID(ctx, templateID)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, NewNotFoundError("template not found")
		}
		for _, q := range template.Questions {
			clone := q.Clone()
			clone.ID = uuid.NewString()
			survey.Questions = append(survey.Questions, clone)
		}
	}

	if _, err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// Get retrieves a survey by id
func (s *SurveyService) Get(ctx context.Context, id string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, NewNotFoundError("survey not found")
	}
	return survey, nil
}

// List retrieves all surveys in creation order.
func (s *SurveyService) List(ctx context.Context) ([]*model.Survey, error) {
	return s.surveyRepo.List(ctx)
}

// ListByOwner retrieves all surveys for an owner.
func (s *SurveyService) ListByOwner(ctx context.Context, owner string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByOwner(ctx, owner)
}

// Update merges the patch into the survey atomically: every field is
// validated first and the survey is rewritten in one repository call, so a
// rejected patch leaves no partial application behind.
func (s *SurveyService) Update(ctx context.Context, id string, patch SurveyPatch) (*model.Survey, error) {
	survey, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Category != nil && !model.ValidCategory(*patch.Category) {
		return nil, NewInvalidError(fmt.Sprintf("unrecognized category %q", *patch.Category))
	}
	if patch.Questions != nil {
		if err := validateQuestionList(patch.Questions); err != nil {
			return nil, err
		}
	}

	if patch.Title != nil {
		survey.Title = *patch.Title
	}
	if patch.Description != nil {
		survey.Description = *patch.Description
	}
	if patch.Category != nil {
		survey.Category = *patch.Category
	}
	if patch.Settings != nil {
		survey.Settings = *patch.Settings
	}
	if patch.Questions != nil {
		survey.Questions = patch.Questions
	}

	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

func validateQuestionList(questions []model.Question) error {
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if q.ID == "" {
			return NewInvalidError("question id must not be empty")
		}
		if seen[q.ID] {
			return NewInvalidError(fmt.Sprintf("duplicate question id %q", q.ID))
		}
		seen[q.ID] = true
		if !model.ValidQuestionType(q.Type) {
			return NewInvalidError(fmt.Sprintf("unrecognized question type %q", q.Type))
		}
		if q.IsChoice() && len(q.Options) < 2 {
			return NewInvalidError(fmt.Sprintf("question %q needs at least 2 options", q.ID))
		}
	}
	return nil
}

// AddQuestion appends a question with a freshly generated id. Choice
// questions without options get the default three; rating/scale questions
// without a config get a 1-5 scale.
func (s *SurveyService) AddQuestion(ctx context.Context, surveyID string, q model.Question) (*model.Question, error) {
	if !model.ValidQuestionType(q.Type) {
		return nil, NewInvalidError(fmt.Sprintf("unrecognized question type %q", q.Type))
	}
	if q.IsChoice() {
		if len(q.Options) == 0 {
			q.Options = append([]string(nil), defaultChoiceOptions...)
		} else if len(q.Options) < 2 {
			return nil, NewInvalidError("choice questions need at least 2 options")
		}
	} else {
		q.Options = nil
	}
	if q.IsScaled() && q.Scale == nil {
		q.Scale = &model.ScaleConfig{Size: model.DefaultScaleSize}
	}
	if !q.IsScaled() {
		q.Scale = nil
	}

	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	q.ID = uuid.NewString()
	survey.Questions = append(survey.Questions, q)
	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuestion merges the patch into the question with the given id.
func (s *SurveyService) UpdateQuestion(ctx context.Context, surveyID, questionID string, patch QuestionPatch) error {
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	idx := survey.QuestionIndex(questionID)
	if idx < 0 {
		return NewNotFoundError("question not found")
	}

	q := &survey.Questions[idx]
	if patch.Type != nil {
		if !model.ValidQuestionType(*patch.Type) {
			return NewInvalidError(fmt.Sprintf("unrecognized question type %q", *patch.Type))
		}
		q.Type = *patch.Type
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
	if patch.Options != nil {
		q.Options = patch.Options
	}
	if patch.Scale != nil {
		q.Scale = patch.Scale
	}

	// Re-normalize after a possible type change.
	if q.IsChoice() {
		if len(q.Options) == 0 {
			q.Options = append([]string(nil), defaultChoiceOptions...)
		} else if len(q.Options) < 2 {
			return NewInvalidError("choice questions need at least 2 options")
		}
		q.Scale = nil
	} else {
		q.Options = nil
		if q.IsScaled() && q.Scale == nil {
			q.Scale = &model.ScaleConfig{Size: model.DefaultScaleSize}
		}
		if !q.IsScaled() {
			q.Scale = nil
		}
	}

	return s.surveyRepo.Update(ctx, survey)
}

// RemoveQuestion deletes the question with the given id. Recorded responses
// are left untouched; answers referencing the removed id simply stop
// contributing to aggregation.
func (s *SurveyService) RemoveQuestion(ctx context.Context, surveyID, questionID string) error {
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	idx := survey.QuestionIndex(questionID)
	if idx < 0 {
		return NewNotFoundError("question not found")
	}
	survey.Questions = append(survey.Questions[:idx], survey.Questions[idx+1:]...)
	return s.surveyRepo.Update(ctx, survey)
}

// ReorderQuestion swaps the question with its immediate neighbor. Moving the
// first question up or the last one down is a no-op.
func (s *SurveyService) ReorderQuestion(ctx context.Context, surveyID, questionID, direction string) error {
	if direction != DirectionUp && direction != DirectionDown {
		return NewInvalidError(fmt.Sprintf("unrecognized direction %q", direction))
	}
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	idx := survey.QuestionIndex(questionID)
	if idx < 0 {
		return NewNotFoundError("question not found")
	}

	switch {
	case direction == DirectionUp && idx > 0:
		survey.Questions[idx-1], survey.Questions[idx] = survey.Questions[idx], survey.Questions[idx-1]
	case direction == DirectionDown && idx < len(survey.Questions)-1:
		survey.Questions[idx], survey.Questions[idx+1] = survey.Questions[idx+1], survey.Questions[idx]
	default:
		return nil // boundary, nothing to do
	}
	return s.surveyRepo.Update(ctx, survey)
}

// Publish flips the survey to published. The transition is one-way and
// idempotent, and a survey without questions cannot be published.
func (s *SurveyService) Publish(ctx context.Context, id string) error {
	survey, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if survey.IsPublished {
		return nil
	}
	if len(survey.Questions) == 0 {
		return NewInvalidError("cannot publish a survey without questions")
	}
	survey.IsPublished = true
	return s.surveyRepo.Update(ctx, survey)
}

// ShareLink returns the public survey-taking URL. Links are deterministic,
// unsigned and never expire: anyone holding the id can open a published
// survey.
func (s *SurveyService) ShareLink(surveyID string) string {
	return fmt.Sprintf("%s/survey/%s", s.shareBaseURL, surveyID)
}

// RecordDistribution adds to the survey's totalSent counter and recomputes
// metrics so responseRate has a denominator.
func (s *SurveyService) RecordDistribution(ctx context.Context, surveyID string, sent int) error {
	if sent <= 0 {
		return NewInvalidError("sent count must be positive")
	}
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	survey.Metrics = ComputeMetrics(survey.Questions, survey.Responses, survey.Metrics.TotalSent+sent)
	return s.surveyRepo.Update(ctx, survey)
}

// AddTeamMember adds a collaborator keyed by email. Duplicate emails and
// malformed addresses are rejected.
func (s *SurveyService) AddTeamMember(ctx context.Context, surveyID string, member model.TeamMember) error {
	if !validEmail(member.Email) {
		return NewInvalidError(fmt.Sprintf("invalid email %q", member.Email))
	}
	if member.Role == "" {
		member.Role = model.RoleViewer
	}
	if !model.ValidRole(member.Role) {
		return NewInvalidError(fmt.Sprintf("unrecognized role %q", member.Role))
	}
	if member.Status == "" {
		member.Status = model.StatusPending
	}

	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	if survey.FindCollaborator(member.Email) != nil {
		return NewConflictError(fmt.Sprintf("%s is already a collaborator", member.Email))
	}
	member.JoinedAt = time.Now().UTC()
	survey.Collaborators = append(survey.Collaborators, member)
	return s.surveyRepo.Update(ctx, survey)
}

// UpdateTeamMember merges the patch into the collaborator with the given
// email. Admins cannot be demoted.
func (s *SurveyService) UpdateTeamMember(ctx context.Context, surveyID, email string, patch TeamMemberPatch) error {
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	member := survey.FindCollaborator(email)
	if member == nil {
		return NewNotFoundError("collaborator not found")
	}
	if patch.Role != nil {
		if !model.ValidRole(*patch.Role) {
			return NewInvalidError(fmt.Sprintf("unrecognized role %q", *patch.Role))
		}
		if member.Role == model.RoleAdmin && *patch.Role != model.RoleAdmin {
			return NewInvalidError("admins cannot be demoted")
		}
		member.Role = *patch.Role
	}
	if patch.Status != nil {
		if *patch.Status != model.StatusActive && *patch.Status != model.StatusPending {
			return NewInvalidError(fmt.Sprintf("unrecognized status %q", *patch.Status))
		}
		member.Status = *patch.Status
	}
	return s.surveyRepo.Update(ctx, survey)
}

// RemoveTeamMember removes the collaborator with the given email. Admins
// cannot be removed.
func (s *SurveyService) RemoveTeamMember(ctx context.Context, surveyID, email string) error {
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	for i := range survey.Collaborators {
		if survey.Collaborators[i].Email != email {
			continue
		}
		if survey.Collaborators[i].Role == model.RoleAdmin {
			return NewInvalidError("admins cannot be removed")
		}
		survey.Collaborators = append(survey.Collaborators[:i], survey.Collaborators[i+1:]...)
		return s.surveyRepo.Update(ctx, survey)
	}
	return NewNotFoundError("collaborator not found")
}

// AddReminder attaches a reminder with a fresh id.
func (s *SurveyService) AddReminder(ctx context.Context, surveyID string, reminder model.Reminder) (*model.Reminder, error) {
	if reminder.Message == "" {
		return nil, NewInvalidError("reminder message must not be empty")
	}
	switch reminder.Frequency {
	case model.ReminderDaily, model.ReminderWeekly, model.ReminderCustom:
	default:
		return nil, NewInvalidError(fmt.Sprintf("unrecognized frequency %q", reminder.Frequency))
	}
	if reminder.Status == "" {
		reminder.Status = "active"
	}

	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	reminder.ID = uuid.NewString()
	reminder.SurveyID = surveyID
	survey.Reminders = append(survey.Reminders, reminder)
	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// UpdateReminder replaces mutable reminder fields by id.
func (s *SurveyService) UpdateReminder(ctx context.Context, surveyID, reminderID string, updates model.Reminder) error {
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	for i := range survey.Reminders {
		if survey.Reminders[i].ID != reminderID {
			continue
		}
		if updates.Message != "" {
			survey.Reminders[i].Message = updates.Message
		}
		if updates.Frequency != "" {
			survey.Reminders[i].Frequency = updates.Frequency
		}
		if updates.Status != "" {
			survey.Reminders[i].Status = updates.Status
		}
		if !updates.NextSend.IsZero() {
			survey.Reminders[i].NextSend = updates.NextSend
		}
		if updates.Conditions != nil {
			survey.Reminders[i].Conditions = updates.Conditions
		}
		return s.surveyRepo.Update(ctx, survey)
	}
	return NewNotFoundError("reminder not found")
}

// RemoveReminder deletes a reminder by id.
func (s *SurveyService) RemoveReminder(ctx context.Context, surveyID, reminderID string) error {
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	for i := range survey.Reminders {
		if survey.Reminders[i].ID == reminderID {
			survey.Reminders = append(survey.Reminders[:i], survey.Reminders[i+1:]...)
			return s.surveyRepo.Update(ctx, survey)
		}
	}
	return NewNotFoundError("reminder not found")
}

// UpdateDeployment replaces the survey's deployment settings.
func (s *SurveyService) UpdateDeployment(ctx context.Context, surveyID string, settings model.DeploymentSettings) error {
	for _, ch := range settings.Channels {
		switch ch {
		case "web", "email", "sms", "phone", "in-person":
		default:
			return NewInvalidError(fmt.Sprintf("unrecognized channel %q", ch))
		}
	}
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	survey.Deployment = &settings
	return s.surveyRepo.Update(ctx, survey)
}

// AddIntegration attaches an integration to the survey.
func (s *SurveyService) AddIntegration(ctx context.Context, surveyID string, integration model.Integration) error {
	switch integration.Type {
	case "crm", "analytics", "email", "messaging":
	default:
		return NewInvalidError(fmt.Sprintf("unrecognized integration type %q", integration.Type))
	}
	if integration.Status == "" {
		integration.Status = "active"
	}
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	survey.Integrations = append(survey.Integrations, integration)
	return s.surveyRepo.Update(ctx, survey)
}

// RemoveIntegration removes all integrations of the given type.
func (s *SurveyService) RemoveIntegration(ctx context.Context, surveyID, integrationType string) error {
	survey, err := s.Get(ctx, surveyID)
	if err != nil {
		return err
	}
	kept := survey.Integrations[:0]
	removed := false
	for _, it := range survey.Integrations {
		if it.Type == integrationType {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return NewNotFoundError("integration not found")
	}
	survey.Integrations = kept
	return s.surveyRepo.Update(ctx, survey)
}

// validEmail checks basic address shape: one @ with a dotted domain.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
