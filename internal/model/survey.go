package model

import "time"

// Team member roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Team member statuses
const (
	StatusActive  = "active"
	StatusPending = "pending"
)

// ValidRole reports whether r is a recognized collaborator role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

// Categories recognized for surveys and templates.
var Categories = []string{
	"Customer Experience",
	"Employee Engagement",
	"Event",
	"Market Research",
	"Education",
	"General",
}

// ValidCategory reports whether c is a recognized survey category.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// TeamMember is a user granted role-scoped access to a survey, keyed by email.
type TeamMember struct {
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	JoinedAt   time.Time  `json:"joinedAt"`
	LastActive *time.Time `json:"lastActive,omitempty"`
}

// ThemeSettings colors the respondent-facing survey view.
type ThemeSettings struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

// SurveySettings configures survey behavior
type SurveySettings struct {
	AllowEdit               bool           `json:"allowEdit"` // declared only; responses are immutable in scope
	ShowProgress            bool           `json:"showProgress"`
	ShuffleQuestions        bool           `json:"shuffleQuestions"`
	AllowDuplicateResponses bool           `json:"allowDuplicateResponses"`
	Theme                   *ThemeSettings `json:"theme,omitempty"`
}

// ReminderFrequency values
const (
	ReminderDaily  = "daily"
	ReminderWeekly = "weekly"
	ReminderCustom = "custom"
)

// ReminderConditions narrows which respondents a reminder targets.
type ReminderConditions struct {
	NoResponse      bool `json:"noResponse,omitempty"`
	PartialResponse bool `json:"partialResponse,omitempty"`
	CustomDays      int  `json:"customDays,omitempty"`
}

// Reminder is a scheduled nudge attached to a survey. No scheduler runs in
// this service; reminders are data managed through the API.
type Reminder struct {
	ID         string              `json:"id"`
	SurveyID   string              `json:"surveyId"`
	Message    string              `json:"message"`
	Frequency  string              `json:"frequency"`
	Status     string              `json:"status"` // active or paused
	LastSent   *time.Time          `json:"lastSent,omitempty"`
	NextSend   time.Time           `json:"nextSend"`
	Conditions *ReminderConditions `json:"conditions,omitempty"`
}

// DeploymentSchedule bounds when a survey is distributed.
type DeploymentSchedule struct {
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Frequency string     `json:"frequency,omitempty"` // once, daily, weekly, monthly
}

// DeploymentTargeting narrows the distribution audience.
type DeploymentTargeting struct {
	Demographics []string `json:"demographics,omitempty"`
	Locations    []string `json:"locations,omitempty"`
	Languages    []string `json:"languages,omitempty"`
}

// DeploymentSettings describes how a survey is distributed.
type DeploymentSettings struct {
	Channels  []string             `json:"channels"` // web, email, sms, phone, in-person
	Schedule  *DeploymentSchedule  `json:"schedule,omitempty"`
	Targeting *DeploymentTargeting `json:"targeting,omitempty"`
}

// Integration is a third-party hookup attached to a survey.
type Integration struct {
	Type     string            `json:"type"` // crm, analytics, email, messaging
	Provider string            `json:"provider"`
	Config   map[string]string `json:"config,omitempty"`
	Status   string            `json:"status"` // active or inactive
}

// Survey is the top-level aggregate of questions, responses, collaborators
// and settings
type Survey struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	Owner         string              `json:"owner,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Questions     []Question          `json:"questions"`
	Collaborators []TeamMember        `json:"collaborators"`
	Responses     []Response          `json:"responses"`
	IsPublished   bool                `json:"isPublished"`
	Reminders     []Reminder          `json:"reminders,omitempty"`
	Integrations  []Integration       `json:"integrations,omitempty"`
	Deployment    *DeploymentSettings `json:"deployment,omitempty"`
	Metrics       ResponseMetrics     `json:"metrics"`
	Settings      SurveySettings      `json:"settings"`
}

// QuestionIndex returns the position of the question with the given id, or -1.
func (s *Survey) QuestionIndex(questionID string) int {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return i
		}
	}
	return -1
}

// FindCollaborator returns the collaborator with the given email, or nil.
func (s *Survey) FindCollaborator(email string) *TeamMember {
	for i := range s.Collaborators {
		if s.Collaborators[i].Email == email {
			return &s.Collaborators[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the survey so callers never alias stored state.
func (s *Survey) Clone() *Survey {
	out := *s
	out.Questions = make([]Question, len(s.Questions))
	for i := range s.Questions {
		out.Questions[i] = s.Questions[i].Clone()
	}
	if s.Collaborators != nil {
		out.Collaborators = append([]TeamMember(nil), s.Collaborators...)
	}
	out.Responses = make([]Response, len(s.Responses))
	for i := range s.Responses {
		out.Responses[i] = s.Responses[i].Clone()
	}
	if s.Reminders != nil {
		out.Reminders = append([]Reminder(nil), s.Reminders...)
	}
	if s.Integrations != nil {
		out.Integrations = append([]Integration(nil), s.Integrations...)
	}
	if s.Deployment != nil {
		dep := *s.Deployment
		out.Deployment = &dep
	}
	if s.Settings.Theme != nil {
		theme := *s.Settings.Theme
		out.Settings.Theme = &theme
	}
	out.Metrics = s.Metrics.Clone()
	return &out
}
