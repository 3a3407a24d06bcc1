package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"surveyforge/internal/model"
	"surveyforge/internal/service"
)

// SurveyHandler exposes survey CRUD, question management, publication,
// sharing, distribution and team endpoints.
type SurveyHandler struct {
	surveys *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveys *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

type createSurveyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Owner       string `json:"owner"`
	TemplateID  string `json:"templateId"`
}

// Create handles POST /surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSurveyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title must not be blank")
		return
	}

	survey, err := h.surveys.Create(r.Context(), req.Title, req.Description, req.Category, req.Owner, req.TemplateID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, survey)
}

// Get handles GET /surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	survey, err := h.surveys.Get(r.Context(), mux.Vars(r)["surveyId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// List handles GET /surveys, optionally filtered by ?owner=
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")

	var (
		surveys []*model.Survey
		err     error
	)
	if owner != "" {
		surveys, err = h.surveys.ListByOwner(r.Context(), owner)
	} else {
		surveys, err = h.surveys.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, surveys)
}

// Update handles PATCH /surveys/{surveyId}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch service.SurveyPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		writeError(w, http.StatusBadRequest, "title must not be blank")
		return
	}

	survey, err := h.surveys.Update(r.Context(), mux.Vars(r)["surveyId"], patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// Publish handles POST /surveys/{surveyId}/publish
func (h *SurveyHandler) Publish(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	if err := h.surveys.Publish(r.Context(), surveyID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":          surveyID,
		"isPublished": true,
		"shareLink":   h.surveys.ShareLink(surveyID),
	})
}

// ShareLink handles GET /surveys/{surveyId}/share
func (h *SurveyHandler) ShareLink(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	if _, err := h.surveys.Get(r.Context(), surveyID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"shareLink": h.surveys.ShareLink(surveyID)})
}

// AddQuestion handles POST /surveys/{surveyId}/questions
func (h *SurveyHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var q model.Question
	if !decodeBody(w, r, &q) {
		return
	}
	added, err := h.surveys.AddQuestion(r.Context(), mux.Vars(r)["surveyId"], q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// UpdateQuestion handles PATCH /surveys/{surveyId}/questions/{questionId}
func (h *SurveyHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var patch service.QuestionPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	vars := mux.Vars(r)
	if err := h.surveys.UpdateQuestion(r.Context(), vars["surveyId"], vars["questionId"], patch); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveQuestion handles DELETE /surveys/{surveyId}/questions/{questionId}
func (h *SurveyHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.surveys.RemoveQuestion(r.Context(), vars["surveyId"], vars["questionId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

type reorderRequest struct {
	Direction string `json:"direction"`
}

// ReorderQuestion handles POST /surveys/{surveyId}/questions/{questionId}/reorder
func (h *SurveyHandler) ReorderQuestion(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	vars := mux.Vars(r)
	if err := h.surveys.ReorderQuestion(r.Context(), vars["surveyId"], vars["questionId"], req.Direction); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
}

type distributionRequest struct {
	Sent int `json:"sent"`
}

// RecordDistribution handles POST /surveys/{surveyId}/distribution
func (h *SurveyHandler) RecordDistribution(w http.ResponseWriter, r *http.Request) {
	var req distributionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.surveys.RecordDistribution(r.Context(), mux.Vars(r)["surveyId"], req.Sent); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// AddTeamMember handles POST /surveys/{surveyId}/team
func (h *SurveyHandler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	var member model.TeamMember
	if !decodeBody(w, r, &member) {
		return
	}
	if err := h.surveys.AddTeamMember(r.Context(), mux.Vars(r)["surveyId"], member); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// UpdateTeamMember handles PATCH /surveys/{surveyId}/team/{email}
func (h *SurveyHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var patch service.TeamMemberPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	vars := mux.Vars(r)
	if err := h.surveys.UpdateTeamMember(r.Context(), vars["surveyId"], vars["email"], patch); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveTeamMember handles DELETE /surveys/{surveyId}/team/{email}
func (h *SurveyHandler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.surveys.RemoveTeamMember(r.Context(), vars["surveyId"], vars["email"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// AddReminder handles POST /surveys/{surveyId}/reminders
func (h *SurveyHandler) AddReminder(w http.ResponseWriter, r *http.Request) {
	var reminder model.Reminder
	if !decodeBody(w, r, &reminder) {
		return
	}
	added, err := h.surveys.AddReminder(r.Context(), mux.Vars(r)["surveyId"], reminder)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// UpdateReminder handles PATCH /surveys/{surveyId}/reminders/{reminderId}
func (h *SurveyHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	var updates model.Reminder
	if !decodeBody(w, r, &updates) {
		return
	}
	vars := mux.Vars(r)
	if err := h.surveys.UpdateReminder(r.Context(), vars["surveyId"], vars["reminderId"], updates); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveReminder handles DELETE /surveys/{surveyId}/reminders/{reminderId}
func (h *SurveyHandler) RemoveReminder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.surveys.RemoveReminder(r.Context(), vars["surveyId"], vars["reminderId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// UpdateDeployment handles PUT /surveys/{surveyId}/deployment
func (h *SurveyHandler) UpdateDeployment(w http.ResponseWriter, r *http.Request) {
	var settings model.DeploymentSettings
	if !decodeBody(w, r, &settings) {
		return
	}
	if err := h.surveys.UpdateDeployment(r.Context(), mux.Vars(r)["surveyId"], settings); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AddIntegration handles POST /surveys/{surveyId}/integrations
func (h *SurveyHandler) AddIntegration(w http.ResponseWriter, r *http.Request) {
	var integration model.Integration
	if !decodeBody(w, r, &integration) {
		return
	}
	if err := h.surveys.AddIntegration(r.Context(), mux.Vars(r)["surveyId"], integration); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// RemoveIntegration handles DELETE /surveys/{surveyId}/integrations/{type}
func (h *SurveyHandler) RemoveIntegration(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.surveys.RemoveIntegration(r.Context(), vars["surveyId"], vars["type"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
