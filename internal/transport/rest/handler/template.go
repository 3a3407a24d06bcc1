package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"surveyforge/internal/model"
	"surveyforge/internal/service"
)

// TemplateHandler exposes the template library.
type TemplateHandler struct {
	templates *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List handles GET /templates
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

// Get handles GET /templates/{templateId}
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	template, err := h.templates.Get(r.Context(), mux.Vars(r)["templateId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, template)
}

// Create handles POST /templates
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var template model.Template
	if !decodeBody(w, r, &template) {
		return
	}
	saved, err := h.templates.SaveCustom(r.Context(), &template)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// Update handles PATCH /templates/{templateId}
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates model.Template
	if !decodeBody(w, r, &updates) {
		return
	}
	template, err := h.templates.UpdateCustom(r.Context(), mux.Vars(r)["templateId"], &updates)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, template)
}

// Delete handles DELETE /templates/{templateId}
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.DeleteCustom(r.Context(), mux.Vars(r)["templateId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
