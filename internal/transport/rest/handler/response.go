package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"surveyforge/internal/service"
)

// ResponseHandler exposes response submission and listing.
type ResponseHandler struct {
	responses *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responses *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responses: responses}
}

// Submit handles POST /surveys/{surveyId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	response, err := h.responses.Submit(r.Context(), mux.Vars(r)["surveyId"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

// List handles GET /surveys/{surveyId}/responses
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	responses, err := h.responses.List(r.Context(), mux.Vars(r)["surveyId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, responses)
}
