package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"surveyforge/internal/service"
)

// ReportHandler exposes aggregated reports, file exports and report email.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Get handles GET /reports/{surveyId}
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Report(r.Context(), mux.Vars(r)["surveyId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Export handles GET /reports/{surveyId}/export?format=csv|xlsx|pdf
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = service.FormatCSV
	}

	result, err := h.reports.Export(r.Context(), mux.Vars(r)["surveyId"], format)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		log.Printf("failed to write export body: %v", err)
	}
}

type emailReportRequest struct {
	RecipientEmail string `json:"recipientEmail"`
}

// Email handles POST /reports/{surveyId}/email
func (h *ReportHandler) Email(w http.ResponseWriter, r *http.Request) {
	var req emailReportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ack, err := h.reports.Email(r.Context(), mux.Vars(r)["surveyId"], req.RecipientEmail)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ack)
}
