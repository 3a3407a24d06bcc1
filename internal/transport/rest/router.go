package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"surveyforge/internal/transport/rest/handler"
)

// Container bundles the handlers the router wires up.
type Container struct {
	Surveys   *handler.SurveyHandler
	Responses *handler.ResponseHandler
	Templates *handler.TemplateHandler
	Reports   *handler.ReportHandler

	// CORSOrigin is the Access-Control-Allow-Origin value. Empty means "*".
	CORSOrigin string
}

// NewRouter builds the full API route table under /v1.
func NewRouter(c Container) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware(c.CORSOrigin))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()

	// Surveys
	api.HandleFunc("/surveys", c.Surveys.Create).Methods(http.MethodPost)
	api.HandleFunc("/surveys", c.Surveys.List).Methods(http.MethodGet)
	api.HandleFunc("/surveys/{surveyId}", c.Surveys.Get).Methods(http.MethodGet)
	api.HandleFunc("/surveys/{surveyId}", c.Surveys.Update).Methods(http.MethodPatch)
	api.HandleFunc("/surveys/{surveyId}/publish", c.Surveys.Publish).Methods(http.MethodPost)
	api.HandleFunc("/surveys/{surveyId}/share", c.Surveys.ShareLink).Methods(http.MethodGet)
	api.HandleFunc("/surveys/{surveyId}/distribution", c.Surveys.RecordDistribution).Methods(http.MethodPost)

	// Questions
	api.HandleFunc("/surveys/{surveyId}/questions", c.Surveys.AddQuestion).Methods(http.MethodPost)
	api.HandleFunc("/surveys/{surveyId}/questions/{questionId}", c.Surveys.UpdateQuestion).Methods(http.MethodPatch)
	api.HandleFunc("/surveys/{surveyId}/questions/{questionId}", c.Surveys.RemoveQuestion).Methods(http.MethodDelete)
	api.HandleFunc("/surveys/{surveyId}/questions/{questionId}/reorder", c.Surveys.ReorderQuestion).Methods(http.MethodPost)

	// Team
	api.HandleFunc("/surveys/{surveyId}/team", c.Surveys.AddTeamMember).Methods(http.MethodPost)
	api.HandleFunc("/surveys/{surveyId}/team/{email}", c.Surveys.UpdateTeamMember).Methods(http.MethodPatch)
	api.HandleFunc("/surveys/{surveyId}/team/{email}", c.Surveys.RemoveTeamMember).Methods(http.MethodDelete)

	// Reminders, deployment, integrations
	api.HandleFunc("/surveys/{surveyId}/reminders", c.Surveys.AddReminder).Methods(http.MethodPost)
	api.HandleFunc("/surveys/{surveyId}/reminders/{reminderId}", c.Surveys.UpdateReminder).Methods(http.MethodPatch)
	api.HandleFunc("/surveys/{surveyId}/reminders/{reminderId}", c.Surveys.RemoveReminder).Methods(http.MethodDelete)
	api.HandleFunc("/surveys/{surveyId}/deployment", c.Surveys.UpdateDeployment).Methods(http.MethodPut)
	api.HandleFunc("/surveys/{surveyId}/integrations", c.Surveys.AddIntegration).Methods(http.MethodPost)
	api.HandleFunc("/surveys/{surveyId}/integrations/{type}", c.Surveys.RemoveIntegration).Methods(http.MethodDelete)

	// Responses
	api.HandleFunc("/surveys/{surveyId}/responses", c.Responses.Submit).Methods(http.MethodPost)
	api.HandleFunc("/surveys/{surveyId}/responses", c.Responses.List).Methods(http.MethodGet)

	// Templates
	api.HandleFunc("/templates", c.Templates.List).Methods(http.MethodGet)
	api.HandleFunc("/templates", c.Templates.Create).Methods(http.MethodPost)
	api.HandleFunc("/templates/{templateId}", c.Templates.Get).Methods(http.MethodGet)
	api.HandleFunc("/templates/{templateId}", c.Templates.Update).Methods(http.MethodPatch)
	api.HandleFunc("/templates/{templateId}", c.Templates.Delete).Methods(http.MethodDelete)

	// Reports
	api.HandleFunc("/reports/{surveyId}", c.Reports.Get).Methods(http.MethodGet)
	api.HandleFunc("/reports/{surveyId}/export", c.Reports.Export).Methods(http.MethodGet)
	api.HandleFunc("/reports/{surveyId}/email", c.Reports.Email).Methods(http.MethodPost)

	return r
}

func corsMiddleware(origin string) mux.MiddlewareFunc {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
