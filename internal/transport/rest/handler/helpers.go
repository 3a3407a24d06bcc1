package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"surveyforge/internal/service"
)

// writeJSON sends a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError sends a JSON error response with the given status code
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the service error taxonomy onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	if se, ok := service.AsServiceError(err); ok {
		switch se.Code {
		case service.ErrorInvalid:
			writeError(w, http.StatusBadRequest, se.Message)
		case service.ErrorNotFound:
			writeError(w, http.StatusNotFound, se.Message)
		case service.ErrorConflict:
			writeError(w, http.StatusConflict, se.Message)
		case service.ErrorUnavailable:
			writeError(w, http.StatusBadGateway, se.Message)
		default:
			writeError(w, http.StatusInternalServerError, se.Message)
		}
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// decodeBody parses the request body into dst, reporting a 400 on bad JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
