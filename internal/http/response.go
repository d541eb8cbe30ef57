package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"portfolio-backend-go/internal/services"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Detail: message})
}

// mapServiceError writes the response for known service errors and reports whether it did.
func mapServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	var verr services.ValidationError
	if errors.As(err, &verr) {
		WriteJSON(w, http.StatusBadRequest, verr.Fields)
		return true
	}
	var serr services.ServiceError
	if errors.As(err, &serr) {
		WriteError(w, serr.Status, serr.Message)
		return true
	}
	return false
}

// writeFailure maps err to a response, logging anything that is not a known service error.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	if mapServiceError(w, err) {
		return
	}
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}
