package httpapi

import (
	"net/http"
	"strconv"

	"portfolio-backend-go/internal/services"
)

type MarkMessageRequest struct {
	IsRead *bool `json:"is_read"`
}

func (s *Server) AdminListMessages(w http.ResponseWriter, r *http.Request) {
	filter := services.MessageFilter{}
	if raw := r.URL.Query().Get("is_read"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			filter.IsRead = &value
		}
	}
	items, err := services.ListMessages(r.Context(), s.DB, filter)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) AdminGetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	item, err := services.GetMessage(r.Context(), s.DB, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// AdminMarkMessage only toggles is_read; the message itself is read-only.
func (s *Server) AdminMarkMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	var req MarkMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsRead == nil {
		mapServiceError(w, services.FieldError("is_read", "This field is required."))
		return
	}
	item, err := services.MarkMessageRead(r.Context(), s.DB, id, *req.IsRead)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) AdminDeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	if err := services.DeleteMessage(r.Context(), s.DB, id); err != nil {
		writeFailure(w, r, err)
		return
	}
	auditf(r, "deleted message %d", id)
	w.WriteHeader(http.StatusNoContent)
}
