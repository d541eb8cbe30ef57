package httpapi

import (
	"log"
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.PingContext(r.Context()); err != nil {
		log.Printf("health: %v", err)
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
