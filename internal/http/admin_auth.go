package httpapi

import (
	"log"
	"net/http"

	"portfolio-backend-go/internal/services"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := services.Authenticate(r.Context(), s.DB, s.Tokens, req.Username, req.Password)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	token, expiresAt, err := s.Tokens.CreateAccessToken(user.ID, user.Username, []string{services.RoleAdmin})
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	log.Printf("admin login: %s", user.Username)
	WriteJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt})
}
