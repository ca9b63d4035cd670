package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"social-client/auth"
	"social-client/client"

	"github.com/gorilla/mux"
)

// TokenServer answers token checks for local development and tests.
type TokenServer struct {
	log    *slog.Logger
	secret []byte
}

func NewTokenServer(log *slog.Logger, secret []byte) *TokenServer {
	return &TokenServer{log: log, secret: secret}
}

func (s *TokenServer) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc(client.CheckTokenPath, s.checkToken).Methods(http.MethodPost)
	return r
}

// checkToken replies with a bare JSON boolean. A body that cannot be decoded
// is answered with false rather than an error status, so clients treat it as
// an expired session.
func (s *TokenServer) checkToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	valid := false
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.log.Debug("Malformed checkToken body", "error", err)
	} else if claims, err := auth.ValidateToken(s.secret, body.Token); err != nil {
		s.log.Debug("Token rejected", "request_id", r.Header.Get(client.RequestIDHeader), "error", err)
	} else {
		valid = true
		s.log.Debug("Token accepted", "request_id", r.Header.Get(client.RequestIDHeader), "username", claims.Username)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(valid); err != nil {
		s.log.Error("Failed to write checkToken response", "error", err)
	}
}
