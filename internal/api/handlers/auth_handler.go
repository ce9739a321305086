package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/letsshopbd/subtrack/internal/services"
	"github.com/letsshopbd/subtrack/internal/session"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	service  services.UserServiceProvider
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// Login validates credentials and issues the session cookie. rememberMe
// selects the 30-day lifetime over the 1-day default.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if _, err := h.service.Authenticate(payload.Email, payload.Password); err != nil {
		log.Warn().Str("email", payload.Email).Msg("Failed login attempt")
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.sessions.Issue(w, payload.RememberMe)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
