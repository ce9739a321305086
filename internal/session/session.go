package session

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const (
	// CookieName is the session cookie name.
	CookieName = "session"
	// markerValue is the opaque marker that proves a login happened.
	// Possession of the literal value authenticates the single app user.
	markerValue = "authenticated"

	standardMaxAge = int(24 * time.Hour / time.Second)
	extendedMaxAge = int(30 * 24 * time.Hour / time.Second)
)

// Manager issues and validates the session cookie.
type Manager struct {
	secure bool
}

// NewManager creates a Manager. secure controls the cookie's Secure flag
// and should be true in production.
func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

// Issue sets the session cookie on the response. Extended sessions last
// 30 days, standard sessions 1 day.
func (m *Manager) Issue(w http.ResponseWriter, extended bool) {
	maxAge := standardMaxAge
	if extended {
		maxAge = extendedMaxAge
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    markerValue,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// IsAuthenticated reports whether the request carries a valid session.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	return err == nil && c.Value == markerValue
}

// Require protects API routes. Requests without a valid session get a
// 401 JSON error.
func (m *Manager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.IsAuthenticated(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PageGuard intercepts page requests: protected pages without a session
// redirect to the login page, and the login page with a session redirects
// to the dashboard. Everything else passes through.
func (m *Manager) PageGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authed := m.IsAuthenticated(r)
		path := r.URL.Path

		protected := strings.HasPrefix(path, "/dashboard") || strings.HasPrefix(path, "/add")
		if protected && !authed {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if path == "/login" && authed {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
