// Package web serves the HTML pages of the application. The pages are
// plain templates with inline scripts that talk to the JSON API.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler renders the application pages.
type Handler struct {
	templates *template.Template
}

// NewHandler parses the embedded templates and returns a page handler.
func NewHandler() *Handler {
	return &Handler{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (h *Handler) render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, nil); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Failed to render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Index redirects to the dashboard; the page guard bounces unauthenticated
// visitors on to the login page from there.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Login serves the login page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html")
}

// Dashboard serves the entry dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, "dashboard.html")
}

// Add serves the add-entry form.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	h.render(w, "add.html")
}
