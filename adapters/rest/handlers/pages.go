package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func renderPage(log *slog.Logger, w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error("render page", "page", name, "error", err)
	}
}

func NewIndexPageHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		renderPage(log, w, "index.html", map[string]any{"Username": sess.Username})
	}
}

// NewLoginPageHandler serves the login form; authenticated visitors are sent
// back to the task list.
func NewLoginPageHandler(log *slog.Logger, gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := gate.sessionFrom(r); ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		renderPage(log, w, "login.html", nil)
	}
}

func NewSignupPageHandler(log *slog.Logger, gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := gate.sessionFrom(r); ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		renderPage(log, w, "signup.html", nil)
	}
}
