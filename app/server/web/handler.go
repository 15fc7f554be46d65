// Package web provides HTTP handlers for the themed page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/nightlight/app/server/internal"
	"github.com/umputun/nightlight/app/theme"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string       // base URL path for reverse proxy (e.g., /nightlight)
	Title   string       // page title
	Theme   theme.Config // page and storage names
	Wasm    bool         // load the wasm client from /wasm/
	Version string
}

// Handler handles web UI requests.
type Handler struct {
	tmpl    *template.Template
	baseURL string
	title   string
	theme   theme.Config
	wasm    bool
	version string
}

// New creates a new web handler.
func New(cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = "nightlight"
	}
	return &Handler{
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
		title:   title,
		theme:   cfg.Theme.WithDefaults(),
		wasm:    cfg.Wasm,
		version: cfg.Version,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title      string
	Theme      string       // current theme name, light or dark
	BodyClass  string       // classes of the body, includes the dark flag in dark mode
	Names      theme.Config // storage and class names, passed to the wasm client
	IconClass  string       // classes of the toggle icon, one of the sun/moon markers
	CookiePath string       // path of the preference cookie, shared with the wasm client
	BaseURL    string
	Wasm       bool
	Version    string
}

// pageState builds the request's page projection, initialized from cookies.
func (h *Handler) pageState(w http.ResponseWriter, r *http.Request) (*internal.PageState, error) {
	return internal.NewPageState(w, r, h.theme, h.cookiePath())
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
