// Package api provides JSON handlers for reading and toggling the theme preference.
package api

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/nightlight/app/server/internal"
	"github.com/umputun/nightlight/app/theme"
)

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	theme      theme.Config
	cookiePath string
}

// ThemeResponse describes the theme preference held by the caller's browser.
type ThemeResponse struct {
	Theme     string `json:"theme"`
	Dark      bool   `json:"dark"`
	Icon      string `json:"icon"`
	IconClass string `json:"icon_class"`
	BodyClass string `json:"body_class"`
}

// New creates a new API handler. cookiePath is the path of the preference cookie.
func New(cfg theme.Config, cookiePath string) *Handler {
	return &Handler{theme: cfg.WithDefaults(), cookiePath: cookiePath}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("POST /theme", h.handleToggle)
}

// handleGet returns the current preference.
// GET /api/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ps, err := internal.NewPageState(w, r, h.theme, h.cookiePath)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme")
		return
	}
	rest.RenderJSON(w, h.response(ps))
}

// handleToggle flips the preference and returns the new one.
// POST /api/theme
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ps, err := internal.NewPageState(w, r, h.theme, h.cookiePath)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme")
		return
	}
	th, err := ps.Toggle()
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to toggle theme")
		return
	}
	log.Printf("[DEBUG] api theme switched to %s", th)
	rest.RenderJSON(w, h.response(ps))
}

func (h *Handler) response(ps *internal.PageState) ThemeResponse {
	th := ps.Theme()
	return ThemeResponse{
		Theme:     th.String(),
		Dark:      th.IsDark(),
		Icon:      th.Icon().String(),
		IconClass: h.theme.IconClass(th.Icon()),
		BodyClass: ps.BodyClass(),
	}
}
