package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
)

// handleIndex renders the page with the theme taken from the cookie.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ps, err := h.pageState(w, r)
	if err != nil {
		log.Printf("[ERROR] failed to build page state: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := templateData{
		Title:      h.title,
		Theme:      ps.Theme().String(),
		BodyClass:  ps.BodyClass(),
		Names:      ps.Config(),
		IconClass:  ps.IconClass(),
		CookiePath: h.cookiePath(),
		BaseURL:    h.baseURL,
		Wasm:       h.wasm,
		Version:    h.version,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle toggles the theme between light and dark for browsers without the
// wasm client. The preference goes to the cookie and the page is reloaded.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	ps, err := h.pageState(w, r)
	if err != nil {
		log.Printf("[ERROR] failed to build page state: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	th, err := ps.Toggle()
	if err != nil {
		log.Printf("[WARN] failed to toggle theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	log.Printf("[DEBUG] theme switched to %s", th)
	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}
