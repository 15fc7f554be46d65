// Package client has the browser side wiring of the theme toggle: reading names from the
// page, running Initialize once the document is loaded and Toggle on user action. It doesn't
// touch syscall/js, the wasm command adapts browser values to it.
package client

import (
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/nightlight/app/enum"
	"github.com/umputun/nightlight/app/theme"
)

// FormID is the id of the toggle form carrying the data attributes.
const FormID = "theme-form"

// Settings are the names rendered by the server into the toggle form.
type Settings struct {
	Theme      theme.Config
	CookiePath string
}

// SettingsFromDataset maps data attributes of the toggle form, attr returns a dataset value
// by its camelCase name or "" if absent. Missing names fall back to theme.DefaultConfig and
// the cookie path to "/".
func SettingsFromDataset(attr func(name string) string) Settings {
	if attr == nil {
		attr = func(string) string { return "" }
	}
	res := Settings{
		Theme: theme.Config{
			StorageKey: attr("storageKey"),
			RootClass:  attr("rootClass"),
			IconID:     attr("iconId"),
			SunClass:   attr("sunClass"),
			MoonClass:  attr("moonClass"),
		}.WithDefaults(),
		CookiePath: attr("cookiePath"),
	}
	if res.CookiePath == "" {
		res.CookiePath = "/"
	}
	return res
}

// Event is a DOM event the toggle handler cancels, a submit of the toggle form.
type Event interface {
	PreventDefault()
}

// Client runs the controller on page events.
type Client struct {
	ctrl *theme.Controller
}

// New makes a client for the controller.
func New(ctrl *theme.Controller) *Client {
	return &Client{ctrl: ctrl}
}

// Start applies the stored theme. A loaded document ("complete" ready state) is initialized
// right away, otherwise the initialization is passed to onLoad to run on the load event.
func (c *Client) Start(readyState string, onLoad func(fn func())) {
	if readyState == "complete" {
		c.initialize()
		return
	}
	onLoad(c.initialize)
}

// Toggle switches the theme. The event, if any, is canceled so the form isn't posted.
func (c *Client) Toggle(ev Event) enum.Theme {
	if ev != nil {
		ev.PreventDefault()
	}
	th, err := c.ctrl.Toggle()
	if err != nil {
		log.Printf("[WARN] can't toggle theme: %v", err)
	}
	return th
}

func (c *Client) initialize() {
	if err := c.ctrl.Initialize(); err != nil {
		log.Printf("[WARN] can't apply stored theme: %v", err)
	}
}
