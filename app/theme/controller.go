// Package theme implements the dark/light toggle controller. It keeps the persisted
// preference, the root style flag and the toggle icon marker in sync. The controller
// works over small Document, Element and Storage interfaces, implemented by the in-memory
// Page and MemoryStorage here, by cookies in the web server and by the browser in the
// js/wasm binding.
package theme

import (
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/nightlight/app/enum"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage

// ErrElementMissing is returned when the root or the icon element is not on the page.
var ErrElementMissing = errors.New("element missing")

// Element is a page element with a class list.
type Element interface {
	AddClass(name string)
	RemoveClass(name string)
	ToggleClass(name string) bool // returns true if the class is present after the call
	HasClass(name string) bool
}

// Document gives access to the root element and to elements by id.
type Document interface {
	Body() (Element, bool)
	ElementByID(id string) (Element, bool)
}

// Storage is a persistent string key-value store, like browser local storage.
type Storage interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
}

// Config defines names used on the page and in storage.
type Config struct {
	StorageKey string // key of the persisted preference
	RootClass  string // class set on the body in dark mode
	IconID     string // id of the toggle icon element
	SunClass   string // icon class for light mode
	MoonClass  string // icon class for dark mode
}

// DefaultConfig returns names used by the stock page.
func DefaultConfig() Config {
	return Config{
		StorageKey: "darkMode",
		RootClass:  "dark-mode",
		IconID:     "toggle-icon",
		SunClass:   "fa-sun",
		MoonClass:  "fa-moon",
	}
}

// IconClass returns the css class for the icon marker.
func (c Config) IconClass(icon enum.Icon) string {
	if icon == enum.IconMoon {
		return c.MoonClass
	}
	return c.SunClass
}

// Validate checks that icon markers differ and that nothing collides with the root class.
func (c Config) Validate() error {
	c = c.WithDefaults()
	if c.SunClass == c.MoonClass {
		return fmt.Errorf("sun and moon icon classes must differ, both are %q", c.SunClass)
	}
	if c.RootClass == c.SunClass || c.RootClass == c.MoonClass {
		return fmt.Errorf("root class %q is used as an icon class", c.RootClass)
	}
	return nil
}

// WithDefaults returns the config with empty fields filled from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.StorageKey == "" {
		c.StorageKey = def.StorageKey
	}
	if c.RootClass == "" {
		c.RootClass = def.RootClass
	}
	if c.IconID == "" {
		c.IconID = def.IconID
	}
	if c.SunClass == "" {
		c.SunClass = def.SunClass
	}
	if c.MoonClass == "" {
		c.MoonClass = def.MoonClass
	}
	return c
}

// Controller reflects the persisted theme preference onto the page.
// Not safe for concurrent use, a controller belongs to a single page.
type Controller struct {
	doc     Document
	storage Storage
	cfg     Config
	logger  lgr.L
	current enum.Theme
}

// Option customizes a Controller.
type Option func(c *Controller)

// WithLogger sets the logger for debug traces, lgr.NoOp by default.
func WithLogger(l lgr.L) Option {
	return func(c *Controller) { c.logger = l }
}

// New makes a controller for the document, persisting to storage. Empty config fields
// are filled from DefaultConfig.
func New(doc Document, storage Storage, cfg Config, opts ...Option) *Controller {
	res := &Controller{
		doc:     doc,
		storage: storage,
		cfg:     cfg.WithDefaults(),
		logger:  lgr.NoOp,
		current: enum.ThemeLight,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Config returns the effective configuration.
func (c *Controller) Config() Config { return c.cfg }

// Theme returns the theme applied by the last Initialize or Toggle.
func (c *Controller) Theme() enum.Theme { return c.current }

// Initialize applies the persisted preference to the page. Only the stored value "true"
// selects dark, everything else selects light. The root flag is set or cleared explicitly,
// so calling Initialize again with the same storage leaves the page unchanged.
func (c *Controller) Initialize() error {
	root, icon, err := c.elements()
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	stored, _ := c.storage.GetItem(c.cfg.StorageKey)
	th := enum.ThemeFromStored(stored)
	c.apply(root, icon, th)
	c.logger.Logf("[DEBUG] theme initialized to %s, stored %q", th, stored)
	return nil
}

// Toggle flips the root flag, switches the icon marker and persists the new state.
// If the preference can't be written, the page is restored to the previous state.
func (c *Controller) Toggle() (enum.Theme, error) {
	root, icon, err := c.elements()
	if err != nil {
		return c.current, fmt.Errorf("toggle: %w", err)
	}

	th := enum.ThemeFromDark(root.ToggleClass(c.cfg.RootClass))
	c.setIcon(icon, th.Icon())

	if err := c.storage.SetItem(c.cfg.StorageKey, th.Stored()); err != nil {
		c.apply(root, icon, th.Toggle())
		return c.current, fmt.Errorf("toggle: save %s: %w", c.cfg.StorageKey, err)
	}
	c.current = th
	c.logger.Logf("[DEBUG] theme toggled to %s", th)
	return th, nil
}

// elements resolves the root and icon elements before anything is mutated.
func (c *Controller) elements() (root, icon Element, err error) {
	root, ok := c.doc.Body()
	if !ok || root == nil {
		return nil, nil, fmt.Errorf("body: %w", ErrElementMissing)
	}
	icon, ok = c.doc.ElementByID(c.cfg.IconID)
	if !ok || icon == nil {
		return nil, nil, fmt.Errorf("#%s: %w", c.cfg.IconID, ErrElementMissing)
	}
	return root, icon, nil
}

func (c *Controller) apply(root, icon Element, th enum.Theme) {
	if th.IsDark() {
		root.AddClass(c.cfg.RootClass)
	} else {
		root.RemoveClass(c.cfg.RootClass)
	}
	c.setIcon(icon, th.Icon())
	c.current = th
}

// setIcon sets the marker and clears the other one, exactly one is present afterwards.
func (c *Controller) setIcon(icon Element, marker enum.Icon) {
	icon.RemoveClass(c.cfg.IconClass(marker.Other()))
	icon.AddClass(c.cfg.IconClass(marker))
}
