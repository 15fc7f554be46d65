package internal

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/nightlight/app/enum"
	"github.com/umputun/nightlight/app/theme"
)

// PageState is the server side projection of the themed page for one request.
// The controller runs against an in-memory page backed by the request cookies,
// and templates render the resulting classes.
type PageState struct {
	page *theme.Page
	ctrl *theme.Controller
	cfg  theme.Config
}

// NewPageState makes a page projection with the toggle icon and initializes it from the
// request cookies.
func NewPageState(w http.ResponseWriter, r *http.Request, cfg theme.Config, cookiePath string) (*PageState, error) {
	cfg = cfg.WithDefaults()
	page := theme.NewPage(theme.NewNode(cfg.IconID, "fa"))
	res := &PageState{
		page: page,
		ctrl: theme.New(page, NewCookieStorage(w, r, cookiePath), cfg, theme.WithLogger(log.Default())),
		cfg:  cfg,
	}
	if err := res.ctrl.Initialize(); err != nil {
		return nil, err
	}
	return res, nil
}

// Toggle flips the theme and writes the cookie.
func (p *PageState) Toggle() (enum.Theme, error) { return p.ctrl.Toggle() }

// Theme returns the current theme.
func (p *PageState) Theme() enum.Theme { return p.ctrl.Theme() }

// Config returns the effective theme configuration.
func (p *PageState) Config() theme.Config { return p.cfg }

// BodyClass returns the class attribute of the body.
func (p *PageState) BodyClass() string { return p.page.BodyNode().ClassAttr() }

// IconClass returns the class attribute of the toggle icon.
func (p *PageState) IconClass() string { return p.page.Node(p.cfg.IconID).ClassAttr() }
