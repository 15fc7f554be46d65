// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/http"

	"github.com/umputun/nightlight/app/theme"
)

// CookieStorage is a theme.Storage kept in browser cookies. Values are read from the
// request and written to the response, so nothing is persisted on the server.
// Values set during the request are visible to later reads of the same request.
type CookieStorage struct {
	r       *http.Request
	w       http.ResponseWriter
	path    string
	written map[string]string
}

// NewCookieStorage makes a cookie storage for a single request. path is the cookie path,
// "/" if empty.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, path string) *CookieStorage {
	if path == "" {
		path = "/"
	}
	return &CookieStorage{r: r, w: w, path: path, written: map[string]string{}}
}

// GetItem returns the cookie value for the key.
func (c *CookieStorage) GetItem(key string) (string, bool) {
	if v, ok := c.written[key]; ok {
		return v, true
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

// SetItem sets the cookie on the response. The browser client writes the same cookie.
func (c *CookieStorage) SetItem(key, value string) error {
	http.SetCookie(c.w, theme.NewCookie(key, value, c.path))
	c.written[key] = value
	return nil
}
