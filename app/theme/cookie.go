package theme

import (
	"net/http"
)

// CookieMaxAge is how long the theme cookie lives in the browser.
const CookieMaxAge = 365 * 24 * 60 * 60 // 1 year

// NewCookie makes the cookie holding a preference. The server and the browser client write
// the same cookie, so it is readable by scripts. The value is a theme flag, nothing secret.
func NewCookie(name, value, path string) *http.Cookie {
	if path == "" {
		path = "/"
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   CookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	}
}

// CookieValue returns the value of the named cookie from a Cookie header or document.cookie
// string. Malformed entries are skipped.
func CookieValue(header, name string) (string, bool) {
	req := http.Request{Header: http.Header{"Cookie": {header}}}
	c, err := req.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}
