package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nightlight/app/enum"
	"github.com/umputun/nightlight/app/theme"
)

func TestPageState(t *testing.T) {
	tests := []struct {
		name      string
		cookie    string
		theme     enum.Theme
		bodyClass string
		iconClass string
	}{
		{name: "no cookie", cookie: "", theme: enum.ThemeLight, bodyClass: "", iconClass: "fa fa-sun"},
		{name: "dark", cookie: "true", theme: enum.ThemeDark, bodyClass: "dark-mode", iconClass: "fa fa-moon"},
		{name: "light", cookie: "false", theme: enum.ThemeLight, bodyClass: "", iconClass: "fa fa-sun"},
		{name: "junk", cookie: "dark", theme: enum.ThemeLight, bodyClass: "", iconClass: "fa fa-sun"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "darkMode", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			ps, err := NewPageState(rec, req, theme.Config{}, "/")
			require.NoError(t, err)

			assert.Equal(t, tc.theme, ps.Theme())
			assert.Equal(t, tc.bodyClass, ps.BodyClass())
			assert.Equal(t, tc.iconClass, ps.IconClass())
			assert.Empty(t, rec.Result().Cookies(), "initialize doesn't write")
		})
	}
}

func TestPageState_Toggle(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "pref", Value: "true"})
	rec := httptest.NewRecorder()
	ps, err := NewPageState(rec, req, theme.Config{StorageKey: "pref"}, "/")
	require.NoError(t, err)
	assert.Equal(t, "pref", ps.Config().StorageKey)

	th, err := ps.Toggle()
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeLight, th)
	assert.Equal(t, "", ps.BodyClass())
	assert.Equal(t, "fa fa-sun", ps.IconClass())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "pref", cookies[0].Name)
	assert.Equal(t, "false", cookies[0].Value)
}
