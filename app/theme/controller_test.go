package theme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nightlight/app/enum"
)

func newTestPage() *Page {
	return NewPage(NewNode("toggle-icon", "fa"))
}

// pageState returns root flag presence and the visible icon markers.
func pageState(t *testing.T, p *Page) (dark, sun, moon bool) {
	t.Helper()
	icon := p.Node("toggle-icon")
	require.NotNil(t, icon)
	return p.BodyNode().HasClass("dark-mode"), icon.HasClass("fa-sun"), icon.HasClass("fa-moon")
}

func TestController_Initialize(t *testing.T) {
	tests := []struct {
		name     string
		storage  MemoryStorage
		wantDark bool
	}{
		{name: "empty storage", storage: MemoryStorage{}, wantDark: false},
		{name: "stored true", storage: MemoryStorage{"darkMode": "true"}, wantDark: true},
		{name: "stored false", storage: MemoryStorage{"darkMode": "false"}, wantDark: false},
		{name: "malformed", storage: MemoryStorage{"darkMode": "yes"}, wantDark: false},
		{name: "other key", storage: MemoryStorage{"theme": "true"}, wantDark: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPage()
			c := New(p, tc.storage, DefaultConfig())
			require.NoError(t, c.Initialize())

			dark, sun, moon := pageState(t, p)
			assert.Equal(t, tc.wantDark, dark)
			assert.Equal(t, !tc.wantDark, sun)
			assert.Equal(t, tc.wantDark, moon)
			assert.Equal(t, enum.ThemeFromDark(tc.wantDark), c.Theme())
			assert.True(t, p.Node("toggle-icon").HasClass("fa"), "unrelated classes kept")
		})
	}
}

func TestController_InitializeIdempotent(t *testing.T) {
	for _, stored := range []string{"", "true", "false"} {
		t.Run("stored "+stored, func(t *testing.T) {
			st := MemoryStorage{}
			if stored != "" {
				st["darkMode"] = stored
			}
			p := newTestPage()
			c := New(p, st, DefaultConfig())

			require.NoError(t, c.Initialize())
			body1, icon1 := p.BodyNode().Classes(), p.Node("toggle-icon").Classes()
			require.NoError(t, c.Initialize())
			assert.Equal(t, body1, p.BodyNode().Classes())
			assert.Equal(t, icon1, p.Node("toggle-icon").Classes())
		})
	}
}

func TestController_InitializeClearsStaleRootFlag(t *testing.T) {
	st := MemoryStorage{"darkMode": "true"}
	p := newTestPage()
	c := New(p, st, DefaultConfig())
	require.NoError(t, c.Initialize())
	assert.True(t, p.BodyNode().HasClass("dark-mode"))

	// preference changed elsewhere, initialize again on the same page
	st["darkMode"] = "false"
	require.NoError(t, c.Initialize())
	dark, sun, moon := pageState(t, p)
	assert.False(t, dark)
	assert.True(t, sun)
	assert.False(t, moon)
}

func TestController_Toggle(t *testing.T) {
	t.Run("empty storage to dark", func(t *testing.T) {
		st := MemoryStorage{}
		p := newTestPage()
		c := New(p, st, DefaultConfig())

		th, err := c.Toggle()
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeDark, th)
		dark, sun, moon := pageState(t, p)
		assert.True(t, dark)
		assert.False(t, sun)
		assert.True(t, moon)
		assert.Equal(t, "true", st["darkMode"])
	})

	t.Run("stored true to light", func(t *testing.T) {
		st := MemoryStorage{"darkMode": "true"}
		p := newTestPage()
		c := New(p, st, DefaultConfig())
		require.NoError(t, c.Initialize())

		th, err := c.Toggle()
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeLight, th)
		dark, sun, moon := pageState(t, p)
		assert.False(t, dark)
		assert.True(t, sun)
		assert.False(t, moon)
		assert.Equal(t, "false", st["darkMode"])
	})

	t.Run("dark page without initialize", func(t *testing.T) {
		st := MemoryStorage{"darkMode": "true"}
		p := NewPage(NewNode("toggle-icon", "fa-moon"))
		p.BodyNode().AddClass("dark-mode")
		c := New(p, st, DefaultConfig())

		th, err := c.Toggle()
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeLight, th)
		dark, sun, moon := pageState(t, p)
		assert.False(t, dark)
		assert.True(t, sun)
		assert.False(t, moon)
		assert.Equal(t, "false", st["darkMode"])
	})

	t.Run("flips back and forth", func(t *testing.T) {
		st := MemoryStorage{}
		p := newTestPage()
		c := New(p, st, DefaultConfig())
		require.NoError(t, c.Initialize())

		expected := []string{"true", "false", "true", "false"}
		for i, want := range expected {
			_, err := c.Toggle()
			require.NoError(t, err)
			assert.Equal(t, want, st["darkMode"], "toggle #%d", i+1)
			_, sun, moon := pageState(t, p)
			assert.NotEqual(t, sun, moon, "exactly one marker after toggle #%d", i+1)
		}
	})
}

func TestController_RoundTrip(t *testing.T) {
	for _, initial := range []string{"", "true", "false", "junk"} {
		t.Run("initial "+initial, func(t *testing.T) {
			st := MemoryStorage{"darkMode": initial}
			p := newTestPage()
			c := New(p, st, DefaultConfig())
			require.NoError(t, c.Initialize())
			toggled, err := c.Toggle()
			require.NoError(t, err)
			body, icon := p.BodyNode().Classes(), p.Node("toggle-icon").Classes()

			// reload: fresh page, same storage
			reloaded := newTestPage()
			rc := New(reloaded, st, DefaultConfig())
			require.NoError(t, rc.Initialize())
			assert.Equal(t, toggled, rc.Theme())
			assert.ElementsMatch(t, body, reloaded.BodyNode().Classes())
			assert.ElementsMatch(t, icon, reloaded.Node("toggle-icon").Classes())
		})
	}
}

func TestController_MissingElements(t *testing.T) {
	t.Run("no icon", func(t *testing.T) {
		st := MemoryStorage{"darkMode": "true"}
		p := NewPage()
		c := New(p, st, DefaultConfig())

		err := c.Initialize()
		require.ErrorIs(t, err, ErrElementMissing)
		assert.Contains(t, err.Error(), "#toggle-icon")
		assert.False(t, p.BodyNode().HasClass("dark-mode"), "body untouched")

		_, err = c.Toggle()
		require.ErrorIs(t, err, ErrElementMissing)
		assert.False(t, p.BodyNode().HasClass("dark-mode"), "body untouched")
		assert.Equal(t, "true", st["darkMode"], "storage untouched")
	})

	t.Run("no body", func(t *testing.T) {
		st := MemoryStorage{}
		p := &Page{nodes: map[string]*Node{"toggle-icon": NewNode("toggle-icon")}}
		c := New(p, st, DefaultConfig())

		err := c.Initialize()
		require.ErrorIs(t, err, ErrElementMissing)
		_, err = c.Toggle()
		require.ErrorIs(t, err, ErrElementMissing)
		assert.Empty(t, p.Node("toggle-icon").Classes())
		assert.Empty(t, st)
	})
}

func TestController_CustomConfig(t *testing.T) {
	cfg := Config{StorageKey: "nl-dark", RootClass: "night", IconID: "switch", SunClass: "icon-sun", MoonClass: "icon-moon"}
	st := MemoryStorage{"nl-dark": "true"}
	p := NewPage(NewNode("switch"))
	c := New(p, st, cfg)

	require.NoError(t, c.Initialize())
	assert.True(t, p.BodyNode().HasClass("night"))
	assert.Equal(t, []string{"icon-moon"}, p.Node("switch").Classes())

	_, err := c.Toggle()
	require.NoError(t, err)
	assert.Equal(t, "false", st["nl-dark"])
	assert.Equal(t, []string{"icon-sun"}, p.Node("switch").Classes())
}

func TestController_PartialConfigDefaults(t *testing.T) {
	c := New(NewPage(), MemoryStorage{}, Config{RootClass: "night"})
	cfg := c.Config()
	assert.Equal(t, "night", cfg.RootClass)
	assert.Equal(t, "darkMode", cfg.StorageKey)
	assert.Equal(t, "toggle-icon", cfg.IconID)
	assert.Equal(t, "fa-sun", cfg.IconClass(enum.IconSun))
	assert.Equal(t, "fa-moon", cfg.IconClass(enum.IconMoon))
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, Config{}.Validate())
	require.Error(t, Config{SunClass: "same", MoonClass: "same"}.Validate())
	require.Error(t, Config{RootClass: "fa-moon"}.Validate())
}

func TestController_Logger(t *testing.T) {
	var lines []string
	logger := lgr.Func(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})
	c := New(newTestPage(), MemoryStorage{}, DefaultConfig(), WithLogger(logger))
	require.NoError(t, c.Initialize())
	_, err := c.Toggle()
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "[DEBUG] theme initialized to light"), lines[0])
	assert.Equal(t, "[DEBUG] theme toggled to dark", lines[1])
}
