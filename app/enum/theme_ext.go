package enum

import "strconv"

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is dark.
func (t Theme) IsDark() bool { return t == ThemeDark }

// Icon returns the icon marker shown for the theme, moon for dark and sun for light.
func (t Theme) Icon() Icon {
	if t == ThemeDark {
		return IconMoon
	}
	return IconSun
}

// Stored returns the persisted form of the theme, "true" for dark and "false" for light.
func (t Theme) Stored() string { return strconv.FormatBool(t == ThemeDark) }

// ThemeFromStored converts a persisted value back to a theme.
// Only the exact string "true" means dark, anything else (including empty) is light.
func ThemeFromStored(v string) Theme {
	if v == "true" {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeFromDark maps a dark flag to a theme.
func ThemeFromDark(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
