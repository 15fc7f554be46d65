// Package enum defines typed enumerations shared by the theme controller and its hosts.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type icon -lower
type icon int

const (
	iconSun icon = iota
	iconMoon
)
