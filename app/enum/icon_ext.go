package enum

// Other returns the opposite marker.
func (i Icon) Other() Icon {
	if i == IconMoon {
		return IconSun
	}
	return IconMoon
}
