package models

// Icon is the closed set of glyph identifiers the frontend knows how to
// render for a service. Unknown values resolve to IconDefault rather
// than being dispatched as free text.
type Icon string

const (
	IconDefault   Icon = "briefcase"
	IconChart     Icon = "chart"
	IconUsers     Icon = "users"
	IconGlobe     Icon = "globe"
	IconCog       Icon = "cog"
	IconLightbulb Icon = "lightbulb"
	IconShield    Icon = "shield"
	IconCompass   Icon = "compass"
)

var knownIcons = map[Icon]bool{
	IconDefault:   true,
	IconChart:     true,
	IconUsers:     true,
	IconGlobe:     true,
	IconCog:       true,
	IconLightbulb: true,
	IconShield:    true,
	IconCompass:   true,
}

// ParseIcon maps a raw icon name to a known Icon, falling back to
// IconDefault for anything unrecognized.
func ParseIcon(name string) Icon {
	icon := Icon(name)
	if knownIcons[icon] {
		return icon
	}
	return IconDefault
}
