package validation

import "strings"

// Theme holds the colors a floating input is drawn with, as lipgloss color
// strings (ANSI codes or hex).
type Theme struct {
	Name        string
	Background  string
	Text        string
	Cursor      string
	Placeholder string
	Divider     string
	Accent      string
	Warning     string
}

var (
	// StandardTheme suits light and default terminal backgrounds.
	StandardTheme = Theme{
		Name:        "standard",
		Background:  "",
		Text:        "252",
		Cursor:      "205",
		Placeholder: "241",
		Divider:     "241",
		Accent:      "205",
		Warning:     "196",
	}
	// DarkTheme paints an explicit dark background.
	DarkTheme = Theme{
		Name:        "dark",
		Background:  "16",
		Text:        "255",
		Cursor:      "63",
		Placeholder: "244",
		Divider:     "238",
		Accent:      "63",
		Warning:     "203",
	}
)

// LookupTheme resolves a theme by name. Unknown names fall back to
// StandardTheme and report false.
func LookupTheme(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StandardTheme.Name, "":
		return StandardTheme, true
	case DarkTheme.Name:
		return DarkTheme, true
	default:
		return StandardTheme, false
	}
}
