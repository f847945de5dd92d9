package editor

import "github.com/Larsouille25/ri/internal/renderer/core"

// Theme is the set of named colors used to draw the editor.
type Theme struct {
	// DefaultBG is the background for everything outside the status bar.
	DefaultBG core.Color

	// StatusBarBG fills the status bar row.
	StatusBarBG core.Color

	// TitleFG colors the editor name on the welcome screen.
	TitleFG core.Color

	// HintFG colors the quit hint on the welcome screen.
	HintFG core.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		DefaultBG:   core.ColorBlack,
		StatusBarBG: core.ColorFromRGB(0x14, 0x14, 0x16),
		TitleFG:     core.ColorFromRGB(87, 130, 247),
		HintFG:      core.ColorWhite,
	}
}
