// Package statusline provides the status bar and command line drawn at
// the bottom of the screen.
package statusline

import (
	"github.com/Larsouille25/ri/internal/editor"
	"github.com/Larsouille25/ri/internal/renderer/backend"
	"github.com/Larsouille25/ri/internal/renderer/core"
)

const (
	// modeColumn is where the mode mnemonic starts.
	modeColumn = 1

	// messageGap is the number of columns between the mnemonic and the
	// status message.
	messageGap = 3

	// cursorGlyph is drawn after the command buffer.
	cursorGlyph = "█"
)

// StatusLine renders the bottom two rows: the status bar on the
// second-to-last row and, in command mode, the command line on the last.
type StatusLine struct {
	commandPrompt string
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{commandPrompt: ":"}
}

// Rows returns the status bar and command line rows for a viewport.
// ok is false when the viewport is too short to hold both.
func Rows(vp core.Viewport) (status, command int, ok bool) {
	if vp.Rows < 2 || vp.Cols < 1 {
		return 0, 0, false
	}
	return vp.Rows - 2, vp.Rows - 1, true
}

// Render draws the status line for ed into b.
// Viewports with fewer than two rows are skipped.
func (s *StatusLine) Render(b backend.Backend, vp core.Viewport, ed *editor.Editor) {
	statusRow, commandRow, ok := Rows(vp)
	if !ok {
		return
	}

	theme := ed.Theme()
	s.renderStatusBar(b, vp, statusRow, ed, theme)

	if ed.Mode() == editor.Command {
		s.renderCommandLine(b, vp, commandRow, ed.CommandLine(), theme)
	}
}

// renderStatusBar fills the row with the bar color, then draws the mode
// and the status message.
func (s *StatusLine) renderStatusBar(b backend.Backend, vp core.Viewport, row int, ed *editor.Editor, theme editor.Theme) {
	barStyle := core.DefaultStyle().
		WithBackground(theme.StatusBarBG).
		WithForeground(theme.HintFG)

	b.Fill(vp.RowRect(row), core.Cell{Rune: ' ', Width: 1, Style: barStyle})

	col := core.DrawText(b, vp, modeColumn, row, ed.Mode().String(), barStyle)

	if msg, ok := ed.Status().Get(); ok {
		core.DrawText(b, vp, col+messageGap, row, msg, barStyle)
	}
}

// renderCommandLine draws the prompt, the live buffer and a block cursor
// on the default background.
func (s *StatusLine) renderCommandLine(b backend.Backend, vp core.Viewport, row int, buffer string, theme editor.Theme) {
	style := core.DefaultStyle().
		WithBackground(theme.DefaultBG).
		WithForeground(theme.HintFG)

	col := core.DrawText(b, vp, 0, row, s.commandPrompt, style)
	col = core.DrawText(b, vp, col, row, buffer, style)
	core.DrawText(b, vp, col, row, cursorGlyph, style)
}
