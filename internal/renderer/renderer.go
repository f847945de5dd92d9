package renderer

import (
	"github.com/Larsouille25/ri/internal/editor"
	"github.com/Larsouille25/ri/internal/renderer/backend"
	"github.com/Larsouille25/ri/internal/renderer/core"
	"github.com/Larsouille25/ri/internal/renderer/statusline"
)

// Placeholder text drawn in the middle of the screen until buffers exist.
const (
	WelcomeTitle = "Ri - modern editor"
	WelcomeHint  = "Press CTRL + c to quit."
)

// Renderer draws complete frames of editor state onto a backend.
type Renderer struct {
	backend    backend.Backend
	statusLine *statusline.StatusLine

	frameCount uint64
}

// New creates a new renderer writing to the given backend.
func New(b backend.Backend) *Renderer {
	return &Renderer{
		backend:    b,
		statusLine: statusline.New(),
	}
}

// Render composes and flushes one frame.
// The viewport must be freshly sampled by the caller; nothing outside of
// it is written.
func (r *Renderer) Render(vp core.Viewport, ed *editor.Editor) {
	theme := ed.Theme()

	// Clear with the theme background.
	r.backend.Clear()
	if vp.Cols > 0 && vp.Rows > 0 {
		bg := core.DefaultStyle().WithBackground(theme.DefaultBG)
		r.backend.Fill(
			core.NewScreenRect(0, 0, vp.Rows, vp.Cols),
			core.Cell{Rune: ' ', Width: 1, Style: bg},
		)
	}

	r.renderWelcome(vp, theme)
	r.statusLine.Render(r.backend, vp, ed)

	r.backend.Show()
	r.frameCount++
}

// renderWelcome draws the two centered placeholder lines.
func (r *Renderer) renderWelcome(vp core.Viewport, theme editor.Theme) {
	row := vp.Rows / 2

	title := core.DefaultStyle().
		WithBackground(theme.DefaultBG).
		WithForeground(theme.TitleFG)
	hint := core.DefaultStyle().
		WithBackground(theme.DefaultBG).
		WithForeground(theme.HintFG)

	core.DrawText(r.backend, vp, core.CenterColumn(vp.Cols, core.StringWidth(WelcomeTitle)), row, WelcomeTitle, title)
	core.DrawText(r.backend, vp, core.CenterColumn(vp.Cols, core.StringWidth(WelcomeHint)), row+1, WelcomeHint, hint)
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}
