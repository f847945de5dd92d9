// Package renderer provides the display layer for the ri editor.
//
// Each tick the renderer composes one full frame from the editor state
// into the backend's off-screen cell buffer and flushes it with a single
// Show, so the terminal never displays a partially drawn frame.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  Welcome placeholder │ StatusLine       │
//	├─────────────────────────────────────────┤
//	│  core: Cell, Style, Color, DrawText     │
//	├─────────────────────────────────────────┤
//	│  Backend: Terminal (tcell) │ Null       │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	session, _ := backend.Enter(term)
//	defer session.Leave()
//
//	r := renderer.New(term)
//	w, h := term.Size()
//	r.Render(core.Viewport{Cols: w, Rows: h}, ed)
package renderer
