package core

// CellWriter is the subset of a backend needed to draw text.
type CellWriter interface {
	SetCell(x, y int, cell Cell)
}

// DrawText writes s starting at (x, y) and returns the column after the
// last cell written. Cells that fall outside vp are skipped, so the
// caller never writes off-screen; a wide cluster that would straddle the
// right edge is dropped.
func DrawText(w CellWriter, vp Viewport, x, y int, s string, style Style) int {
	if y < 0 || y >= vp.Rows {
		return x + StringWidth(s)
	}
	for _, cell := range CellsFromString(s, style) {
		if cell.Width == 0 {
			continue
		}
		if x >= 0 && x+cell.Width <= vp.Cols {
			w.SetCell(x, y, cell)
		}
		x += cell.Width
	}
	return x
}

// CenterColumn returns the column at which text of the given width is
// centered in a row of cols columns, clamped to column 0 when the text
// is wider than half the row allows.
func CenterColumn(cols, width int) int {
	return max(cols/2-width/2, 0)
}
