package core

// Surface is a drawing target. The engine renders each frame into one.
type Surface interface {
	// Fill paints the whole surface.
	Fill(c Color)

	// FillRect paints a rectangle, clipped to the surface.
	FillRect(r Rect, c Color)

	// DrawString writes text with its top-left corner at (x, y).
	DrawString(x, y int, text string, c Color)

	// MeasureString returns the size text occupies when drawn.
	MeasureString(text string) (w, h int)
}

// Board is the render/board layer: per-cell color and text storage that can
// draw itself. Animations and hooks change the board only through it.
type Board interface {
	SetCellColor(row, col int, c Color)
	CellColor(row, col int) Color
	SetCellText(row, col int, text string)
	CellText(row, col int) string
	Draw(s Surface)
	Reset()
}
