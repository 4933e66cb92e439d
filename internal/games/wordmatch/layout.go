package wordmatch

import (
	"github.com/vovakirdan/word-match/internal/config"
	"github.com/vovakirdan/word-match/internal/core"
)

// Layout maps deck positions to screen rectangles. Cards fill rows left to
// right, top to bottom.
type Layout struct {
	Columns int
	CardW   int
	CardH   int
	PadX    int
	PadY    int
	OriginX int
	OriginY int
}

// LayoutFrom builds a Layout from configuration.
func LayoutFrom(c config.LayoutConfig) Layout {
	l := Layout{
		Columns: c.Columns,
		CardW:   c.CardWidth,
		CardH:   c.CardHeight,
		PadX:    c.PadX,
		PadY:    c.PadY,
		OriginX: c.OriginX,
		OriginY: c.OriginY,
	}
	if l.Columns < 1 {
		l.Columns = 1
	}
	return l
}

// CellOf returns the grid coordinate of deck position i.
func (l Layout) CellOf(i int) core.Cell {
	return core.Cell{Col: i % l.Columns, Row: i / l.Columns}
}

// Bounds returns the screen rectangle of deck position i.
func (l Layout) Bounds(i int) core.Rect {
	cell := l.CellOf(i)
	return core.NewRect(
		l.OriginX+cell.Col*(l.CardW+l.PadX),
		l.OriginY+cell.Row*(l.CardH+l.PadY),
		l.CardW,
		l.CardH,
	)
}

// Extent returns the screen width and height needed to show n cards,
// origin included.
func (l Layout) Extent(n int) (int, int) {
	if n <= 0 {
		return l.OriginX, l.OriginY
	}
	cols := core.Clamp(n, 1, l.Columns)
	rows := (n + l.Columns - 1) / l.Columns
	return l.OriginX + cols*l.CardW + (cols-1)*l.PadX,
		l.OriginY + rows*l.CardH + (rows-1)*l.PadY
}
