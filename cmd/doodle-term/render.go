package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/doodle/internal/application/world"
	"github.com/younwookim/doodle/internal/domain/entity"
)

// Runes and styles for rendering
const (
	runeDoodler  = '█'
	runePlatform = '▀'
)

var (
	styleDoodler  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// canvas is the part of tcell.Screen the renderer draws on
type canvas interface {
	Clear()
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// cellRect is a half-open rectangle of terminal cells
type cellRect struct {
	X0, Y0, X1, Y1 int
}

// project maps a world-space rect onto a cols x rows grid covering the whole
// world. Anything with a size still covers at least one cell.
func project(r entity.Rect, worldW, worldH float64, cols, rows int) cellRect {
	// Multiply before dividing so whole-cell edges stay exact
	x := func(v float64) float64 { return v * float64(cols) / worldW }
	y := func(v float64) float64 { return v * float64(rows) / worldH }

	c := cellRect{
		X0: int(math.Floor(x(r.Left()))),
		Y0: int(math.Floor(y(r.Top()))),
		X1: int(math.Ceil(x(r.Right()))),
		Y1: int(math.Ceil(y(r.Bottom()))),
	}
	if c.X1 <= c.X0 {
		c.X1 = c.X0 + 1
	}
	if c.Y1 <= c.Y0 {
		c.Y1 = c.Y0 + 1
	}
	return c
}

// draw renders a snapshot: the world scaled to all rows but the last,
// which holds the status line
func draw(s canvas, snap world.Snapshot, status string) {
	s.Clear()

	cols, rows := s.Size()
	playRows := rows - 1
	if cols <= 0 || playRows <= 0 {
		s.Show()
		return
	}

	for _, p := range snap.Platforms {
		fill(s, project(p.Rect(), snap.Width, snap.Height, cols, playRows), cols, playRows, runePlatform, stylePlatform)
	}
	fill(s, project(snap.Doodler.Rect(), snap.Width, snap.Height, cols, playRows), cols, playRows, runeDoodler, styleDoodler)

	if snap.Over {
		msg := "GAME OVER  r: restart  q: quit"
		drawText(s, (cols-len(msg))/2, playRows/2, msg, styleGameOver)
	}

	// Status line spans the full width
	for x := 0; x < cols; x++ {
		s.SetContent(x, rows-1, ' ', nil, styleHUD)
	}
	drawText(s, 0, rows-1, status, styleHUD)

	s.Show()
}

// fill paints r clipped to the cols x rows play area
func fill(s canvas, r cellRect, cols, rows int, ch rune, style tcell.Style) {
	for y := max(r.Y0, 0); y < min(r.Y1, rows); y++ {
		for x := max(r.X0, 0); x < min(r.X1, cols); x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func drawText(s canvas, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if x+i < 0 {
			continue
		}
		s.SetContent(x+i, y, ch, nil, style)
	}
}
