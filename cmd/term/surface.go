package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// pixelsPerCell converts surface-independent radii, given in pixels, to cells.
const pixelsPerCell = 8.0

var styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

type tcellSurface struct {
	screen tcell.Screen
	rows   int
}

func (s *tcellSurface) Size() (int, int) {
	w, _ := s.screen.Size()
	return w, s.rows
}

func styleFor(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	return styleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

func (s *tcellSurface) set(x, y int, r rune, style tcell.Style) {
	if y < 0 || y >= s.rows {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *tcellSurface) Line(x1, y1, x2, y2 float64, c color.Color) {
	ax, ay := int(math.Round(x1)), int(math.Round(y1))
	bx, by := int(math.Round(x2)), int(math.Round(y2))
	style := styleFor(c)

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx + dy

	for {
		s.set(ax, ay, '·', style)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

func (s *tcellSurface) Dot(x, y, radius float64, c color.Color) {
	style := styleFor(c)
	cx, cy := int(math.Round(x)), int(math.Round(y))
	r := int(math.Round(radius / pixelsPerCell))
	if r <= 0 {
		s.set(cx, cy, 'o', style)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				s.set(cx+dx, cy+dy, '*', style)
			}
		}
	}
}

func (s *tcellSurface) Text(row int, text string) {
	drawText(s.screen, 1, row, text, styleDefault)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
