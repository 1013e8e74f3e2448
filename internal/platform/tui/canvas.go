package tui

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const (
	blockRune = '█'
	ballRune  = '●'
)

// Canvas draws logical-pixel shapes onto a terminal Screen. The whole
// logical field is stretched over the screen, so one cell covers
// logicalW/cols by logicalH/rows pixels.
type Canvas struct {
	screen   *core.Screen
	logicalW float64
	logicalH float64
	scaleX   float64
	scaleY   float64
}

// NewCanvas creates a canvas mapping a logicalW x logicalH field onto screen.
func NewCanvas(screen *core.Screen, logicalW, logicalH float64) *Canvas {
	c := &Canvas{screen: screen, logicalW: logicalW, logicalH: logicalH}
	c.rescale()
	return c
}

// Resize resizes the underlying screen and keeps the logical size.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.rescale()
}

func (c *Canvas) rescale() {
	c.scaleX = float64(c.screen.Width()) / c.logicalW
	c.scaleY = float64(c.screen.Height()) / c.logicalH
}

func (c *Canvas) Size() (float64, float64) {
	return c.logicalW, c.logicalH
}

func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect fills every cell the rectangle touches. Shapes never vanish:
// anything on the field covers at least one cell.
func (c *Canvas) FillRect(r core.Rect, color core.Color) {
	x0, x1 := span(r.X, r.Right(), c.scaleX)
	y0, y1 := span(r.Y, r.Bottom(), c.scaleY)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.Set(x, y, blockRune, color)
		}
	}
}

// FillCircle draws a ball cell at the center, plus the cells whose
// centers fall inside the circle once it spans several cells.
func (c *Canvas) FillCircle(ci core.Circle, color core.Color) {
	x0, x1 := span(ci.MinX(), ci.MaxX(), c.scaleX)
	y0, y1 := span(ci.MinY(), ci.MaxY(), c.scaleY)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Cell center back in logical pixels
			lx := (float64(x) + 0.5) / c.scaleX
			ly := (float64(y) + 0.5) / c.scaleY
			dx, dy := lx-ci.X, ly-ci.Y
			if dx*dx+dy*dy <= ci.R*ci.R {
				c.screen.Set(x, y, blockRune, color)
			}
		}
	}
	cx := int(math.Floor(ci.X * c.scaleX))
	cy := int(math.Floor(ci.Y * c.scaleY))
	if c.screen.GetCell(cx, cy).Rune != blockRune {
		c.screen.Set(cx, cy, ballRune, color)
	}
}

// DrawText writes text one rune per cell starting at the cell containing (x, y).
func (c *Canvas) DrawText(x, y float64, text string, color core.Color) {
	col := core.Round(x * c.scaleX)
	row := int(math.Floor(y * c.scaleY))
	c.screen.DrawText(col, row, text, color)
}

// TextWidth returns the logical width of text, one cell per rune.
func (c *Canvas) TextWidth(text string) float64 {
	if c.scaleX == 0 {
		return 0
	}
	return float64(len([]rune(text))) / c.scaleX
}

// span maps the logical interval [from, to) to a half-open cell range
// that is at least one cell wide.
func span(from, to, scale float64) (int, int) {
	start := int(math.Floor(from * scale))
	end := int(math.Ceil(to * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}
