package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func newTestCanvas() (*Canvas, *core.Screen) {
	screen := core.NewScreen(80, 24)
	return NewCanvas(screen, 800, 600), screen
}

func TestCanvasFillRectScales(t *testing.T) {
	c, screen := newTestCanvas()

	// Left paddle: x 5..15, y 260..340
	c.FillRect(core.NewRect(5, 260, 10, 80), core.ColorWhite)

	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			inside := x <= 1 && y >= 10 && y <= 13
			filled := screen.Get(x, y) == blockRune
			if inside != filled {
				t.Fatalf("cell (%d, %d) filled = %v, expected %v", x, y, filled, inside)
			}
		}
	}
	if screen.GetCell(0, 10).Color != core.ColorWhite {
		t.Error("paddle cells should carry the paddle color")
	}
}

func TestCanvasSmallShapesStayVisible(t *testing.T) {
	c, screen := newTestCanvas()

	c.FillRect(core.NewRect(100, 100, 1, 1), core.ColorRed)
	if screen.Get(10, 4) != blockRune {
		t.Error("a sub-cell rectangle should still cover one cell")
	}

	c.FillCircle(core.Circle{X: 400, Y: 300, R: 6}, core.ColorYellow)
	cell := screen.GetCell(40, 12)
	if cell.Rune != ballRune || cell.Color != core.ColorYellow {
		t.Errorf("ball cell = %+v, expected a yellow ball", cell)
	}
}

func TestCanvasLargeCircle(t *testing.T) {
	screen := core.NewScreen(40, 40)
	c := NewCanvas(screen, 40, 40)

	c.FillCircle(core.Circle{X: 20, Y: 20, R: 5}, core.ColorGreen)

	if screen.Get(20, 20) != blockRune {
		t.Error("circle center should be filled")
	}
	if screen.Get(20, 16) != blockRune || screen.Get(16, 20) != blockRune {
		t.Error("cells inside the radius should be filled")
	}
	if screen.Get(15, 15) == blockRune {
		t.Error("corner of the bounding box is outside the circle")
	}
}

func TestCanvasTextCentering(t *testing.T) {
	c, screen := newTestCanvas()

	w, _ := c.Size()
	text := "0 - 0"
	if got := c.TextWidth(text); got != 50 {
		t.Fatalf("TextWidth(%q) = %v, expected 50", text, got)
	}

	c.DrawText(w/2-c.TextWidth(text)/2, 5, text, core.ColorWhite)
	if row := screen.Row(0); !strings.Contains(row, text) || strings.Index(row, text) != 38 {
		t.Errorf("row 0 = %q, expected the score starting at column 38", row)
	}
}

func TestCanvasResize(t *testing.T) {
	c, screen := newTestCanvas()

	c.Resize(160, 48)
	if screen.Width() != 160 || screen.Height() != 48 {
		t.Fatalf("screen = %dx%d, expected 160x48", screen.Width(), screen.Height())
	}
	if w, h := c.Size(); w != 800 || h != 600 {
		t.Errorf("logical size changed to %vx%v", w, h)
	}

	c.FillRect(core.NewRect(5, 260, 10, 80), core.ColorWhite)
	if screen.Get(2, 20) != blockRune || screen.Get(3, 20) == blockRune {
		t.Error("paddle should span columns 1-2 after doubling the width")
	}
}
