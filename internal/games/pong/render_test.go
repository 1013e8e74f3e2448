package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type textCall struct {
	x, y  float64
	text  string
	color core.Color
}

// recordCanvas is a core.Canvas that records draw calls. Every rune is
// one unit wide.
type recordCanvas struct {
	w, h    float64
	rects   []core.Rect
	circles []core.Circle
	texts   []textCall
}

func (c *recordCanvas) Size() (float64, float64) { return c.w, c.h }
func (c *recordCanvas) Clear()                   {}

func (c *recordCanvas) FillRect(r core.Rect, _ core.Color) {
	c.rects = append(c.rects, r)
}

func (c *recordCanvas) FillCircle(ci core.Circle, _ core.Color) {
	c.circles = append(c.circles, ci)
}

func (c *recordCanvas) DrawText(x, y float64, text string, color core.Color) {
	c.texts = append(c.texts, textCall{x, y, text, color})
}

func (c *recordCanvas) TextWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func (c *recordCanvas) findText(s string) (textCall, bool) {
	for _, tc := range c.texts {
		if tc.text == s {
			return tc, true
		}
	}
	return textCall{}, false
}

func TestRenderWaiting(t *testing.T) {
	e := newTestEngine(1)
	st := e.NewState()
	c := &recordCanvas{w: 800, h: 600}

	Render(c, &st)

	if len(c.rects) != 2 {
		t.Errorf("drew %d rects, expected both paddles", len(c.rects))
	}
	if len(c.circles) != 1 || c.circles[0] != st.Ball {
		t.Errorf("circles = %+v, expected the ball", c.circles)
	}

	score, ok := c.findText("0 - 0")
	if !ok {
		t.Fatalf("score not drawn, texts = %+v", c.texts)
	}
	if score.y != 5 || score.x != 400-2.5 {
		t.Errorf("score at (%v, %v), expected centered at y=5", score.x, score.y)
	}

	msg, ok := c.findText(MessageStart)
	if !ok {
		t.Fatalf("start message not drawn, texts = %+v", c.texts)
	}
	if msg.y != 400 {
		t.Errorf("message y = %v, expected 400", msg.y)
	}
	if msg.x != 400-float64(len(MessageStart))/2 {
		t.Errorf("message x = %v, not centered", msg.x)
	}
}

func TestRenderMessages(t *testing.T) {
	e := newTestEngine(1)

	tests := []struct {
		name     string
		setup    func(*State)
		expected string
	}{
		{"playing", func(st *State) {}, ""},
		{"paused", func(st *State) { st.Paused = true }, MessagePaused},
		{"lost", func(st *State) {
			st.WaitingForStart = true
			st.Message = MessageLost
			st.ScoreCPU = 10
		}, MessageLost},
		{"paused while over", func(st *State) {
			st.WaitingForStart = true
			st.Paused = true
			st.Message = MessageWon
		}, MessageWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := rallyState(e)
			tc.setup(&st)
			c := &recordCanvas{w: 800, h: 600}

			Render(c, &st)

			if tc.expected == "" {
				if len(c.texts) != 1 {
					t.Errorf("expected only the score, got %+v", c.texts)
				}
				return
			}
			if _, ok := c.findText(tc.expected); !ok {
				t.Errorf("message %q not drawn, texts = %+v", tc.expected, c.texts)
			}
		})
	}
}
