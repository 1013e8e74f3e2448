package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// MessagePaused is shown while a running match is paused.
const MessagePaused = "Paused. Press P to resume"

// scoreTop is the y offset of the score line.
const scoreTop = 5

// Render draws the match: both paddles, the ball, the score centered at
// the top and the status message in the lower third.
func Render(c core.Canvas, st *State) {
	w, h := c.Size()

	c.FillCircle(st.Ball, core.ColorYellow)
	c.FillRect(st.CPU, core.ColorWhite)
	c.FillRect(st.Player, core.ColorWhite)

	score := fmt.Sprintf("%d - %d", st.ScorePlayer, st.ScoreCPU)
	c.DrawText(w/2-c.TextWidth(score)/2, scoreTop, score, core.ColorWhite)

	msg := ""
	switch {
	case st.WaitingForStart:
		msg = st.Message
	case st.Paused:
		msg = MessagePaused
	}
	if msg != "" {
		c.DrawText(w/2-c.TextWidth(msg)/2, h-h/3, msg, core.ColorGray)
	}
}
