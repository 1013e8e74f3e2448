package scene

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

const (
	menuTitle  = "PONG"
	menuPrompt = "Press space to start"
	menuHelp   = "W/S or arrows move   P pauses   Q quits"
)

func init() {
	Register(IDMenu, func(env Env) Scene { return &Menu{} })
}

// Menu is the title screen. The start action moves on to gameplay.
type Menu struct{}

func (m *Menu) ID() ID { return IDMenu }
func (m *Menu) Enter() {}
func (m *Menu) Exit()  {}

func (m *Menu) Update(_ int, in core.InputFrame) ID {
	if in.Has(core.ActionStart) {
		return IDGameplay
	}
	return IDNone
}

func (m *Menu) Render(c core.Canvas) {
	w, h := c.Size()
	drawCentered(c, w, h/3, menuTitle, core.ColorCyan)
	drawCentered(c, w, h/2, menuPrompt, core.ColorWhite)
	drawCentered(c, w, h-h/3, menuHelp, core.ColorGray)
}

func drawCentered(c core.Canvas, w, y float64, text string, color core.Color) {
	c.DrawText(w/2-c.TextWidth(text)/2, y, text, color)
}
