//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/scene"
)

var palette = map[core.Color]color.Color{
	core.ColorDefault: color.White,
	core.ColorWhite:   color.White,
	core.ColorGray:    color.RGBA{R: 170, G: 170, B: 180, A: 255},
	core.ColorYellow:  color.RGBA{R: 255, G: 220, B: 60, A: 255},
	core.ColorCyan:    color.RGBA{R: 80, G: 220, B: 230, A: 255},
	core.ColorGreen:   color.RGBA{R: 90, G: 220, B: 110, A: 255},
	core.ColorRed:     color.RGBA{R: 230, G: 80, B: 70, A: 255},
}

func rgba(c core.Color) color.Color {
	if v, ok := palette[c]; ok {
		return v
	}
	return color.White
}

// Game adapts a scene director to the ebiten.Game interface.
type Game struct {
	director  *scene.Director
	canvas    *imageCanvas
	width     int
	height    int
	elapsedMs int
}

// New constructs a Game whose director starts on the menu.
func New(opts Options) (*Game, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	director, err := scene.NewDirector(scene.Env{
		Config: opts.Config,
		Seed:   opts.Seed,
		Logger: opts.Logger,
	}, scene.IDMenu)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	w := opts.Config.Window
	return &Game{
		director:  director,
		canvas:    &imageCanvas{w: float64(w.Width), h: float64(w.Height), face: basicfont.Face7x13},
		width:     w.Width,
		height:    w.Height,
		elapsedMs: 1000 / max(w.FPS, 1),
	}, nil
}

// Update runs one fixed tick. Ebitengine calls it FPS times per second.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.director.Close()
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Set(core.ActionUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Set(core.ActionDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionStart)
	}

	g.director.Update(g.elapsedMs, in)
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.director.Render(g.canvas)
	g.canvas.dst = nil
}

// Layout keeps the logical field size regardless of the window size.
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	w := opts.Config.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(w.FPS)
	ebiten.SetFullscreen(w.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// imageCanvas draws onto the frame's screen image in logical pixels.
type imageCanvas struct {
	dst  *ebiten.Image
	w, h float64
	face font.Face
}

func (c *imageCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *imageCanvas) Clear() {
	c.dst.Fill(color.Black)
}

func (c *imageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

func (c *imageCanvas) FillCircle(ci core.Circle, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(ci.X), float32(ci.Y), float32(ci.R), rgba(col), true)
}

// DrawText places the top of the text at y; text.Draw expects the baseline.
func (c *imageCanvas) DrawText(x, y float64, s string, col core.Color) {
	baseline := int(y) + c.face.Metrics().Ascent.Ceil()
	text.Draw(c.dst, s, c.face, int(x), baseline, rgba(col))
}

func (c *imageCanvas) TextWidth(s string) float64 {
	return float64(text.BoundString(c.face, s).Dx())
}
