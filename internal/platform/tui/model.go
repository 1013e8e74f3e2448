package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/scene"
)

// helpRows is the height of the key help footer.
const helpRows = 1

// Options configure a terminal session.
type Options struct {
	Config config.Config
	Seed   int64 // Zero picks a time-based seed
	Logger *log.Logger
	Width  int // Initial terminal size; replaced by the first resize
	Height int
}

// Model is the Bubble Tea model driving a scene director.
type Model struct {
	director *scene.Director
	screen   *core.Screen
	canvas   *Canvas
	keys     *KeyMapper
	help     help.Model
	fps      int
	lastTick time.Time
	quitting bool
	log      *log.Logger
}

// NewModel creates a model whose director starts on the menu.
func NewModel(opts Options) (Model, error) {
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
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	screen := core.NewScreen(opts.Width, max(opts.Height-helpRows, 0))
	cfg := opts.Config
	h := help.New()
	h.ShowAll = false

	return Model{
		director: director,
		screen:   screen,
		canvas:   NewCanvas(screen, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		keys:     NewKeyMapper(DefaultKeyMap(), time.Duration(cfg.Terminal.KeyHoldMs)*time.Millisecond),
		help:     h,
		fps:      cfg.Window.FPS,
		log:      opts.Logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, max(msg.Height-helpRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.keys.Press(msg, now) == core.ActionQuit {
		m.quitting = true
		m.director.Close()
		m.log.Debug("quit requested", "key", msg.String())
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one frame with the wall time elapsed since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	elapsed := 1000 / max(m.fps, 1)
	if !m.lastTick.IsZero() {
		elapsed = int(now.Sub(m.lastTick).Milliseconds())
	}
	m.lastTick = now

	m.director.Update(elapsed, m.keys.Frame(now))
	return m, tickCmd(m.fps)
}

// View renders the current scene and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.director.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts a local Bubble Tea program on the alternate screen.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
