package scene

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

func init() {
	Register(IDGameplay, func(env Env) Scene { return NewGameplay(env) })
}

// Gameplay runs Pong matches back to back. Between matches it waits for
// the start action itself, so it never hands control back to the menu.
type Gameplay struct {
	engine *pong.Engine
	state  pong.State
	log    *log.Logger
}

// NewGameplay creates the gameplay scene for env.
func NewGameplay(env Env) *Gameplay {
	logger := env.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Gameplay{
		engine: pong.NewEngine(env.Config, env.Seed),
		log:    logger.WithPrefix("gameplay"),
	}
}

func (g *Gameplay) ID() ID { return IDGameplay }

// Enter begins the first match right away; the player already pressed
// start on the menu.
func (g *Gameplay) Enter() {
	g.state = g.engine.NewState()
	g.engine.StartMatch(&g.state)
	g.log.Info("match started", "win_score", g.engine.Config().Rules.WinScore)
}

func (g *Gameplay) Exit() {
	g.log.Debug("leaving gameplay", "player", g.state.ScorePlayer, "cpu", g.state.ScoreCPU)
}

func (g *Gameplay) Update(elapsedMs int, in core.InputFrame) ID {
	res := g.engine.Update(&g.state, elapsedMs, pong.InputFromFrame(in))
	for _, ev := range res.Events {
		g.logEvent(ev)
	}
	return IDNone
}

func (g *Gameplay) Render(c core.Canvas) {
	pong.Render(c, &g.state)
}

// State returns the current match state.
func (g *Gameplay) State() pong.State {
	return g.state
}

func (g *Gameplay) logEvent(ev pong.Event) {
	switch ev.Kind {
	case pong.EventScore:
		g.log.Info("point", "scorer", ev.Side, "player", g.state.ScorePlayer, "cpu", g.state.ScoreCPU)
	case pong.EventMatchOver:
		g.log.Info("match over", "winner", ev.Side, "player", g.state.ScorePlayer, "cpu", g.state.ScoreCPU)
	case pong.EventMatchStart:
		g.log.Info("match started", "win_score", g.engine.Config().Rules.WinScore)
	default:
		g.log.Debug(ev.Kind.String(), "side", ev.Side)
	}
}
