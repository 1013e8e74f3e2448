package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventMatchStart EventKind = iota
	EventServe
	EventWallBounce
	EventPaddleBounce
	EventScore
	EventMatchOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMatchStart:
		return "match_start"
	case EventServe:
		return "serve"
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventScore:
		return "score"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is a single occurrence during a tick. Side is the receiver for
// serves, the paddle for bounces, and the scorer or winner otherwise.
type Event struct {
	Kind EventKind
	Side Side
}

// StepResult is returned by Engine.Update after each tick.
type StepResult struct {
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (r *StepResult) add(kind EventKind, side Side) {
	r.Events = append(r.Events, Event{Kind: kind, Side: side})
}

// Engine advances match states. It owns the configuration and the serve RNG.
type Engine struct {
	cfg    config.Config
	width  float64
	height float64
	bounce BounceParams
	rng    *rand.Rand
}

// NewEngine creates an engine. Equal seeds give equal serves.
func NewEngine(cfg config.Config, seed int64) *Engine {
	return &Engine{
		cfg:    cfg,
		width:  float64(cfg.Window.Width),
		height: float64(cfg.Window.Height),
		bounce: BounceParams{
			Speed:         cfg.Ball.Speed,
			MaxAngle:      cfg.Ball.MaxBounceAngle,
			MinHorizontal: cfg.Ball.MinHorizontal,
		},
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// NewState returns a fresh match waiting for the start key.
func (e *Engine) NewState() State {
	var st State
	e.resetMatch(&st)
	st.WaitingForStart = true
	st.Message = MessageStart
	return st
}

// StartMatch resets positions and scores and begins play. The first serve
// goes to the player on the next Update.
func (e *Engine) StartMatch(st *State) {
	e.resetMatch(st)
	st.WaitingForStart = false
}

// resetMatch puts paddles and ball at their starting positions.
func (e *Engine) resetMatch(st *State) {
	p := e.cfg.Paddles
	top := e.height/2 - p.Height/2

	st.Player = core.NewRect(p.Inset, top, p.Width, p.Height)
	st.CPU = core.NewRect(e.width-p.Inset-p.Width, top, p.Width, p.Height)
	st.Ball = core.Circle{X: e.width / 2, Y: e.height / 2, R: e.cfg.Ball.Radius}
	st.Velocity = core.Vec2{}
	st.ServeReceiver = SidePlayer
	st.ScorePlayer = 0
	st.ScoreCPU = 0
	st.CooldownMs = 0
}

// Serve launches the ball from the middle of the field towards the receiver.
// The ball starts between 1/4 and 3/4 of the height with a horizontal speed
// between half and all of the ball speed.
func (e *Engine) Serve(st *State) {
	h := e.cfg.Window.Height
	st.Ball.X = e.width / 2
	st.Ball.Y = float64(h - h/4 - e.rng.Intn(max(h/2, 1)))

	divider := e.rng.Float64() + 1
	vx := e.cfg.Ball.Speed / divider
	if st.ServeReceiver == SidePlayer {
		vx = -vx
	}
	st.Velocity = core.Vec2{X: vx, Y: e.cfg.Ball.ServeVY}
	st.ServeReceiver = SideNone
}

// Update advances st by one tick of elapsedMs milliseconds.
func (e *Engine) Update(st *State, elapsedMs int, in Input) StepResult {
	var res StepResult

	if in.Pause {
		st.Paused = !st.Paused
	}

	if st.WaitingForStart {
		if !in.Start {
			return res
		}
		e.StartMatch(st)
		res.add(EventMatchStart, SideNone)
	}

	if st.Paused {
		return res
	}

	if st.ServeReceiver != SideNone {
		receiver := st.ServeReceiver
		e.Serve(st)
		res.add(EventServe, receiver)
	}

	e.movePlayer(st, in)
	e.moveCPU(st)

	// Euler step; a fast ball can skip over a paddle
	st.Ball.X += st.Velocity.X
	st.Ball.Y += st.Velocity.Y

	e.detectScore(st, &res)
	e.bounceWalls(st, &res)
	e.bouncePaddles(st, elapsedMs, &res)

	return res
}

// movePlayer moves the human paddle; up wins when both keys are held.
func (e *Engine) movePlayer(st *State, in Input) {
	speed := e.cfg.Paddles.MoveSpeed
	p := &st.Player

	switch {
	case in.Up:
		if p.Y > speed {
			p.Y -= speed
		} else if p.Y > 0 {
			p.Y = 0
		}
	case in.Down:
		if p.Bottom() < e.height-speed {
			p.Y += speed
		} else if p.Bottom() < e.height {
			p.Y = e.height - p.H
		}
	}
}

// moveCPU steps the CPU paddle towards the ball, snapping to it when close.
func (e *Engine) moveCPU(st *State) {
	speed := e.cfg.CPU.Speed
	p := &st.CPU

	if math.Abs(p.CenterY()-st.Ball.Y) > speed {
		if p.CenterY() < st.Ball.Y {
			p.Y += speed
		} else {
			p.Y -= speed
		}
	} else {
		p.SetCenterY(st.Ball.Y)
	}
	p.Y = core.ClampF(p.Y, 0, e.height-p.H)
}

// detectScore awards a point when the ball touches a side edge.
func (e *Engine) detectScore(st *State, res *StepResult) {
	var scorer Side
	switch {
	case st.Ball.MinX() <= 0:
		st.ScoreCPU++
		scorer = SideCPU
	case st.Ball.MaxX() >= e.width:
		st.ScorePlayer++
		scorer = SidePlayer
	default:
		return
	}

	st.ServeReceiver = scorer
	res.add(EventScore, scorer)

	if st.Winner(e.cfg.Rules.WinScore) == scorer {
		st.WaitingForStart = true
		if scorer == SidePlayer {
			st.Message = MessageWon
		} else {
			st.Message = MessageLost
		}
		res.add(EventMatchOver, scorer)
	}
}

// bounceWalls reflects the ball off the top and bottom edges, but only
// while it is still moving outwards.
func (e *Engine) bounceWalls(st *State, res *StepResult) {
	if (st.Ball.MinY() < 0 && st.Velocity.Y < 0) ||
		(st.Ball.MaxY() > e.height && st.Velocity.Y > 0) {
		st.Velocity.Y = -st.Velocity.Y
		res.add(EventWallBounce, SideNone)
	}
}

// bouncePaddles handles paddle hits. After a hit, collisions are ignored
// until the cooldown runs out so a ball squeezed between a paddle and a
// wall cannot flip direction every tick.
func (e *Engine) bouncePaddles(st *State, elapsedMs int, res *StepResult) {
	if st.CooldownMs > 0 {
		st.CooldownMs -= elapsedMs
		return
	}

	var paddle core.Rect
	var side Side
	switch {
	case st.Ball.Intersects(st.Player):
		paddle, side = st.Player, SidePlayer
	case st.Ball.Intersects(st.CPU):
		paddle, side = st.CPU, SideCPU
	default:
		return
	}

	st.Velocity = Bounce(paddle.CenterY(), paddle.H, st.Ball.Y, st.Velocity.X, e.bounce)
	st.CooldownMs = e.cfg.Rules.CollisionCooldownMs
	res.add(EventPaddleBounce, side)
}
