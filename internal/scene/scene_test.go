package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// textCanvas records the text drawn on it; shapes are ignored.
type textCanvas struct {
	texts   []string
	cleared int
}

func (c *textCanvas) Size() (float64, float64)                      { return 800, 600 }
func (c *textCanvas) Clear()                                        { c.cleared++ }
func (c *textCanvas) FillRect(core.Rect, core.Color)                {}
func (c *textCanvas) FillCircle(core.Circle, core.Color)            {}
func (c *textCanvas) TextWidth(s string) float64                    { return float64(len(s)) * 7 }
func (c *textCanvas) DrawText(_, _ float64, s string, _ core.Color) { c.texts = append(c.texts, s) }

func (c *textCanvas) has(s string) bool {
	for _, t := range c.texts {
		if t == s {
			return true
		}
	}
	return false
}

func testEnv() Env {
	return Env{Config: config.Default(), Seed: 42}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestBuiltinScenesRegistered(t *testing.T) {
	ids := List()
	if len(ids) < 2 || ids[0] != IDGameplay || ids[1] != IDMenu {
		t.Fatalf("List() = %v, expected [gameplay menu]", ids)
	}

	for _, id := range ids {
		s, err := Create(id, testEnv())
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if s.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, s.ID())
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("credits", testEnv()); err == nil {
		t.Error("Create() of an unknown scene should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(IDMenu, func(Env) Scene { return &Menu{} })
}

func TestDirectorStartsInMenu(t *testing.T) {
	d, err := NewDirector(testEnv(), IDMenu)
	if err != nil {
		t.Fatalf("NewDirector() failed: %v", err)
	}
	if d.Current().ID() != IDMenu {
		t.Fatalf("Current() = %q, expected menu", d.Current().ID())
	}

	// Anything but start keeps the menu up
	d.Update(16, frame(core.ActionUp, core.ActionPause))
	if d.Current().ID() != IDMenu {
		t.Errorf("Current() = %q after non-start input, expected menu", d.Current().ID())
	}

	c := &textCanvas{}
	d.Render(c)
	if c.cleared != 1 {
		t.Errorf("Render cleared the canvas %d times, expected 1", c.cleared)
	}
	if !c.has(menuTitle) || !c.has(menuPrompt) {
		t.Errorf("menu texts = %v", c.texts)
	}
}

func TestDirectorUnknownStart(t *testing.T) {
	if _, err := NewDirector(testEnv(), "nope"); err == nil {
		t.Error("NewDirector() with an unknown scene should fail")
	}
}

func TestMenuStartEntersRunningMatch(t *testing.T) {
	d, err := NewDirector(testEnv(), IDMenu)
	if err != nil {
		t.Fatal(err)
	}

	d.Update(16, frame(core.ActionStart))

	g, ok := d.Current().(*Gameplay)
	if !ok {
		t.Fatalf("Current() = %T, expected *Gameplay", d.Current())
	}
	st := g.State()
	if st.WaitingForStart {
		t.Error("gameplay should start the match without a second start press")
	}
	if st.ServeReceiver != pong.SidePlayer {
		t.Errorf("first serve goes to %v, expected player", st.ServeReceiver)
	}

	d.Update(16, core.NewInputFrame())
	if d.Current().ID() != IDGameplay {
		t.Fatalf("gameplay should not hand control back, current = %q", d.Current().ID())
	}
	if v := g.State().Velocity; v.X >= 0 || v.Y != 1 {
		t.Errorf("ball velocity after first tick = %+v, expected a serve towards the player", v)
	}

	c := &textCanvas{}
	d.Render(c)
	if !c.has("0 - 0") {
		t.Errorf("gameplay texts = %v, expected the score", c.texts)
	}
}

func TestGameplayLogsPoints(t *testing.T) {
	var buf bytes.Buffer
	env := testEnv()
	env.Logger = log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	g := NewGameplay(env)
	g.Enter()

	// Let the CPU win the rally unattended until the first point
	for i := 0; i < 5000 && g.State().ScorePlayer+g.State().ScoreCPU == 0; i++ {
		g.Update(16, core.NewInputFrame())
	}
	if g.State().ScorePlayer+g.State().ScoreCPU == 0 {
		t.Fatal("no point was scored")
	}

	out := buf.String()
	for _, want := range []string{"match started", "point"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "serve") {
		t.Errorf("serves are debug events, got:\n%s", out)
	}
}
