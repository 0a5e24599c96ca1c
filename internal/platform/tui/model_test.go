package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/storage"
)

// sessionGame ends after a fixed number of ticks with two timed laps.
type sessionGame struct {
	ticks  int
	length int
	resets int
	last   core.InputFrame
}

func (g *sessionGame) ID() string    { return "stub" }
func (g *sessionGame) Title() string { return "Stub" }

func (g *sessionGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
	g.resets++
}

func (g *sessionGame) Step(in core.InputFrame) core.StepResult {
	g.last = cloneFrame(in)
	if g.ticks >= g.length {
		return core.StepResult{State: g.State()}
	}
	g.ticks++
	res := core.StepResult{State: g.State()}
	if g.ticks == g.length {
		res.Events = append(res.Events, core.Event{Kind: core.EventSessionEnd})
	}
	return res
}

// cloneFrame copies in so later Clear calls on the model's frame do not alter it.
func cloneFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a, on := range in.Actions {
		out.Actions[a] = on
	}
	return out
}

// frameEmpty reports whether no action is set in f.
func frameEmpty(f core.InputFrame) bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

func (g *sessionGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *sessionGame) State() core.GameState {
	return core.GameState{Score: 2, GameOver: g.ticks >= g.length}
}

func (g *sessionGame) Laps() []time.Duration {
	return []time.Duration{30 * time.Second, 28 * time.Second}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModelSavesSessionOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &sessionGame{length: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60}).WithPlayer("ann")
	m.Init()

	for i := 0; i < 6; i++ {
		m = tick(t, m)
	}

	scores, _ := store.TopScores("stub", 10)
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 2 || scores[0].Player != "ann" {
		t.Errorf("saved score = %+v", scores[0])
	}

	laps, _ := store.BestLaps("stub", 10)
	if len(laps) != 2 {
		t.Fatalf("saved %d laps, expected 2", len(laps))
	}
	if laps[0].Duration != 28*time.Second {
		t.Errorf("best lap = %v, expected 28s", laps[0].Duration)
	}
}

func TestModelForwardsKeysToGame(t *testing.T) {
	game := &sessionGame{length: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60})
	m.Init()

	m, _ = press(t, m, runeKey('w'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)

	if !game.last.Has(core.ActionAccelerate) || !game.last.Has(core.ActionSteerLeft) {
		t.Errorf("game saw %v, expected accelerate and steer left", game.last.Actions)
	}

	// Input is cleared between ticks
	tick(t, m)
	if !frameEmpty(game.last) {
		t.Errorf("second tick saw %v, expected no actions", game.last.Actions)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &sessionGame{length: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60})
	m.Init()
	m = tick(t, m)

	m, _ = press(t, m, runeKey('n'))
	m = tick(t, m)

	if game.resets != 2 {
		t.Errorf("Reset() called %d times, expected 2", game.resets)
	}
	if m.gameState.GameOver {
		t.Error("restart should clear game over")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	game := &sessionGame{length: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60})
	m.Init()
	m = tick(t, m)

	// Back is ignored without a menu to return to
	m, _ = press(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("BackToMenu() should be false without WithMenu")
	}

	m = m.WithMenu()
	m, _ = press(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("BackToMenu() should be true after b on game over")
	}

	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelViewRendersGame(t *testing.T) {
	game := &sessionGame{length: 10}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	m = next.(Model)
	if m.screen.Width() != 30 || m.screen.Height() != 8 {
		t.Errorf("screen = %dx%d, expected 30x8", m.screen.Width(), m.screen.Height())
	}
	if game.resets != 1 {
		t.Error("resize should not restart the game")
	}

	if m.View() == "" {
		t.Error("View() should render the game")
	}
	if m.screen.Row(0)[:4] != "stub" {
		t.Errorf("Row(0) = %q", m.screen.Row(0))
	}
}
