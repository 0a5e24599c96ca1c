package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/buggy-racer/internal/config"
	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	menu, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return menu
}

func TestMenuSelectsPreset(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "racer")

	if m.items[m.cursor].Preset != config.DifficultyNormal {
		t.Errorf("initial cursor on %q, expected normal", m.items[m.cursor].Preset)
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last item
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("Selected() should be set after enter")
	}
	if m.Selected().Preset != config.DifficultyFixed {
		t.Errorf("Selected() = %q, expected fixed", m.Selected().Preset)
	}
}

func TestMenuCursorClampsAtTop(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "racer")
	for i := 0; i < 5; i++ {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "racer")
	if tab := menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab}); !tab.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
	if q := menuKey(t, m, runeKey('q')); !q.IsQuitting() {
		t.Error("q should quit")
	}

	resized := menuKey(t, m, tea.KeyMsg{})
	next, _ := resized.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if cfg := next.(MenuModel).Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuViewShowsRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("racer", "ann", 4)
	store.SaveLaps("racer", "ann", []time.Duration{41 * time.Second})

	view := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 24}, "racer").View()
	for _, want := range []string{"Easy", "Normal", "Hard", "Fixed", "Most laps: 4", "Best lap: 41s"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}
}
