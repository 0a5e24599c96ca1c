package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/buggy-racer/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("racer", "ann", 3)
	store.SaveScore("racer", "", 5)
	store.SaveLaps("racer", "bob", []time.Duration{44 * time.Second, 39*time.Second + 500*time.Millisecond})

	m := NewScoreboardModel(store, "racer", "Buggy Racer", 80, 24)
	if m.CurrentView() != ViewSessions {
		t.Fatalf("CurrentView() = %v, expected sessions", m.CurrentView())
	}

	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("session rows = %d, expected 2", len(rows))
	}
	if rows[0][1] != "-" || rows[0][2] != "5" {
		t.Errorf("first session row = %v, expected anonymous 5", rows[0])
	}
	if rows[1][1] != "ann" {
		t.Errorf("second session row = %v, expected ann", rows[1])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.CurrentView() != ViewLaps {
		t.Fatalf("CurrentView() = %v, expected laps", m.CurrentView())
	}
	rows = m.Rows()
	if len(rows) != 2 {
		t.Fatalf("lap rows = %d, expected 2", len(rows))
	}
	if rows[0][2] != "0:39.50" {
		t.Errorf("fastest lap = %q, expected 0:39.50", rows[0][2])
	}
	if !strings.Contains(m.View(), "Best Laps") {
		t.Error("View() should label the laps tab")
	}
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := NewScoreboardModel(nil, "racer", "Buggy Racer", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("View() should show the empty message without a store")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
