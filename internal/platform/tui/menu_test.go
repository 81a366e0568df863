package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "")

	found := false
	for _, item := range m.items {
		if item.GameID == "stub" && item.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected stub game in menu, got %+v", m.items)
	}
	if !strings.Contains(m.View(), "Stub") {
		t.Error("expected game title in view")
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "hard")
	if m.Difficulty() != "hard" {
		t.Fatalf("expected preselected hard, got %q", m.Difficulty())
	}

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "fixed" {
		t.Errorf("expected fixed, got %q", m.Difficulty())
	}
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "" || m.DifficultyLabel() != "default" {
		t.Errorf("expected wrap to default, got %q", m.Difficulty())
	}
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "fixed" {
		t.Errorf("expected wrap back to fixed, got %q", m.Difficulty())
	}

	if unknown := NewMenuModel(nil, testConfig(), "brutal"); unknown.Difficulty() != "" {
		t.Errorf("unknown preset should select default, got %q", unknown.Difficulty())
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "easy")
	for i, item := range m.items {
		if item.GameID == "stub" {
			m.cursor = i
		}
	}

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	r := m.Result()
	if r.GameID != "stub" || r.Difficulty != "easy" || r.Quit || r.WantsScoreboard {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, testConfig(), ""), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("expected scoreboard request")
	}

	m = sendMenu(t, NewMenuModel(nil, testConfig(), ""), runeKey('q'))
	if !m.Result().Quit {
		t.Error("expected quit")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "stub", Score: 777}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, testConfig(), "")
	if !strings.Contains(m.View(), "best 777") {
		t.Error("expected best score in menu")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "alice", "")
	for i, item := range m.menu.items {
		if item.GameID == "stub" {
			m.menu.cursor = i
		}
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("expected game to start")
	}
	if m.gameModel.player != "alice" {
		t.Errorf("expected ssh user as player, got %q", m.gameModel.player)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil || m.quitting {
		t.Fatal("expected back in menu")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("expected scoreboard")
	}
	if m.scoreboard.GameID() != "stub" {
		t.Errorf("expected scoreboard on the highlighted mode, got %q", m.scoreboard.GameID())
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("expected scoreboard view")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil || m.quitting {
		t.Fatal("expected back in menu")
	}

	m = sendSession(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("expected session to quit")
	}
}

func TestSessionLogsGameStatus(t *testing.T) {
	var buf bytes.Buffer
	m := NewSessionModel(nil, testConfig(), "alice", "")
	m.logger = log.New(&buf)
	for i, item := range m.menu.items {
		if item.GameID == "stub" {
			m.menu.cursor = i
		}
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = sendSession(t, m, TickMsg{})
	m = sendSession(t, m, TickMsg{})
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	out := buf.String()
	if !strings.Contains(out, "game started") || !strings.Contains(out, "game ended") {
		t.Fatalf("expected start and end entries, got:\n%s", out)
	}
	if !strings.Contains(out, "stub ticks=2") {
		t.Errorf("expected game status in log, got:\n%s", out)
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("expected user in log, got:\n%s", out)
	}
}
