package tui

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.state = core.GameState{MazeWidth: 11, MazeHeight: 11}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, core.InputFrame{Actions: maps.Clone(in.Actions)})
	g.state.Ticks++
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Status() string { return fmt.Sprintf("stub ticks=%d", g.state.Ticks) }

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
	registry.Register("stub_other", func() registry.Game { return &stubGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{}
	m := NewModel(g, store, testConfig(), "")
	m.Init()
	return m, g
}

// send feeds msg to m and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tickModel(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Now()))
	return m
}

func TestModelHeldMovement(t *testing.T) {
	m, g := newTestModel(t, nil)

	m, _ = send(t, m, runeKey('w'))
	for i := 0; i < 3; i++ {
		m = tickModel(t, m)
	}

	for i, f := range g.frames {
		if !f.Has(core.ActionForward) {
			t.Errorf("tick %d: expected forward held", i)
		}
	}

	// Released once the hold window runs out without repeats
	for i := 0; i < 20; i++ {
		m = tickModel(t, m)
	}
	if g.frames[len(g.frames)-1].Has(core.ActionForward) {
		t.Error("expected forward released")
	}
}

func TestModelOneShotActions(t *testing.T) {
	m, g := newTestModel(t, nil)

	m, _ = send(t, m, runeKey('m'))
	m = tickModel(t, m)
	m = tickModel(t, m)

	if !g.frames[0].Has(core.ActionMap) {
		t.Error("expected map toggle on first tick")
	}
	if g.frames[1].Has(core.ActionMap) {
		t.Error("one-shot action repeated on the next tick")
	}
}

func TestModelPauseReleasesHeldKeys(t *testing.T) {
	m, g := newTestModel(t, nil)

	m, _ = send(t, m, runeKey('w'))
	m, _ = send(t, m, runeKey('p'))
	tickModel(t, m)

	f := g.frames[0]
	if !f.Has(core.ActionPause) || f.Has(core.ActionForward) {
		t.Errorf("expected pause without movement, got %v", f.Actions)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game: %d resets", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesRunOnEscape(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	g.state.Score = 900
	g.state.Escapes = 1
	g.state.GameOver = true
	m = tickModel(t, m)
	m = tickModel(t, m)

	runs, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 900 || r.Escapes != 1 || r.Player != LocalPlayer || r.MazeWidth != 11 || r.Ticks != 1 {
		t.Errorf("unexpected run %+v", r)
	}

	// Quitting afterwards does not store it twice
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if runs, _ := store.TopScores("stub", 10); len(runs) != 1 {
		t.Errorf("expected run saved once, got %d", len(runs))
	}
}

func TestModelSavesScoredRunOnQuit(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	g.state.Score = 300
	g.state.Escapes = 2
	m = tickModel(t, m)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("expected quit")
	}

	runs, _ := store.TopScores("stub", 10)
	if len(runs) != 1 || runs[0].Escapes != 2 {
		t.Errorf("expected endless run saved on quit, got %+v", runs)
	}
}

func TestModelSkipsEmptyRun(t *testing.T) {
	store := openTestStore(t)
	m, _ := newTestModel(t, store)

	m = tickModel(t, m)
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if runs, _ := store.TopScores("stub", 10); len(runs) != 0 {
		t.Errorf("expected no run for a zero score, got %d", len(runs))
	}
}

func TestModelRestart(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	g.state.Score = 120
	m = tickModel(t, m)
	m, _ = send(t, m, runeKey('w'))
	m, _ = send(t, m, runeKey('r'))

	if g.resets != 2 {
		t.Errorf("expected a reset on restart, got %d resets", g.resets)
	}
	if runs, _ := store.TopScores("stub", 10); len(runs) != 1 {
		t.Errorf("expected the abandoned run to be saved, got %d", len(runs))
	}

	tickModel(t, m)
	if g.frames[0].Has(core.ActionForward) {
		t.Error("held keys should be released on restart")
	}
}

func TestModelBack(t *testing.T) {
	m, g := newTestModel(t, nil)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("back inside a session should not quit the program")
	}
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("expected back to menu")
	}

	tickModel(t, m)
	if len(g.frames) != 0 {
		t.Error("game stepped after leaving")
	}
}

func TestModelBackQuitsStandalone(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.quitOnBack = true

	m, cmd := send(t, m, runeKey('b'))
	if cmd == nil || !m.IsQuitting() {
		t.Error("expected standalone game to quit on back")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	m, _ := newTestModel(t, nil)

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(home, ".tui-maze", "screenshots", "stub_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("unexpected screenshot %q", data)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 lines, got %d", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 80 {
		t.Errorf("expected 80 columns, got %d", w)
	}
	if !strings.Contains(lines[0], "stub") {
		t.Errorf("expected game output, got %q", lines[0])
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetCell(0, 0, '█', core.ColorShade5)
	s.SetCell(1, 0, '█', core.ColorShade5)
	s.SetCell(2, 0, '.', core.ColorFloor)
	s.SetCell(3, 0, '?', core.Color(200)) // unknown color falls back to default

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d: expected width 6, got %d", i, w)
		}
	}
	if !strings.Contains(lines[0], "██") || !strings.Contains(lines[0], "?") {
		t.Errorf("missing cells in %q", lines[0])
	}
}
