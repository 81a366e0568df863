package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// boardLimit caps the runs loaded for one table.
const boardLimit = 50

// boardView selects what the scoreboard ranks.
type boardView int

const (
	viewTopScores boardView = iota
	viewFastest
)

// boardSizes are the maze sizes offered by the fastest-escape view, one per preset.
var boardSizes = []int{
	config.SizeForPreset(config.DifficultyEasy),
	config.SizeForPreset(config.DifficultyNormal),
	config.SizeForPreset(config.DifficultyHard),
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Mode   key.Binding
	View   key.Binding
	Size   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.View, k.Size, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Mode:   key.NewBinding(key.WithKeys("tab", "right", "l", "shift+tab", "left", "h"), key.WithHelp("tab/←/→", "mode")),
		View:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "top/fastest")),
		Size:   key.NewBinding(key.WithKeys("s", "+", "-"), key.WithHelp("s", "maze size")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of one mode at a time, ranked either
// by score or by the fastest single escape of a given maze size.
type ScoreboardModel struct {
	store  *storage.Store
	modes  []registry.GameInfo
	mode   int
	view   boardView
	size   int // index into boardSizes
	runs   []storage.Run
	stats  *storage.GameStats
	table  table.Model
	keys   ScoreboardKeyMap
	help   help.Model
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		size:   indexOfSize(config.SizeForPreset(config.DifficultyNormal)),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

func indexOfSize(size int) int {
	for i, s := range boardSizes {
		if s == size {
			return i
		}
	}
	return 0
}

// GameID returns the mode on display, "" when none is registered.
func (m ScoreboardModel) GameID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// SelectGame switches to the given mode if it is registered.
func (m *ScoreboardModel) SelectGame(id string) {
	for i, g := range m.modes {
		if g.ID == id {
			m.mode = i
			m.reload()
			return
		}
	}
}

// reload queries the store for the current mode and view.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if id := m.GameID(); m.store != nil && id != "" {
		var err error
		if m.view == viewFastest {
			size := boardSizes[m.size]
			m.runs, err = m.store.FastestEscapes(id, size, size, boardLimit)
		} else {
			m.runs, err = m.store.TopScores(id, boardLimit)
		}
		if err != nil {
			log.Warn("could not load scoreboard", "game", id, "error", err)
		}
		if m.stats, err = m.store.GetGameStats(id); err != nil {
			log.Warn("could not load game stats", "game", id, "error", err)
		}
	}
	m.table = m.buildTable()
}

// buildTable lays out the columns for the current view and fills the rows.
func (m ScoreboardModel) buildTable() table.Model {
	var cols []table.Column
	rows := make([]table.Row, 0, len(m.runs))

	if m.view == viewFastest {
		cols = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 14},
			{Title: "Ticks", Width: 8},
			{Title: "Score", Width: 7},
			{Title: "When", Width: 12},
		}
		for i, r := range m.runs {
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1), r.Player, strconv.Itoa(r.Ticks),
				strconv.Itoa(r.Score), r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	} else {
		cols = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 14},
			{Title: "Score", Width: 7},
			{Title: "Escapes", Width: 7},
			{Title: "Last maze", Width: 9},
			{Title: "Ticks", Width: 8},
			{Title: "When", Width: 12},
		}
		for i, r := range m.runs {
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1), r.Player, strconv.Itoa(r.Score), strconv.Itoa(r.Escapes),
				fmt.Sprintf("%dx%d", r.MazeWidth, r.MazeHeight), strconv.Itoa(r.Ticks),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	// Title, tabs, frame, footer and help take ten lines.
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}
	return m, nil
}

func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Mode):
		if n := len(m.modes); n > 0 {
			step := 1
			switch msg.String() {
			case "shift+tab", "left", "h":
				step = n - 1
			}
			m.mode = (m.mode + step) % n
			m.reload()
		}

	case key.Matches(msg, m.keys.View):
		if m.view == viewTopScores {
			m.view = viewFastest
		} else {
			m.view = viewTopScores
		}
		m.reload()

	case key.Matches(msg, m.keys.Size):
		if m.view == viewFastest {
			step := 1
			if msg.String() == "-" {
				step = len(boardSizes) - 1
			}
			m.size = (m.size + step) % len(boardSizes)
			m.reload()
		}

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Heading names the current ranking.
func (m ScoreboardModel) Heading() string {
	if m.view == viewFastest {
		size := boardSizes[m.size]
		return fmt.Sprintf("FASTEST ESCAPES %dx%d", size, size)
	}
	return "HIGH SCORES"
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(boardTitleStyle, m.Heading(), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveStyle.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 2).Render(m.emptyMessage())
	}
	for _, line := range strings.Split(boardFrameStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if footer := m.footer(); footer != "" {
		b.WriteString(centerStyled(boardDimStyle, footer, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) emptyMessage() string {
	if m.view == viewFastest {
		return "No single escapes of this size yet."
	}
	return "No runs recorded yet.\nEscape a maze to set a high score!"
}

// footer summarizes every run of the current mode.
func (m ScoreboardModel) footer() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	s := fmt.Sprintf("%d runs  |  best %d  |  avg %.0f  |  %d escapes",
		m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalEscapes)
	if m.stats.BestTicks > 0 {
		s += fmt.Sprintf("  |  fastest %d ticks", m.stats.BestTicks)
	}
	return s
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard in its own program.
// It reports whether the user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
