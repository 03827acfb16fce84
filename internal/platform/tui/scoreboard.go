package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkotenko/clickrush/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the view sidebar
	sidebarWidth       = 20  // Width of the view sidebar
	maxEntries         = 100 // Max records to load per view
)

// scoreboardView selects which records the table shows.
type scoreboardView int

const (
	viewTopScores scoreboardView = iota
	viewBestRounds
	viewRecentRounds
)

var viewTitles = []string{"Top Scores", "Best Rounds", "Recent Rounds"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextView key.Binding
	PrevView key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev view"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID      string
	gameTitle   string
	view        scoreboardView
	store       *storage.Store
	scores      []storage.ScoreEntry
	rounds      []storage.RoundResult
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the view sidebar
}

// NewScoreboardModel creates a new scoreboard model for the given game.
func NewScoreboardModel(store *storage.Store, gameID, gameTitle string, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:      gameID,
		gameTitle:   gameTitle,
		view:        viewTopScores,
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRecords()

	return m
}

// createTable creates a new table with columns matching the current view.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.view == viewTopScores {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 7},
			{Title: "Time", Width: 6},
			{Title: "Pts/s", Width: 7},
			{Title: "Hits", Width: 6},
			{Title: "Miss", Width: 6},
			{Title: "Streak", Width: 7},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRecords loads the records for the current view.
func (m *ScoreboardModel) loadRecords() {
	m.scores = nil
	m.rounds = nil

	if m.store != nil {
		switch m.view {
		case viewTopScores:
			if scores, err := m.store.TopScores(m.gameID, maxEntries); err == nil {
				m.scores = scores
			}
		case viewBestRounds:
			if rounds, err := m.store.BestRounds(m.gameID, maxEntries); err == nil {
				m.rounds = rounds
			}
		case viewRecentRounds:
			if rounds, err := m.store.RecentRounds(m.gameID, maxEntries); err == nil {
				m.rounds = rounds
			}
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with the current records.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == viewTopScores {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.rounds))
		for i, r := range m.rounds {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%ds", r.DurationSecs),
				fmt.Sprintf("%.2f", r.PointsPerSec),
				fmt.Sprintf("%d", r.Hits),
				fmt.Sprintf("%d", r.Misses),
				fmt.Sprintf("%d", r.BestStreak),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// setView switches to a different view and reloads records.
func (m *ScoreboardModel) setView(v scoreboardView) {
	m.view = v
	m.table = m.createTable()
	m.loadRecords()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView), key.Matches(msg, m.keys.Right):
			m.setView((m.view + 1) % scoreboardView(len(viewTitles)))
			return m, nil

		case key.Matches(msg, m.keys.PrevView), key.Matches(msg, m.keys.Left):
			next := m.view - 1
			if next < 0 {
				next = scoreboardView(len(viewTitles) - 1)
			}
			m.setView(next)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("%s - %s", strings.ToUpper(m.gameTitle), viewTitles[m.view])
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar for view selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, title := range viewTitles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if scoreboardView(i) == m.view {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + title))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the scoreboard with view tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(viewTitles))
	for i, title := range viewTitles {
		if scoreboardView(i) == m.view {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(" " + title + " ")
		}
	}

	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 && len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay a round to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID, gameTitle string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, gameID, gameTitle, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
