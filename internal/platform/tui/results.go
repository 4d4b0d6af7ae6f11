package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-pong/internal/storage"
)

// DefaultResultsLimit is how many matches the results screen loads.
const DefaultResultsLimit = 100

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel lists recorded matches with a win summary.
type ResultsModel struct {
	matches  []storage.MatchRecord
	stats    *storage.WinStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	height   int
	quitting bool
}

// NewResultsModel loads up to limit matches from store.
func NewResultsModel(store *storage.Store, limit, height int) ResultsModel {
	if limit <= 0 {
		limit = DefaultResultsLimit
	}

	m := ResultsModel{
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		height: height,
	}

	if store != nil {
		m.matches, m.loadErr = store.RecentMatches(limit)
		if m.loadErr == nil {
			m.stats, m.loadErr = store.WinCounts()
		}
	}

	m.table = m.createTable()
	m.table.SetRows(ResultRows(m.matches))
	return m
}

func (m *ResultsModel) createTable() table.Model {
	tableHeight := m.height - 10 // Leave room for header, summary and help
	if tableHeight < 5 {
		tableHeight = 5
	}

	t := table.New(
		table.WithColumns(ResultColumns()),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
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

// ResultColumns returns the column layout shared by the TUI and plain output.
func ResultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Winner", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Rally", Width: 7},
		{Title: "Speed", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Source", Width: 14},
		{Title: "Date", Width: 14},
	}
}

// ResultRows formats matches as table rows.
func ResultRows(matches []storage.MatchRecord) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, r := range matches {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.WinnerName(),
			fmt.Sprintf("%d-%d", r.Score1, r.Score2),
			fmt.Sprintf("%d/%d", r.BestRally1, r.BestRally2),
			fmt.Sprintf("%dms", r.SpeedMS),
			r.Duration.Round(time.Second).String(),
			r.Source,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Summary returns the one-line win summary.
func Summary(stats *storage.WinStats) string {
	if stats == nil || stats.Matches == 0 {
		return "No matches recorded yet."
	}
	return fmt.Sprintf("%d matches  P1 %d - %d P2  best rally %d  avg points %.1f  played %s",
		stats.Matches, stats.P1Wins, stats.P2Wins, stats.BestRally, stats.AvgPoints,
		stats.TotalTime.Round(time.Second))
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(ResultRows(m.matches))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("MATCH RESULTS"))
	b.WriteString("\n")

	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render(m.loadErr.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(Summary(m.stats))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.matches) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("Play a match to see it here.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunResults runs the results screen.
func RunResults(store *storage.Store, limit, height int) error {
	p := tea.NewProgram(
		NewResultsModel(store, limit, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
