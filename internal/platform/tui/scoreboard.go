package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snake-tui/internal/storage"
)

const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10")).
				Padding(0, 1)

	scoreboardBoxStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	scoreboardStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)
)

// ScoreboardModel is an interactive browser for saved scores.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.Stats
	loadErr  error
	quitting bool
}

// NewScoreboardModel loads scores from the store and builds the table.
func NewScoreboardModel(store *storage.Store) ScoreboardModel {
	m := ScoreboardModel{
		help: help.New(),
		keys: DefaultScoreboardKeyMap(),
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	entries, err := store.TopScores(maxScoreboardRows)
	if err != nil {
		m.loadErr = err
	}
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	if stats, err := store.GetStats(); err == nil {
		m.stats = stats
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10"))
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard input.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render("Snake — High Scores")

	body := m.table.View()
	if m.loadErr != nil {
		body = fmt.Sprintf("could not load scores: %v", m.loadErr)
	} else if len(m.table.Rows()) == 0 {
		body = "No scores recorded yet."
	}

	var statsLine string
	if m.stats != nil && m.stats.GamesCount > 0 {
		statsLine = scoreboardStatsStyle.Render(fmt.Sprintf(
			"games: %d   best: %d   avg: %.1f",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		scoreboardBoxStyle.Render(body),
		statsLine,
		m.help.View(m.keys),
	)
}

// RunScoreboard opens the interactive scoreboard.
func RunScoreboard(store *storage.Store) error {
	p := tea.NewProgram(NewScoreboardModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
