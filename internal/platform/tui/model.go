package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"snake-tui/internal/core"
	"snake-tui/internal/game"
	"snake-tui/internal/prefs"
	"snake-tui/internal/storage"
)

// Model is the Bubble Tea model running a snake session. All input and timer
// events pass through its single-goroutine Update method, which is the
// serialization boundary the engine requires.
type Model struct {
	engine     *game.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	swipe      *SwipeDecoder
	theme      Theme
	prefs      prefs.Prefs
	prefsPath  string
	highScore  int
	scoreSaved bool // Whether score has been saved for current game over
	quitting   bool
}

// ModelOptions bundle the collaborators a session model needs.
type ModelOptions struct {
	Engine        *game.Engine
	Store         *storage.Store // May be nil; play proceeds without scores
	Config        core.RuntimeConfig
	Prefs         prefs.Prefs
	PrefsPath     string // Empty disables preference persistence
	SwipeMinCells int
}

// NewModel creates a Bubble Tea model for the given engine.
func NewModel(opts ModelOptions) Model {
	m := Model{
		engine:    opts.Engine,
		screen:    core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		store:     opts.Store,
		config:    opts.Config,
		keyMapper: NewKeyMapper(),
		swipe:     NewSwipeDecoder(opts.SwipeMinCells),
		theme:     ThemeByName(opts.Prefs.Theme),
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
	}

	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds decoded keyboard input into the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keyMapper.MapKey(msg)

	switch in.Cmd {
	case CmdQuit:
		m.quitting = true
		return m, tea.Quit
	case CmdPause:
		m.engine.TogglePause()
	case CmdRestart:
		snap := m.engine.Snapshot()
		if snap.Over || snap.Won {
			m.engine.Reset()
			m.scoreSaved = false
		}
	case CmdToggleGrid:
		m.prefs.ShowGrid = !m.prefs.ShowGrid
		m.savePrefs()
	case CmdCycleTheme:
		m.theme = NextTheme(m.theme.Name)
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
	case CmdNone:
		if in.Dir != game.DirNone {
			m.engine.SubmitIntent(in.Dir)
		}
	}

	return m, nil
}

// handleMouse decodes press/release pairs into swipe intents.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Press(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if dir, ok := m.swipe.Release(msg.X, msg.Y); ok {
			m.engine.SubmitIntent(dir)
		}
	}
	return m, nil
}

// handleTick advances the simulation one step and re-arms the timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Tick()

	snap := m.engine.Snapshot()
	if (snap.Over || snap.Won) && !m.scoreSaved {
		m.saveScore(snap.Score)
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickInterval)
}

// saveScore persists a finished game's score and refreshes the HUD best.
func (m *Model) saveScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(score)
	if score > m.highScore {
		m.highScore = score
	}
}

// savePrefs persists view preferences. Best effort: a read-only home
// directory should never interrupt play.
func (m *Model) savePrefs() {
	//nolint:errcheck // Best-effort save
	prefs.Save(m.prefsPath, m.prefs)
}

// View renders the current engine snapshot to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.engine.Snapshot(), m.theme, m.prefs.ShowGrid, m.highScore)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts ModelOptions) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse drags double as swipe gestures
	)

	_, err := p.Run()
	return err
}
