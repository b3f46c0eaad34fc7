package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordshot/internal/core"
	"github.com/vovakirdan/wordshot/internal/storage"
)

// stickyTicks is how long a movement key stays held after its last press.
const stickyTicks = 4

// footerRows is the number of terminal rows reserved for the help footer.
const footerRows = 1

// GameOverFunc is called once per finished run.
type GameOverFunc func(gameID string, state core.GameState)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithGameOver registers a callback fired when a run ends.
func WithGameOver(fn GameOverFunc) Option {
	return func(m *Model) { m.onGameOver = fn }
}

// Model is the Bubble Tea model that drives a single game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	onGameOver GameOverFunc

	inputFrame core.InputFrame
	held       map[core.Action]int
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case runs are not persisted.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     log.Default(),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

func playRows(h int) int {
	return max(h-footerRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case isDirectional(action):
		m.held[action] = stickyTicks
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen buffer. The game keeps its state since
// it renders in field units projected onto whatever size it is given.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for a, n := range m.held {
		m.inputFrame.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishRun()
		m.scoreSaved = true
	} else if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finishRun persists the run and fires the game-over hook.
func (m Model) finishRun() {
	if m.store != nil {
		_, err := m.store.SaveRun(storage.Run{
			GameID:     m.game.ID(),
			Score:      m.gameState.Score,
			Sentence:   m.gameState.Sentence,
			Perplexity: m.gameState.Perplexity,
		})
		if err != nil {
			m.logger.Warn("could not save run", "error", err)
		}
	}
	if m.onGameOver != nil {
		m.onGameOver(m.game.ID(), m.gameState)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.wordshot/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".wordshot", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
