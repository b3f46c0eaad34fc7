package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordshot/internal/core"
	"github.com/vovakirdan/wordshot/internal/storage"
)

// fakeGame records the actions it sees and ends after overAt steps.
type fakeGame struct {
	frames [][]core.Action
	steps  int
	overAt int
	state  core.GameState
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{} }
func (g *fakeGame) Render(dst *core.Screen)      { dst.Clear(); dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState        { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	var seen []core.Action
	for a := core.ActionLeft; a <= core.ActionQuit; a++ {
		if in.Has(a) {
			seen = append(seen, a)
		}
	}
	g.frames = append(g.frames, seen)
	g.steps++

	if in.Has(core.ActionRestart) {
		g.state = core.GameState{}
		g.steps = 0
	}
	if g.overAt > 0 && g.steps >= g.overAt {
		g.state = core.GameState{GameOver: true, Score: 3, Sentence: "the cat sat", Perplexity: 4.5}
	}
	return core.StepResult{State: g.state}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(g core.Game, store *storage.Store, opts ...Option) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return NewModel(g, store, cfg, opts...)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func hasAction(frame []core.Action, a core.Action) bool {
	for _, got := range frame {
		if got == a {
			return true
		}
	}
	return false
}

func TestModelMovementIsSticky(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < stickyTicks+1; i++ {
		m = tick(t, m)
	}

	for i := 0; i < stickyTicks; i++ {
		if !hasAction(g.frames[i], core.ActionRight) {
			t.Errorf("frame %d: expected Right to be held, got %v", i, g.frames[i])
		}
	}
	if hasAction(g.frames[stickyTicks], core.ActionRight) {
		t.Errorf("Right should be released after %d ticks", stickyTicks)
	}
}

func TestModelFireIsOneShot(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	m = tick(t, m)

	if !hasAction(g.frames[0], core.ActionFire) {
		t.Errorf("first frame should carry Fire, got %v", g.frames[0])
	}
	if hasAction(g.frames[1], core.ActionFire) {
		t.Error("Fire should be cleared after one tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("View after quit = %q, want empty", view)
	}
}

func TestModelSavesRunOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var hookCalls int
	g := &fakeGame{overAt: 2}
	m := newTestModel(g, store, WithGameOver(func(gameID string, st core.GameState) {
		hookCalls++
		if gameID != "fake" || st.Sentence != "the cat sat" {
			t.Errorf("hook got %q %+v", gameID, st)
		}
	}))

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Score != 3 || runs[0].Sentence != "the cat sat" || runs[0].Perplexity != 4.5 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// Restart, then lose again.
	m = press(t, m, runeKey('r'))
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	runs, _ = store.TopRuns("fake", 10)
	if len(runs) != 2 {
		t.Errorf("expected 2 saved runs after second game over, got %d", len(runs))
	}
	if hookCalls != 2 {
		t.Errorf("game over hook called %d times, want 2", hookCalls)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := newTestModel(g, nil)
	m = tick(t, m)

	if !m.State().GameOver {
		t.Error("expected game over without a store")
	}
}

func TestModelResizeReservesFooter(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	view := m.View()

	if !strings.Contains(view, "fake") {
		t.Error("view should contain the game render")
	}
	if !strings.Contains(view, "fire") || !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
}
