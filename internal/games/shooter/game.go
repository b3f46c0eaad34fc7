package shooter

import (
	"github.com/vovakirdan/wordshot/internal/config"
	"github.com/vovakirdan/wordshot/internal/core"
	"github.com/vovakirdan/wordshot/internal/lm"
)

// GameID identifies the game in score storage.
const GameID = "wordshot"

// Game adapts a Session to the platform's core.Game interface: it turns
// key frames into Input (detecting Fire/Restart edges), handles pausing,
// and renders the last RenderModel into a Screen.
type Game struct {
	lang *lm.Language
	cfg  config.ShooterConfig

	session *Session
	view    RenderModel
	paused  bool

	fireHeld    bool
	restartHeld bool
}

// New creates a game over a shared, read-only Language.
func New(lang *lm.Language, cfg config.ShooterConfig) *Game {
	return &Game{lang: lang, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sentence Builder Shooter"
}

// Reset starts a new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.lang, g.cfg, cfg.Seed)
	g.view = g.session.View()
	g.paused = false
	g.fireHeld = false
	g.restartHeld = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	fire := in.Has(core.ActionFire)
	restart := in.Has(core.ActionRestart)
	input := Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Up:      in.Has(core.ActionUp),
		Down:    in.Has(core.ActionDown),
		Fire:    fire && !g.fireHeld,
		Restart: restart && !g.restartHeld,
	}
	g.fireHeld = fire
	g.restartHeld = restart

	if in.Has(core.ActionPause) && !g.view.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.view = g.session.Tick(input)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.view.Score,
		GameOver:   g.view.GameOver,
		Paused:     g.paused,
		Sentence:   g.view.Sentence,
		Perplexity: g.view.Perplexity,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}
