// Package shooter implements the sentence shooter: the player fires at
// drifting words, every hit word is appended to a sentence, and the run
// ends once the bigram model finds that sentence too improbable.
package shooter

import (
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/wordshot/internal/config"
	"github.com/vovakirdan/wordshot/internal/core"
	"github.com/vovakirdan/wordshot/internal/lm"
)

// State is the session's top-level state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Input holds the per-tick signals from the presentation layer.
// Movement is level-triggered; Fire and Restart are edges and must only be
// true on the tick the key went down.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool
	Restart               bool
}

// Session owns all mutable game state. It is driven by Tick from a single
// goroutine and is not safe for concurrent use.
type Session struct {
	cfg        config.ShooterConfig
	lang       *lm.Language
	scorer     lm.Scorer
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	pool       []string // Word draw pool, terminators included

	tick       uint64
	state      State
	playerX    float64
	playerY    float64
	score      int
	sentence   string
	perplexity float64
	spawnTimer int
	bullets    []Entity
	tokens     []Entity
}

// NewSession creates a session in the Playing state. cfg is expected to
// have passed Validate.
func NewSession(lang *lm.Language, cfg config.ShooterConfig, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		lang:       lang,
		scorer:     lm.NewScorer(lang.Model, cfg.Language.Smoothing),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		pool:       wordPool(lang.Corpus.Tokens, cfg.Language.Terminator, cfg.Language.TerminatorRatio),
		bullets:    make([]Entity, 0, 16),
		tokens:     make([]Entity, 0, 16),
	}
	s.Reset()
	return s
}

// wordPool returns the corpus tokens (duplicates kept, so frequent words
// are drawn more often) followed by one terminator per ratio tokens.
func wordPool(tokens []string, terminator string, ratio int) []string {
	if ratio < 1 {
		ratio = 1
	}
	n := len(tokens) / ratio
	pool := make([]string, 0, len(tokens)+n)
	pool = append(pool, tokens...)
	for i := 0; i < n; i++ {
		pool = append(pool, terminator)
	}
	return pool
}

// Reset reinitializes the session to a fresh run. The RNG keeps its
// position so consecutive runs differ.
func (s *Session) Reset() {
	s.tick = 0
	s.state = StatePlaying
	s.playerX = s.cfg.Player.StartX
	s.playerY = math.Floor((s.cfg.Field.Height + s.cfg.Field.UIHeight) / 2)
	s.score = 0
	s.bullets = s.bullets[:0]
	s.tokens = s.tokens[:0]
	s.spawnTimer = 0
	s.sentence = s.randomHead()
	s.perplexity = s.scorer.Score(s.sentence)
}

// Tick advances the session by one frame and returns what to draw.
func (s *Session) Tick(in Input) RenderModel {
	if s.state == StateGameOver {
		if in.Restart {
			s.Reset()
		}
		return s.View()
	}

	s.tick++
	s.movePlayer(in)
	if in.Fire {
		s.fire()
	}

	for i := range s.bullets {
		s.bullets[i].advance(&s.cfg, 0)
	}

	pace := s.difficulty.Pace(s.cfg.Tokens, s.score, int(s.tick))
	s.spawnTimer++
	if s.spawnTimer > pace.SpawnInterval {
		s.spawnTimer = 0
		s.spawnBatch()
	}

	for i := range s.tokens {
		s.tokens[i].advance(&s.cfg, pace.TokenSpeed)
	}

	s.resolveCollisions()

	s.bullets = sweep(s.bullets)
	s.tokens = sweep(s.tokens)

	s.perplexity = s.scorer.Score(s.sentence)
	if s.perplexity > s.cfg.Language.PerplexityThreshold {
		s.state = StateGameOver
	}

	return s.View()
}

func (s *Session) movePlayer(in Input) {
	f := s.cfg.Field
	step := s.cfg.Player.Speed
	maxX := f.Width - s.cfg.Player.Size
	maxY := f.Height - s.cfg.Player.Size

	if in.Left {
		s.playerX -= step
	}
	if in.Right {
		s.playerX += step
	}
	if in.Up {
		s.playerY -= step
	}
	if in.Down {
		s.playerY += step
	}
	s.playerX = core.ClampF(s.playerX, 0, maxX)
	s.playerY = core.ClampF(s.playerY, f.UIHeight, maxY)
}

// fire spawns a bullet at the player's right edge, vertically centered.
func (s *Session) fire() {
	size := s.cfg.Player.Size
	s.bullets = append(s.bullets, NewBullet(s.playerX+size, s.playerY+size/2))
}

// spawnBatch drops MinBatch..MaxBatch tokens just past the right edge.
func (s *Session) spawnBatch() {
	t := s.cfg.Tokens
	f := s.cfg.Field

	n := t.MinBatch + s.rng.Intn(t.MaxBatch-t.MinBatch+1)
	minY := int(f.UIHeight) + t.EdgeMargin
	maxY := int(f.Height) - t.EdgeMargin
	if maxY < minY {
		maxY = minY
	}

	for i := 0; i < n; i++ {
		word := s.pool[s.rng.Intn(len(s.pool))]
		y := minY + s.rng.Intn(maxY-minY+1)
		s.tokens = append(s.tokens, NewToken(word, f.Width+t.SpawnOffset, float64(y)))
	}
}

// resolveCollisions pairs active bullets with active tokens. A bullet is
// spent on its first hit.
func (s *Session) resolveCollisions() {
	tol := s.cfg.Collision.Tolerance
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.Active {
			continue
		}
		for j := range s.tokens {
			tok := &s.tokens[j]
			if !tok.Active || !near(*b, *tok, tol) {
				continue
			}
			b.Active = false
			tok.Active = false
			s.collect(tok.Text)
			break
		}
	}
}

// collect applies a hit token to the sentence.
func (s *Session) collect(word string) {
	if word == s.cfg.Language.Terminator {
		s.sentence = s.randomHead()
		return
	}
	s.score++
	s.sentence += " " + word
}

func (s *Session) randomHead() string {
	heads := s.lang.Corpus.Heads
	return heads[s.rng.Intn(len(heads))]
}

// State returns the current top-level state.
func (s *Session) State() State {
	return s.state
}

// Score returns the number of words collected this run.
func (s *Session) Score() int {
	return s.score
}

// Sentence returns the sentence built so far.
func (s *Session) Sentence() string {
	return s.sentence
}

// Perplexity returns the perplexity computed at the end of the last tick.
func (s *Session) Perplexity() float64 {
	return s.perplexity
}

// recentWords returns the last n words of sentence.
func recentWords(sentence string, n int) string {
	words := strings.Fields(sentence)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
