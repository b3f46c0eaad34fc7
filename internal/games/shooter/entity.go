package shooter

import (
	"github.com/vovakirdan/wordshot/internal/config"
	"github.com/vovakirdan/wordshot/internal/core"
)

// Kind distinguishes the entity variants.
type Kind uint8

const (
	KindBullet Kind = iota
	KindToken
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindToken:
		return "token"
	default:
		return "unknown"
	}
}

// Entity is a moving object in the play area. Text is only meaningful for
// tokens. Inactive entities are skipped by every pass and dropped by sweep.
type Entity struct {
	Kind   Kind
	X, Y   float64
	Active bool
	Text   string
}

// NewBullet creates an active bullet at (x, y).
func NewBullet(x, y float64) Entity {
	return Entity{Kind: KindBullet, X: x, Y: y, Active: true}
}

// NewToken creates an active token carrying text at (x, y).
func NewToken(text string, x, y float64) Entity {
	return Entity{Kind: KindToken, X: x, Y: y, Active: true, Text: text}
}

// advance moves the entity one tick and deactivates it once it leaves
// the play area. Bullets travel right, tokens travel left at tokenSpeed.
func (e *Entity) advance(cfg *config.ShooterConfig, tokenSpeed float64) {
	if !e.Active {
		return
	}
	switch e.Kind {
	case KindBullet:
		e.X += cfg.Bullets.Speed
		if e.X > cfg.Field.Width {
			e.Active = false
		}
	case KindToken:
		e.X -= tokenSpeed
		if e.X < cfg.Tokens.ExitX {
			e.Active = false
		}
	}
}

// near reports whether two entities are within tol on both axes.
func near(a, b Entity, tol float64) bool {
	return core.AbsF(a.X-b.X) < tol && core.AbsF(a.Y-b.Y) < tol
}

// sweep compacts entities in place, keeping only active ones.
func sweep(entities []Entity) []Entity {
	kept := entities[:0]
	for _, e := range entities {
		if e.Active {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped token strings can be collected.
	for i := len(kept); i < len(entities); i++ {
		entities[i] = Entity{}
	}
	return kept
}
