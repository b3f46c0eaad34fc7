package shooter

// Point is a position in play-area units.
type Point struct {
	X, Y float64
}

// TokenView is a token as the presentation layer sees it.
type TokenView struct {
	Point
	Text       string
	Terminator bool
}

// RenderModel is everything the presentation layer needs for one frame.
type RenderModel struct {
	Player     Point
	Bullets    []Point
	Tokens     []TokenView
	Score      int
	Recent     string // Last few words of Sentence
	Sentence   string
	Perplexity float64
	Threshold  float64
	GameOver   bool
}

// View builds the render model for the current state. Only active
// entities are included.
func (s *Session) View() RenderModel {
	v := RenderModel{
		Player:     Point{X: s.playerX, Y: s.playerY},
		Bullets:    make([]Point, 0, len(s.bullets)),
		Tokens:     make([]TokenView, 0, len(s.tokens)),
		Score:      s.score,
		Recent:     recentWords(s.sentence, s.cfg.Language.RecentWords),
		Sentence:   s.sentence,
		Perplexity: s.perplexity,
		Threshold:  s.cfg.Language.PerplexityThreshold,
		GameOver:   s.state == StateGameOver,
	}
	for _, b := range s.bullets {
		if b.Active {
			v.Bullets = append(v.Bullets, Point{X: b.X, Y: b.Y})
		}
	}
	for _, t := range s.tokens {
		if t.Active {
			v.Tokens = append(v.Tokens, TokenView{
				Point:      Point{X: t.X, Y: t.Y},
				Text:       t.Text,
				Terminator: t.Text == s.cfg.Language.Terminator,
			})
		}
	}
	return v
}
