package shooter

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	State      State
	Score      int
	PlayerX    float64
	PlayerY    float64
	Bullets    int
	Tokens     int
	SpawnTimer int
	Sentence   string
	Perplexity float64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Score:      s.score,
		PlayerX:    s.playerX,
		PlayerY:    s.playerY,
		Bullets:    len(s.bullets),
		Tokens:     len(s.tokens),
		SpawnTimer: s.spawnTimer,
		Sentence:   s.sentence,
		Perplexity: s.perplexity,
	}
}
