package lm

import "sort"

// Model maps a word to the probability distribution of the words observed
// directly after it. Words never seen as the first element of a pair have
// no entry.
type Model map[string]map[string]float64

// Train counts every consecutive pair in tokens and normalizes the counts
// per leading word. Fewer than two tokens yield an empty model.
func Train(tokens []string) Model {
	counts := make(map[string]map[string]int)
	for i := 0; i+1 < len(tokens); i++ {
		w1, w2 := tokens[i], tokens[i+1]
		next, ok := counts[w1]
		if !ok {
			next = make(map[string]int)
			counts[w1] = next
		}
		next[w2]++
	}

	model := make(Model, len(counts))
	for w1, next := range counts {
		total := 0
		for _, n := range next {
			total += n
		}
		dist := make(map[string]float64, len(next))
		for w2, n := range next {
			dist[w2] = float64(n) / float64(total)
		}
		model[w1] = dist
	}
	return model
}

// Prob returns P(w2 | w1) and whether the pair was observed.
func (m Model) Prob(w1, w2 string) (float64, bool) {
	next, ok := m[w1]
	if !ok {
		return 0, false
	}
	p, ok := next[w2]
	return p, ok
}

// Successor is one entry of a word's outgoing distribution.
type Successor struct {
	Word string  `yaml:"word"`
	Prob float64 `yaml:"prob"`
}

// Successors returns w's outgoing distribution ordered by descending
// probability, ties broken alphabetically.
func (m Model) Successors(w string) []Successor {
	next := m[w]
	out := make([]Successor, 0, len(next))
	for word, p := range next {
		out = append(out, Successor{Word: word, Prob: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prob != out[j].Prob {
			return out[i].Prob > out[j].Prob
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Words returns the model's leading words sorted alphabetically.
func (m Model) Words() []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
