// Package lm implements the tiny statistical language model used to judge
// the sentences players build: a flattened training corpus, a bigram
// frequency table and a direct (non log-domain) perplexity scorer.
//
// Everything in this package is pure and deterministic; values are built
// once at startup and are safe to share read-only between sessions.
package lm

import (
	_ "embed"
	"strings"
)

//go:embed sentences.txt
var defaultSentences string

// Corpus is the flattened training text derived from a block of sentences.
type Corpus struct {
	// Tokens is the lowercased, period-stripped token stream. Sentence
	// boundaries are not preserved.
	Tokens []string

	// Heads holds the first word of every source sentence, in order.
	Heads []string
}

// BuildCorpus turns a block of sentences (one per line, each ending in a
// period) into a Corpus. Blank lines are ignored.
func BuildCorpus(text string) Corpus {
	var c Corpus
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(strings.ReplaceAll(strings.ToLower(line), ".", ""))
		if len(words) == 0 {
			continue
		}
		c.Heads = append(c.Heads, words[0])
		c.Tokens = append(c.Tokens, words...)
	}
	return c
}

// DefaultCorpus builds the corpus from the embedded sentence block.
func DefaultCorpus() Corpus {
	return BuildCorpus(defaultSentences)
}

// Text returns the token stream joined by single spaces.
func (c Corpus) Text() string {
	return strings.Join(c.Tokens, " ")
}

// Vocabulary returns the distinct tokens in order of first appearance.
func (c Corpus) Vocabulary() []string {
	seen := make(map[string]bool, len(c.Tokens))
	vocab := make([]string, 0, len(c.Tokens))
	for _, w := range c.Tokens {
		if seen[w] {
			continue
		}
		seen[w] = true
		vocab = append(vocab, w)
	}
	return vocab
}
