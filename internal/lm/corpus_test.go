package lm

import (
	"strings"
	"testing"
)

func TestBuildCorpus(t *testing.T) {
	c := BuildCorpus("The cat sat.\nA Dog ran.\n\n")

	wantTokens := []string{"the", "cat", "sat", "a", "dog", "ran"}
	if len(c.Tokens) != len(wantTokens) {
		t.Fatalf("Tokens = %v, expected %v", c.Tokens, wantTokens)
	}
	for i, w := range wantTokens {
		if c.Tokens[i] != w {
			t.Errorf("Tokens[%d] = %q, expected %q", i, c.Tokens[i], w)
		}
	}

	if len(c.Heads) != 2 || c.Heads[0] != "the" || c.Heads[1] != "a" {
		t.Errorf("Heads = %v, expected [the a]", c.Heads)
	}

	if c.Text() != "the cat sat a dog ran" {
		t.Errorf("Text() = %q", c.Text())
	}
}

func TestDefaultCorpus(t *testing.T) {
	c := DefaultCorpus()

	if len(c.Heads) != 50 {
		t.Errorf("expected 50 sentence heads, got %d", len(c.Heads))
	}
	if len(c.Tokens) == 0 {
		t.Fatal("default corpus should not be empty")
	}

	for _, w := range c.Tokens {
		if w != strings.ToLower(w) {
			t.Errorf("token %q is not lowercase", w)
		}
		if strings.Contains(w, ".") {
			t.Errorf("token %q still contains a period", w)
		}
	}

	if c.Heads[0] != "the" || c.Heads[1] != "i" {
		t.Errorf("unexpected first heads: %v", c.Heads[:2])
	}
}

func TestVocabulary(t *testing.T) {
	c := BuildCorpus("the cat saw the dog.")
	vocab := c.Vocabulary()

	want := []string{"the", "cat", "saw", "dog"}
	if len(vocab) != len(want) {
		t.Fatalf("Vocabulary() = %v, expected %v", vocab, want)
	}
	for i := range want {
		if vocab[i] != want[i] {
			t.Errorf("Vocabulary()[%d] = %q, expected %q", i, vocab[i], want[i])
		}
	}
}
