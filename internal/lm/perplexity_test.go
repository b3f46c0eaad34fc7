package lm

import (
	"math"
	"strings"
	"testing"
)

func TestScoreShortSentences(t *testing.T) {
	models := []Model{
		{},
		Train(DefaultCorpus().Tokens),
	}

	for _, m := range models {
		for _, s := range []string{"", "   ", "the", "zzz"} {
			if got := Perplexity(s, m); got != 0 {
				t.Errorf("Perplexity(%q) = %f, expected 0", s, got)
			}
		}
	}
}

func TestScoreKnownPair(t *testing.T) {
	model := Model{"the": {"cat": 0.5, "dog": 0.5}}

	got := Perplexity("the cat", model)
	if math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Perplexity(\"the cat\") = %f, expected %f", got, math.Sqrt2)
	}
}

func TestScoreUnseenPairsIgnoreModel(t *testing.T) {
	empty := Perplexity("zz yy xx", Model{})
	other := Perplexity("zz yy xx", Model{"the": {"cat": 1}, "zz": {"aa": 1}})

	if empty != other {
		t.Errorf("unseen pairs should score identically: %f vs %f", empty, other)
	}

	want := math.Pow(100*100, 1.0/3.0)
	if math.Abs(empty-want) > 1e-9 {
		t.Errorf("Perplexity(\"zz yy xx\") = %f, expected %f", empty, want)
	}
}

func TestScoreDividesByWordCount(t *testing.T) {
	model := Model{
		"a": {"b": 0.5},
		"b": {"c": 0.25},
	}

	// (2 * 4)^(1/3)
	want := math.Cbrt(8)
	got := Perplexity("a b c", model)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Perplexity(\"a b c\") = %f, expected %f", got, want)
	}
}

func TestScorerSmoothing(t *testing.T) {
	s := NewScorer(Model{}, 0.5)
	if got := s.Score("x y"); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Score with smoothing 0.5 = %f, expected %f", got, math.Sqrt2)
	}

	fallback := NewScorer(Model{}, 0)
	if fallback.Smoothing != DefaultSmoothing {
		t.Errorf("non-positive smoothing should fall back to %f, got %f", DefaultSmoothing, fallback.Smoothing)
	}
}

func TestLongUnseenSentenceApproachesInverseSmoothing(t *testing.T) {
	lang := DefaultLanguage()
	sentence := strings.Repeat("qq ", 40)

	got := lang.Perplexity(sentence)
	if got <= 50 || got >= 100 {
		t.Errorf("Perplexity of long unseen sentence = %f, expected within (50, 100)", got)
	}
}

func TestFluentSentenceScoresLow(t *testing.T) {
	lang := DefaultLanguage()

	fluent := lang.Perplexity("the cat sat on the bed")
	noisy := lang.Perplexity("the bed sat cat on the")
	if fluent >= noisy {
		t.Errorf("fluent sentence (%f) should score below shuffled one (%f)", fluent, noisy)
	}
	if fluent > 50 {
		t.Errorf("training sentence should stay under the default threshold, got %f", fluent)
	}
}
