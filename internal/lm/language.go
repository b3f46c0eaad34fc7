package lm

// Language bundles the corpus, the model trained on it and a scorer. It is
// built once per process and passed explicitly to whoever needs it.
type Language struct {
	Corpus Corpus
	Model  Model
	Scorer Scorer
}

// NewLanguage trains a model on corpus and wires a scorer with the given
// smoothing constant.
func NewLanguage(corpus Corpus, smoothing float64) *Language {
	model := Train(corpus.Tokens)
	return &Language{
		Corpus: corpus,
		Model:  model,
		Scorer: NewScorer(model, smoothing),
	}
}

// DefaultLanguage builds a Language from the embedded corpus.
func DefaultLanguage() *Language {
	return NewLanguage(DefaultCorpus(), DefaultSmoothing)
}

// Perplexity scores sentence with the language's scorer.
func (l *Language) Perplexity(sentence string) float64 {
	return l.Scorer.Score(sentence)
}
