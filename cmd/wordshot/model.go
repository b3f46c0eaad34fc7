package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordshot/internal/lm"
)

var flagHeads bool

var modelCmd = &cobra.Command{
	Use:   "model [word...]",
	Short: "Dump bigram distributions as YAML",
	Long: `Print the successor distribution of each given word, most likely
successor first. Without arguments the whole model is printed.

Examples:
  wordshot model the
  wordshot model cat dog
  wordshot model --heads`,
	RunE: runModel,
}

func init() {
	modelCmd.Flags().BoolVar(&flagHeads, "heads", false, "Print the sentence-initial words instead")
}

func runModel(_ *cobra.Command, args []string) error {
	lang := newLanguage(lm.DefaultSmoothing)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	if flagHeads {
		return enc.Encode(map[string][]string{"heads": lang.Corpus.Heads})
	}

	words := lang.Model.Words()
	if len(args) > 0 {
		words = make([]string, 0, len(args))
		for _, a := range args {
			words = append(words, strings.ToLower(a))
		}
	}

	out := make(map[string][]lm.Successor, len(words))
	for _, w := range words {
		succ := lang.Model.Successors(w)
		if len(succ) == 0 {
			logger.Warn("word has no observed successors", "word", w)
			continue
		}
		out[w] = succ
	}

	if len(out) == 0 {
		return fmt.Errorf("no successors for %s", strings.Join(words, ", "))
	}
	return enc.Encode(out)
}
