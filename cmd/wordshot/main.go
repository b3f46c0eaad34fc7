// wordshot is a terminal arcade game: shoot words to build a sentence
// while a bigram language model judges how fluent it is.
//
// Usage:
//
//	wordshot play               - Play in this terminal
//	wordshot serve              - Start SSH server for remote play
//	wordshot scores             - Show saved runs
//	wordshot score <sentence>   - Print the perplexity of a sentence
//	wordshot model [word...]    - Dump bigram distributions as YAML
//
// Global flags (also read from WORDSHOT_* environment variables):
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.wordshot/runs.db)
//	--verbose       - Enable debug logging
package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/wordshot/internal/config"
	"github.com/vovakirdan/wordshot/internal/lm"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "wordshot",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordshot",
	Short: "Sentence Builder Shooter - shoot words, keep your sentence fluent",
	Long: `Wordshot is a terminal shooter where every word you hit is appended
to a sentence. A bigram language model trained on a small corpus scores
the sentence after every tick; once its perplexity climbs past the
threshold the game is over. Shoot the red </s> marker to start a fresh
sentence.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View saved runs
  score    - Score a sentence with the language model
  model    - Inspect the bigram model

Examples:
  wordshot play
  wordshot play --difficulty hard
  wordshot serve --ssh :2222
  wordshot score "the cat sat on the mat"
  wordshot model the cat`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if viper.GetBool("verbose") {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Int("fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().String("db", "~/.wordshot/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose output")

	for _, name := range []string{"fps", "seed", "db", "verbose"} {
		//nolint:errcheck // Flags are defined above
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(modelCmd)
}

// initConfig binds WORDSHOT_* environment variables.
func initConfig() {
	viper.SetEnvPrefix("WORDSHOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// gameFlags are shared by commands that start games.
type gameFlags struct {
	config     string
	difficulty string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Path to custom shooter config YAML")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// load resolves the shooter config: file search, preset, then validation.
func (f *gameFlags) load() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(f.config)
	if err != nil {
		return config.ShooterConfig{}, err
	}

	preset, err := config.ParsePreset(f.difficulty)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	config.ApplyShooterPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.ShooterConfig{}, err
	}

	logger.Debug("config loaded",
		"difficulty", preset,
		"threshold", cfg.Language.PerplexityThreshold,
		"smoothing", cfg.Language.Smoothing,
	)
	return cfg, nil
}

// newLanguage trains the model on the built-in corpus.
func newLanguage(smoothing float64) *lm.Language {
	lang := lm.NewLanguage(lm.DefaultCorpus(), smoothing)
	logger.Debug("language model trained",
		"tokens", len(lang.Corpus.Tokens),
		"words", len(lang.Model.Words()),
	)
	return lang
}
