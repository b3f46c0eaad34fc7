package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/wordshot/internal/core"
	"github.com/vovakirdan/wordshot/internal/games/shooter"
	"github.com/vovakirdan/wordshot/internal/platform/tui"
	"github.com/vovakirdan/wordshot/internal/storage"
)

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit

Difficulty options:
  easy   - Higher perplexity threshold, tokens speed up with score
  normal - Default threshold, tokens speed up with score
  hard   - Lower threshold, tokens start fast
  fixed  - No progression

Examples:
  wordshot play
  wordshot play --difficulty easy
  wordshot play --seed 42
  wordshot play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	shooterCfg, err := playFlags.load()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: viper.GetInt("fps"),
		Seed:     viper.GetInt64("seed"),
	}

	game := shooter.New(newLanguage(shooterCfg.Language.Smoothing), shooterCfg)

	// Storage is optional during play.
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		logger.Warn("could not open runs database, history disabled", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.WithLogger(logger))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	st := game.State()
	logger.Debug("session finished", "score", st.Score, "sentence", st.Sentence)
	return nil
}
