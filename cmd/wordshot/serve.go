package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/wordshot/internal/core"
	"github.com/vovakirdan/wordshot/internal/games/shooter"
	"github.com/vovakirdan/wordshot/internal/platform/tui"
)

var (
	serveFlags      gameFlags
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wordshot SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. The language model is trained once
and shared read-only by all sessions. Runs from all users go to the same
database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordshot/host_key

Examples:
  wordshot serve                           # Listen on :23234 with auto-generated key
  wordshot serve --ssh :2222               # Listen on port 2222
  wordshot serve --host-key ./my_host_key  # Use specific host key
  wordshot serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	shooterCfg, err := serveFlags.load()
	if err != nil {
		return err
	}

	lang := newLanguage(shooterCfg.Language.Smoothing)
	newGame := func() core.Game {
		return shooter.New(lang, shooterCfg)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      viper.GetString("db"),
		TickRate:    viper.GetInt("fps"),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, newGame, logger.WithPrefix("wordshot-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting wordshot SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
