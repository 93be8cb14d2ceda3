// tag is a real-time game of tag for two to four players sharing one
// keyboard in the terminal.
//
// Usage:
//
//	tag                      - Play a local round
//	tag serve                - Host sessions over SSH
//	tag scores               - Show recent rounds and wins per color
//	tag config               - Print the effective configuration
//
// Flags:
//
//	-n, --players <2-4>  - Initial number of players (default: 2)
//	--fullscreen         - Start on the alternate screen
//	--no-vsync           - Present frames as fast as the loop produces them
//	--seed <value>       - RNG seed for the first tag (0 = time based)
//	--config <path>      - Custom tunables YAML
//	--db <path>          - Round history database (default: ~/.tag/rounds.db)
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tag/internal/audio"
	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
	"github.com/vovakirdan/tui-tag/internal/platform/tui"
	"github.com/vovakirdan/tui-tag/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagSeed    int64
	flagPlayers int

	// Play flags
	flagFullscreen bool
	flagNoVSync    bool
	flagSound      bool
	flagVolume     float64
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag - a terminal game of tag for 2 to 4 players",
	Long: `Tag is a hot-seat game for two to four players on one keyboard.

The first touch picks who is it. Whoever is it speeds up, everyone else's
clock runs down, and the first player whose clock reaches zero wins.

Controls:
  Arrows / WASD / IJKL / TFGH  - Steer players 1-4 (same key again stops)
  Space                        - New round after a win
  2 / 3 / 4                    - Restart with that many players
  F11 / Alt+Enter              - Toggle fullscreen (Esc leaves it)
  Ctrl+S                       - Save a text screenshot
  Q / Ctrl+C                   - Quit

Examples:
  tag
  tag -n 4 --fullscreen
  tag --seed 42 --no-vsync
  tag --config ./my-tag.yaml --log /tmp/tag.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tag/rounds.db", "Path to round history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVarP(&flagPlayers, "players", "n", config.MinPlayers, "Number of players (2-4)")

	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen (alternate screen)")
	rootCmd.Flags().BoolVar(&flagNoVSync, "no-vsync", false, "Do not pace frames to the refresh rate")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues on tags and wins")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume (0-1)")
	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every tag transfer")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the tunables and checks the requested player count.
func loadConfig() (config.TagConfig, error) {
	if err := config.ValidatePlayers(flagPlayers); err != nil {
		return config.TagConfig{}, err
	}
	return config.Load(flagConfig)
}

// newLogger returns a logger writing to path. The terminal belongs to the
// game while it runs, so logs are discarded when no path is given.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tag",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		Players:    flagPlayers,
		Fullscreen: flagFullscreen,
		VSync:      !flagNoVSync,
		Seed:       flagSeed,
	}
	deps := tui.Deps{Logger: logger}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		// Continue without storage - the game still works
	} else {
		defer store.Close()
		deps.Store = store
	}

	if flagSound {
		sound := audio.NewManager(flagVolume)
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sound.Close()
			deps.Sound = sound
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, cfg, rt, deps)
}
