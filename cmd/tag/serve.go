package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tag/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWindowed    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host tag sessions over SSH",
	Long: `Start an SSH server where every connection plays its own round of tag.

All players of a session share the connecting terminal's keyboard, exactly
like a local game. Finished rounds from every session go to the same
history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tag/host_key

Examples:
  tag serve                           # Listen on :23234 with auto-generated key
  tag serve --ssh :2222 -n 3          # Port 2222, three players per session
  tag serve --host-key ./my_host_key  # Use specific host key
  tag serve --db ./rounds.db          # Use specific database

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Do not switch clients to the alternate screen")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Players:     flagPlayers,
		Fullscreen:  !flagWindowed,
	}

	server, err := tui.NewSSHServer(cfg, game)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting tag SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
