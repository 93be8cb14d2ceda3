package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
	"github.com/vovakirdan/tui-tag/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tag/host_key.
	HostKeyPath string

	// DBPath is the path to the round history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Players is the roster size every session starts with.
	Players int

	// Fullscreen starts sessions on the alternate screen.
	Fullscreen bool
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tag/rounds.db",
		IdleTimeout: 30 * time.Minute,
		Players:     config.MinPlayers,
		Fullscreen:  true,
	}
}

// SSHServer serves one independent tag session per SSH connection.
// All players of a session share the connecting terminal's keyboard.
type SSHServer struct {
	config SSHServerConfig
	game   config.TagConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, game config.TagConfig) (*SSHServer, error) {
	if err := config.ValidatePlayers(cfg.Players); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tag-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		game:   game,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tag", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.MiddlewareWithProgramHandler(srv.programHandler, termenv.ANSI256),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// deps returns the collaborators of one session. Sound always stays off:
// it would play on the server, not on the client.
func (s *SSHServer) deps(session string) Deps {
	d := Deps{
		Logger:  s.logger.With("session", session),
		Session: session,
		Title:   DefaultTitle + " [host]",
	}
	if s.store != nil {
		d.Store = s.store
	}
	return d
}

// programHandler creates the program and game loop of one SSH session.
// The loop runs until the client quits or disconnects.
func (s *SSHServer) programHandler(sess ssh.Session) *tea.Program {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil
	}

	rt := core.RuntimeConfig{
		ScreenW:    pty.Window.Width,
		ScreenH:    pty.Window.Height,
		Players:    s.config.Players,
		Fullscreen: s.config.Fullscreen,
		VSync:      true,
		Seed:       time.Now().UnixNano(),
	}

	id := "ssh-" + uuid.NewString()
	keys := DefaultKeyMap()
	window := NewWindow(rt, keys, NewPalette(bubbletea.MakeRenderer(sess)))
	app, err := NewApp(s.game, rt, window, s.deps(id))
	if err != nil {
		s.logger.Error("could not start session", "user", sess.User(), "error", err)
		return nil
	}

	p := tea.NewProgram(NewModel(window, keys), bubbletea.MakeOptions(sess)...)
	window.Attach(p)

	go func() {
		if err := app.Run(sess.Context()); err != nil {
			s.logger.Error("session loop failed", "session", id, "error", err)
		}
	}()
	return p
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
