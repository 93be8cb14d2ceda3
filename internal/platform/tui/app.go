package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tag/internal/audio"
	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
	"github.com/vovakirdan/tui-tag/internal/loop"
	"github.com/vovakirdan/tui-tag/internal/render"
	"github.com/vovakirdan/tui-tag/internal/storage"
	"github.com/vovakirdan/tui-tag/internal/tag"
)

// Version is reported in the status line.
const Version = "1.0.0"

// DefaultTitle is shown at the start of the status line.
const DefaultTitle = "tag v" + Version

// RoundSaver persists finished rounds. *storage.Store implements it.
type RoundSaver interface {
	SaveRound(r storage.RoundRecord) (int64, error)
}

// SoundPlayer plays event cues. *audio.Manager implements it.
type SoundPlayer interface {
	Play(c audio.Cue)
}

// Deps are the optional collaborators of an App. Leave a field nil to
// disable it; do not store a typed nil pointer.
type Deps struct {
	Store         RoundSaver
	Sound         SoundPlayer
	Logger        *log.Logger
	Session       string // Recorded with every saved round
	Title         string // Status line title, DefaultTitle when empty
	ScreenshotDir string // Defaults to ~/.tag/screenshots
}

// App owns one tag session: the game, its renderer and the fixed-step loop
// that drives both through a Window.
type App struct {
	game     *tag.Game
	renderer *render.GameRenderer
	window   *Window
	sched    *loop.Scheduler
	deps     Deps
	logger   *log.Logger
}

// NewApp creates a session on window. The loop does not start until Run.
func NewApp(cfg config.TagConfig, rt core.RuntimeConfig, window *Window, deps Deps) (*App, error) {
	game, err := tag.NewGame(tag.ParamsFromConfig(cfg), rt.Players, tag.NewPicker(uint64(rt.Seed)))
	if err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if deps.Session == "" {
		deps.Session = "local"
	}
	if deps.Title == "" {
		deps.Title = DefaultTitle
	}

	a := &App{
		game:     game,
		renderer: render.NewGameRenderer(game, cfg.Render, deps.Title),
		window:   window,
		deps:     deps,
		logger:   logger,
	}
	a.renderer.Resize(window.BackBuffer().Width(), window.BackBuffer().Height())

	loopCfg := loop.Config{
		FrameTime:           time.Second / time.Duration(cfg.Loop.TickRate),
		MaxUpdatesPerRender: cfg.Loop.MaxUpdatesPerRender,
	}
	a.sched = loop.NewScheduler(loopCfg, window, loop.TickerFunc(a.tick), loop.RendererFunc(a.render), nil)
	window.SetLogger(logger)
	window.OnInput(a.handleInput)
	return a, nil
}

// Game returns the running game.
func (a *App) Game() *tag.Game {
	return a.game
}

// Run drives the loop until the window closes or ctx ends. The window is
// closed on return so the program quits with the loop.
func (a *App) Run(ctx context.Context) error {
	defer a.window.Close()

	a.logger.Info("session started", "session", a.deps.Session, "players", a.game.World().NumPlayers(), "round", a.game.Summary().ID)
	err := a.sched.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	a.logger.Info("session ended", "session", a.deps.Session, "dropped_events", a.window.Dropped(), "err", err)
	return err
}

func (a *App) render() error {
	return a.renderer.Render(a.window.BackBuffer())
}

func (a *App) tick() {
	res := a.game.Step()
	for _, ev := range res.Events {
		switch ev := ev.(type) {
		case tag.TagEvent:
			a.logger.Debug("tag", "tick", ev.Tick, "from", ev.From, "to", ev.To, "color", ev.Color)
			if ev.From < 0 {
				a.play(audio.CueFirstTag)
			} else {
				a.play(audio.CueTag)
			}
		case tag.RoundEndEvent:
			s := ev.Summary
			a.logger.Info("round over", "round", s.ID, "winner", s.WinnerColor, "ticks", s.Ticks, "transfers", s.Transfers)
			a.play(audio.CueWin)
			a.saveRound(s)
		}
	}
}

func (a *App) play(c audio.Cue) {
	if a.deps.Sound != nil {
		a.deps.Sound.Play(c)
	}
}

func (a *App) saveRound(s tag.Summary) {
	if a.deps.Store == nil {
		return
	}
	_, err := a.deps.Store.SaveRound(storage.RoundRecord{
		RoundID:      s.ID.String(),
		Session:      a.deps.Session,
		Players:      s.Players,
		WinnerSlot:   s.Winner,
		WinnerColor:  s.WinnerColor.String(),
		Ticks:        s.Ticks,
		DurationSecs: s.Duration.Seconds(),
		Transfers:    s.Transfers,
	})
	if err != nil {
		a.logger.Error("could not save round", "round", s.ID, "err", err)
	}
}

// handleInput applies one mapped key. Window actions are handled here,
// everything else goes to the game.
func (a *App) handleInput(in core.Input) {
	switch in.Action {
	case core.ActionQuit:
		a.window.Close()
	case core.ActionToggleFullscreen:
		a.window.SetFullscreen(!a.window.Fullscreen())
	case core.ActionExitFullscreen:
		a.window.SetFullscreen(false)
	case core.ActionScreenshot:
		path, err := a.saveScreenshot()
		if err != nil {
			a.logger.Warn("screenshot failed", "err", err)
			return
		}
		a.logger.Info("screenshot saved", "path", path)
	default:
		changed, err := a.game.Apply(in)
		if err != nil {
			a.logger.Warn("input rejected", "action", in.Action, "err", err)
			return
		}
		if changed && (in.Action == core.ActionRestart || in.Action == core.ActionSetPlayers) {
			a.logger.Info("round started", "round", a.game.Summary().ID, "players", a.game.World().NumPlayers())
		}
	}
}

// saveScreenshot writes the last rendered frame as plain text.
func (a *App) saveScreenshot() (string, error) {
	dir := a.deps.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".tag", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("tag_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(a.window.BackBuffer().String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Run plays a local session in the terminal until the players quit.
func Run(ctx context.Context, cfg config.TagConfig, rt core.RuntimeConfig, deps Deps) error {
	keys := DefaultKeyMap()
	window := NewWindow(rt, keys, NewPalette(nil))
	app, err := NewApp(cfg, rt, window, deps)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(window, keys), tea.WithContext(ctx))
	window.Attach(p)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loopErr := make(chan error, 1)
	go func() { loopErr <- app.Run(ctx) }()

	_, runErr := p.Run()
	cancel()
	window.Close()

	err = <-loopErr
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", runErr)
	}
	return err
}
