// Package loop drives the simulation with a fixed timestep and renders at most
// once per pass, independently of how fast frames can be presented.
package loop

import (
	"context"
	"time"
)

// Defaults for a 60 Hz simulation.
const (
	DefaultFrameTime           = time.Second / 60
	DefaultMaxUpdatesPerRender = 5
)

// Window is the windowing collaborator: it owns the close signal, delivers
// pending input synchronously, tells the time and presents finished frames.
type Window interface {
	ShouldClose() bool
	PollInput()
	Now() time.Time
	SwapBuffers()
}

// Ticker advances the simulation by one fixed step.
type Ticker interface {
	Tick()
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func()

// Tick calls f.
func (f TickerFunc) Tick() { f() }

// Renderer draws the current state into the back buffer.
type Renderer interface {
	Render() error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func() error

// Render calls f.
func (f RendererFunc) Render() error { return f() }

// Waiter blocks for roughly d.
type Waiter interface {
	Wait(d time.Duration)
}

// Config holds the scheduler timing.
type Config struct {
	FrameTime           time.Duration
	MaxUpdatesPerRender int
}

// DefaultConfig returns the 60 Hz, 5 catch-up ticks configuration.
func DefaultConfig() Config {
	return Config{
		FrameTime:           DefaultFrameTime,
		MaxUpdatesPerRender: DefaultMaxUpdatesPerRender,
	}
}

// Pass describes one iteration of the loop.
type Pass struct {
	Ticks    int           // Simulation steps run
	Rendered bool          // Whether a frame was rendered and presented
	Waited   time.Duration // Requested wait when no step was due
}

// Scheduler is a single-threaded fixed-timestep loop.
// All collaborators are called from the goroutine running Pass or Run.
type Scheduler struct {
	cfg      Config
	window   Window
	ticker   Ticker
	renderer Renderer
	waiter   Waiter

	lastUpdate time.Time
}

// NewScheduler creates a scheduler whose clock starts now.
// Non-positive config values fall back to the defaults; a nil waiter uses a HybridWaiter.
func NewScheduler(cfg Config, window Window, ticker Ticker, renderer Renderer, waiter Waiter) *Scheduler {
	if cfg.FrameTime <= 0 {
		cfg.FrameTime = DefaultFrameTime
	}
	if cfg.MaxUpdatesPerRender <= 0 {
		cfg.MaxUpdatesPerRender = DefaultMaxUpdatesPerRender
	}
	if waiter == nil {
		waiter = NewHybridWaiter()
	}
	return &Scheduler{
		cfg:        cfg,
		window:     window,
		ticker:     ticker,
		renderer:   renderer,
		waiter:     waiter,
		lastUpdate: window.Now(),
	}
}

// Pass runs one iteration of the loop.
//
// When more than one frame time has elapsed since the last update, input is
// polled once, up to MaxUpdatesPerRender steps catch up on the backlog and
// one frame is rendered and presented. Any backlog beyond the cap is dropped,
// so the simulation slows down under load instead of spiralling. Otherwise
// the scheduler waits out the rest of the frame.
//
// A render error is returned as is; it is not retried.
func (s *Scheduler) Pass() (Pass, error) {
	now := s.window.Now()
	delta := now.Sub(s.lastUpdate)

	if delta <= s.cfg.FrameTime {
		wait := s.cfg.FrameTime - delta
		s.waiter.Wait(wait)
		return Pass{Waited: wait}, nil
	}

	s.lastUpdate = now
	s.window.PollInput()

	var p Pass
	for acc := delta; acc > s.cfg.FrameTime && p.Ticks < s.cfg.MaxUpdatesPerRender; acc -= s.cfg.FrameTime {
		s.ticker.Tick()
		p.Ticks++
	}

	if err := s.renderer.Render(); err != nil {
		return p, err
	}
	s.window.SwapBuffers()
	p.Rendered = true
	return p, nil
}

// Run loops until the window asks to close, the context ends or rendering fails.
func (s *Scheduler) Run(ctx context.Context) error {
	for !s.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := s.Pass(); err != nil {
			return err
		}
	}
	return nil
}

// Config returns the effective timing.
func (s *Scheduler) Config() Config {
	return s.cfg
}
