package tui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tag/internal/core"
)

const (
	// helpRows is the number of terminal rows below the frame used by the key help.
	helpRows = 1

	// eventBuffer is how many terminal events may queue between two loop passes.
	eventBuffer = 64

	// DefaultRefreshRate is the presentation rate used for vsync pacing.
	DefaultRefreshRate = 60
)

// Window is the terminal side of the game loop. The Bubble Tea model pushes
// terminal events into it; the loop goroutine drains them, draws into the
// back buffer and presents finished frames back to the program.
type Window struct {
	events  chan tea.Msg
	dropped atomic.Int64
	closed  atomic.Bool
	logger  *log.Logger

	mu         sync.Mutex
	sender     Sender
	fullscreen bool

	back    *core.Screen
	keys    KeyMap
	palette Palette
	onInput func(core.Input)

	vsync   bool
	refresh time.Duration
	epoch   time.Time
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewWindow creates a window with a rt.ScreenW x rt.ScreenH terminal.
func NewWindow(rt core.RuntimeConfig, keys KeyMap, palette Palette) *Window {
	w := &Window{
		events:     make(chan tea.Msg, eventBuffer),
		logger:     log.New(io.Discard),
		fullscreen: rt.Fullscreen,
		back:       core.NewScreen(rt.ScreenW, max(rt.ScreenH-helpRows, 1)),
		keys:       keys,
		palette:    palette,
		vsync:      rt.VSync,
		refresh:    time.Second / DefaultRefreshRate,
		now:        time.Now,
		sleep:      time.Sleep,
	}
	w.epoch = w.now()
	return w
}

// Attach sets the program that receives frames and window commands.
func (w *Window) Attach(s Sender) {
	w.mu.Lock()
	w.sender = s
	w.mu.Unlock()
}

// SetLogger sets the logger that reports dropped events. Call it before the
// program starts.
func (w *Window) SetLogger(l *log.Logger) {
	if l != nil {
		w.logger = l
	}
}

// OnInput sets the handler called from PollInput for every bound key.
func (w *Window) OnInput(fn func(core.Input)) {
	w.onInput = fn
}

// Push queues a terminal event for the next PollInput. It never blocks;
// events beyond the buffer are dropped and logged as a warning.
func (w *Window) Push(msg tea.Msg) bool {
	select {
	case w.events <- msg:
		return true
	default:
		n := w.dropped.Add(1)
		w.logger.Warn("event queue full, dropping event", "msg", fmt.Sprintf("%T", msg), "queued", eventBuffer, "dropped", n)
		return false
	}
}

// Dropped returns how many events Push has discarded.
func (w *Window) Dropped() int64 {
	return w.dropped.Load()
}

// ShouldClose reports whether Close has been called.
func (w *Window) ShouldClose() bool {
	return w.closed.Load()
}

// PollInput drains queued events: resizes go to the back buffer, keys are
// mapped and handed to the input handler.
func (w *Window) PollInput() {
	for {
		select {
		case msg := <-w.events:
			w.handle(msg)
		default:
			return
		}
	}
}

func (w *Window) handle(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.back.Resize(msg.Width, max(msg.Height-helpRows, 1))
	case tea.KeyMsg:
		in, ok := w.keys.Map(msg)
		if ok && w.onInput != nil {
			w.onInput(in)
		}
	}
}

// Now returns the loop clock.
func (w *Window) Now() time.Time {
	return w.now()
}

// BackBuffer returns the screen the renderer draws into.
func (w *Window) BackBuffer() *core.Screen {
	return w.back
}

// SwapBuffers presents the back buffer. With vsync on it then waits for the
// next refresh boundary so frames are not produced faster than shown.
func (w *Window) SwapBuffers() {
	w.send(FrameMsg{View: w.palette.RenderScreen(w.back)})
	if w.vsync {
		w.sleep(w.untilRefresh())
	}
}

// untilRefresh returns the time left until the next refresh boundary.
func (w *Window) untilRefresh() time.Duration {
	elapsed := w.now().Sub(w.epoch)
	if elapsed < 0 {
		return 0
	}
	return w.refresh - elapsed%w.refresh
}

// Fullscreen reports whether the alternate screen is active.
func (w *Window) Fullscreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fullscreen
}

// SetFullscreen switches between the alternate screen and inline mode.
func (w *Window) SetFullscreen(on bool) {
	w.mu.Lock()
	changed := w.fullscreen != on
	w.fullscreen = on
	w.mu.Unlock()
	if changed {
		w.send(fullscreenMsg{on: on})
	}
}

// Close marks the window closed and asks the program to quit. Only the
// first call has an effect.
func (w *Window) Close() {
	if w.closed.CompareAndSwap(false, true) {
		w.send(closeMsg{})
	}
}

func (w *Window) send(msg tea.Msg) {
	w.mu.Lock()
	s := w.sender
	w.mu.Unlock()
	if s != nil {
		s.Send(msg)
	}
}
