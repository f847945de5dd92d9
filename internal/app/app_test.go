package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Larsouille25/ri/internal/editor"
	"github.com/Larsouille25/ri/internal/input/key"
	"github.com/Larsouille25/ri/internal/renderer/backend"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
}

// slowBackend takes renderCost to flush each frame.
type slowBackend struct {
	*backend.NullBackend
	clock      *fakeClock
	renderCost time.Duration
}

func (b *slowBackend) Show() {
	b.NullBackend.Show()
	b.clock.t = b.clock.t.Add(b.renderCost)
}

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	nb := backend.NewNullBackend(80, 24)

	if opts.Backend == nil {
		opts.Backend = nb
	}
	opts.Now = clock.Now
	opts.Sleep = clock.Sleep

	app, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return app, nb, clock
}

func enter(t *testing.T, b backend.Backend) {
	t.Helper()
	if _, err := backend.Enter(b); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
}

func keyEvent(ev key.Event) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: ev}
}

func runeEvent(r rune) backend.Event {
	return keyEvent(key.NewRuneEvent(r, key.ModNone))
}

var ctrlC = keyEvent(key.NewRuneEvent('c', key.ModCtrl))

func TestNew_RequiresBackend(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNoBackend) {
		t.Errorf("expected ErrNoBackend, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	app, err := New(Options{Backend: backend.NewNullBackend(10, 10)})
	if err != nil {
		t.Fatal(err)
	}

	if app.Editor() == nil || app.Editor().Mode() != editor.Normal {
		t.Error("expected a fresh editor in Normal mode")
	}
	if app.Logger() != NullLogger {
		t.Error("expected NullLogger by default")
	}
	if app.FrameDuration() != DefaultFrameDuration {
		t.Errorf("FrameDuration = %v, want %v", app.FrameDuration(), DefaultFrameDuration)
	}
	if app.Renderer() == nil || app.Metrics() == nil {
		t.Error("expected renderer and metrics")
	}
	if app.IsRunning() || app.ShouldQuit() {
		t.Error("new application should be idle")
	}
}

func TestRun_CtrlCQuits(t *testing.T) {
	app, nb, _ := newTestApp(t, Options{})

	nb.PostEvent(runeEvent(':'))
	nb.PostEvent(runeEvent('q'))
	nb.PostEvent(ctrlC)

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if !app.ShouldQuit() {
		t.Error("quit flag should be set")
	}
	if nb.InitCalls() != 1 || nb.Shutdowns() != 1 {
		t.Errorf("Init/Shutdown = %d/%d, want 1/1", nb.InitCalls(), nb.Shutdowns())
	}
	if nb.CursorVisible() {
		t.Error("cursor should be hidden while in the session")
	}
	// Buffer content is discarded, not submitted.
	if app.Editor().Mode() != editor.Command || app.Editor().CommandLine() != "q" {
		t.Errorf("editor = %s/%q, want CMD/\"q\"", app.Editor().Mode(), app.Editor().CommandLine())
	}
	if app.IsRunning() {
		t.Error("IsRunning should be false after Run returns")
	}
}

func TestCtrlCQuitsFromEveryMode(t *testing.T) {
	modes := []editor.Mode{editor.Normal, editor.Insert, editor.Select, editor.Command}

	for _, m := range modes {
		t.Run(m.Name(), func(t *testing.T) {
			ed := editor.New(editor.WithInitialMode(m))
			app, nb, _ := newTestApp(t, Options{Editor: ed})
			enter(t, nb)

			nb.PostEvent(keyEvent(key.NewRuneEvent('C', key.ModCtrl|key.ModShift)))
			if err := app.Tick(); err != nil {
				t.Fatalf("Tick failed: %v", err)
			}

			if !app.ShouldQuit() {
				t.Errorf("Ctrl+C in %s mode did not set quit", m)
			}
			if ed.Mode() != m {
				t.Errorf("mode changed to %s", ed.Mode())
			}
		})
	}
}

func TestTick_OneEventPerTick(t *testing.T) {
	app, nb, _ := newTestApp(t, Options{})
	enter(t, nb)

	for _, r := range ":ab" {
		nb.PostEvent(runeEvent(r))
	}

	if err := app.Tick(); err != nil {
		t.Fatal(err)
	}
	if nb.Pending() != 2 {
		t.Errorf("Pending = %d after one tick, want 2", nb.Pending())
	}
	if app.Editor().Mode() != editor.Command || app.Editor().CommandLine() != "" {
		t.Errorf("after first tick: %s/%q", app.Editor().Mode(), app.Editor().CommandLine())
	}

	for i := 0; i < 2; i++ {
		if err := app.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if app.Editor().CommandLine() != "ab" {
		t.Errorf("CommandLine = %q, want %q", app.Editor().CommandLine(), "ab")
	}
	if got := app.Metrics().Snapshot().InputCount; got != 3 {
		t.Errorf("InputCount = %d, want 3", got)
	}
}

func TestTick_RendersEveryTick(t *testing.T) {
	app, nb, _ := newTestApp(t, Options{})
	enter(t, nb)

	// No input at all still produces frames.
	for i := 0; i < 3; i++ {
		if err := app.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if nb.Shows() != 3 {
		t.Errorf("Shows = %d, want 3", nb.Shows())
	}
	if !strings.HasPrefix(nb.RowString(22), " NOR") {
		t.Errorf("status row = %q", nb.RowString(22))
	}
}

func TestTick_ResizeBetweenTicks(t *testing.T) {
	app, nb, _ := newTestApp(t, Options{})
	enter(t, nb)

	nb.PostEvent(runeEvent(':'))
	if err := app.Tick(); err != nil {
		t.Fatal(err)
	}
	if vp := app.Viewport(); vp.Cols != 80 || vp.Rows != 24 {
		t.Fatalf("viewport = %+v", vp)
	}

	nb.Resize(40, 10)
	if err := app.Tick(); err != nil {
		t.Fatal(err)
	}

	if vp := app.Viewport(); vp.Cols != 40 || vp.Rows != 10 {
		t.Errorf("viewport after resize = %+v, want 40x10", vp)
	}
	if !strings.HasPrefix(nb.RowString(8), " CMD") {
		t.Errorf("status row after resize = %q", nb.RowString(8))
	}
	if !strings.HasPrefix(nb.RowString(9), ":█") {
		t.Errorf("command row after resize = %q", nb.RowString(9))
	}
	if nb.OutOfBoundsWrites() != 0 {
		t.Errorf("%d out of bounds writes", nb.OutOfBoundsWrites())
	}
	if got := app.Metrics().Snapshot().ResizeCount; got != 1 {
		t.Errorf("ResizeCount = %d, want 1", got)
	}
}

func TestTick_TinyTerminal(t *testing.T) {
	app, nb, _ := newTestApp(t, Options{})
	enter(t, nb)

	for _, size := range [][2]int{{1, 1}, {0, 0}, {3, 2}} {
		nb.Resize(size[0], size[1])
		nb.PostEvent(runeEvent(':'))
		for i := 0; i < 2; i++ {
			if err := app.Tick(); err != nil {
				t.Fatalf("%dx%d: %v", size[0], size[1], err)
			}
		}
	}
	if nb.OutOfBoundsWrites() != 0 {
		t.Errorf("%d out of bounds writes", nb.OutOfBoundsWrites())
	}
}

func TestTick_PacingSleepsRemainder(t *testing.T) {
	clock := newFakeClock()
	sb := &slowBackend{
		NullBackend: backend.NewNullBackend(80, 24),
		clock:       clock,
		renderCost:  5 * time.Millisecond,
	}
	app, err := New(Options{
		Backend:       sb,
		FrameDuration: 20 * time.Millisecond,
		Now:           clock.Now,
		Sleep:         clock.Sleep,
	})
	if err != nil {
		t.Fatal(err)
	}
	enter(t, sb)

	if err := app.Tick(); err != nil {
		t.Fatal(err)
	}

	if len(clock.sleeps) != 1 || clock.sleeps[0] != 15*time.Millisecond {
		t.Errorf("sleeps = %v, want [15ms]", clock.sleeps)
	}

	snap := app.Metrics().Snapshot()
	if snap.LastFrameNs != int64(5*time.Millisecond) {
		t.Errorf("LastFrameNs = %d, want 5ms", snap.LastFrameNs)
	}
	if snap.AvgRenderNs != int64(5*time.Millisecond) {
		t.Errorf("AvgRenderNs = %d, want 5ms", snap.AvgRenderNs)
	}
}

func TestTick_PacingOverrun(t *testing.T) {
	clock := newFakeClock()
	sb := &slowBackend{
		NullBackend: backend.NewNullBackend(80, 24),
		clock:       clock,
		renderCost:  30 * time.Millisecond,
	}
	app, err := New(Options{
		Backend:       sb,
		FrameDuration: 20 * time.Millisecond,
		Now:           clock.Now,
		Sleep:         clock.Sleep,
	})
	if err != nil {
		t.Fatal(err)
	}
	enter(t, sb)

	if err := app.Tick(); err != nil {
		t.Fatal(err)
	}

	if len(clock.sleeps) != 0 {
		t.Errorf("overrunning tick slept %v", clock.sleeps)
	}
	if got := app.Metrics().Snapshot().Overruns; got != 1 {
		t.Errorf("Overruns = %d, want 1", got)
	}
}

func TestRun_InitFailure(t *testing.T) {
	cause := errors.New("not a tty")
	app, nb, _ := newTestApp(t, Options{})
	nb.FailInit(cause)

	err := app.Run(context.Background())

	var termErr *TerminalError
	if !errors.As(err, &termErr) {
		t.Fatalf("expected TerminalError, got %v", err)
	}
	if termErr.Op != "enter" || !errors.Is(err, cause) {
		t.Errorf("got %v", err)
	}
	if nb.Shutdowns() != 0 {
		t.Errorf("Shutdowns = %d, want 0 for a session that never started", nb.Shutdowns())
	}
}

func TestRun_TerminalErrorEvent(t *testing.T) {
	cause := errors.New("tty hung up")
	app, nb, _ := newTestApp(t, Options{})
	nb.PostEvent(backend.Event{Type: backend.EventError, Err: cause})

	err := app.Run(context.Background())

	var termErr *TerminalError
	if !errors.As(err, &termErr) || !errors.Is(err, cause) {
		t.Fatalf("expected TerminalError wrapping cause, got %v", err)
	}
	if nb.Shutdowns() != 1 {
		t.Errorf("terminal not restored: Shutdowns = %d", nb.Shutdowns())
	}
}

func TestRun_PanicRestoresTerminal(t *testing.T) {
	ed := editor.New(editor.WithExecutor(editor.CommandExecutorFunc(func(string) (string, error) {
		panic("executor exploded")
	})))
	app, nb, _ := newTestApp(t, Options{Editor: ed})

	nb.PostEvent(runeEvent(':'))
	nb.PostEvent(runeEvent('x'))
	nb.PostEvent(keyEvent(key.NewSpecialEvent(key.KeyEnter, key.ModNone)))

	err := app.Run(context.Background())

	var panicErr *RecoveredPanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("expected RecoveredPanicError, got %v", err)
	}
	if panicErr.Value != "executor exploded" {
		t.Errorf("Value = %v", panicErr.Value)
	}
	if nb.Shutdowns() != 1 {
		t.Errorf("terminal not restored: Shutdowns = %d", nb.Shutdowns())
	}
	if app.IsRunning() {
		t.Error("IsRunning should be false after a panic")
	}
}

func TestRun_ContextCancel(t *testing.T) {
	app, nb, _ := newTestApp(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := app.Run(ctx); err != nil {
		t.Errorf("Run returned %v, want nil on cancellation", err)
	}
	if nb.Shutdowns() != 1 {
		t.Errorf("Shutdowns = %d, want 1", nb.Shutdowns())
	}
}

func TestRun_AlreadyRunning(t *testing.T) {
	var app *Application
	ed := editor.New(editor.WithExecutor(editor.CommandExecutorFunc(func(string) (string, error) {
		return "", app.Run(context.Background())
	})))
	app, nb, _ := newTestApp(t, Options{Editor: ed})

	nb.PostEvent(runeEvent(':'))
	nb.PostEvent(keyEvent(key.NewSpecialEvent(key.KeyEnter, key.ModNone)))
	nb.PostEvent(ctrlC)

	if err := app.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if msg, _ := ed.Status().Get(); msg != ErrAlreadyRunning.Error() {
		t.Errorf("status = %q, want %q", msg, ErrAlreadyRunning.Error())
	}
	if nb.InitCalls() != 1 {
		t.Errorf("InitCalls = %d, want 1", nb.InitCalls())
	}
}

func TestRun_LogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	app, nb, _ := newTestApp(t, Options{Logger: logger.WithField("session", "test-session")})

	nb.PostEvent(runeEvent(':'))
	nb.PostEvent(ctrlC)

	if err := app.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"event loop started", "mode normal -> command", "quit requested", "terminal restored", "session=test-session"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
