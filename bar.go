package boxprogress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultInterval is the minimum delay between two redraws.
	DefaultInterval = 10 * time.Millisecond

	// Pause before the first read so the bar does not open on a 0% frame.
	warmupDelay = 100 * time.Millisecond

	escCursorHide = "\033[?25l"
	escCursorShow = "\033[?25h"

	// Reset attributes, erase the display and home the cursor.
	escClearScreen = "\033[0m\033[2J\033[H"
)

// State is the lifecycle stage of a ProgressBar.
type State int32

const (
	Idle State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

type (
	ProgressBar struct {
		geometry *Geometry     // Grid redrawn on every change
		interval time.Duration // Interval between redraws
		warmup   time.Duration // Delay before the first progress read
		dest     io.Writer     // destination eg stdout/stderr
		logger   *slog.Logger
		isaTTY   bool         // Set by constructor to know if we have a real TTY
		state    atomic.Int32 // Idle, Running or Done
	}

	// Task is the handle of a running render loop.
	Task struct {
		group errgroup.Group
	}

	optionFunc func(*ProgressBar)
)

// WithWriter sets the output stream for the bar (default os.Stdout)
func WithWriter(w io.Writer) optionFunc {
	return func(p *ProgressBar) {
		p.dest = w
	}
}

// WithInterval sets the minimum delay between redraws (default 10ms).
func WithInterval(d time.Duration) optionFunc {
	return func(p *ProgressBar) {
		p.interval = d
	}
}

// WithLogger sets the logger for render diagnostics (default discards).
func WithLogger(l *slog.Logger) optionFunc {
	return func(p *ProgressBar) {
		p.logger = l
	}
}

func withWarmup(d time.Duration) optionFunc {
	return func(p *ProgressBar) {
		p.warmup = d
	}
}

// NewProgressBar creates a new progress bar drawing the given geometry.
// The bar owns the geometry from here on.
func NewProgressBar(g *Geometry, opts ...optionFunc) *ProgressBar {
	p := &ProgressBar{
		geometry: g,
		interval: DefaultInterval,
		warmup:   warmupDelay,
		dest:     os.Stdout,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, o := range opts {
		o(p)
	}

	p.isaTTY = func() bool {
		if f, ok := p.dest.(*os.File); ok {
			return isatty(f.Fd())
		}

		return false
	}()

	return p
}

// State reports where the bar is in its lifecycle.
func (p *ProgressBar) State() State {
	return State(p.state.Load())
}

// Start launches the render loop against progress and returns at once. The
// loop redraws whenever the whole percentage of progress/max changes and
// stops once it reaches 100%, or when ctx is done. A bar can be started
// once.
func (p *ProgressBar) Start(ctx context.Context, progress Gauge, max float64) (*Task, error) {
	if !(max > 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMax, max)
	}

	if !p.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return nil, ErrAlreadyStarted
	}

	p.logger.Debug("progress bar started",
		"width", p.geometry.Width(),
		"height", p.geometry.Height(),
		"max", max,
		"interval", p.interval,
	)

	t := &Task{}
	t.group.Go(func() error {
		defer p.state.Store(int32(Done))
		return p.loop(ctx, progress, max)
	})

	return t, nil
}

// Wait blocks until the render loop has exited. It returns the context
// error if the loop was cancelled before reaching 100%.
func (t *Task) Wait() error {
	return t.group.Wait()
}

// Run shows the bar while work runs on the calling goroutine, then waits for
// the bar to finish. work is expected to drive progress to max.
func (p *ProgressBar) Run(ctx context.Context, progress Gauge, max float64, work func()) error {
	t, err := p.Start(ctx, progress, max)
	if err != nil {
		return err
	}

	work()

	return t.Wait()
}

// RunE is Run for work that can fail. A failing workload stops the bar and
// its error is returned.
func (p *ProgressBar) RunE(ctx context.Context, progress Gauge, max float64, work func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t, err := p.Start(ctx, progress, max)
	if err != nil {
		return err
	}

	workErr := work(ctx)
	if workErr != nil {
		cancel()
	}

	renderErr := t.Wait()
	if workErr != nil {
		return workErr
	}

	return renderErr
}

func (p *ProgressBar) loop(ctx context.Context, progress Gauge, max float64) error {
	if f, ok := p.dest.(*os.File); ok && p.isaTTY {
		if restore, err := enterOutputMode(f); err != nil {
			p.logger.Debug("cannot switch terminal output mode", "err", err)
		} else {
			defer restore()
		}

		cursorHide(f)
		defer cursorShow(f)
	}

	if err := sleep(ctx, p.warmup); err != nil {
		return err
	}

	var last float64
	for {
		percent := 100 * progress.Load() / max

		if math.Floor(percent) != math.Floor(last) {
			if err := sleep(ctx, p.interval); err != nil {
				return err
			}
			p.redraw(percent)
			last = percent
		} else {
			if err := ctx.Err(); err != nil {
				return err
			}
			runtime.Gosched()
		}

		if !(percent < 100) {
			p.logger.Debug("progress bar done", "percent", percent)
			return nil
		}
	}
}

// redraw clears the terminal and writes the whole grid. A failed write drops
// the frame; the next change draws a complete one again.
func (p *ProgressBar) redraw(percent float64) {
	p.geometry.fill(percent)

	if _, err := io.WriteString(p.dest, p.frame(percent)); err != nil {
		p.logger.Debug("dropped progress frame", "percent", percent, "err", err)
	}
}

// frame renders the current grid with the rounded up percentage after the
// fill row.
func (p *ProgressBar) frame(percent float64) string {
	g := p.geometry

	var b strings.Builder
	b.WriteString(escClearScreen)
	for y := 0; y < g.Height(); y++ {
		b.WriteString(g.Row(y))
		if y == g.FillRow() {
			b.WriteByte('\t')
			b.WriteString(strconv.FormatFloat(math.Ceil(percent), 'f', -1, 64))
			b.WriteByte('%')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
