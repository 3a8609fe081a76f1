package game

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithFrameHook registers f to receive the frame of every tick in which the
// set of live ripples changed.
func WithFrameHook(f func(Frame)) Option {
	return func(d *Driver) { d.hook = f }
}

// Driver owns one session and its ripples, and decides whether more ticks
// are needed. Ticks, clicks and starts are serialized, so a click recorded
// between two ticks is visible to the next one.
type Driver struct {
	clock   Clock
	log     *log.Logger
	hook    func(Frame)
	onStart func()

	mu        sync.Mutex
	session   *Session
	effects   Effects
	frame     Frame
	scheduled bool
	cancelled bool
	// ripple set changed since the last tick
	dirty bool
}

func NewDriver(clock Clock, opts ...Option) *Driver {
	if clock == nil {
		clock = SystemClock
	}
	d := &Driver{
		clock:   clock,
		log:     log.Default(),
		session: NewSession(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.frame = d.snapshot()
	return d
}

// Start begins a new run, discarding the previous one and its ripples, and
// schedules ticks again.
func (d *Driver) Start() {
	d.mu.Lock()
	if d.cancelled {
		d.mu.Unlock()
		return
	}
	d.session.Start(d.clock.Now())
	d.dirty = d.dirty || d.effects.Len() > 0
	d.effects.Clear()
	d.scheduled = true
	d.frame = d.snapshot()
	d.frame.Active = true
	id := d.session.ID()
	wake := d.onStart
	d.mu.Unlock()

	d.log.Info("session started", "session", id, "duration", Duration)
	if wake != nil {
		wake()
	}
}

// Click registers a click at canvas coordinates (x, y). It is ignored unless
// a run is in progress.
func (d *Driver) Click(x, y float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancelled || !d.session.Click() {
		return
	}
	d.effects.Spawn(x, y, d.clock.Now())
	d.dirty = true
}

// Tick runs one frame update. An idle or cancelled driver returns the last
// frame untouched.
func (d *Driver) Tick() Frame {
	d.mu.Lock()
	if d.cancelled || !d.scheduled {
		f := d.frame
		d.mu.Unlock()
		return f
	}
	f := Step(d.session, &d.effects, d.clock.Now())
	d.frame = f
	d.scheduled = f.Active
	changed := f.Pruned > 0 || d.dirty
	d.dirty = false
	hook := d.hook
	d.mu.Unlock()

	if f.Pruned > 0 {
		d.log.Debug("ripples expired", "session", f.SessionID, "expired", f.Pruned, "live", len(f.Ripples))
	}
	if f.Finished {
		d.log.Info("session finished", "session", f.SessionID, "clicks", f.Clicks, "cps", FormatScore(f.Score))
	}
	if !f.Active {
		d.log.Debug("frame driver idle", "state", f.State)
	}
	if changed && hook != nil {
		hook(f)
	}
	return f
}

// Frame returns the most recent snapshot.
func (d *Driver) Frame() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// Active reports whether the driver wants another tick.
func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scheduled && !d.cancelled
}

// Reset drops the current run and ripples and returns to Idle.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session.Reset()
	d.effects.Clear()
	d.scheduled = false
	d.dirty = false
	d.frame = d.snapshot()
}

// Cancel stops the driver for good. Later ticks, clicks and starts are no-ops.
func (d *Driver) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelled = true
	d.scheduled = false
}

func (d *Driver) Cancelled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelled
}

func (d *Driver) setOnStart(f func()) {
	d.mu.Lock()
	d.onStart = f
	d.mu.Unlock()
}

// snapshot builds a frame from current state without advancing time.
// Callers hold d.mu.
func (d *Driver) snapshot() Frame {
	return Frame{
		SessionID: d.session.ID(),
		State:     d.session.State(),
		TimeLeft:  d.session.TimeLeft(),
		Clicks:    d.session.Clicks(),
		Score:     d.session.Score(),
		Active:    d.scheduled,
	}
}
