package game

import (
	"context"
	"sync"
	"time"
)

// RefreshInterval is the nominal display refresh period.
const RefreshInterval = time.Second / 60

// Loop drives a Driver from clock callbacks for hosts without their own
// refresh mechanism. It only keeps a callback pending while the driver has
// work, and re-arms when the driver is started again.
type Loop struct {
	driver   *Driver
	clock    Clock
	interval time.Duration

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	running bool
	stopped chan struct{}
}

func NewLoop(d *Driver, clock Clock, interval time.Duration) *Loop {
	if clock == nil {
		clock = SystemClock
	}
	if interval <= 0 {
		interval = RefreshInterval
	}
	return &Loop{driver: d, clock: clock, interval: interval}
}

// Start attaches the loop to its driver and schedules a tick if the driver
// is active.
func (l *Loop) Start() {
	l.mu.Lock()
	if !l.running {
		l.running = true
		l.stopped = make(chan struct{})
	}
	l.mu.Unlock()

	l.driver.setOnStart(l.wake)
	if l.driver.Active() {
		l.wake()
	}
}

// Stop cancels the pending tick. No callback scheduled before Stop runs a
// tick afterwards.
func (l *Loop) Stop() {
	l.driver.setOnStart(nil)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		close(l.stopped)
	}
	l.running = false
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

// Run starts the loop and blocks until ctx is done or Stop is called. It
// returns ctx.Err() in the first case and nil in the second.
func (l *Loop) Run(ctx context.Context) error {
	l.Start()
	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		l.Stop()
		return ctx.Err()
	case <-stopped:
		return nil
	}
}

// Pending reports whether a tick is scheduled.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timer != nil
}

func (l *Loop) wake() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running && l.timer == nil {
		l.arm()
	}
}

// arm schedules the next tick. Callers hold l.mu.
func (l *Loop) arm() {
	l.gen++
	gen := l.gen
	l.timer = l.clock.AfterFunc(l.interval, func() { l.fire(gen) })
}

func (l *Loop) fire(gen uint64) {
	l.mu.Lock()
	if !l.running || l.timer == nil || l.gen != gen {
		l.mu.Unlock()
		return
	}
	l.timer = nil
	l.mu.Unlock()

	f := l.driver.Tick()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running && l.timer == nil && f.Active {
		l.arm()
	}
}
