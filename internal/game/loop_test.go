package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoopRunsUntilWorkDrains(t *testing.T) {
	d, clock := newTestDriver()
	loop := NewLoop(d, clock, 10*time.Millisecond)
	loop.Start()
	defer loop.Stop()

	if loop.Pending() {
		t.Fatal("idle driver scheduled a tick")
	}

	d.Start()
	if !loop.Pending() {
		t.Fatal("start did not schedule a tick")
	}

	clock.Advance(Duration - 200*time.Millisecond)
	d.Click(50, 50)
	clock.Advance(200 * time.Millisecond)
	if f := d.Frame(); f.State != Finished || f.Clicks != 1 {
		t.Fatalf("frame at deadline = %+v", f)
	}
	if !loop.Pending() {
		t.Fatal("loop stopped while a ripple was alive")
	}

	clock.Advance(Lifetime)
	if loop.Pending() || clock.Live() != 0 {
		t.Fatalf("loop still scheduled after work drained: pending=%v live=%d", loop.Pending(), clock.Live())
	}

	d.Start()
	if !loop.Pending() {
		t.Error("loop did not wake on restart")
	}
}

func TestLoopStopPreventsPendingTick(t *testing.T) {
	d, clock := newTestDriver()
	loop := NewLoop(d, clock, RefreshInterval)
	loop.Start()
	d.Start()
	clock.Advance(time.Second)
	ticked := d.Frame()

	loop.Stop()
	if loop.Pending() {
		t.Fatal("pending tick survived stop")
	}
	clock.Advance(5 * time.Second)
	if f := d.Frame(); f.TimeLeft != ticked.TimeLeft {
		t.Errorf("tick ran after stop: %v -> %v", ticked.TimeLeft, f.TimeLeft)
	}

	d.Start()
	if loop.Pending() {
		t.Error("stopped loop woke on start")
	}
}

func TestLoopRunReturnsOnCancel(t *testing.T) {
	d, clock := newTestDriver()
	loop := NewLoop(d, clock, RefreshInterval)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if loop.Pending() {
		t.Error("tick still pending after Run returned")
	}
}

func TestLoopRunReturnsNilOnStop(t *testing.T) {
	d, clock := newTestDriver()
	loop := NewLoop(d, clock, RefreshInterval)
	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for !loop.isRunning() {
		if time.Now().After(deadline) {
			t.Fatal("Run did not start the loop")
		}
		time.Sleep(time.Millisecond)
	}
	loop.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil after Stop", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func (l *Loop) isRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}
