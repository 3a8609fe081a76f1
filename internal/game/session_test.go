package game

import (
	"testing"
	"time"
)

func TestSessionStartsIdle(t *testing.T) {
	s := NewSession()
	if s.State() != Idle {
		t.Fatalf("state = %v, want idle", s.State())
	}
	if s.Clicks() != 0 || s.TimeLeft() != 0 {
		t.Errorf("clicks=%d timeLeft=%v, want zero values", s.Clicks(), s.TimeLeft())
	}
}

func TestSessionIgnoresClicksUnlessRunning(t *testing.T) {
	s := NewSession()
	for i := 0; i < 5; i++ {
		if s.Click() {
			t.Fatal("click accepted while idle")
		}
	}
	s.Start(epoch)
	s.Click()
	s.Advance(epoch.Add(Duration))
	if s.State() != Finished {
		t.Fatalf("state = %v, want finished", s.State())
	}
	for i := 0; i < 5; i++ {
		if s.Click() {
			t.Fatal("click accepted while finished")
		}
	}
	if s.Clicks() != 1 {
		t.Errorf("clicks = %d, want 1", s.Clicks())
	}
}

func TestSessionStartResetsFromAnyState(t *testing.T) {
	s := NewSession()
	s.Start(epoch)
	s.Click()
	s.Click()
	s.Advance(epoch.Add(3 * time.Second))

	s.Start(epoch.Add(4 * time.Second))
	if s.State() != Running || s.Clicks() != 0 || s.TimeLeft() != Duration {
		t.Fatalf("restart while running: state=%v clicks=%d left=%v", s.State(), s.Clicks(), s.TimeLeft())
	}
	firstID := s.ID()

	s.Advance(epoch.Add(20 * time.Second))
	s.Start(epoch.Add(21 * time.Second))
	if s.State() != Running || s.Clicks() != 0 || s.TimeLeft() != Duration {
		t.Fatalf("restart after finish: state=%v clicks=%d left=%v", s.State(), s.Clicks(), s.TimeLeft())
	}
	if s.ID() == firstID || s.ID() == "" {
		t.Errorf("session id not renewed: %q", s.ID())
	}
}

func TestSessionTimeLeftNeverIncreases(t *testing.T) {
	s := NewSession()
	s.Start(epoch)
	offsets := []time.Duration{
		16 * time.Millisecond,
		900 * time.Millisecond,
		800 * time.Millisecond, // clock stepped back
		5 * time.Second,
		9999 * time.Millisecond,
	}
	prev := s.TimeLeft()
	for _, off := range offsets {
		s.Advance(epoch.Add(off))
		if s.TimeLeft() > prev {
			t.Fatalf("time left grew from %v to %v at %v", prev, s.TimeLeft(), off)
		}
		prev = s.TimeLeft()
	}
	if s.State() != Running {
		t.Fatalf("finished early at %v left", prev)
	}
	if !s.Advance(epoch.Add(Duration + time.Second)) {
		t.Fatal("overshooting the deadline did not finish the session")
	}
	if s.Advance(epoch.Add(Duration + 2*time.Second)) {
		t.Error("finish reported twice")
	}
}

func TestSessionScoreFrozenAtFinish(t *testing.T) {
	s := NewSession()
	s.Start(epoch)
	for i := 0; i < 7; i++ {
		s.Click()
	}
	s.Advance(epoch.Add(Duration))
	want := ClicksPerSecond(7)
	if s.Score() != want {
		t.Fatalf("score = %v, want %v", s.Score(), want)
	}
	s.Click()
	s.Advance(epoch.Add(Duration + time.Minute))
	if s.Score() != want || s.Clicks() != 7 {
		t.Errorf("score moved after finish: %v clicks=%d", s.Score(), s.Clicks())
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.Start(epoch)
	s.Click()
	s.Reset()
	if s.State() != Idle || s.Clicks() != 0 || s.ID() != "" {
		t.Errorf("reset left state=%v clicks=%d id=%q", s.State(), s.Clicks(), s.ID())
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		clicks int
		want   string
	}{
		{0, "0.00"},
		{1, "0.10"},
		{25, "2.50"},
		{123, "12.30"},
	}
	for _, tt := range tests {
		if got := FormatScore(ClicksPerSecond(tt.clicks)); got != tt.want {
			t.Errorf("FormatScore(cps(%d)) = %q, want %q", tt.clicks, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Running: "running", Finished: "finished", State(9): "state(9)"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
