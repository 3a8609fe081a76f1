package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Duration is the length of one timed run.
const Duration = 10 * time.Second

// State is the lifecycle phase of a session.
type State int

const (
	Idle State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session tracks the countdown and click counter of one play-through.
type Session struct {
	id       string
	state    State
	clicks   int
	endTime  time.Time
	timeLeft time.Duration
	score    float64
}

func NewSession() *Session {
	return &Session{timeLeft: Duration}
}

// Start begins a fresh run from any state.
func (s *Session) Start(now time.Time) {
	s.id = uuid.NewString()
	s.state = Running
	s.clicks = 0
	s.endTime = now.Add(Duration)
	s.timeLeft = Duration
	s.score = 0
}

// Reset returns the session to Idle.
func (s *Session) Reset() {
	*s = Session{timeLeft: Duration}
}

// Click counts one click. Clicks outside a running session are ignored.
func (s *Session) Click() bool {
	if s.state != Running {
		return false
	}
	// a click landing after the deadline but before the next tick still
	// belongs to the run; the tick that observes the deadline ends it
	s.clicks++
	return true
}

// Advance recomputes the remaining time and reports whether this call moved
// the session to Finished.
func (s *Session) Advance(now time.Time) bool {
	if s.state != Running {
		return false
	}
	left := s.endTime.Sub(now)
	if left < 0 {
		left = 0
	}
	// remaining time never grows, even if the clock steps backwards
	if left > s.timeLeft {
		left = s.timeLeft
	}
	s.timeLeft = left
	if left > 0 {
		return false
	}
	s.state = Finished
	s.score = ClicksPerSecond(s.clicks)
	return true
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

func (s *Session) Clicks() int { return s.clicks }

// TimeLeft is zero whenever the session is not running.
func (s *Session) TimeLeft() time.Duration {
	if s.state != Running {
		return 0
	}
	return s.timeLeft
}

// Score is the clicks-per-second result, frozen when the run finished.
func (s *Session) Score() float64 { return s.score }

// ClicksPerSecond converts a click total over one run into a rate.
func ClicksPerSecond(clicks int) float64 {
	return float64(clicks) / Duration.Seconds()
}

// FormatScore renders a score with two decimals.
func FormatScore(cps float64) string {
	return fmt.Sprintf("%.2f", cps)
}
