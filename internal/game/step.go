package game

import (
	"time"

	"github.com/samber/lo"
)

// Frame is the read-only snapshot the presentation layer renders.
type Frame struct {
	SessionID string
	State     State
	TimeLeft  time.Duration
	Clicks    int
	Ripples   []Geometry
	// Score is only meaningful once State is Finished.
	Score float64
	// Active reports whether another tick should be scheduled.
	Active bool
	// Finished is set on the one frame where the run ended.
	Finished bool
	// Pruned counts ripples that expired on this frame.
	Pruned int
}

// TimeLeftMillis is the remaining time rounded down to whole milliseconds.
func (f Frame) TimeLeftMillis() int64 {
	return f.TimeLeft.Milliseconds()
}

// ScoreText is the two-decimal score, empty unless the run has finished.
func (f Frame) ScoreText() string {
	return lo.Ternary(f.State == Finished, FormatScore(f.Score), "")
}

// Step advances the session timer and the ripple set to now. It is the whole
// per-tick update: scheduling decisions are left to the caller, which should
// keep ticking while the returned frame is Active.
func Step(s *Session, e *Effects, now time.Time) Frame {
	finished := s.Advance(now)
	shapes, pruned := e.Advance(now)
	return Frame{
		SessionID: s.ID(),
		State:     s.State(),
		TimeLeft:  s.TimeLeft(),
		Clicks:    s.Clicks(),
		Ripples:   shapes,
		Score:     s.Score(),
		Active:    s.State() == Running || e.Len() > 0,
		Finished:  finished,
		Pruned:    pruned,
	}
}
