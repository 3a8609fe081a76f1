package game

import "time"

const (
	// Lifetime is how long a ripple stays visible.
	Lifetime = time.Second
	// MaxRadius is the radius a ripple reaches at the end of its lifetime.
	MaxRadius = 100.0
)

// Ripple is a click effect. It is never mutated after creation; its shape
// on any frame is derived from its age alone.
type Ripple struct {
	X, Y      float64
	CreatedAt time.Time
}

// Geometry is the drawable shape of a live ripple on one frame.
type Geometry struct {
	X, Y    float64
	Radius  float64
	Opacity float64
}

// Age reports how old the ripple is at now. A ripple is never younger than 0.
func (r Ripple) Age(now time.Time) time.Duration {
	age := now.Sub(r.CreatedAt)
	if age < 0 {
		return 0
	}
	return age
}

// Expired reports whether the ripple has outlived Lifetime at now.
func (r Ripple) Expired(now time.Time) bool {
	return r.Age(now) >= Lifetime
}

// Shape returns the ripple geometry at now. The result is only meaningful for
// a ripple that has not expired.
func (r Ripple) Shape(now time.Time) Geometry {
	progress := float64(r.Age(now)) / float64(Lifetime)
	return Geometry{
		X:       r.X,
		Y:       r.Y,
		Radius:  progress * MaxRadius,
		Opacity: 1 - progress,
	}
}

// Effects is the live set of ripples.
type Effects struct {
	live []Ripple
}

// Spawn adds a ripple anchored at (x, y).
func (e *Effects) Spawn(x, y float64, now time.Time) {
	e.live = append(e.live, Ripple{X: x, Y: y, CreatedAt: now})
}

func (e *Effects) Clear() {
	e.live = nil
}

func (e *Effects) Len() int { return len(e.live) }

// Ripples returns a copy of the live set.
func (e *Effects) Ripples() []Ripple {
	out := make([]Ripple, len(e.live))
	copy(out, e.live)
	return out
}

// Advance drops expired ripples and returns the geometry of the survivors
// along with how many were dropped. It makes a single pass over the set.
func (e *Effects) Advance(now time.Time) ([]Geometry, int) {
	if len(e.live) == 0 {
		return nil, 0
	}
	shapes := make([]Geometry, 0, len(e.live))
	kept := e.live[:0]
	for _, r := range e.live {
		if r.Expired(now) {
			continue
		}
		shapes = append(shapes, r.Shape(now))
		kept = append(kept, r)
	}
	pruned := len(e.live) - len(kept)
	// zero the tail so dropped ripples are not retained by the backing array
	clear(e.live[len(kept):])
	e.live = kept
	return shapes, pruned
}
