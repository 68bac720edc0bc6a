package puzzle

import (
	"testing"
	"time"
)

// fakeRand replays a fixed sequence of draws, wrapping at the end.
type fakeRand struct {
	seq []int
	i   int
}

func (r *fakeRand) Intn(n int) int {
	if len(r.seq) == 0 {
		return 0
	}
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

// fakeSched collects callbacks for manual firing instead of running timers.
type fakeSched struct {
	fns      []func()
	canceled int
}

func (s *fakeSched) After(_ time.Duration, fn func()) CancelFunc {
	s.fns = append(s.fns, fn)
	return func() { s.canceled++ }
}

// fire runs every pending callback, including ones whose cancel was called,
// which exercises the controller's epoch guard.
func (s *fakeSched) fire() {
	fns := s.fns
	s.fns = nil
	for _, fn := range fns {
		fn()
	}
}

// fakeBest records every write-through.
type fakeBest struct {
	best   int
	writes []int
}

func (b *fakeBest) ReadBest() int { return b.best }

func (b *fakeBest) WriteBest(n int) {
	b.best = n
	b.writes = append(b.writes, n)
}

// catalogIndex finds a shape's position in the catalog by name.
func catalogIndex(t *testing.T, name string) int {
	t.Helper()
	for i, s := range Catalog {
		if s.Name == name {
			return i
		}
	}
	t.Fatalf("shape %q not in catalog", name)
	return -1
}

// newTestGame builds a game whose tray holds the named shapes, with a manual
// scheduler and recording best store.
func newTestGame(t *testing.T, names ...string) (*Game, *fakeSched, *fakeBest) {
	t.Helper()
	if len(names) != TraySlots {
		t.Fatalf("need %d shape names, got %d", TraySlots, len(names))
	}
	seq := make([]int, len(names))
	for i, n := range names {
		seq[i] = catalogIndex(t, n)
	}
	sched := &fakeSched{}
	best := &fakeBest{}
	g := New(Config{
		Rand:      &fakeRand{seq: seq},
		Best:      best,
		Scheduler: sched,
	})
	return g, sched, best
}
