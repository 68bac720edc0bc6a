// internal/puzzle/game.go
//
// Game controller for the block puzzle.
// Responsibilities:
//   - Drive the select → drop → clear → refill cycle over the grid and tray.
//   - Reject invalid input silently (bad slot, illegal drop, input while a
//     clear is pending).
//   - Score placements and line clears with the combo streak.
//   - Detect game over by exhaustive search once a placement settles.
//   - Publish a Snapshot to the renderer after every state change.
//
// Notes:
//   - The engine is event-driven: each call completes its synchronous work
//     before returning. The one suspension point is the clear delay, during
//     which the placing flag rejects all input.
//   - The scheduler fires the clear callback on a timer goroutine, so the
//     controller guards its state with a mutex. An epoch counter makes a
//     callback from a previous game a no-op.

package puzzle

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultClearDelay is how long cleared cells stay flashed before they are
// emptied. Visual timing, not a correctness constant.
const DefaultClearDelay = 380 * time.Millisecond

// Config carries the injected capabilities for a Game. Zero fields get
// production defaults (seeded math/rand, timer scheduler, no-op best store).
type Config struct {
	Rand       Rand
	Best       BestStore
	Scheduler  Scheduler
	ClearDelay time.Duration
	OnChange   func(Snapshot) // render trigger, called after every state change
}

// Game is the orchestrating state machine. Create with New, drive with
// Start/SelectPiece/Drop/Deselect, observe through Snapshot or OnChange.
type Game struct {
	mu sync.Mutex

	grid     Grid
	tray     Tray
	keeper   *scoreKeeper
	streak   int
	selected int // tray slot index, -1 when none
	placing  bool
	flash    []Cell // cells about to clear, non-nil only while placing
	over     bool
	final    int

	// epoch invalidates a pending clear callback when a new game starts.
	epoch  uint64
	cancel CancelFunc

	rand     Rand
	best     BestStore
	sched    Scheduler
	delay    time.Duration
	onChange func(Snapshot)
}

// New constructs a playable Game. The first game starts immediately; Start
// may be called again at any time to begin a fresh one.
func New(cfg Config) *Game {
	g := &Game{
		rand:     cfg.Rand,
		best:     cfg.Best,
		sched:    cfg.Scheduler,
		delay:    cfg.ClearDelay,
		onChange: cfg.OnChange,
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.best == nil {
		g.best = nopBest{}
	}
	if g.sched == nil {
		g.sched = NewScheduler()
	}
	if g.delay <= 0 {
		g.delay = DefaultClearDelay
	}
	g.mu.Lock()
	g.resetLocked()
	g.mu.Unlock()
	return g
}

// Start discards all current state, including a pending clear, and begins
// a new game, re-reading the best score from the store.
func (g *Game) Start() Snapshot {
	g.mu.Lock()
	g.resetLocked()
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
	return snap
}

func (g *Game) resetLocked() {
	g.epoch++
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.grid = Grid{}
	g.tray = Tray{}
	g.tray.RefillIfEmpty(g.rand)
	g.keeper = newScoreKeeper(g.best)
	g.streak = 0
	g.selected = -1
	g.placing = false
	g.flash = nil
	g.over = false
	g.final = 0
}

// SelectPiece selects tray slot idx, or deselects it if already selected.
// No-op while a clear is pending, after game over, or for an empty slot.
func (g *Game) SelectPiece(idx int) {
	g.mu.Lock()
	if g.placing || g.over || idx < 0 || idx >= TraySlots || g.tray.Shape(idx) == nil {
		g.mu.Unlock()
		return
	}
	if g.selected == idx {
		g.selected = -1
	} else {
		g.selected = idx
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

// Deselect clears the current selection without touching the grid.
func (g *Game) Deselect() {
	g.mu.Lock()
	if g.placing || g.over || g.selected < 0 {
		g.mu.Unlock()
		return
	}
	g.selected = -1
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

// Drop attempts to place the selected shape with its anchor at (row, col).
// An illegal drop is silently ignored. A legal drop fills the cells, scores
// the placement, and either settles immediately (no lines) or flashes the
// clear set and schedules the actual clear after the delay.
func (g *Game) Drop(row, col int) {
	g.mu.Lock()
	if g.placing || g.over || g.selected < 0 {
		g.mu.Unlock()
		return
	}
	shape := g.tray.Shape(g.selected)
	if shape == nil || !CanPlace(&g.grid, shape, row, col) {
		g.mu.Unlock()
		return
	}

	for _, off := range shape.Cells {
		g.grid.SetColor(row+off.Row, col+off.Col, shape.Color)
	}
	g.keeper.add(shape.CellCount())
	g.tray.Take(g.selected)
	g.selected = -1

	scan := scanFullLines(&g.grid)
	if count := scan.Count(); count == 0 {
		g.streak = 0
		g.settleLocked()
	} else {
		g.streak++
		g.keeper.add(lineBonus(count, g.streak))
		g.keeper.addLines(count)
		g.flash = scan.Cells
		g.placing = true
		epoch := g.epoch
		g.cancel = g.sched.After(g.delay, func() { g.completeClear(epoch) })
	}

	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

// completeClear is the scheduled second half of a clearing placement: empty
// the flashed cells, then refill and check for game over. A stale epoch means
// a new game started while the timer ran; the callback must not touch it.
func (g *Game) completeClear(epoch uint64) {
	g.mu.Lock()
	if epoch != g.epoch || !g.placing {
		g.mu.Unlock()
		return
	}
	g.grid.ClearCells(g.flash)
	g.flash = nil
	g.placing = false
	g.cancel = nil
	g.settleLocked()
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

// settleLocked finishes a placement: refill the tray if it emptied, then
// evaluate the terminal condition.
func (g *Game) settleLocked() {
	g.tray.RefillIfEmpty(g.rand)
	if g.deadLocked() {
		g.over = true
		g.final = g.keeper.score
	}
}

// deadLocked reports whether no remaining tray shape fits anywhere on the
// board. Exhaustive over every (shape, row, col); there is no shortcut.
func (g *Game) deadLocked() bool {
	for i := 0; i < TraySlots; i++ {
		s := g.tray.Shape(i)
		if s == nil {
			continue
		}
		for row := 0; row < GridSize; row++ {
			for col := 0; col < GridSize; col++ {
				if CanPlace(&g.grid, s, row, col) {
					return false
				}
			}
		}
	}
	return true
}

func (g *Game) notify(snap Snapshot) {
	if g.onChange != nil {
		g.onChange(snap)
	}
}
