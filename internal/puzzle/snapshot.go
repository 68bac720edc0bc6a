// internal/puzzle/snapshot.go
//
// Read-only projection of the game state for the renderer. Everything the
// caller needs to draw a frame is in one value; nothing in it aliases the
// live game.

package puzzle

// TrayView describes one tray slot.
type TrayView struct {
	Name  string   `json:"name,omitempty"`
	Color Color    `json:"color,omitempty"`
	Cells []Offset `json:"cells,omitempty"`
	Empty bool     `json:"empty"`
}

// Snapshot is the full observable state of a game.
type Snapshot struct {
	Grid       [GridSize][GridSize]Color `json:"grid"`
	Tray       [TraySlots]TrayView       `json:"tray"`
	Selected   int                       `json:"selected"` // -1 when none
	Score      int                       `json:"score"`
	Best       int                       `json:"best"`
	Streak     int                       `json:"streak"`
	Lines      int                       `json:"lines"`
	Placing    bool                      `json:"placing"`
	Flash      []Cell                    `json:"flash,omitempty"` // cells about to clear
	GameOver   bool                      `json:"gameOver"`
	FinalScore int                       `json:"finalScore,omitempty"`
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	snap := Snapshot{
		Grid:       g.grid.Rows(),
		Selected:   g.selected,
		Score:      g.keeper.score,
		Best:       g.keeper.best,
		Streak:     g.streak,
		Lines:      g.keeper.lines,
		Placing:    g.placing,
		GameOver:   g.over,
		FinalScore: g.final,
	}
	for i, s := range g.tray.Shapes() {
		if s == nil {
			snap.Tray[i] = TrayView{Empty: true}
			continue
		}
		snap.Tray[i] = TrayView{Name: s.Name, Color: s.Color, Cells: s.Cells}
	}
	if len(g.flash) > 0 {
		snap.Flash = append([]Cell(nil), g.flash...)
	}
	return snap
}
