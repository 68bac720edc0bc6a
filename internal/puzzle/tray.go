// internal/puzzle/tray.go
//
// The three pending-piece slots. A slot empties when its shape is placed and
// the tray refills only when all three slots are empty at once, never
// partially. Draws are uniform over the catalog and independent, so repeats
// across slots are allowed.

package puzzle

// TraySlots is the number of pending-piece slots.
const TraySlots = 3

// Rand is the source of uniform draws for tray refills.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Tray holds the pending shapes. The zero value is an empty tray.
type Tray struct {
	slots [TraySlots]*Shape
}

// Shape returns the shape in slot i, or nil if the slot is empty.
func (t *Tray) Shape(i int) *Shape { return t.slots[i] }

// Shapes returns all slots; empty slots are nil.
func (t *Tray) Shapes() [TraySlots]*Shape { return t.slots }

// Take removes and returns the shape in slot i.
func (t *Tray) Take(i int) *Shape {
	s := t.slots[i]
	t.slots[i] = nil
	return s
}

// Empty reports whether every slot is empty.
func (t *Tray) Empty() bool {
	for _, s := range t.slots {
		if s != nil {
			return false
		}
	}
	return true
}

// RefillIfEmpty draws three fresh shapes from the catalog, but only when all
// slots are simultaneously empty. Returns whether a refill happened.
func (t *Tray) RefillIfEmpty(r Rand) bool {
	if !t.Empty() {
		return false
	}
	for i := range t.slots {
		t.slots[i] = Catalog[r.Intn(len(Catalog))]
	}
	return true
}
