package frontier

import "github.com/kkovrov/tacflood/grid"

// Frontier holds the open (LIFO) and closed collections a uniform-cost
// flood walks: pop the last-pushed open node, relax its neighbours,
// and search the closed list to decide whether a neighbour is new,
// stale, or an improvement worth reopening.
type Frontier[P comparable, C grid.Coord] struct {
	open   []Entry[P, C]
	closed []Entry[P, C]
}

// New returns an empty Frontier with capacity hints for both
// collections (worst case rows*cols*2 nodes).
func New[P comparable, C grid.Coord](capacityHint int) *Frontier[P, C] {
	return &Frontier[P, C]{
		open:   make([]Entry[P, C], 0, capacityHint),
		closed: make([]Entry[P, C], 0, capacityHint),
	}
}

// PushOpen appends e to the open set.
func (f *Frontier[P, C]) PushOpen(e Entry[P, C]) {
	f.open = append(f.open, e)
}

// PopOpen removes and returns the most recently pushed open entry
// (LIFO). ok is false if the open set is empty.
func (f *Frontier[P, C]) PopOpen() (e Entry[P, C], ok bool) {
	n := len(f.open)
	if n == 0 {
		return e, false
	}
	e = f.open[n-1]
	f.open = f.open[:n-1]
	return e, true
}

// OpenLen reports how many nodes remain in the open set.
func (f *Frontier[P, C]) OpenLen() int {
	return len(f.open)
}

// Close appends e to the closed list.
func (f *Frontier[P, C]) Close(e Entry[P, C]) {
	f.closed = append(f.closed, e)
}

// FindClosed searches the closed list for pos, returning its index.
// ok is false if pos has never been closed.
func (f *Frontier[P, C]) FindClosed(pos P) (idx int, ok bool) {
	for i, e := range f.closed {
		if e.Pos == pos {
			return i, true
		}
	}
	return -1, false
}

// ClosedAt returns the closed entry at idx.
func (f *Frontier[P, C]) ClosedAt(idx int) Entry[P, C] {
	return f.closed[idx]
}

// RemoveClosedAt deletes the closed entry at idx, preserving the
// relative order of the remaining entries, and returns it.
func (f *Frontier[P, C]) RemoveClosedAt(idx int) Entry[P, C] {
	e := f.closed[idx]
	f.closed = append(f.closed[:idx], f.closed[idx+1:]...)
	return e
}

// Reopen removes the closed entry at idx and pushes e (typically the
// same position at a strictly smaller distance) onto the open set.
func (f *Frontier[P, C]) Reopen(idx int, e Entry[P, C]) {
	f.RemoveClosedAt(idx)
	f.PushOpen(e)
}
