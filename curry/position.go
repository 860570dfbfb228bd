package curry

import "github.com/katalvlaran/curried/target"

// Position names the slot a configuration call touches: an ordinary
// positional index, the receiver, or the rest tail.
type Position struct {
	kind  target.SlotKind
	index int
}

var (
	// Receiver is the implicit receiver slot.
	Receiver = Position{kind: target.SlotReceiver}
	// Rest is the variadic tail, supplied as one slice.
	Rest = Position{kind: target.SlotRest}
)

// Index returns the position of the n-th ordinary parameter.
// Panics if n < 0; Takes and WithBound report that case as an error instead.
func Index(n int) Position {
	if n < 0 {
		panic("curry: Index(n<0)")
	}
	return Position{kind: target.SlotIndex, index: n}
}

// Int returns the index of an ordinary position and true, or 0 and false
// for Receiver and Rest.
func (p Position) Int() (int, bool) {
	if p.kind != target.SlotIndex {
		return 0, false
	}
	return p.index, true
}

// Slot converts p for use with a target.Target.
func (p Position) Slot() target.Slot {
	return target.Slot{Kind: p.kind, Index: p.index}
}

// String renders the position as "#n", "this" or "...rest".
func (p Position) String() string { return p.Slot().String() }
