package core

// QueueSize is the number of slots in the piece queue.
const QueueSize = 3

// PieceSlot holds one offered shape and whether it has been placed.
type PieceSlot struct {
	Shape ShapeID
	Used  bool
}

// Queue is the fixed set of offered pieces.
type Queue [QueueSize]PieceSlot

// newQueue draws QueueSize shapes independently and uniformly, with
// replacement, all unused.
func newQueue(src RandomSource) Queue {
	var q Queue
	for i := range q {
		q[i] = PieceSlot{Shape: randomShape(src)}
	}
	return q
}

// randomShape draws one shape uniformly from the catalog.
func randomShape(src RandomSource) ShapeID {
	return ShapeID(src.Intn(int(ShapeCount)))
}

// UsedCount returns the number of placed slots.
func (q Queue) UsedCount() int {
	n := 0
	for _, slot := range q {
		if slot.Used {
			n++
		}
	}
	return n
}

// AllUsed reports whether every slot has been placed.
func (q Queue) AllUsed() bool {
	return q.UsedCount() == QueueSize
}

// Available reports whether slot is in range and not yet used.
func (q Queue) Available(slot int) bool {
	return slot >= 0 && slot < QueueSize && !q[slot].Used
}

// NextAvailable returns the first unused slot at or after from, wrapping
// around. Returns -1 when every slot is used.
func (q Queue) NextAvailable(from int) int {
	for i := 0; i < QueueSize; i++ {
		slot := ((from+i)%QueueSize + QueueSize) % QueueSize
		if !q[slot].Used {
			return slot
		}
	}
	return -1
}
