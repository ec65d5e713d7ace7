package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedSource returns a fixed sequence of shapes, repeating it as needed.
type scriptedSource struct {
	ids   []ShapeID
	pos   int
	calls int
	lastN int
}

func (s *scriptedSource) Intn(n int) int {
	s.lastN = n
	s.calls++
	id := s.ids[s.pos%len(s.ids)]
	s.pos++
	return int(id)
}

func TestNewQueueDrawsFromCatalog(t *testing.T) {
	src := &scriptedSource{ids: []ShapeID{ShapeSquare3, ShapeSingle, ShapeSquare3}}

	q := newQueue(src)

	assert.Equal(t, 3, src.calls)
	assert.Equal(t, int(ShapeCount), src.lastN)
	assert.Equal(t, Queue{
		{Shape: ShapeSquare3},
		{Shape: ShapeSingle},
		{Shape: ShapeSquare3},
	}, q)
	assert.Equal(t, 0, q.UsedCount())
}

func TestQueueAvailability(t *testing.T) {
	q := Queue{
		{Shape: ShapeSingle, Used: true},
		{Shape: ShapeSingle},
		{Shape: ShapeSingle, Used: true},
	}

	assert.Equal(t, 2, q.UsedCount())
	assert.False(t, q.AllUsed())
	assert.False(t, q.Available(0))
	assert.True(t, q.Available(1))
	assert.False(t, q.Available(-1))
	assert.False(t, q.Available(QueueSize))

	assert.Equal(t, 1, q.NextAvailable(0))
	assert.Equal(t, 1, q.NextAvailable(2))
	assert.Equal(t, 1, q.NextAvailable(-1))

	q[1].Used = true
	assert.True(t, q.AllUsed())
	assert.Equal(t, -1, q.NextAvailable(0))
}
