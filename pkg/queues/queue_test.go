package queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	q := NewQueue[string]()
	assert.True(t, q.IsEmpty())
	_, ok := q.Pop()
	assert.False(t, ok)

	q.Push("a")
	q.Push("b")
	assert.Equal(t, 2, q.Len())

	x, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", x)
	q.Push("c")
	x, _ = q.Pop()
	assert.Equal(t, "b", x)
	x, _ = q.Pop()
	assert.Equal(t, "c", x)
	assert.True(t, q.IsEmpty())
}
