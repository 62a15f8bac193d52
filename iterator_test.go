package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorNextTraversesElementsInOrder(t *testing.T) {
	l, _ := newCountingList(t)
	fill(t, l, 5, 1, 3)

	it := l.Iterator()
	require.False(t, it.Valid(), "fresh iterator")

	var values []uint32
	for it.Next() {
		require.Equal(t, len(values), it.Index())
		values = append(values, it.Value())
	}

	assert.Equal(t, []uint32{5, 1, 3}, values)
	assert.False(t, it.Valid(), "exhausted iterator")
	assert.Equal(t, -1, it.Index())
}

func TestIteratorRestartsAfterExhaustion(t *testing.T) {
	l, _ := newCountingList(t)
	fill(t, l, 1, 2)

	it := l.Iterator()
	for it.Next() {
	}

	require.True(t, it.Next(), "exhausted iterator restarts at the first element")
	assert.Equal(t, uint32(1), it.Value())
}

func TestIteratorSeekPositionsCorrectly(t *testing.T) {
	l, _ := newCountingList(t)
	fill(t, l, 10, 20, 30)

	it := l.Iterator()
	require.True(t, it.Seek(1))
	assert.Equal(t, uint32(20), it.Value())

	require.True(t, it.Next())
	assert.Equal(t, 2, it.Index())
	assert.False(t, it.Next())

	assert.False(t, it.Seek(3), "seek beyond the last index")
	assert.False(t, it.Valid(), "failed Seek invalidates")
}

func TestIteratorOnEmptyList(t *testing.T) {
	l, _ := newCountingList(t)
	it := l.Iterator()
	assert.False(t, it.Next())
	assert.Zero(t, it.Value())

	var nilIt *Iterator
	assert.False(t, nilIt.Next())
	assert.False(t, nilIt.Valid())
	assert.False(t, nilIt.Seek(0))
}
