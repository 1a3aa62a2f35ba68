package packedtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStagingPush(t *testing.T) {
	b := NewStaging[int](Shape2)
	require.True(t, b.IsEmpty())
	require.False(t, b.IsFilled())

	for i := 0; i < Shape2.TotalSize(); i++ {
		b.Push(Filled(i))
	}
	require.Equal(t, 9, b.Len())
	require.True(t, b.IsFilled())
	require.False(t, b.IsEmpty())

	// One past capacity is a programmer error.
	require.Panics(t, func() { b.Push(Filled(9)) })
}

func TestStagingSetSwaps(t *testing.T) {
	b := stagedFilled(64)
	prev := b.Set(Shape4.NodeIndex(5), Empty[int]())
	require.Equal(t, Filled(5), prev)
	require.Equal(t, Empty[int](), b.Nodes()[5])

	// Layer coordinates resolve through the same absolute index.
	prev = b.Set(Shape4.LayerPosition(2, 2, 2, 0), Reduced[int]())
	require.Equal(t, Filled(42), prev)

	// Beyond the staged length, even though within the tree size.
	require.Panics(t, func() { b.Set(Shape4.NodeIndex(64), Filled(0)) })
}

func TestStagingFromTruncates(t *testing.T) {
	nodes := make([]Node[int], 95)
	for i := range nodes {
		nodes[i] = Filled(i)
	}
	b := StagingFrom(Shape4, nodes)
	require.Equal(t, 73, b.Len())
	require.True(t, b.IsFilled())
	require.Equal(t, Filled(72), b.Nodes()[72])
}

func TestStagingFromChecked(t *testing.T) {
	b, err := StagingFromChecked(Shape4, make([]Node[int], 73))
	require.NoError(t, err)
	require.True(t, b.IsFilled())

	_, err = StagingFromChecked(Shape4, make([]Node[int], 74))
	require.ErrorIs(t, err, ErrStagingOverflow)
}

func TestStagingShapeMixingRejected(t *testing.T) {
	b := stagedFilled(64)
	require.Panics(t, func() { b.Set(Shape8.NodeIndex(0), Empty[int]()) })
}
