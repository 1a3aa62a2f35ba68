package packedtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidIndex(t *testing.T) {
	require.True(t, Shape4.IsValidIndex(0))
	require.True(t, Shape4.IsValidIndex(72))
	require.False(t, Shape4.IsValidIndex(73))
	require.False(t, Shape4.IsValidIndex(528))
	require.False(t, Shape4.IsValidIndex(-1))
}

func TestNodeIndexNew(t *testing.T) {
	Shape4.NodeIndex(0)
	Shape4.NodeIndex(72)
	require.Panics(t, func() { Shape4.NodeIndex(73) })
	require.Panics(t, func() { Shape4.NodeIndex(-1) })
}

func TestNodeIndexChecked(t *testing.T) {
	idx, err := Shape4.NodeIndexChecked(72)
	require.NoError(t, err)
	require.Equal(t, 72, idx.Raw())
	require.True(t, idx.IsValid())

	_, err = Shape4.NodeIndexChecked(73)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Shape4.NodeIndexChecked(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNodeIndexDepth(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{63, 0},
		{64, 1},
		{71, 1},
		{72, 2},
	}
	for _, tt := range tests {
		if got := Shape4.NodeIndex(tt.index).Depth(); got != tt.want {
			t.Errorf("Depth(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestNodeIndexAddSub(t *testing.T) {
	idx := Shape4.NodeIndex(0)
	require.Equal(t, 25, idx.Add(25).Raw())
	// Add copies; the receiver is unchanged.
	require.Equal(t, 0, idx.Raw())
	require.Equal(t, 20, Shape4.NodeIndex(25).Sub(5).Raw())

	require.Panics(t, func() { Shape4.NodeIndex(70).Add(3) })
	require.Panics(t, func() { Shape4.NodeIndex(2).Sub(3) })
}

func TestNodeIndexFromNodePosition(t *testing.T) {
	tests := []struct {
		x, y, z, depth int
		want           int
	}{
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 1},
		{3, 3, 3, 0, 63},
		{0, 0, 0, 1, 64},
		{2, 0, 0, 1, 65},
		{2, 2, 2, 1, 71},
		{0, 0, 0, 2, 72},
	}
	for _, tt := range tests {
		pos := Shape4.NodePosition(tt.x, tt.y, tt.z, tt.depth)
		if got := pos.AbsIndex(); got != Shape4.NodeIndex(tt.want) {
			t.Errorf("%v.AbsIndex() = %v, want %d", pos, got, tt.want)
		}
	}
}

func TestNodeIndexFromLayerPosition(t *testing.T) {
	tests := []struct {
		x, y, z, depth int
		want           int
	}{
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 1},
		{3, 3, 3, 0, 63},
		{0, 0, 0, 1, 64},
		{1, 0, 0, 1, 65},
		{1, 1, 1, 1, 71},
		{0, 0, 0, 2, 72},
	}
	for _, tt := range tests {
		pos := Shape4.LayerPosition(tt.x, tt.y, tt.z, tt.depth)
		if got := pos.AbsIndex(); got != Shape4.NodeIndex(tt.want) {
			t.Errorf("%v.AbsIndex() = %v, want %d", pos, got, tt.want)
		}
	}
}

func TestNodeIndexFromLayerIndex(t *testing.T) {
	tests := []struct {
		index, depth int
		want         int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{63, 0, 63},
		{0, 1, 64},
		{1, 1, 65},
		{7, 1, 71},
		{0, 2, 72},
	}
	for _, tt := range tests {
		idx := Shape4.LayerIndex(tt.index, tt.depth)
		if got := idx.AbsIndex(); got != Shape4.NodeIndex(tt.want) {
			t.Errorf("%v.AbsIndex() = %v, want %d", idx, got, tt.want)
		}
	}
}

func TestNodeIndexString(t *testing.T) {
	require.Equal(t, "NodeIndex<4>(72)", Shape4.NodeIndex(72).String())
}
