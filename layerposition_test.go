package packedtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayerPositionNew(t *testing.T) {
	Shape4.LayerPosition(0, 0, 0, 0)
	Shape4.LayerPosition(3, 3, 3, 0)
	Shape4.LayerPosition(1, 1, 1, 1)
	Shape4.LayerPosition(0, 0, 0, 2)

	require.Panics(t, func() { Shape4.LayerPosition(4, 0, 0, 0) })
	require.Panics(t, func() { Shape4.LayerPosition(2, 0, 0, 1) })
	require.Panics(t, func() { Shape4.LayerPosition(2, 0, 0, 2) })
	require.Panics(t, func() { Shape4.LayerPosition(0, 0, 0, 3) })
}

func TestLayerPositionChecked(t *testing.T) {
	pos, err := Shape4.LayerPositionChecked(1, 1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, Shape4.LayerPosition(1, 1, 1, 1), pos)

	_, err = Shape4.LayerPositionChecked(2, 0, 0, 1)
	require.ErrorIs(t, err, ErrPositionOutOfRange)
	_, err = Shape4.LayerPositionChecked(0, 0, 0, 3)
	require.ErrorIs(t, err, ErrDepthOutOfRange)
}

func TestLayerPositionParent(t *testing.T) {
	tests := []struct {
		x, y, z, depth              int
		wantX, wantY, wantZ, depth2 int
		ok                          bool
	}{
		{0, 0, 0, 0, 0, 0, 0, 1, true},
		{1, 0, 0, 0, 0, 0, 0, 1, true},
		{2, 0, 0, 0, 1, 0, 0, 1, true},
		{3, 3, 3, 0, 1, 1, 1, 1, true},
		{0, 0, 0, 1, 0, 0, 0, 2, true},
		{1, 0, 0, 1, 0, 0, 0, 2, true},
		{1, 1, 1, 1, 0, 0, 0, 2, true},
		{0, 0, 0, 2, 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := Shape4.LayerPosition(tt.x, tt.y, tt.z, tt.depth).Parent()
		if ok != tt.ok {
			t.Fatalf("Parent(%d, %d, %d, %d) ok = %v, want %v", tt.x, tt.y, tt.z, tt.depth, ok, tt.ok)
		}
		if ok && got != Shape4.LayerPosition(tt.wantX, tt.wantY, tt.wantZ, tt.depth2) {
			t.Errorf("Parent(%d, %d, %d, %d) = %v", tt.x, tt.y, tt.z, tt.depth, got)
		}
	}
}

// The deeper shapes exercise the general halving path, not just the
// single-cell special case.
func TestLayerPositionParentDeep(t *testing.T) {
	got, ok := Shape8.LayerPosition(7, 7, 7, 0).Parent()
	require.True(t, ok)
	require.Equal(t, Shape8.LayerPosition(3, 3, 3, 1), got)

	got, ok = Shape8.LayerPosition(5, 2, 6, 0).Parent()
	require.True(t, ok)
	require.Equal(t, Shape8.LayerPosition(2, 1, 3, 1), got)

	got, ok = Shape8.LayerPosition(3, 3, 3, 1).Parent()
	require.True(t, ok)
	require.Equal(t, Shape8.LayerPosition(1, 1, 1, 2), got)

	got, ok = Shape8.LayerPosition(1, 1, 1, 2).Parent()
	require.True(t, ok)
	require.Equal(t, Shape8.LayerPosition(0, 0, 0, 3), got)
}

func TestLayerPositionFromNodeIndex(t *testing.T) {
	tests := []struct {
		abs            int
		x, y, z, depth int
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0},
		{63, 3, 3, 3, 0},
		{64, 0, 0, 0, 1},
		{65, 1, 0, 0, 1},
		{71, 1, 1, 1, 1},
		{72, 0, 0, 0, 2},
	}
	for _, tt := range tests {
		got := Shape4.NodeIndex(tt.abs).LayerPosition()
		if got != Shape4.LayerPosition(tt.x, tt.y, tt.z, tt.depth) {
			t.Errorf("NodeIndex(%d).LayerPosition() = %v, want (%d, %d, %d, %d)",
				tt.abs, got, tt.x, tt.y, tt.z, tt.depth)
		}
	}
}

func TestLayerPositionFromNodePosition(t *testing.T) {
	tests := []struct {
		x, y, z, depth int
		lx, ly, lz     int
	}{
		{0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 1, 0, 0},
		{3, 3, 3, 0, 3, 3, 3},
		{0, 0, 0, 1, 0, 0, 0},
		{2, 0, 0, 1, 1, 0, 0},
		{2, 2, 2, 1, 1, 1, 1},
		{0, 0, 0, 2, 0, 0, 0},
	}
	for _, tt := range tests {
		got := Shape4.NodePosition(tt.x, tt.y, tt.z, tt.depth).LayerPosition()
		if got != Shape4.LayerPosition(tt.lx, tt.ly, tt.lz, tt.depth) {
			t.Errorf("NodePosition(%d, %d, %d, %d).LayerPosition() = %v",
				tt.x, tt.y, tt.z, tt.depth, got)
		}
	}
}
