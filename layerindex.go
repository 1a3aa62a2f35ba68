package packedtree

import "fmt"

// LayerIndex addresses a cell by its linear index local to one layer:
// the layer-relative analogue of NodeIndex. The index is in
// [0, LayerSize(depth)).
type LayerIndex struct {
	shape *Shape
	index int
	depth int
}

// LayerIndex returns the in-layer index under this shape.
// Panics if index or depth is out of range; use LayerIndexChecked for
// untrusted input.
func (s *Shape) LayerIndex(index, depth int) LayerIndex {
	if !s.IsValidLayerIndex(index, depth) {
		panic(fmt.Sprintf("packedtree: layer index (%d, depth %d) out of range for %v", index, depth, s))
	}
	return LayerIndex{shape: s, index: index, depth: depth}
}

// LayerIndexChecked returns the in-layer index under this shape, or
// ErrDepthOutOfRange / ErrIndexOutOfRange.
func (s *Shape) LayerIndexChecked(index, depth int) (LayerIndex, error) {
	if !s.IsValidDepth(depth) {
		return LayerIndex{}, fmt.Errorf("%w: %d not in [0, %d)", ErrDepthOutOfRange, depth, s.depth)
	}
	if index < 0 || index >= s.layerSizes[depth] {
		return LayerIndex{}, fmt.Errorf("%w: %d not in [0, %d) at depth %d",
			ErrIndexOutOfRange, index, s.layerSizes[depth], depth)
	}
	return LayerIndex{shape: s, index: index, depth: depth}, nil
}

// IsValidLayerIndex reports whether (index, depth) addresses a cell of this
// shape.
func (s *Shape) IsValidLayerIndex(index, depth int) bool {
	return s.IsValidDepth(depth) && index >= 0 && index < s.layerSizes[depth]
}

// Raw returns the in-layer index as a plain int.
func (i LayerIndex) Raw() int { return i.index }

// Depth returns the layer.
func (i LayerIndex) Depth() int { return i.depth }

// Shape returns the shape the index was minted for.
func (i LayerIndex) Shape() *Shape { return i.shape }

// IsValid mirrors Shape.IsValidLayerIndex for the held values.
func (i LayerIndex) IsValid() bool {
	return i.shape != nil && i.shape.IsValidLayerIndex(i.index, i.depth)
}

// AbsIndex converts to the absolute index by adding the cumulative size of
// all shallower layers.
func (i LayerIndex) AbsIndex() NodeIndex {
	return NodeIndex{shape: i.shape, index: i.shape.layerStarts[i.depth] + i.index}
}

// LayerPosition converts to the in-layer 3D position. Rows are x fastest:
// index = x + y*rowSize + z*rowSize*rowSize.
func (i LayerIndex) LayerPosition() LayerPosition {
	rowSize := i.shape.rowSizes[i.depth]

	z := i.index / (rowSize * rowSize)
	rem := i.index - z*rowSize*rowSize
	return LayerPosition{
		shape: i.shape,
		x:     rem % rowSize,
		y:     rem / rowSize,
		z:     z,
		depth: i.depth,
	}
}

// Position converts to the absolute 3D position in finest-grid units.
func (i LayerIndex) Position() NodePosition {
	return i.LayerPosition().Position()
}

func (i LayerIndex) String() string {
	return fmt.Sprintf("LayerIndex<%d>(%d, depth %d)", i.shape.biggestRowSize, i.index, i.depth)
}
