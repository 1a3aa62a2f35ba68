package packedtree

import "fmt"

// LayerPosition addresses a cell by its 3D position measured in units of its
// own layer's row size, so each coordinate is < RowSize(depth).
type LayerPosition struct {
	shape   *Shape
	x, y, z int
	depth   int
}

// LayerPosition returns the in-layer position under this shape.
// Panics if any coordinate or the depth is out of range; use
// LayerPositionChecked for untrusted input.
func (s *Shape) LayerPosition(x, y, z, depth int) LayerPosition {
	if !s.IsValidLayerPosition(x, y, z, depth) {
		panic(fmt.Sprintf("packedtree: layer position (%d, %d, %d, depth %d) out of range for %v", x, y, z, depth, s))
	}
	return LayerPosition{shape: s, x: x, y: y, z: z, depth: depth}
}

// LayerPositionChecked returns the in-layer position under this shape, or
// ErrDepthOutOfRange / ErrPositionOutOfRange.
func (s *Shape) LayerPositionChecked(x, y, z, depth int) (LayerPosition, error) {
	if !s.IsValidDepth(depth) {
		return LayerPosition{}, fmt.Errorf("%w: %d not in [0, %d)", ErrDepthOutOfRange, depth, s.depth)
	}
	if !s.IsValidLayerPosition(x, y, z, depth) {
		return LayerPosition{}, fmt.Errorf("%w: (%d, %d, %d) exceeds row size %d at depth %d",
			ErrPositionOutOfRange, x, y, z, s.rowSizes[depth], depth)
	}
	return LayerPosition{shape: s, x: x, y: y, z: z, depth: depth}, nil
}

// IsValidLayerPosition reports whether (x, y, z, depth) addresses a cell of
// this shape: each coordinate must be within the row size of the layer.
func (s *Shape) IsValidLayerPosition(x, y, z, depth int) bool {
	if !s.IsValidDepth(depth) {
		return false
	}
	rowSize := s.rowSizes[depth]
	return x >= 0 && x < rowSize &&
		y >= 0 && y < rowSize &&
		z >= 0 && z < rowSize
}

// X returns the in-layer x coordinate.
func (p LayerPosition) X() int { return p.x }

// Y returns the in-layer y coordinate.
func (p LayerPosition) Y() int { return p.y }

// Z returns the in-layer z coordinate.
func (p LayerPosition) Z() int { return p.z }

// Depth returns the layer.
func (p LayerPosition) Depth() int { return p.depth }

// Shape returns the shape the position was minted for.
func (p LayerPosition) Shape() *Shape { return p.shape }

// IsValid mirrors Shape.IsValidLayerPosition for the held values.
func (p LayerPosition) IsValid() bool {
	return p.shape != nil && p.shape.IsValidLayerPosition(p.x, p.y, p.z, p.depth)
}

// LayerIndex converts to the in-layer linear index, x fastest row major.
func (p LayerPosition) LayerIndex() LayerIndex {
	rowSize := p.shape.rowSizes[p.depth]
	return LayerIndex{
		shape: p.shape,
		index: p.x + p.y*rowSize + p.z*rowSize*rowSize,
		depth: p.depth,
	}
}

// AbsIndex converts to the absolute flat-array index.
func (p LayerPosition) AbsIndex() NodeIndex {
	return p.LayerIndex().AbsIndex()
}

// Position converts to the absolute position by scaling each coordinate up
// to finest-grid units.
func (p LayerPosition) Position() NodePosition {
	multiplier := p.shape.biggestRowSize / p.shape.rowSizes[p.depth]
	return NodePosition{
		shape: p.shape,
		x:     p.x * multiplier,
		y:     p.y * multiplier,
		z:     p.z * multiplier,
		depth: p.depth,
	}
}

// Parent returns the position of the cell's parent, one layer deeper with
// each coordinate halved. Returns false at the deepest layer, which has no
// parent. The transition into the single cell root layer always yields
// (0, 0, 0).
func (p LayerPosition) Parent() (LayerPosition, bool) {
	maxDepth := p.shape.MaxDepth()
	if p.depth >= maxDepth {
		return LayerPosition{}, false
	}
	if p.depth+1 == maxDepth {
		return LayerPosition{shape: p.shape, depth: maxDepth}, true
	}
	return LayerPosition{
		shape: p.shape,
		x:     p.x / 2,
		y:     p.y / 2,
		z:     p.z / 2,
		depth: p.depth + 1,
	}, true
}

func (p LayerPosition) String() string {
	return fmt.Sprintf("LayerPosition<%d>(%d, %d, %d, depth %d)", p.shape.biggestRowSize, p.x, p.y, p.z, p.depth)
}
