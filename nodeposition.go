package packedtree

import "fmt"

// NodePosition addresses a cell by its 3D position measured in finest-grid
// units from the bottom front left corner of the volume, plus the layer it
// belongs to. A cell at depth d covers a cube of side 2^d finest-grid cells,
// so each coordinate must be a multiple of 2^d and below the biggest row
// size regardless of depth.
type NodePosition struct {
	shape   *Shape
	x, y, z int
	depth   int
}

// NodePosition returns the absolute position under this shape.
// Panics if any coordinate is out of range or not aligned to the layer grid;
// use NodePositionChecked for untrusted input.
func (s *Shape) NodePosition(x, y, z, depth int) NodePosition {
	if !s.IsValidPosition(x, y, z, depth) {
		panic(fmt.Sprintf("packedtree: position (%d, %d, %d, depth %d) out of range for %v", x, y, z, depth, s))
	}
	return NodePosition{shape: s, x: x, y: y, z: z, depth: depth}
}

// NodePositionChecked returns the absolute position under this shape, or
// ErrDepthOutOfRange / ErrPositionOutOfRange / ErrPositionMisaligned.
func (s *Shape) NodePositionChecked(x, y, z, depth int) (NodePosition, error) {
	if !s.IsValidDepth(depth) {
		return NodePosition{}, fmt.Errorf("%w: %d not in [0, %d)", ErrDepthOutOfRange, depth, s.depth)
	}
	if x < 0 || x >= s.biggestRowSize ||
		y < 0 || y >= s.biggestRowSize ||
		z < 0 || z >= s.biggestRowSize {
		return NodePosition{}, fmt.Errorf("%w: (%d, %d, %d) exceeds row size %d",
			ErrPositionOutOfRange, x, y, z, s.biggestRowSize)
	}
	divisor := 1 << depth
	if x%divisor != 0 || y%divisor != 0 || z%divisor != 0 {
		return NodePosition{}, fmt.Errorf("%w: (%d, %d, %d) not a multiple of %d at depth %d",
			ErrPositionMisaligned, x, y, z, divisor, depth)
	}
	return NodePosition{shape: s, x: x, y: y, z: z, depth: depth}, nil
}

// IsValidPosition reports whether (x, y, z, depth) addresses a cell of this
// shape: each coordinate below the biggest row size and a multiple of
// 2^depth.
func (s *Shape) IsValidPosition(x, y, z, depth int) bool {
	if !s.IsValidDepth(depth) {
		return false
	}
	divisor := 1 << depth
	return x >= 0 && x < s.biggestRowSize && x%divisor == 0 &&
		y >= 0 && y < s.biggestRowSize && y%divisor == 0 &&
		z >= 0 && z < s.biggestRowSize && z%divisor == 0
}

// X returns the x coordinate in finest-grid units.
func (p NodePosition) X() int { return p.x }

// Y returns the y coordinate in finest-grid units.
func (p NodePosition) Y() int { return p.y }

// Z returns the z coordinate in finest-grid units.
func (p NodePosition) Z() int { return p.z }

// Depth returns the layer.
func (p NodePosition) Depth() int { return p.depth }

// Shape returns the shape the position was minted for.
func (p NodePosition) Shape() *Shape { return p.shape }

// IsValid mirrors Shape.IsValidPosition for the held values.
func (p NodePosition) IsValid() bool {
	return p.shape != nil && p.shape.IsValidPosition(p.x, p.y, p.z, p.depth)
}

// LayerPosition converts to the in-layer position by scaling each coordinate
// down from finest-grid units to the layer's own row size.
func (p NodePosition) LayerPosition() LayerPosition {
	divisor := p.shape.biggestRowSize / p.shape.rowSizes[p.depth]
	return LayerPosition{
		shape: p.shape,
		x:     p.x / divisor,
		y:     p.y / divisor,
		z:     p.z / divisor,
		depth: p.depth,
	}
}

// LayerIndex converts to the in-layer linear index.
func (p NodePosition) LayerIndex() LayerIndex {
	return p.LayerPosition().LayerIndex()
}

// AbsIndex converts to the absolute flat-array index.
func (p NodePosition) AbsIndex() NodeIndex {
	return p.LayerPosition().AbsIndex()
}

// ChildAnchor returns the position of the anchor (bottom front left) child:
// the same coordinates one layer finer. Returns false at depth 0, where no
// children exist.
func (p NodePosition) ChildAnchor() (NodePosition, bool) {
	if p.depth == 0 {
		return NodePosition{}, false
	}
	p.depth--
	return p, true
}

func (p NodePosition) String() string {
	return fmt.Sprintf("NodePosition<%d>(%d, %d, %d, depth %d)", p.shape.biggestRowSize, p.x, p.y, p.z, p.depth)
}
