package packedtree

import "fmt"

// Coordinate is any of the four coordinate systems addressing one tree cell.
// Tree accessors take a Coordinate and convert it to the absolute index
// before touching storage.
type Coordinate interface {
	// AbsIndex converts the coordinate to the absolute flat-array index.
	AbsIndex() NodeIndex
}

// NodeIndex is the absolute index of a cell in the flat array, in
// [0, TotalSize) of its shape. Layer 0, the finest layer, occupies the first
// LayerSize(0) indices, layer 1 follows immediately and the single root cell
// is the last index.
//
// The zero value is not usable; mint indices through Shape.NodeIndex or
// Shape.NodeIndexChecked.
type NodeIndex struct {
	shape *Shape
	index int
}

// NodeIndex returns the absolute index i under this shape.
// Panics if i is out of range; use NodeIndexChecked for untrusted input.
func (s *Shape) NodeIndex(i int) NodeIndex {
	if !s.IsValidIndex(i) {
		panic(fmt.Sprintf("packedtree: index %d out of range for %v", i, s))
	}
	return NodeIndex{shape: s, index: i}
}

// NodeIndexChecked returns the absolute index i under this shape, or
// ErrIndexOutOfRange.
func (s *Shape) NodeIndexChecked(i int) (NodeIndex, error) {
	if !s.IsValidIndex(i) {
		return NodeIndex{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, s.totalSize)
	}
	return NodeIndex{shape: s, index: i}, nil
}

// IsValidIndex reports whether i addresses a cell of this shape.
func (s *Shape) IsValidIndex(i int) bool {
	return i >= 0 && i < s.totalSize
}

// Raw returns the index as a plain int.
func (i NodeIndex) Raw() int { return i.index }

// Shape returns the shape the index was minted for.
func (i NodeIndex) Shape() *Shape { return i.shape }

// IsValid mirrors Shape.IsValidIndex for the held index.
func (i NodeIndex) IsValid() bool {
	return i.shape != nil && i.shape.IsValidIndex(i.index)
}

// AbsIndex returns the index itself, satisfying Coordinate.
func (i NodeIndex) AbsIndex() NodeIndex { return i }

// Depth returns the layer owning this index: the smallest depth whose
// cumulative layer size exceeds it. O(Depth) scan; every other coordinate
// function is closed form.
func (i NodeIndex) Depth() int {
	s := i.shape
	for d := 0; d < s.depth-1; d++ {
		if i.index < s.layerStarts[d]+s.layerSizes[d] {
			return d
		}
	}
	return s.depth - 1
}

// Add returns the index offset cells further into the array.
// Panics if the result leaves the valid index range.
func (i NodeIndex) Add(offset int) NodeIndex {
	return i.shape.NodeIndex(i.index + offset)
}

// Sub returns the index offset cells earlier in the array.
// Panics if the result leaves the valid index range.
func (i NodeIndex) Sub(offset int) NodeIndex {
	return i.shape.NodeIndex(i.index - offset)
}

// LayerIndex converts to the layer-relative index by subtracting the
// cumulative size of all shallower layers.
func (i NodeIndex) LayerIndex() LayerIndex {
	depth := i.Depth()
	return LayerIndex{
		shape: i.shape,
		index: i.index - i.shape.layerStarts[depth],
		depth: depth,
	}
}

// LayerPosition converts to the in-layer 3D position.
func (i NodeIndex) LayerPosition() LayerPosition {
	return i.LayerIndex().LayerPosition()
}

// Position converts to the absolute 3D position in finest-grid units.
func (i NodeIndex) Position() NodePosition {
	return i.LayerPosition().Position()
}

func (i NodeIndex) String() string {
	return fmt.Sprintf("NodeIndex<%d>(%d)", i.shape.biggestRowSize, i.index)
}
