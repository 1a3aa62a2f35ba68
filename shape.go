package packedtree

import (
	"fmt"
	"math/bits"
	"sync"
)

// Shape describes one tree size family: the per-layer row sizes, the
// per-layer cell counts and the total cell count, all derived from the
// biggest row size by repeated halving down to the single root cell.
//
// Canonical instances are interned per row size, so two Shapes describing the
// same family are always the same pointer. Coordinate values carry their
// Shape and tree accessors compare it by identity, which prevents mixing
// coordinates from two different tree shapes.
type Shape struct {
	biggestRowSize int
	depth          int
	rowSizes       []int
	layerSizes     []int
	// layerStarts[d] is the absolute index of the first cell of layer d.
	layerStarts []int
	totalSize   int
}

// Predefined shapes. The row and layer tables are spelled out by hand so the
// hot conversion paths never recompute them; TestPresetShapesMatchDerivation
// proves each table equal to the general derivation.
var (
	Shape1   = presetShape(1, []int{1}, []int{1})
	Shape2   = presetShape(2, []int{2, 1}, []int{8, 1})
	Shape4   = presetShape(4, []int{4, 2, 1}, []int{64, 8, 1})
	Shape8   = presetShape(8, []int{8, 4, 2, 1}, []int{512, 64, 8, 1})
	Shape16  = presetShape(16, []int{16, 8, 4, 2, 1}, []int{4096, 512, 64, 8, 1})
	Shape32  = presetShape(32, []int{32, 16, 8, 4, 2, 1}, []int{32768, 4096, 512, 64, 8, 1})
	Shape64  = presetShape(64, []int{64, 32, 16, 8, 4, 2, 1}, []int{262144, 32768, 4096, 512, 64, 8, 1})
	Shape128 = presetShape(128, []int{128, 64, 32, 16, 8, 4, 2, 1}, []int{2097152, 262144, 32768, 4096, 512, 64, 8, 1})
)

// PresetShapes lists the predefined shapes in ascending row size order.
func PresetShapes() []*Shape {
	return []*Shape{Shape1, Shape2, Shape4, Shape8, Shape16, Shape32, Shape64, Shape128}
}

var (
	shapesMu sync.Mutex
	shapes   = map[int]*Shape{}
)

func init() {
	for _, s := range PresetShapes() {
		shapes[s.biggestRowSize] = s
	}
}

func presetShape(biggestRowSize int, rowSizes, layerSizes []int) *Shape {
	s := &Shape{
		biggestRowSize: biggestRowSize,
		depth:          len(rowSizes),
		rowSizes:       rowSizes,
		layerSizes:     layerSizes,
		layerStarts:    make([]int, len(layerSizes)),
	}
	for d, size := range layerSizes {
		s.layerStarts[d] = s.totalSize
		s.totalSize += size
	}
	return s
}

// NewShape returns the canonical Shape for the given biggest row size.
// The row size must be a power of two; anything else is ErrRowSizeNotPow2.
func NewShape(biggestRowSize int) (*Shape, error) {
	if biggestRowSize < 1 || bits.OnesCount(uint(biggestRowSize)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrRowSizeNotPow2, biggestRowSize)
	}

	shapesMu.Lock()
	defer shapesMu.Unlock()
	if s, ok := shapes[biggestRowSize]; ok {
		return s, nil
	}
	s := deriveShape(biggestRowSize)
	shapes[biggestRowSize] = s
	return s, nil
}

// MustShape is NewShape for row sizes known valid at the call site.
func MustShape(biggestRowSize int) *Shape {
	s, err := NewShape(biggestRowSize)
	if err != nil {
		panic(err)
	}
	return s
}

// deriveShape builds the size tables by repeated halving. Halving stops once
// the row size would reach zero and the final entry is forced to 1, the
// single root cell.
func deriveShape(biggestRowSize int) *Shape {
	var rowSizes []int
	for rowSize := biggestRowSize; rowSize/2 != 0; rowSize /= 2 {
		rowSizes = append(rowSizes, rowSize)
	}
	rowSizes = append(rowSizes, 1)

	layerSizes := make([]int, len(rowSizes))
	for d, rowSize := range rowSizes {
		layerSizes[d] = rowSize * rowSize * rowSize
	}
	return presetShape(biggestRowSize, rowSizes, layerSizes)
}

// TotalSize returns the cell count across all layers.
func (s *Shape) TotalSize() int { return s.totalSize }

// BiggestRowSize returns the row size of layer 0, the finest layer.
func (s *Shape) BiggestRowSize() int { return s.biggestRowSize }

// Depth returns the number of layers.
func (s *Shape) Depth() int { return s.depth }

// MaxDepth returns the index of the deepest layer, the single root cell.
func (s *Shape) MaxDepth() int { return s.depth - 1 }

// RowSize returns the cells along one axis of layer depth.
func (s *Shape) RowSize(depth int) int {
	s.checkDepth(depth)
	return s.rowSizes[depth]
}

// LayerSize returns the cell count of layer depth.
func (s *Shape) LayerSize(depth int) int {
	s.checkDepth(depth)
	return s.layerSizes[depth]
}

// RowSizes returns a copy of the per-layer row sizes, finest first.
func (s *Shape) RowSizes() []int {
	return append([]int(nil), s.rowSizes...)
}

// LayerSizes returns a copy of the per-layer cell counts, finest first.
func (s *Shape) LayerSizes() []int {
	return append([]int(nil), s.layerSizes...)
}

// LayerStart returns the absolute index of the first cell of layer depth.
// Layers are contiguous, so the layer occupies
// [LayerStart(depth), LayerStart(depth)+LayerSize(depth)).
func (s *Shape) LayerStart(depth int) int {
	s.checkDepth(depth)
	return s.layerStarts[depth]
}

// LayerRange returns the first and last absolute index of layer depth,
// both inclusive.
func (s *Shape) LayerRange(depth int) (first, last NodeIndex) {
	start := s.LayerStart(depth)
	return s.NodeIndex(start), s.NodeIndex(start + s.layerSizes[depth] - 1)
}

// Half returns the shape with half the biggest row size, used by the shrink
// conversion. Returns false for the single cell shape, which has no half.
func (s *Shape) Half() (*Shape, bool) {
	if s.biggestRowSize == 1 {
		return nil, false
	}
	return MustShape(s.biggestRowSize / 2), true
}

// IsValidDepth reports whether depth addresses a layer of this shape.
func (s *Shape) IsValidDepth(depth int) bool {
	return depth >= 0 && depth < s.depth
}

func (s *Shape) checkDepth(depth int) {
	if !s.IsValidDepth(depth) {
		panic(fmt.Sprintf("packedtree: depth %d out of range for %v", depth, s))
	}
}

func (s *Shape) String() string {
	return fmt.Sprintf("Shape(%d)", s.biggestRowSize)
}
