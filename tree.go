package packedtree

import "fmt"

// Tree owns one flat, fixed-length slice of nodes of length TotalSize,
// packed finest layer first. All access goes through the tree's own
// accessors, which convert any Coordinate to the absolute index before
// touching storage. The backing slice is allocated once at construction and
// never resized.
type Tree[T any] struct {
	shape *Shape
	nodes []Node[T]
}

// New returns a tree with every cell Empty.
func New[T any](shape *Shape) *Tree[T] {
	return &Tree[T]{shape: shape, nodes: make([]Node[T], shape.totalSize)}
}

// FromRaw wraps an already correctly sized node slice directly, with no
// validation beyond the length. The tree takes ownership of the slice.
func FromRaw[T any](shape *Shape, nodes []Node[T]) *Tree[T] {
	if len(nodes) != shape.totalSize {
		panic(fmt.Sprintf("packedtree: %d nodes for %v (%d cells)", len(nodes), shape, shape.totalSize))
	}
	return &Tree[T]{shape: shape, nodes: nodes}
}

// From is the preferred construction path: it takes the staged nodes, pads
// any shortfall with Empty, and wraps them. The staging buffer guarantees the
// node count does not exceed the tree size. The tree takes ownership of the
// staged slice; the buffer must not be reused afterwards.
func From[T any](staging *Staging[T]) *Tree[T] {
	shape := staging.shape
	nodes := staging.nodes
	for len(nodes) < shape.totalSize {
		nodes = append(nodes, Node[T]{})
	}
	return &Tree[T]{shape: shape, nodes: nodes}
}

// Shape returns the tree's shape.
func (t *Tree[T]) Shape() *Shape { return t.shape }

// index resolves a coordinate to the backing slice offset, rejecting
// coordinates minted for a different shape.
func (t *Tree[T]) index(c Coordinate) int {
	idx := c.AbsIndex()
	if idx.shape != t.shape {
		panic(fmt.Sprintf("packedtree: coordinate for %v used with tree of %v", idx.shape, t.shape))
	}
	return idx.index
}

// Get returns a copy of the cell addressed by c.
func (t *Tree[T]) Get(c Coordinate) Node[T] {
	return t.nodes[t.index(c)]
}

// GetMut returns a pointer into the tree's storage for the cell addressed by
// c. The pointer must not be retained across mutating calls on the tree.
func (t *Tree[T]) GetMut(c Coordinate) *Node[T] {
	return &t.nodes[t.index(c)]
}

// Set replaces the cell addressed by c and returns the node previously
// stored there.
func (t *Tree[T]) Set(c Coordinate, n Node[T]) Node[T] {
	i := t.index(c)
	prev := t.nodes[i]
	t.nodes[i] = n
	return prev
}

// ParentIndex returns the absolute index of the parent of the cell addressed
// by c. Returns false for the deepest layer, which has no parent.
func (t *Tree[T]) ParentIndex(c Coordinate) (NodeIndex, bool) {
	idx := t.shape.NodeIndex(t.index(c))
	parent, ok := idx.LayerPosition().Parent()
	if !ok {
		return NodeIndex{}, false
	}
	return parent.AbsIndex(), true
}

// Parent returns a copy of the parent cell of the cell addressed by c.
// Returns false for the deepest layer.
func (t *Tree[T]) Parent(c Coordinate) (Node[T], bool) {
	idx, ok := t.ParentIndex(c)
	if !ok {
		return Node[T]{}, false
	}
	return t.nodes[idx.index], true
}

// ParentMut returns a pointer to the parent cell of the cell addressed by c.
// Returns false for the deepest layer.
func (t *Tree[T]) ParentMut(c Coordinate) (*Node[T], bool) {
	idx, ok := t.ParentIndex(c)
	if !ok {
		return nil, false
	}
	return &t.nodes[idx.index], true
}

// ChildIndices returns the absolute indices of the 8 children of the cell
// addressed by c, or false at depth 0 where no children exist.
//
// The indices are ordered z outer, then y, then x fastest relative to the
// anchor child, so for the 73 cell tree the root cell 72 yields
// {64, 65, 66, 67, 68, 69, 70, 71} and cell 71 yields
// {42, 43, 46, 47, 58, 59, 62, 63}. Both the build pass and the recorded
// fixtures depend on this exact order.
func (t *Tree[T]) ChildIndices(c Coordinate) ([8]NodeIndex, bool) {
	idx := t.shape.NodeIndex(t.index(c))
	anchorPos, ok := idx.Position().ChildAnchor()
	if !ok {
		return [8]NodeIndex{}, false
	}
	anchor := anchorPos.AbsIndex()
	rowSize := t.shape.rowSizes[anchorPos.depth]

	var children [8]NodeIndex
	k := 0
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				children[k] = anchor.Add(x + y*rowSize + z*rowSize*rowSize)
				k++
			}
		}
	}
	return children, true
}

// Children returns pointers to the 8 child cells of the cell addressed by c,
// in ChildIndices order, or false at depth 0. The pointers alias the tree's
// storage and must not be retained across mutating calls.
func (t *Tree[T]) Children(c Coordinate) ([8]*Node[T], bool) {
	indices, ok := t.ChildIndices(c)
	if !ok {
		return [8]*Node[T]{}, false
	}
	var children [8]*Node[T]
	for k, idx := range indices {
		children[k] = &t.nodes[idx.index]
	}
	return children, true
}

// Layer returns the contiguous sub-slice of cells belonging to one layer.
// The slice aliases the tree's storage.
func (t *Tree[T]) Layer(depth int) []Node[T] {
	start := t.shape.LayerStart(depth)
	return t.nodes[start : start+t.shape.layerSizes[depth]]
}

// Slice returns the cells in the absolute index range [from, to], both bounds
// inclusive. Inclusive bounds compose directly with Shape.LayerRange and let a
// span end at the root cell, which an exclusive end could never address. The
// slice aliases the tree's storage.
func (t *Tree[T]) Slice(from, to NodeIndex) []Node[T] {
	if from.shape != t.shape || to.shape != t.shape {
		panic(fmt.Sprintf("packedtree: slice bounds not minted for %v", t.shape))
	}
	return t.nodes[from.index : to.index+1]
}

// Nodes returns the whole backing slice, finest layer first. The slice
// aliases the tree's storage.
func (t *Tree[T]) Nodes() []Node[T] { return t.nodes }

// Shrink converts the tree to the shape with half the biggest row size by
// dropping the finest layer entirely: the remaining tail is copied
// cell-for-cell into the smaller tree. This is the mechanism for discarding
// the finest level of detail. Returns false for the single cell tree.
func (t *Tree[T]) Shrink() (*Tree[T], bool) {
	half, ok := t.shape.Half()
	if !ok {
		return nil, false
	}
	nodes := make([]Node[T], half.totalSize)
	copy(nodes, t.nodes[t.shape.layerSizes[0]:])
	return &Tree[T]{shape: half, nodes: nodes}, true
}

// Equal reports whether two trees have the same shape and cell-for-cell
// identical contents.
func Equal[T comparable](a, b *Tree[T]) bool {
	if a.shape != b.shape {
		return false
	}
	for i := range a.nodes {
		if a.nodes[i] != b.nodes[i] {
			return false
		}
	}
	return true
}
