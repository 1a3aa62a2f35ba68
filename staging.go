package packedtree

import "fmt"

// Staging is a growable buffer of nodes bounded at the shape's total size,
// used to assemble a tree's initial contents before converting into a Tree
// with From.
type Staging[T any] struct {
	shape *Shape
	nodes []Node[T]
}

// NewStaging returns an empty staging buffer for the given shape.
func NewStaging[T any](shape *Shape) *Staging[T] {
	return &Staging[T]{shape: shape}
}

// StagingFrom wraps an existing node slice. If the slice is longer than the
// shape's total size the excess is silently truncated; this is a documented
// construction-time policy, not an error. Use StagingFromChecked when the
// overflow should be reported instead.
func StagingFrom[T any](shape *Shape, nodes []Node[T]) *Staging[T] {
	if len(nodes) > shape.totalSize {
		nodes = nodes[:shape.totalSize]
	}
	return &Staging[T]{shape: shape, nodes: nodes}
}

// StagingFromChecked wraps an existing node slice, returning
// ErrStagingOverflow if it is longer than the shape's total size.
func StagingFromChecked[T any](shape *Shape, nodes []Node[T]) (*Staging[T], error) {
	if len(nodes) > shape.totalSize {
		return nil, fmt.Errorf("%w: %d nodes for %v (%d cells)",
			ErrStagingOverflow, len(nodes), shape, shape.totalSize)
	}
	return &Staging[T]{shape: shape, nodes: nodes}, nil
}

// Shape returns the shape the buffer stages for.
func (b *Staging[T]) Shape() *Shape { return b.shape }

// Push appends a node. Panics if the buffer already holds a full tree.
func (b *Staging[T]) Push(n Node[T]) {
	if len(b.nodes) >= b.shape.totalSize {
		panic(fmt.Sprintf("packedtree: staging buffer already holds %d nodes for %v", len(b.nodes), b.shape))
	}
	b.nodes = append(b.nodes, n)
}

// Len returns the number of staged nodes.
func (b *Staging[T]) Len() int { return len(b.nodes) }

// IsEmpty reports whether no nodes are staged.
func (b *Staging[T]) IsEmpty() bool { return len(b.nodes) == 0 }

// IsFilled reports whether the buffer holds exactly one node per tree cell.
func (b *Staging[T]) IsFilled() bool { return len(b.nodes) == b.shape.totalSize }

// Set replaces the staged node addressed by c and returns the node
// previously stored there. Panics if the coordinate resolves beyond the
// staged length or was minted for another shape.
func (b *Staging[T]) Set(c Coordinate, n Node[T]) Node[T] {
	idx := c.AbsIndex()
	if idx.shape != b.shape {
		panic(fmt.Sprintf("packedtree: coordinate for %v used with staging for %v", idx.shape, b.shape))
	}
	if idx.index >= len(b.nodes) {
		panic(fmt.Sprintf("packedtree: index %d beyond staged length %d", idx.index, len(b.nodes)))
	}
	prev := b.nodes[idx.index]
	b.nodes[idx.index] = n
	return prev
}

// Nodes returns the staged nodes. The slice is the buffer's own storage;
// the caller must not grow it.
func (b *Staging[T]) Nodes() []Node[T] { return b.nodes }
