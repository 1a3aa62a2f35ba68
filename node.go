package packedtree

// NodeKind tags the three states a cell can hold.
type NodeKind uint8

const (
	// KindEmpty marks a cell all of whose descendants are empty.
	KindEmpty NodeKind = iota
	// KindReduced marks a cell whose descendants are a mix, some non empty,
	// but which itself carries no payload.
	KindReduced
	// KindFilled marks a cell whose own payload is authoritative.
	KindFilled
)

func (k NodeKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindReduced:
		return "Reduced"
	case KindFilled:
		return "Filled"
	}
	return "Invalid"
}

// Node is the tagged value stored per cell: Filled(payload), Reduced or
// Empty. The zero value is Empty, which is what makes a freshly allocated
// backing slice a valid all-empty tree.
type Node[T any] struct {
	kind    NodeKind
	payload T
}

// Filled returns a node carrying payload v.
func Filled[T any](v T) Node[T] {
	return Node[T]{kind: KindFilled, payload: v}
}

// Reduced returns a payload-less node marking a non uniform interior cell.
func Reduced[T any]() Node[T] {
	return Node[T]{kind: KindReduced}
}

// Empty returns the empty node. Identical to the zero value.
func Empty[T any]() Node[T] {
	return Node[T]{}
}

// Kind returns the node's state tag.
func (n Node[T]) Kind() NodeKind { return n.kind }

// IsEmpty reports whether the node is Empty.
func (n Node[T]) IsEmpty() bool { return n.kind == KindEmpty }

// IsReduced reports whether the node is Reduced.
func (n Node[T]) IsReduced() bool { return n.kind == KindReduced }

// IsFilled reports whether the node carries a payload.
func (n Node[T]) IsFilled() bool { return n.kind == KindFilled }

// Value returns the payload and true for a Filled node, the zero payload and
// false otherwise.
func (n Node[T]) Value() (T, bool) {
	if n.kind != KindFilled {
		var zero T
		return zero, false
	}
	return n.payload, true
}
