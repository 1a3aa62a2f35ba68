package packedtree

// CombineFunc reduces the 8 children of a cell, in ChildIndices order, into
// the parent's node value. It must be pure: the build pass gives no ordering
// guarantee beyond shallow-to-deep between layers.
type CombineFunc[T any] func(children [8]*Node[T]) Node[T]

// Build recomputes every non-finest cell from its children, bottom up. The
// finest layer is the input and is never recomputed. Layers are visited in
// increasing depth order, so by the time a cell is combined its children are
// already final; within a layer every cell is visited exactly once.
//
// Typical combine rules collapse all-Empty children to Empty, a mix to
// Reduced, and uniform filled children to Filled, but Build imposes no
// policy beyond the traversal.
func (t *Tree[T]) Build(combine CombineFunc[T]) {
	for depth := 1; depth < t.shape.depth; depth++ {
		rowSize := t.shape.rowSizes[depth]
		for z := 0; z < rowSize; z++ {
			for y := 0; y < rowSize; y++ {
				for x := 0; x < rowSize; x++ {
					pos := LayerPosition{shape: t.shape, x: x, y: y, z: z, depth: depth}
					children, _ := t.Children(pos)
					t.Set(pos, combine(children))
				}
			}
		}
	}
}
