package packedtree

// WalkLayer visits every cell of one layer exactly once, grouped along the
// given axis: cells sharing a row along that axis are visited consecutively,
// with the axis coordinate varying fastest. For AxisX this is the layer's
// storage order; for AxisY and AxisZ the walk strides across the layer so
// that columns along the chosen axis come out contiguous.
//
// fn receives the cell's in-layer position and a copy of its node; returning
// false stops the walk. The tree is only read, so walks may run concurrently
// with other reads but not with mutation.
func (t *Tree[T]) WalkLayer(depth int, axis Axis, fn func(LayerPosition, Node[T]) bool) {
	rowSize := t.shape.RowSize(depth)
	layer := t.Layer(depth)

	at := func(x, y, z int) (LayerPosition, Node[T]) {
		pos := LayerPosition{shape: t.shape, x: x, y: y, z: z, depth: depth}
		return pos, layer[x+y*rowSize+z*rowSize*rowSize]
	}

	for outer := 0; outer < rowSize; outer++ {
		for inner := 0; inner < rowSize; inner++ {
			for i := 0; i < rowSize; i++ {
				var pos LayerPosition
				var node Node[T]
				switch axis {
				case AxisX:
					pos, node = at(i, inner, outer)
				case AxisY:
					pos, node = at(inner, i, outer)
				default:
					pos, node = at(inner, outer, i)
				}
				if !fn(pos, node) {
					return
				}
			}
		}
	}
}
