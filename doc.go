/*
Package packedtree stores a fixed-topology, non-sparse octree in one flat
array and addresses it with pure index arithmetic.

A cubic volume of side 2^d is recursively halved into nested sub cubes down to
single cell leaves. Every node at every level, not just the leaves, is stored
contiguously in one backing slice, ordered finest layer first. Layer 0 is the
finest (biggest row) layer and increasing depth halves the row size until the
single root cell at the deepest layer.

For the tree with biggest row size 4 the layout is 73 cells:

	depth 0: row 4, 64 cells, indices [0, 63]
	depth 1: row 2,  8 cells, indices [64, 71]
	depth 2: row 1,  1 cell,  index 72

Because layers are packed shallowest first, a layer is always one contiguous
slice of the array, random access is O(1), and parent/child relationships are
recovered from indices alone. No node pointers are ever materialized.

# Coordinate systems

Four coordinate systems address a cell, all mutually convertible:

  - NodeIndex: the absolute index into the flat array, in [0, TotalSize).
  - NodePosition: (x, y, z, depth) measured in finest-grid units from the
    bottom front left corner of the volume. A cell at depth d covers a cube of
    side 2^d finest-grid cells, so its coordinates are multiples of 2^d.
  - LayerIndex: (index, depth) with index local to the layer,
    in [0, LayerSize(depth)).
  - LayerPosition: (x, y, z, depth) in units of that layer's own row size,
    so each coordinate is < RowSize(depth).

Within a layer cells are row major with x varying fastest:

	index = x + y*rowSize + z*rowSize*rowSize

All conversions route through LayerIndex and LayerPosition as the common
intermediates so the scaling arithmetic exists in exactly one place.

The children of a cell are enumerated z outer, then y, then x fastest relative
to the anchor (bottom front left) child:

	(0,0,0) (1,0,0) (0,1,0) (1,1,0) (0,0,1) (1,0,1) (0,1,1) (1,1,1)

In the 73 cell tree above, the root cell 72 has children 64..71 and cell 71
has children {42, 43, 46, 47, 58, 59, 62, 63}.

# Shapes

A Shape describes one tree size family: the row size per layer, the cell count
per layer and the total cell count, all derived from the biggest row size by
repeated halving. Canonical Shape instances are interned per row size and every
coordinate value carries its Shape, so coordinates minted for one tree shape
cannot be silently applied to another.

# Validation policy

Constructors on Shape (NodeIndex, LayerPosition, ...) treat invalid input as a
programmer error and panic, in every build; there is no debug-only assertion
mode. Boundary-facing callers that must validate untrusted input use the
Checked constructor variants, which return errors instead, or the IsValid
predicates.
*/
package packedtree
