package packedtree

import "errors"

var (
	ErrRowSizeNotPow2     = errors.New("packedtree: biggest row size must be a power of two")
	ErrIndexOutOfRange    = errors.New("packedtree: index out of range")
	ErrDepthOutOfRange    = errors.New("packedtree: depth out of range")
	ErrPositionOutOfRange = errors.New("packedtree: position out of range")
	ErrPositionMisaligned = errors.New("packedtree: position not aligned to layer grid")
	ErrStagingOverflow    = errors.New("packedtree: staging buffer exceeds tree size")
)
