package glyph

import "errors"

// Errors returned by the dispatcher and the wire layout decoders.
// The vertex stage itself never fails.
var (
	// ErrOutputTooSmall is returned when the output slice is shorter than the input.
	ErrOutputTooSmall = errors.New("glyph: output slice too small")

	// ErrDispatcherClosed is returned by Run after Close.
	ErrDispatcherClosed = errors.New("glyph: dispatcher is closed")

	// ErrUniformSize is returned when uniform data is not UniformSize bytes.
	ErrUniformSize = errors.New("glyph: invalid uniform data size")

	// ErrVertexDataSize is returned when vertex data is not a multiple of VertexStride.
	ErrVertexDataSize = errors.New("glyph: invalid vertex data size")
)
