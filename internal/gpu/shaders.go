//go:build !nogpu

package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// Embedded glyph shader source (vertex + fragment).
//
//go:embed shaders/glyph.wgsl
var glyphShaderSource string

// Entry points of the glyph shader.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// Shader compilation errors.
var (
	// ErrEmptyShader is returned when the embedded shader source is missing.
	ErrEmptyShader = errors.New("gpu: glyph shader source is empty")

	// ErrBadSPIRV is returned when the compiler output is not a SPIR-V module.
	ErrBadSPIRV = errors.New("gpu: invalid SPIR-V module")
)

// GlyphShaderSource returns the WGSL source of the glyph shader.
func GlyphShaderSource() string {
	return glyphShaderSource
}

// CompileSPIRV compiles the glyph shader to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	if glyphShaderSource == "" {
		return nil, ErrEmptyShader
	}

	spirvBytes, err := naga.Compile(glyphShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile glyph shader: %w", err)
	}
	return spirvWords(spirvBytes)
}

// spirvWords converts SPIR-V bytes (little-endian 32-bit words) to words
// and checks the magic number.
func spirvWords(spirvBytes []byte) ([]uint32, error) {
	if len(spirvBytes) == 0 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not word aligned", ErrBadSPIRV, len(spirvBytes))
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("%w: magic %#x, want %#x", ErrBadSPIRV, words[0], spirvMagic)
	}
	return words, nil
}
