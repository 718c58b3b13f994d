package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader source for the overlay blit pipeline.
//
//go:embed shaders/overlay.wgsl
var overlayShaderSource string

// Shader entry points. Must match the function names in overlay.wgsl.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// OverlayShaderSource returns the WGSL source for the overlay blit shader.
func OverlayShaderSource() string {
	return overlayShaderSource
}

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
// Backends that consume SPIR-V instead of WGSL use this path.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
