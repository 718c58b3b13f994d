package gpu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gogpu/uioverlay"
)

func TestOverlayShaderSource(t *testing.T) {
	src := OverlayShaderSource()
	if src == "" {
		t.Fatal("overlay shader source is empty")
	}

	for _, want := range []string{
		"fn vs_main",
		"fn fs_main",
		"@builtin(vertex_index)",
		"@group(0) @binding(0)",
		"@group(0) @binding(1)",
		"textureSample",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}

	// The vertex stage is procedural: no vertex inputs beyond the index.
	if strings.Contains(src, "@location(0) position") {
		t.Error("shader declares a vertex input attribute")
	}
}

// The shader's constant arrays must mirror the host-side vertex table
// exactly, in index order.
func TestOverlayShaderQuadTable(t *testing.T) {
	src := OverlayShaderSource()

	posAt := -1
	uvAt := -1
	for _, v := range uioverlay.QuadVertices() {
		pos := fmt.Sprintf("vec2<f32>(%.1f, %.1f)", v.X, v.Y)
		uv := fmt.Sprintf("vec2<f32>(%.1f, %.1f)", v.U, v.V)

		i := strings.Index(src[posAt+1:], pos)
		if i < 0 {
			t.Fatalf("shader source missing position %s", pos)
		}
		posAt += 1 + i

		j := strings.Index(src[uvAt+1:], uv)
		if j < 0 {
			t.Fatalf("shader source missing uv %s", uv)
		}
		uvAt += 1 + j
	}
}

func TestOverlayShaderCompiles(t *testing.T) {
	spirv, err := CompileShaderToSPIRV(OverlayShaderSource())
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("failed to compile overlay shader: %v", err)
	}

	if len(spirv) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	// SPIR-V magic number.
	if spirv[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", spirv[0])
	}
}
