package software

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/uioverlay"
)

func TestCompositorRegistered(t *testing.T) {
	if !uioverlay.IsRegistered(uioverlay.CompositorSoftware) {
		t.Fatal("software compositor not registered")
	}
	c := uioverlay.Get(uioverlay.CompositorSoftware)
	if c == nil {
		t.Fatal("Get(software) returned nil")
	}
	if c.Name() != uioverlay.CompositorSoftware {
		t.Errorf("Name() = %q, want software", c.Name())
	}
	if err := c.Init(); err != nil {
		t.Errorf("Init() = %v, want nil", err)
	}
	c.Close()
}

// quadrantColors checks that a 4x4 destination upscaled from the 2x2
// checkerboard shows each source texel as an upright 2x2 quadrant.
func quadrantColors(t *testing.T, dst *Texture) {
	t.Helper()

	wantQuadrant := func(x0, y0 int, r, g, b uint8, name string) {
		for y := y0; y < y0+2; y++ {
			for x := x0; x < x0+2; x++ {
				gr, gg, gb, ga := dst.PixelAt(x, y)
				if gr != r || gg != g || gb != b || ga != 255 {
					t.Errorf("%s quadrant pixel (%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,255)",
						name, x, y, gr, gg, gb, ga, r, g, b)
				}
			}
		}
	}

	wantQuadrant(0, 0, 255, 0, 0, "top-left")
	wantQuadrant(2, 0, 0, 255, 0, "top-right")
	wantQuadrant(0, 2, 0, 0, 255, "bottom-left")
	wantQuadrant(2, 2, 255, 255, 255, "bottom-right")
}

func TestCompositeNearestUpscale(t *testing.T) {
	src := checkerboard()
	dst := NewTexture(4, 4)

	c := NewCompositor()
	if err := c.Composite(dst, src, uioverlay.WithFilter(uioverlay.FilterNearest)); err != nil {
		t.Fatalf("Composite: %v", err)
	}

	quadrantColors(t, dst)
}

func TestCompositeNearestUpscaleGenericPath(t *testing.T) {
	// Repeat addressing forces the per-pixel quad rasterization path.
	// All sample coordinates stay inside [0,1], so the result matches
	// the clamp fast path exactly.
	src := checkerboard()
	dst := NewTexture(4, 4)

	c := NewCompositor()
	err := c.Composite(dst, src,
		uioverlay.WithFilter(uioverlay.FilterNearest),
		uioverlay.WithAddressMode(uioverlay.AddressRepeat, uioverlay.AddressRepeat),
	)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}

	quadrantColors(t, dst)
}

func TestCompositeTransparentPassthrough(t *testing.T) {
	src := NewTexture(4, 4) // fully transparent
	dst := NewTexture(4, 4)
	dst.Clear(40, 80, 120, 255)

	before := make([]uint8, len(dst.Data()))
	copy(before, dst.Data())

	c := NewCompositor()
	if err := c.Composite(dst, src); err != nil {
		t.Fatalf("Composite: %v", err)
	}

	if !bytes.Equal(dst.Data(), before) {
		t.Error("transparent source changed the destination under Over blending")
	}
}

func TestCompositeBlendSrcOverwrites(t *testing.T) {
	src := NewTexture(2, 2) // fully transparent
	dst := NewTexture(2, 2)
	dst.Clear(40, 80, 120, 255)

	c := NewCompositor()
	if err := c.Composite(dst, src, uioverlay.WithBlend(uioverlay.BlendSrc)); err != nil {
		t.Fatalf("Composite: %v", err)
	}

	for _, b := range dst.Data() {
		if b != 0 {
			t.Fatal("BlendSrc did not overwrite the destination with the transparent source")
		}
	}
}

func TestCompositeIdempotent(t *testing.T) {
	src := checkerboard()

	run := func() []uint8 {
		dst := NewTexture(5, 3)
		dst.Clear(10, 20, 30, 255)
		c := NewCompositor()
		if err := c.Composite(dst, src); err != nil {
			t.Fatalf("Composite: %v", err)
		}
		out := make([]uint8, len(dst.Data()))
		copy(out, dst.Data())
		return out
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Error("same inputs produced different output bytes")
	}
}

func TestCompositeSameSizeCopy(t *testing.T) {
	src := checkerboard()
	dst := NewTexture(2, 2)

	c := NewCompositor()
	err := c.Composite(dst, src,
		uioverlay.WithFilter(uioverlay.FilterNearest),
		uioverlay.WithBlend(uioverlay.BlendSrc),
	)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}

	if !bytes.Equal(dst.Data(), src.Data()) {
		t.Error("same-size nearest Src composite is not a pixel copy")
	}
}

func TestCompositeOverBlending(t *testing.T) {
	// Half-transparent gray (premultiplied) over opaque black.
	src := NewTexture(1, 1)
	src.SetPixel(0, 0, 64, 64, 64, 128)
	dst := NewTexture(1, 1)
	dst.SetPixel(0, 0, 0, 0, 0, 255)

	c := NewCompositor()
	if err := c.Composite(dst, src); err != nil {
		t.Fatalf("Composite: %v", err)
	}

	r, g, b, a := dst.PixelAt(0, 0)
	// out = src + dst*(1-srcA): color 64, alpha 128 + 255*127/255 = 255.
	if r != 64 || g != 64 || b != 64 {
		t.Errorf("blended color = (%d,%d,%d), want (64,64,64)", r, g, b)
	}
	if a != 255 {
		t.Errorf("blended alpha = %d, want 255", a)
	}
}

func TestCompositeValidation(t *testing.T) {
	c := NewCompositor()
	good := NewTexture(2, 2)

	if err := c.Composite(nil, good); !errors.Is(err, ErrNilTexture) {
		t.Errorf("nil dst = %v, want ErrNilTexture", err)
	}
	if err := c.Composite(good, nil); !errors.Is(err, ErrNilTexture) {
		t.Errorf("nil src = %v, want ErrNilTexture", err)
	}
	if err := c.Composite(NewTexture(0, 2), good); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("empty dst = %v, want ErrEmptyTexture", err)
	}
	if err := c.Composite(good, NewTexture(2, 0)); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("empty src = %v, want ErrEmptyTexture", err)
	}
}
