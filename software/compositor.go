package software

import (
	"golang.org/x/image/draw"

	"github.com/gogpu/uioverlay"
)

// Compositor is the CPU compositor. It mirrors the GPU path exactly:
// the destination is covered by the full-screen quad, each destination
// pixel's uv is interpolated from the shared quad table, and the sampled
// source is blended over the existing destination content.
//
// Compositor holds no state; it exists to satisfy the backend registry
// and to carry the Composite entry point.
type Compositor struct{}

// NewCompositor creates a software compositor.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Name returns the compositor identifier.
func (c *Compositor) Name() string { return uioverlay.CompositorSoftware }

// Init is a no-op; the software compositor needs no resources.
func (c *Compositor) Init() error { return nil }

// Close is a no-op.
func (c *Compositor) Close() {}

// Composite draws the source texture over the destination as the GPU
// overlay pass would: full coverage, uv interpolated from the quad
// table, sampled with the configured filter and blended per the
// configured mode. The destination keeps its content outside the
// source's contribution (Over) or is overwritten (Src).
func (c *Compositor) Composite(dst, src *Texture, opts ...uioverlay.Option) error {
	if err := dst.validate(); err != nil {
		return err
	}
	if err := src.validate(); err != nil {
		return err
	}

	o := uioverlay.DefaultOptions()
	o.Apply(opts...)

	// Clamp addressing maps 1:1 onto the x/image scalers, which also
	// operate on premultiplied RGBA. Repeat addressing takes the
	// generic path.
	if o.AddressU == uioverlay.AddressClampToEdge && o.AddressV == uioverlay.AddressClampToEdge {
		compositeFast(dst, src, o)
		return nil
	}

	compositeGeneric(dst, src, o)
	return nil
}

// compositeFast uses the x/image/draw scalers for the common clamp case.
func compositeFast(dst, src *Texture, o uioverlay.Options) {
	var scaler draw.Scaler = draw.NearestNeighbor
	if o.Filter == uioverlay.FilterLinear {
		scaler = draw.BiLinear
	}

	op := draw.Over
	if o.Blend == uioverlay.BlendSrc {
		op = draw.Src
	}

	dstImg := dst.asImage()
	srcImg := src.asImage()
	scaler.Scale(dstImg, dstImg.Rect, srcImg, srcImg.Rect, op, nil)
}

// compositeGeneric rasterizes the quad per pixel. The uv for each
// destination pixel is interpolated from the quad table's corner uvs,
// so the vertical flip built into the table is honored: the table's
// clip top (y=1) is the destination's first row.
func compositeGeneric(dst, src *Texture, o uioverlay.Options) {
	sampler := NewSampler(o)

	tlU, tlV := cornerUV(-1, 1)
	trU, trV := cornerUV(1, 1)
	blU, blV := cornerUV(-1, -1)
	brU, brV := cornerUV(1, -1)

	w, h := dst.width, dst.height
	for y := 0; y < h; y++ {
		fy := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			fx := (float64(x) + 0.5) / float64(w)

			u := lerp2D(tlU, trU, blU, brU, fx, fy)
			v := lerp2D(tlV, trV, blV, brV, fx, fy)

			sr, sg, sb, sa := sampler.Sample(src, u, v)

			if o.Blend == uioverlay.BlendSrc {
				dst.SetPixel(x, y, sr, sg, sb, sa)
				continue
			}

			// Premultiplied source-over.
			dr, dg, db, da := dst.PixelAt(x, y)
			inv := uint32(255 - sa)
			dst.SetPixel(x, y,
				sr+uint8(uint32(dr)*inv/255),
				sg+uint8(uint32(dg)*inv/255),
				sb+uint8(uint32(db)*inv/255),
				sa+uint8(uint32(da)*inv/255),
			)
		}
	}
}

// cornerUV returns the quad table's uv at the given clip-space corner.
func cornerUV(clipX, clipY float32) (u, v float64) {
	for i := 0; i < uioverlay.QuadVertexCount; i++ {
		vert := uioverlay.QuadVertex(i)
		if vert.X == clipX && vert.Y == clipY {
			return float64(vert.U), float64(vert.V)
		}
	}
	// Unreachable: the table covers all four corners.
	return 0, 0
}

func init() {
	uioverlay.Register(uioverlay.CompositorSoftware, func() uioverlay.Compositor {
		return NewCompositor()
	})
}
