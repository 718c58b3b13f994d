package software

import (
	"math"

	"github.com/gogpu/uioverlay"
)

// Sampler samples a Texture at normalized coordinates the way a GPU
// sampler would: nearest or bilinear filtering, with clamp-to-edge or
// repeat addressing per axis.
type Sampler struct {
	Filter   uioverlay.Filter
	AddressU uioverlay.AddressMode
	AddressV uioverlay.AddressMode
}

// NewSampler returns a sampler for the given options.
func NewSampler(opts uioverlay.Options) Sampler {
	return Sampler{
		Filter:   opts.Filter,
		AddressU: opts.AddressU,
		AddressV: opts.AddressV,
	}
}

// Sample samples the texture at normalized coordinates (u, v), where
// (0,0) is the top-left corner and (1,1) the bottom-right.
func (s Sampler) Sample(tex *Texture, u, v float64) (r, g, b, a uint8) {
	if s.Filter == uioverlay.FilterNearest {
		return s.sampleNearest(tex, u, v)
	}
	return s.sampleBilinear(tex, u, v)
}

// sampleNearest selects the pixel containing the coordinate.
func (s Sampler) sampleNearest(tex *Texture, u, v float64) (r, g, b, a uint8) {
	w, h := tex.width, tex.height

	x := int(math.Floor(u * float64(w)))
	y := int(math.Floor(v * float64(h)))

	x = s.addressX(x, w)
	y = s.addressY(y, h)

	return tex.PixelAt(x, y)
}

// sampleBilinear interpolates between the 4 neighboring pixels using
// linear weights.
func (s Sampler) sampleBilinear(tex *Texture, u, v float64) (r, g, b, a uint8) {
	w, h := tex.width, tex.height

	// Continuous pixel coords with texel centers at half-integers.
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := x0 + 1
	y1 := y0 + 1

	x0 = s.addressX(x0, w)
	y0 = s.addressY(y0, h)
	x1 = s.addressX(x1, w)
	y1 = s.addressY(y1, h)

	r00, g00, b00, a00 := tex.PixelAt(x0, y0)
	r10, g10, b10, a10 := tex.PixelAt(x1, y0)
	r01, g01, b01, a01 := tex.PixelAt(x0, y1)
	r11, g11, b11, a11 := tex.PixelAt(x1, y1)

	r = uint8(lerp2D(float64(r00), float64(r10), float64(r01), float64(r11), tx, ty))
	g = uint8(lerp2D(float64(g00), float64(g10), float64(g01), float64(g11), tx, ty))
	b = uint8(lerp2D(float64(b00), float64(b10), float64(b01), float64(b11), tx, ty))
	a = uint8(lerp2D(float64(a00), float64(a10), float64(a01), float64(a11), tx, ty))

	return r, g, b, a
}

func (s Sampler) addressX(x, w int) int {
	return address(x, w, s.AddressU)
}

func (s Sampler) addressY(y, h int) int {
	return address(y, h, s.AddressV)
}

// address maps a pixel coordinate into [0, n) per the addressing mode.
func address(i, n int, mode uioverlay.AddressMode) int {
	if mode == uioverlay.AddressRepeat {
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
	return clamp(i, 0, n-1)
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
