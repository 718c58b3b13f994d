package uioverlay

// Filter selects how the source texture is sampled when its resolution
// differs from the target's.
type Filter uint8

const (
	// FilterLinear interpolates between neighboring texels. This is the
	// right choice when the UI texture resolution differs from the
	// viewport: it avoids blocky scaling artifacts.
	FilterLinear Filter = iota

	// FilterNearest selects the closest texel. Use for pixel-perfect
	// composition when source and target resolutions match.
	FilterNearest
)

// String returns a string representation of the filter mode.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// AddressMode selects how texture coordinates outside [0,1] resolve.
// The quad's own coordinates never leave [0,1]; the mode only matters
// for the half-texel fringe linear filtering reads at the edges.
type AddressMode uint8

const (
	// AddressClampToEdge repeats the edge texel. The recommended mode
	// for UI composition: no opposite-edge bleed at the borders.
	AddressClampToEdge AddressMode = iota

	// AddressRepeat wraps coordinates, tiling the source.
	AddressRepeat
)

// String returns a string representation of the address mode.
func (m AddressMode) String() string {
	switch m {
	case AddressClampToEdge:
		return "ClampToEdge"
	case AddressRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// Blend selects how the sampled UI color combines with the target.
// The fragment stage itself never modifies the sampled color; blending
// is fixed-function pipeline state.
type Blend uint8

const (
	// BlendOver composites the UI over existing target content using
	// premultiplied source-over. This is the default: the overlay draws
	// on top of the host's frame and transparent UI regions keep the
	// frame visible.
	BlendOver Blend = iota

	// BlendSrc overwrites the target with the sampled color, alpha
	// included. Use when the overlay owns the whole target.
	BlendSrc
)

// String returns a string representation of the blend mode.
func (b Blend) String() string {
	switch b {
	case BlendOver:
		return "Over"
	case BlendSrc:
		return "Src"
	default:
		return "Unknown"
	}
}

// Options holds shared compositor configuration.
type Options struct {
	// Filter is the sampling filter. Default FilterLinear.
	Filter Filter

	// AddressU, AddressV are the per-axis address modes.
	// Default AddressClampToEdge.
	AddressU AddressMode
	AddressV AddressMode

	// Blend is the target blend state. Default BlendOver.
	Blend Blend
}

// DefaultOptions returns the recommended configuration: linear filtering,
// clamp-to-edge addressing, source-over blending.
func DefaultOptions() Options {
	return Options{
		Filter:   FilterLinear,
		AddressU: AddressClampToEdge,
		AddressV: AddressClampToEdge,
		Blend:    BlendOver,
	}
}

// Option configures a single composite operation.
//
// Example:
//
//	err := c.Composite(dst, src,
//	    uioverlay.WithFilter(uioverlay.FilterNearest),
//	    uioverlay.WithBlend(uioverlay.BlendSrc),
//	)
type Option func(*Options)

// WithFilter sets the sampling filter.
func WithFilter(f Filter) Option {
	return func(o *Options) { o.Filter = f }
}

// WithAddressMode sets the per-axis address modes.
func WithAddressMode(u, v AddressMode) Option {
	return func(o *Options) {
		o.AddressU = u
		o.AddressV = v
	}
}

// WithBlend sets the target blend state.
func WithBlend(b Blend) Option {
	return func(o *Options) { o.Blend = b }
}

// Apply folds opts into o in order.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}
