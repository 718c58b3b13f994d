package uioverlay

// The overlay is drawn as a single full-screen quad whose four vertices
// are generated procedurally in the vertex stage: each vertex index in
// [0,4) maps through a constant table to one clip-space corner and one
// texture coordinate. No vertex or index buffer is ever bound; the draw
// call is always 4 vertices, 1 instance, as a triangle strip.
//
// The Go table below is the host-side mirror of the lookup table in
// gpu/shaders/overlay.wgsl. The software compositor interpolates from it
// directly, and the tests assert both stay in lockstep.

// QuadVertexCount is the number of vertices in the full-screen quad.
// Every compositing draw call is issued with exactly this vertex count.
const QuadVertexCount = 4

// Vertex is one corner of the full-screen quad: a clip-space position
// and the texture coordinate interpolated across the quad from it.
type Vertex struct {
	// X, Y are the clip-space position, each in [-1, 1]. Depth is
	// implicitly 0 and w is 1: the overlay is a flat 2D layer.
	X, Y float32

	// U, V are the texture coordinate in [0, 1], top-left origin.
	U, V float32
}

// quadVertices maps vertex index to output. The v coordinate is flipped
// against clip y (clip y=-1 carries v=1, clip y=+1 carries v=0): raster
// image sources store row 0 at the top while clip space grows upward.
// Without the flip the composited UI renders upside down.
var quadVertices = [QuadVertexCount]Vertex{
	{X: -1, Y: -1, U: 0, V: 1},
	{X: -1, Y: 1, U: 0, V: 0},
	{X: 1, Y: -1, U: 1, V: 1},
	{X: 1, Y: 1, U: 1, V: 0},
}

// QuadVertex returns the vertex for the given index.
//
// QuadVertex is a pure function of the index: no state, no side effects.
// The index must be in [0, QuadVertexCount); anything else is a caller
// contract violation and panics, matching the undefined-behavior contract
// of an out-of-range vertex index on the GPU path. The draw path never
// produces one because the vertex count is fixed.
func QuadVertex(i int) Vertex {
	return quadVertices[i]
}

// QuadVertices returns a copy of the full lookup table in index order.
func QuadVertices() [QuadVertexCount]Vertex {
	return quadVertices
}
