package sinks

import (
	"github.com/bloeys/gglm/gglm"
	"golang.org/x/exp/constraints"
)

var _ VertexSink = &Buffered{}

// FloatsPerVertex is the number of float32 values one vertex occupies in the
// interleaved output of a Buffered sink: position, color, uv, overlay,
// light, normal.
const FloatsPerVertex = 3 + 4 + 2 + 2 + 2 + 3

// Vertex is one fully assembled logical vertex.
type Vertex struct {
	Pos     gglm.Vec3
	Color   gglm.Vec4
	UV      gglm.Vec2
	Overlay [2]int32
	Light   [2]int32
	Normal  gglm.Vec3
}

// Buffered is the buffer-backed VertexSink variant. It assembles logical
// vertices CPU-side so the renderer can later upload them in one go.
//
// A Position call begins a new vertex; the other attribute calls write into
// the vertex currently being assembled, overwriting earlier values of the
// same kind. An attribute call with no vertex open opens one, so no call
// sequence can fail, matching the contract.
//
// The zero value is ready to use. Unlike Discard, a Buffered sink mutates
// itself and must not be shared between goroutines without synchronization.
type Buffered struct {
	verts []Vertex
}

func NewBuffered() *Buffered {
	return &Buffered{}
}

// defaultVertex is what attributes fall back to when a vertex is completed
// without them: white, unlit, no overlay, up-facing.
func defaultVertex() Vertex {
	return Vertex{
		Color:  gglm.Vec4{Data: [4]float32{255, 255, 255, 255}},
		Normal: gglm.Vec3{Data: [3]float32{0, 1, 0}},
	}
}

func (b *Buffered) curr() *Vertex {

	if len(b.verts) == 0 {
		b.verts = append(b.verts, defaultVertex())
	}

	return &b.verts[len(b.verts)-1]
}

func (b *Buffered) Position(x, y, z float32) VertexSink {

	b.verts = append(b.verts, defaultVertex())

	v := &b.verts[len(b.verts)-1]
	v.Pos = gglm.Vec3{Data: [3]float32{x, y, z}}
	return b
}

func (b *Buffered) Color(red, green, blue, alpha int32) VertexSink {

	v := b.curr()
	v.Color = gglm.Vec4{Data: [4]float32{float32(red), float32(green), float32(blue), float32(alpha)}}
	return b
}

func (b *Buffered) Texture(u, v float32) VertexSink {

	vert := b.curr()
	vert.UV = gglm.Vec2{Data: [2]float32{u, v}}
	return b
}

func (b *Buffered) Overlay(u, v int32) VertexSink {

	vert := b.curr()
	vert.Overlay = [2]int32{u, v}
	return b
}

func (b *Buffered) Light(u, v int32) VertexSink {

	vert := b.curr()
	vert.Light = [2]int32{u, v}
	return b
}

func (b *Buffered) Normal(x, y, z float32) VertexSink {

	v := b.curr()
	v.Normal = gglm.Vec3{Data: [3]float32{x, y, z}}
	return b
}

// VertexCount returns the number of vertices begun so far, including the one
// still being assembled.
func (b *Buffered) VertexCount() int {
	return len(b.verts)
}

// Vertices returns the assembled vertices. The returned slice is owned by
// the sink and is invalidated by further attribute calls or Reset.
func (b *Buffered) Vertices() []Vertex {
	return b.verts
}

// Reset drops all assembled vertices but keeps the backing storage, so a
// sink can be reused across draw calls without reallocating.
func (b *Buffered) Reset() {
	b.verts = b.verts[:0]
}

// Interleaved flattens the assembled vertices into the float32 layout the
// renderer uploads: position, color normalized to 0-1, uv, overlay, light,
// normal. Color channels outside 0-255 are clamped here; the attribute calls
// themselves accept anything, per the contract.
func (b *Buffered) Interleaved() []float32 {

	out := make([]float32, 0, len(b.verts)*FloatsPerVertex)
	for i := 0; i < len(b.verts); i++ {

		v := &b.verts[i]

		out = append(out, v.Pos.Data[:]...)
		out = append(out,
			clamp(v.Color.Data[0], 0, 255)/255,
			clamp(v.Color.Data[1], 0, 255)/255,
			clamp(v.Color.Data[2], 0, 255)/255,
			clamp(v.Color.Data[3], 0, 255)/255,
		)
		out = append(out, v.UV.Data[:]...)
		out = append(out, float32(v.Overlay[0]), float32(v.Overlay[1]))
		out = append(out, float32(v.Light[0]), float32(v.Light[1]))
		out = append(out, v.Normal.Data[:]...)
	}

	return out
}

func clamp[T constraints.Ordered](v, min, max T) T {

	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}
