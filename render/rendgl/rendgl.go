package rendgl

import (
	"fmt"

	"github.com/bloeys/nvox/buffers"
	"github.com/bloeys/nvox/materials"
	"github.com/bloeys/nvox/render"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ render.Render = &RendGL{}

// RendGL draws baked section geometry with OpenGL. It caches the currently
// bound vao/material ids to skip redundant binds within a frame.
type RendGL struct {
	BoundVaoId uint32
	BoundMatId uint32

	sections map[render.SectionPos]map[render.Pass]buffers.VertexArray
}

func (r *RendGL) UploadSection(pos render.SectionPos, layers []render.BakedLayer) {

	secLayers, ok := r.sections[pos]
	if !ok {
		secLayers = make(map[render.Pass]buffers.VertexArray, len(layers))
		r.sections[pos] = secLayers
	}

	// @TODO: Delete the GL objects of replaced layers instead of leaving
	// them to live until the context dies.
	for i := 0; i < len(layers); i++ {

		l := &layers[i]

		vao := buffers.NewVertexArray()

		vbo := buffers.NewVertexBuffer(buffers.SinkLayout()...)
		vbo.SetData(l.Vertices, buffers.BufUsage_Static_Draw)

		ibo := buffers.NewIndexBuffer()
		ibo.SetData(l.Indices)

		vao.AddVertexBuffer(vbo)
		vao.SetIndexBuffer(ibo)

		// This is needed so the next upload doesn't attach its vbo/ibo to this vao
		vao.UnBind()
		r.BoundVaoId = 0

		secLayers[l.Pass] = vao
	}
}

func (r *RendGL) RemoveSection(pos render.SectionPos) {
	delete(r.sections, pos)
}

func (r *RendGL) DrawSection(pos render.SectionPos, pass render.Pass, mat materials.Material) {

	secLayers, ok := r.sections[pos]
	if !ok {
		return
	}

	vao, ok := secLayers[pass]
	if !ok {
		return
	}

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, vao.IndexBuffer.IndexBufCount, gl.UNSIGNED_INT, 0)
}

func (r *RendGL) DrawVertexArray(mat materials.Material, vao buffers.VertexArray, firstElement int32, elementCount int32) {

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}

	gl.DrawArrays(gl.TRIANGLES, firstElement, elementCount)
}

func (r *RendGL) FrameEnd() {
	r.BoundVaoId = 0
	r.BoundMatId = 0
}

// BackendDescription returns a human readable description of the GL device
// in use. Must be called after a context is current.
func BackendDescription() string {
	return fmt.Sprintf("OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
}

func NewRendGL() *RendGL {
	return &RendGL{
		sections: make(map[render.SectionPos]map[render.Pass]buffers.VertexArray),
	}
}
