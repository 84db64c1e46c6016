package meshes

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nvox/sinks"
)

func triMesh() Mesh {
	return Mesh{
		Name: "tri",
		Positions: []gglm.Vec3{
			{Data: [3]float32{0, 0, 0}},
			{Data: [3]float32{1, 0, 0}},
			{Data: [3]float32{0, 1, 0}},
		},
		Normals: []gglm.Vec3{
			{Data: [3]float32{0, 0, 1}},
			{Data: [3]float32{0, 0, 1}},
			{Data: [3]float32{0, 0, 1}},
		},
		UVs: []gglm.Vec2{
			{Data: [2]float32{0, 0}},
			{Data: [2]float32{1, 0}},
			{Data: [2]float32{0, 1}},
		},
		Indices:   []uint32{0, 1, 2},
		SubMeshes: []SubMesh{{BaseVertex: 0, BaseIndex: 0, IndexCount: 3}},
	}
}

func TestEmitToBuffered(t *testing.T) {

	m := triMesh()
	b := sinks.NewBuffered()

	m.EmitTo(b, EmitOptions{Light: [2]int32{15, 15}})

	if b.VertexCount() != 3 {
		t.Fatalf("emitted %d vertices, want 3", b.VertexCount())
	}

	verts := b.Vertices()

	if verts[1].Pos.Data != [3]float32{1, 0, 0} {
		t.Errorf("vertex 1 pos = %v, want [1 0 0]", verts[1].Pos.Data)
	}
	if verts[2].UV.Data != [2]float32{0, 1} {
		t.Errorf("vertex 2 uv = %v, want [0 1]", verts[2].UV.Data)
	}
	for i := range verts {
		if verts[i].Light != [2]int32{15, 15} {
			t.Errorf("vertex %d light = %v, want the emit option value [15 15]", i, verts[i].Light)
		}
		if verts[i].Normal.Data != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d normal = %v, want [0 0 1]", i, verts[i].Normal.Data)
		}
		// No color array on the mesh, so the sink default applies
		if verts[i].Color.Data != [4]float32{255, 255, 255, 255} {
			t.Errorf("vertex %d color = %v, want opaque white", i, verts[i].Color.Data)
		}
	}
}

func TestEmitToRespectsIndices(t *testing.T) {

	m := triMesh()
	m.Indices = []uint32{2, 1, 0}

	b := sinks.NewBuffered()
	m.EmitTo(b, EmitOptions{})

	if b.Vertices()[0].Pos.Data != [3]float32{0, 1, 0} {
		t.Errorf("first emitted pos = %v, want indexed vertex 2 [0 1 0]", b.Vertices()[0].Pos.Data)
	}
}

func TestEmitToDiscard(t *testing.T) {

	// The same emitter code path must run cleanly against the discard
	// variant, with nothing accumulated anywhere.
	m := triMesh()
	m.EmitTo(sinks.NewDiscard(), EmitOptions{Light: [2]int32{15, 15}})
}

func TestEmitSubMeshTo(t *testing.T) {

	m := triMesh()

	// Second submesh reuses the same triangle with a base offset of zero
	m.Indices = append(m.Indices, 0, 2, 1)
	m.SubMeshes = append(m.SubMeshes, SubMesh{BaseVertex: 0, BaseIndex: 3, IndexCount: 3})

	b := sinks.NewBuffered()
	m.EmitSubMeshTo(b, 1, EmitOptions{})

	if b.VertexCount() != 3 {
		t.Fatalf("emitted %d vertices, want 3", b.VertexCount())
	}
	if b.Vertices()[1].Pos.Data != [3]float32{0, 1, 0} {
		t.Errorf("submesh 1 vertex 1 pos = %v, want [0 1 0]", b.Vertices()[1].Pos.Data)
	}
}
