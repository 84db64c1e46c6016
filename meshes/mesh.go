package meshes

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nvox/assert"
	"github.com/bloeys/nvox/sinks"
)

type SubMesh struct {
	BaseVertex uint32
	BaseIndex  uint32
	IndexCount uint32
}

// Mesh keeps its attribute data CPU-side so it can be emitted through a
// VertexSink. Which sink variant receives the emission (and therefore
// whether the mesh ever reaches the GPU) is decided by the render sink
// policy, never by the mesh.
//
// Normals, UVs and Colors are optional; emission falls back to the sink
// defaults for whichever arrays are empty.
type Mesh struct {
	Name string

	Positions []gglm.Vec3
	Normals   []gglm.Vec3
	UVs       []gglm.Vec2
	Colors    []gglm.Vec4

	Indices   []uint32
	SubMeshes []SubMesh
}

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate
)

func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	finalPostProcessFlags := DefaultMeshLoadFlags | postProcessFlags

	scene, release, err := asig.ImportFile(modelPath, finalPostProcessFlags)
	if err != nil {
		return Mesh{}, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("No meshes found in file: " + modelPath)
	}

	mesh := Mesh{
		Name:      name,
		SubMeshes: make([]SubMesh, 0, len(scene.Meshes)),
	}

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		baseVertex := uint32(len(mesh.Positions))
		baseIndex := uint32(len(mesh.Indices))

		mesh.Positions = append(mesh.Positions, sceneMesh.Vertices...)
		mesh.Normals = append(mesh.Normals, sceneMesh.Normals...)

		if len(sceneMesh.TexCoords[0]) > 0 {
			for _, uv := range sceneMesh.TexCoords[0] {
				mesh.UVs = append(mesh.UVs, gglm.Vec2{Data: [2]float32{uv.X(), uv.Y()}})
			}
		}

		if len(sceneMesh.ColorSets) > 0 && len(sceneMesh.ColorSets[0]) > 0 {
			mesh.Colors = append(mesh.Colors, sceneMesh.ColorSets[0]...)
		}

		indices := flattenFaces(sceneMesh.Faces)
		mesh.Indices = append(mesh.Indices, indices...)

		mesh.SubMeshes = append(mesh.SubMeshes, SubMesh{
			BaseVertex: baseVertex,
			BaseIndex:  baseIndex,
			IndexCount: uint32(len(indices)),
		})
	}

	return mesh, nil
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// EmitOptions carries the per-draw host state a mesh itself doesn't have.
type EmitOptions struct {
	Overlay [2]int32
	Light   [2]int32
}

// EmitTo drives the sink through one full attribute chain per indexed
// vertex, across all submeshes. It is written purely against the VertexSink
// contract: a discard sink gets the exact same call sequence as a buffered
// one.
func (m *Mesh) EmitTo(sink sinks.VertexSink, opts EmitOptions) {

	for i := 0; i < len(m.SubMeshes); i++ {
		m.EmitSubMeshTo(sink, i, opts)
	}
}

func (m *Mesh) EmitSubMeshTo(sink sinks.VertexSink, subMesh int, opts EmitOptions) {

	assert.T(subMesh >= 0 && subMesh < len(m.SubMeshes), "Submesh index '%d' is out of range for mesh '%s' with '%d' submeshes", subMesh, m.Name, len(m.SubMeshes))

	sm := &m.SubMeshes[subMesh]
	for i := uint32(0); i < sm.IndexCount; i++ {

		v := sm.BaseVertex + m.Indices[sm.BaseIndex+i]

		p := &m.Positions[v]
		s := sink.Position(p.X(), p.Y(), p.Z())

		if int(v) < len(m.Colors) {
			c := &m.Colors[v]
			s = s.Color(int32(c.X()*255), int32(c.Y()*255), int32(c.Z()*255), int32(c.W()*255))
		}

		if int(v) < len(m.UVs) {
			uv := &m.UVs[v]
			s = s.Texture(uv.X(), uv.Y())
		}

		s = s.Overlay(opts.Overlay[0], opts.Overlay[1]).
			Light(opts.Light[0], opts.Light[1])

		if int(v) < len(m.Normals) {
			n := &m.Normals[v]
			s.Normal(n.X(), n.Y(), n.Z())
		}
	}
}

func flattenFaces(faces []asig.Face) []uint32 {

	assert.T(len(faces[0].Indices) == 3, "Face doesn't have 3 indices. Index count: %v\n", len(faces[0].Indices))

	uints := make([]uint32, len(faces)*3)
	for i := 0; i < len(faces); i++ {
		uints[i*3+0] = uint32(faces[i].Indices[0])
		uints[i*3+1] = uint32(faces[i].Indices[1])
		uints[i*3+2] = uint32(faces[i].Indices[2])
	}

	return uints
}
