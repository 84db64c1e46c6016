package main

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nvox/engine"
	"github.com/bloeys/nvox/input"
	"github.com/bloeys/nvox/logging"
	"github.com/bloeys/nvox/materials"
	"github.com/bloeys/nvox/meshes"
	"github.com/bloeys/nvox/render"
	"github.com/bloeys/nvox/render/rendgl"
	"github.com/bloeys/nvox/timing"
	"github.com/veandco/go-sdl2/sdl"
)

/*
Demo host: emits one world section through the sink layer every time it is
rebaked. The clouds pass starts out natively handled, so its emissions run
through the discard sink and nothing of it is drawn; press C to flip that and
watch the cloud quad appear. Press Escape or close the window to quit.
*/

const sectionShaderSrc = `//shader:vertex
#version 410

layout(location=0) in vec3 vertPos;
layout(location=1) in vec4 vertColor;
layout(location=2) in vec2 vertUV;
layout(location=3) in vec2 vertOverlay;
layout(location=4) in vec2 vertLight;
layout(location=5) in vec3 vertNormal;

uniform float rotY;

out vec4 vertOut_Color;

void main() {

	float c = cos(rotY);
	float s = sin(rotY);
	vec3 p = vec3(vertPos.x*c + vertPos.z*s, vertPos.y, -vertPos.x*s + vertPos.z*c);

	float light = clamp((vertLight.x + vertLight.y) / 30.0, 0.2, 1.0);
	vertOut_Color = vec4(vertColor.rgb * light, vertColor.a);
	gl_Position = vec4(p, 1.0);
}

//shader:fragment
#version 410

in vec4 vertOut_Color;
out vec4 fragColor;

void main() {
	fragColor = vertOut_Color;
}
`

type Game struct {
	Win    *engine.Window
	Rend   *rendgl.RendGL
	Policy *render.SinkPolicy
	Queue  *render.UpdateQueue

	SectionMat materials.Material
	Sections   []render.SectionPos

	rotY      float32
	shouldRun bool
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	rend := rendgl.NewRendGL()

	win, err := engine.CreateOpenGLWindowCentered("nvox", 1280, 720, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer win.Destroy()

	engine.SetVSync(true)

	game := &Game{
		Win:    win,
		Rend:   rend,
		Policy: render.NewSinkPolicy(render.PassClouds),
		Queue:  render.NewUpdateQueue(64),

		Sections:  []render.SectionPos{{0, 0, 0}},
		shouldRun: true,
	}

	engine.Run(game, win)
}

func (g *Game) Init() {

	logging.InfoLog.Println("Rendering with:", rendgl.BackendDescription())

	g.SectionMat = materials.NewMaterialSrc("sectionMat", []byte(sectionShaderSrc))

	for _, pos := range g.Sections {
		g.bakeSection(pos)
	}
}

// bakeSection runs every pass of a section through whatever sink the policy
// hands out. Note there is no branching on the sink variant anywhere here;
// natively handled passes simply bake to nothing.
func (g *Game) bakeSection(pos render.SectionPos) {

	terrain := buildTerrainMesh()
	clouds := buildCloudsMesh()

	update := render.SectionUpdate{Pos: pos}

	terrainSink := g.Policy.Sink(render.PassTerrain)
	terrain.EmitTo(terrainSink, meshes.EmitOptions{Light: [2]int32{15, 15}})
	if layer, ok := render.BakeLayer(render.PassTerrain, terrainSink); ok {
		update.Layers = append(update.Layers, layer)
	}

	cloudsSink := g.Policy.Sink(render.PassClouds)
	clouds.EmitTo(cloudsSink, meshes.EmitOptions{Light: [2]int32{15, 15}})
	if layer, ok := render.BakeLayer(render.PassClouds, cloudsSink); ok {
		update.Layers = append(update.Layers, layer)
	}

	g.Queue.Submit(update)
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		g.shouldRun = false
	}

	if input.KeyClicked(sdl.K_c) {

		native := !g.Policy.IsNativelyHandled(render.PassClouds)
		g.Policy.SetNativelyHandled(render.PassClouds, native)
		logging.InfoLog.Println("Clouds natively handled:", native)

		// Rebake so the new policy takes effect. A discarded pass leaves its
		// old layer behind, so drop the section first.
		for _, pos := range g.Sections {
			g.Rend.RemoveSection(pos)
			g.bakeSection(pos)
		}
	}

	g.rotY += timing.DT() * 0.8
}

func (g *Game) Render() {

	g.Queue.Drain(func(u render.SectionUpdate) {
		g.Rend.UploadSection(u.Pos, u.Layers)
	})

	g.SectionMat.SetUnifFloat32("rotY", g.rotY)

	for _, pos := range g.Sections {
		g.Rend.DrawSection(pos, render.PassTerrain, g.SectionMat)
		g.Rend.DrawSection(pos, render.PassClouds, g.SectionMat)
	}
}

func (g *Game) FrameEnd() {
}

func (g *Game) ShouldRun() bool {
	return g.shouldRun
}

func (g *Game) DeInit() {
	g.SectionMat.Delete()
}

// buildTerrainMesh returns a small in-code stand-in for baked section
// terrain: a colored cube around the origin, sized to sit in clip space
// without a camera.
func buildTerrainMesh() meshes.Mesh {

	// Cube corners
	p := [8][3]float32{
		{-0.4, -0.4, -0.4}, {0.4, -0.4, -0.4}, {0.4, 0.4, -0.4}, {-0.4, 0.4, -0.4},
		{-0.4, -0.4, 0.4}, {0.4, -0.4, 0.4}, {0.4, 0.4, 0.4}, {-0.4, 0.4, 0.4},
	}

	m := meshes.Mesh{Name: "terrain"}
	for i := 0; i < len(p); i++ {
		m.Positions = append(m.Positions, gglm.Vec3{Data: p[i]})
		m.Normals = append(m.Normals, gglm.Vec3{Data: [3]float32{0, 1, 0}})
		m.Colors = append(m.Colors, gglm.Vec4{Data: [4]float32{
			0.5 + 0.5*p[i][0]/0.4,
			0.5 + 0.5*p[i][1]/0.4,
			0.5 + 0.5*p[i][2]/0.4,
			1,
		}})
	}

	m.Indices = []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 7, 3, 0, 4, 7, // left
		1, 2, 6, 1, 6, 5, // right
		3, 7, 6, 3, 6, 2, // top
		0, 1, 5, 0, 5, 4, // bottom
	}

	m.SubMeshes = []meshes.SubMesh{{BaseVertex: 0, BaseIndex: 0, IndexCount: uint32(len(m.Indices))}}
	return m
}

// buildCloudsMesh returns a translucent quad floating above the cube
func buildCloudsMesh() meshes.Mesh {

	m := meshes.Mesh{Name: "clouds"}

	p := [4][3]float32{
		{-0.6, 0.6, -0.6}, {0.6, 0.6, -0.6}, {0.6, 0.6, 0.6}, {-0.6, 0.6, 0.6},
	}

	for i := 0; i < len(p); i++ {
		m.Positions = append(m.Positions, gglm.Vec3{Data: p[i]})
		m.Normals = append(m.Normals, gglm.Vec3{Data: [3]float32{0, -1, 0}})
		m.Colors = append(m.Colors, gglm.Vec4{Data: [4]float32{1, 1, 1, 0.6}})
	}

	m.Indices = []uint32{0, 2, 1, 0, 3, 2, 0, 1, 2, 0, 2, 3}
	m.SubMeshes = []meshes.SubMesh{{BaseVertex: 0, BaseIndex: 0, IndexCount: uint32(len(m.Indices))}}
	return m
}
