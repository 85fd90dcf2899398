package main

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/client"
	"github.com/usharplibs/engine/config"
	"github.com/usharplibs/engine/input"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/modding"
	"github.com/usharplibs/engine/models"
	"github.com/usharplibs/engine/renderer/rend3dgl"
	"github.com/usharplibs/engine/shaders"
	"github.com/usharplibs/engine/ui"
	"github.com/usharplibs/engine/vertex"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	ConfigPath = "./client.toml"
	DemoSource = "engine.demo"
)

const worldShaderSrc = `//shader:vertex
#version 410

layout(location = 0) in vec3 vertPos;
layout(location = 1) in vec2 vertUV;

uniform mat4 modelMat;

out vec2 uv;

void main()
{
    uv = vertUV;
    gl_Position = modelMat * vec4(vertPos, 1.0);
}

//shader:fragment
#version 410

in vec2 uv;

out vec4 fragColor;

void main()
{
    fragColor = vec4(uv, 1.0 - uv.x, 1.0);
}
`

type Game struct {
	Client *client.Client
	Rend   *rend3dgl.Rend3DGL
	Mods   modding.Registry

	WorldShader *shaders.Shader

	// Scene is merged into one buffer and re-uploaded when it changes
	Scene *models.DynamicModel
	// Trail gets a new triangle every time space is pressed
	Trail *models.MutableModel[vertex.Vertex5]

	sceneMat gglm.Mat4
	trailMat gglm.Mat4
	topZ     int16
}

func main() {

	cfg, err := config.Load(ConfigPath)
	if err != nil {
		logging.Fatal("Failed to load config", "path", ConfigPath, "err", err)
	}

	c, err := client.New(cfg)
	if err != nil {
		logging.Fatal("Failed to create client", "err", err)
	}

	g := &Game{Client: c}
	g.registerMods()

	if err := c.Init(); err != nil {
		logging.Fatal("Failed to init client", "err", err)
	}
	defer c.Destroy()

	g.topZ = 1
	c.AddUIElement(ui.NewPanel(16, 16, 1, 240, 64))
	c.AddUIElement(ui.NewPanel(24, 96, 0, 120, 32))

	c.OnSetupGL = g.SetupGL
	c.OnFrame = g.Frame
	c.OnUIClick = g.RaiseElement
	c.SetupGL()

	c.Run()
	g.DeInit()
}

func (g *Game) registerMods() {

	src, err := modding.NewModSource(DemoSource, modding.MustParseModVersion("0.1.0"))
	if err != nil {
		logging.Fatal("Failed to create mod source", "err", err)
	}

	if err := g.Mods.Register(src); err != nil {
		logging.Fatal("Failed to register mod source", "err", err)
	}

	// Same name with a newer version is the same source and must be refused
	dup, _ := modding.NewModSource(DemoSource, modding.MustParseModVersion("0.2.0"))
	if err := g.Mods.Register(dup); err != nil {
		logging.Warn("Ignored duplicate mod source", "err", err)
	}
}

func (g *Game) SetupGL(c *client.Client) error {

	var err error
	g.WorldShader, err = shaders.NewShader(c.GL, "world", []byte(worldShaderSrc))
	if err != nil {
		return err
	}

	g.Rend = rend3dgl.New(c.Binder)
	g.sceneMat = gglm.NewMat4Diag(1)
	g.trailMat = gglm.NewMat4Diag(0.5)
	g.trailMat.Data[3][3] = 1

	g.Scene = models.NewDynamicModel(c.GL, c.ModelUsage).SetMesh(
		meshes.NewTriangle("tri", gglm.NewVec3(-0.9, -0.9, 0), gglm.NewVec3(-0.1, -0.9, 0), gglm.NewVec3(-0.5, -0.1, 0)),
		meshes.NewQuad("quad", gglm.NewVec3(0.5, 0.5, 0), 0.6, 0.6),
	)
	g.Scene.Setup()

	g.Trail = models.NewMutableModel[vertex.Vertex5](c.GL, buffers.BufUsage_Dynamic_Draw)
	g.Trail.AddMesh(g.trailTriangle(0))
	g.Trail.Setup()

	return nil
}

func (g *Game) trailTriangle(i int) meshes.Mesh[vertex.Vertex5] {

	x := -1 + 0.2*float32(i%10)
	y := 1 - 0.2*float32(i/10%10)
	return meshes.NewTriangle("trail", gglm.NewVec3(x, y, 0), gglm.NewVec3(x+0.15, y, 0), gglm.NewVec3(x, y-0.15, 0))
}

func (g *Game) Frame(c *client.Client, time float64) {

	if input.KeyClicked(sdl.K_SPACE) {
		if input.KeyDown(sdl.K_LSHIFT) {
			g.Trail.Clear()
		} else {
			g.Trail.AddMesh(g.trailTriangle(g.Trail.MeshCount()))
		}
	}

	if input.KeyClicked(sdl.K_r) {
		g.Scene.SetMesh(meshes.NewQuad("quad", gglm.NewVec3(0, 0, 0), 1, 1))
	}

	if g.Scene.IsDirty() || g.Trail.CanBuild() {
		g.Scene.RefreshModelData()
		g.Trail.Build()
		c.Binder.InvalidateModel()
	}

	g.Rend.DrawModel(g.WorldShader, g.Scene, &g.sceneMat)
	if !g.Trail.IsDrawDataEmpty() {
		g.Rend.DrawModel(g.WorldShader, g.Trail, &g.trailMat)
	}

	g.Rend.FrameEnd()
}

// RaiseElement brings a clicked element in front of every other element
func (g *Game) RaiseElement(c *client.Client, r ui.Renderer) {

	g.topZ++
	r.Elem().Z = g.topZ
	logging.Info("Raised ui element", "x", r.Elem().X, "y", r.Elem().Y, "z", g.topZ)
}

func (g *Game) DeInit() {

	if g.Scene != nil {
		g.Scene.Free()
	}

	if g.Trail != nil {
		g.Trail.Free()
	}

	if g.WorldShader != nil {
		g.WorldShader.Delete(g.Client.GL)
	}

	logging.Info("Exited", "sources", len(g.Mods.Sources()))
}
