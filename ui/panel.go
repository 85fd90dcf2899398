package ui

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/glh"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/models"
	"github.com/usharplibs/engine/shaders"
)

var _ Renderer = &Panel{}

// Panel is a flat quad covering its rectangle, in pixel coordinates with Y pointing down
type Panel struct {
	Element
	Model *models.DynamicModel
}

func NewPanel(x, y, z int16, width, height uint16) *Panel {
	return &Panel{Element: NewElement(x, y, z, width, height)}
}

func (p *Panel) SetupGL(ctx glapi.Context) {

	center := gglm.NewVec3(
		float32(p.X)+float32(p.Width)/2,
		float32(p.Y)+float32(p.Height)/2,
		float32(p.Z),
	)

	p.Model = models.NewDynamicModel(ctx, buffers.BufUsage_Static_Draw).
		SetMesh(meshes.NewQuad("panel", center, float32(p.Width), float32(p.Height)))
	p.Model.Setup()
}

func (p *Panel) Render(b *glh.Binder, shader *shaders.Shader, time float64) {

	if p.Model == nil {
		return
	}

	b.Bind(shader)
	b.BindModel(p.Model).Draw()
}
