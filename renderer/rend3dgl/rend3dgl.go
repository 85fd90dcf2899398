package rend3dgl

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/usharplibs/engine/glh"
	"github.com/usharplibs/engine/models"
	"github.com/usharplibs/engine/renderer"
	"github.com/usharplibs/engine/shaders"
)

var _ renderer.Render = &Rend3DGL{}

// Rend3DGL draws world models through a binder so repeated shaders and models aren't rebound
type Rend3DGL struct {
	Binder *glh.Binder

	// ModelMatName is the uniform that receives the model matrix. Empty skips the upload.
	ModelMatName string

	DrawCalls uint32
	lastCalls uint32
}

func New(b *glh.Binder) *Rend3DGL {
	return &Rend3DGL{
		Binder:       b,
		ModelMatName: "modelMat",
	}
}

func (r *Rend3DGL) DrawModel(shader *shaders.Shader, model models.Model, modelMat *gglm.Mat4) {

	access := r.Binder.Bind(shader)
	if access != nil && modelMat != nil && r.ModelMatName != "" {
		access.SetMat4(r.ModelMatName, modelMat)
	}

	r.Binder.BindModel(model).Draw()
	r.DrawCalls++
}

// LastFrameDrawCalls is the number of DrawModel calls in the previous frame
func (r *Rend3DGL) LastFrameDrawCalls() uint32 {
	return r.lastCalls
}

func (r *Rend3DGL) FrameEnd() {
	r.lastCalls = r.DrawCalls
	r.DrawCalls = 0
	r.Binder.UnbindModel()
}
