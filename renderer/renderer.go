package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/usharplibs/engine/models"
	"github.com/usharplibs/engine/shaders"
)

type Render interface {
	DrawModel(shader *shaders.Shader, model models.Model, modelMat *gglm.Mat4)
	FrameEnd()
}
