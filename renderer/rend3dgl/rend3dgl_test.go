package rend3dgl_test

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/glapi/glmock"
	"github.com/usharplibs/engine/glh"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/models"
	"github.com/usharplibs/engine/renderer/rend3dgl"
	"github.com/usharplibs/engine/shaders"
)

const src = "//shader:vertex\nvoid main() {}\n//shader:fragment\nvoid main() {}\n"

func TestDrawModel(t *testing.T) {

	ctx := glmock.New()
	r := rend3dgl.New(glh.New(ctx))

	shader, err := shaders.NewShader(ctx, "world", []byte(src))
	require.NoError(t, err)

	model := models.NewDynamicModel(ctx, buffers.BufUsage_Static_Draw).
		SetMesh(meshes.NewQuad("quad", gglm.NewVec3(0, 0, 0), 1, 1))
	model.Setup()

	ctx.ResetCounts()
	modelMat := gglm.NewMat4Diag(3)
	r.DrawModel(shader, model, &modelMat)
	r.DrawModel(shader, model, &modelMat)

	assert.Equal(t, 1, ctx.Count("UseProgram"))
	assert.Equal(t, 1, ctx.Count("BindVertexArray"))
	assert.Equal(t, 2, ctx.Count("DrawElements"))
	assert.Equal(t, 2, ctx.Count("ProgramUniformMatrix4"))
	assert.Equal(t, modelMat.Data, ctx.UniformValues[ctx.Uniforms["modelMat"]])

	require.Len(t, ctx.Draws, 2)
	assert.Equal(t, uint32(glapi.TRIANGLES), ctx.Draws[0].Mode)
	assert.Equal(t, int32(6), ctx.Draws[0].Count)
	assert.Equal(t, model.VaoId(), ctx.Draws[0].Vao)

	r.FrameEnd()
	assert.Equal(t, uint32(2), r.LastFrameDrawCalls())
	assert.Zero(t, r.DrawCalls)
	assert.Nil(t, r.Binder.CurrentModel())
	assert.Zero(t, ctx.BoundVao)
}

func TestDrawModelWithoutMatrix(t *testing.T) {

	ctx := glmock.New()
	r := rend3dgl.New(glh.New(ctx))
	r.ModelMatName = ""

	shader, err := shaders.NewShader(ctx, "world", []byte(src))
	require.NoError(t, err)

	var model models.Model = models.NewStaticModel(ctx).
		SetMesh(meshes.NewTriangle("tri", gglm.NewVec3(0, 0, 0), gglm.NewVec3(1, 0, 0), gglm.NewVec3(0, 1, 0)))
	model.(*models.StaticModel).Setup()

	m := gglm.NewMat4Diag(1)
	r.DrawModel(shader, model, &m)
	assert.Zero(t, ctx.Count("ProgramUniformMatrix4"))
	assert.Equal(t, 1, ctx.Count("DrawElements"))
}
