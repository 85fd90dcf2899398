package glh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/glapi/glmock"
	"github.com/usharplibs/engine/glh"
	"github.com/usharplibs/engine/logging/logtest"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/models"
	"github.com/usharplibs/engine/shaders"
	"github.com/usharplibs/engine/vertex"
)

const src = "//shader:vertex\nvoid main() {}\n//shader:fragment\nvoid main() {}\n"

func newShader(t *testing.T, ctx glapi.Context, name string) *shaders.Shader {
	s, err := shaders.NewShader(ctx, name, []byte(src))
	require.NoError(t, err)
	return s
}

func newModel(ctx glapi.Context) *models.DynamicModel {

	m := models.NewDynamicModel(ctx, buffers.BufUsage_Dynamic_Draw).SetMesh(
		meshes.NewMesh("tri", make([]vertex.Vertex5, 3), []uint32{0, 1, 2}),
	)
	m.Setup()
	return m
}

func TestBindShaderSkipsRedundantCalls(t *testing.T) {

	ctx := glmock.New()
	b := glh.New(ctx)
	s1 := newShader(t, ctx, "s1")
	s2 := newShader(t, ctx, "s2")

	ctx.ResetCounts()
	access := b.Bind(s1)
	b.Bind(s1)
	assert.Equal(t, 1, ctx.Count("UseProgram"))
	assert.Same(t, s1.Access, access)
	assert.Equal(t, s1.Handle, b.CurrentShaderHandle())

	b.Bind(s2)
	assert.Equal(t, 2, ctx.Count("UseProgram"))
	assert.Equal(t, s2.Handle, ctx.CurrentProgram)

	b.UnbindShader()
	b.UnbindShader()
	assert.Equal(t, 3, ctx.Count("UseProgram"))
	assert.Zero(t, ctx.CurrentProgram)
	assert.Zero(t, b.CurrentShaderHandle())
}

func TestBindShaderWithoutHandle(t *testing.T) {

	rec := logtest.Install(t)
	ctx := glmock.New()
	b := glh.New(ctx)

	var reported []glh.ShaderError
	b.ShaderErrorHandler = func(err glh.ShaderError) { reported = append(reported, err) }

	s := &shaders.Shader{Name: "unloaded"}
	assert.Nil(t, b.Bind(s))
	assert.Nil(t, b.Bind(nil))

	require.Len(t, reported, 2)
	assert.Equal(t, glh.ShaderReasonNoHandle, reported[0].Reason)
	assert.Equal(t, "cannot bind shader 'unloaded': NoHandle", reported[0].Error())
	assert.Zero(t, ctx.Count("UseProgram"))
	assert.Zero(t, rec.Errors())

	// Default handler logs
	b = glh.New(ctx)
	b.Bind(s)
	assert.Equal(t, 1, rec.Errors())
}

func TestBindModel(t *testing.T) {

	logtest.Install(t)
	ctx := glmock.New()
	b := glh.New(ctx)

	m1 := newModel(ctx)
	m2 := newModel(ctx)

	ctx.ResetCounts()
	access := b.BindModel(m1)
	b.BindModel(m1)
	assert.Equal(t, 1, ctx.Count("BindVertexArray"))
	assert.Equal(t, m1.VaoId(), ctx.BoundVao)
	assert.Equal(t, models.Model(m1), b.CurrentModel())

	access.Draw()
	require.Len(t, ctx.Draws, 1)
	assert.Equal(t, m1.VaoId(), ctx.Draws[0].Vao)
	assert.Equal(t, m1.EboId(), ctx.Draws[0].Ebo)

	b.BindModel(m2)
	assert.Equal(t, 2, ctx.Count("BindVertexArray"))

	b.UnbindModel()
	b.UnbindModel()
	assert.Equal(t, 3, ctx.Count("BindVertexArray"))
	assert.Nil(t, b.CurrentModel())
	assert.Zero(t, ctx.BoundVao)
}

func TestBindInvalidModel(t *testing.T) {

	logtest.Install(t)
	ctx := glmock.New()
	b := glh.New(ctx)

	var reasons []glh.ModelErrorReason
	b.ModelErrorHandler = func(err glh.ModelError) { reasons = append(reasons, err.Reason) }

	notSetup := models.NewDynamicModel(ctx, buffers.BufUsage_Dynamic_Draw)
	freed := newModel(ctx)
	freed.Free()

	ctx.ResetCounts()
	access := b.BindModel(notSetup)
	b.BindModel(freed)

	assert.Equal(t, []glh.ModelErrorReason{glh.ModelReasonNoVAO, glh.ModelReasonWasFreed}, reasons)
	assert.Zero(t, ctx.Count("BindVertexArray"))
	assert.Nil(t, access.Model)

	// Drawing through the default access is a no-op
	access.Draw()
	assert.Empty(t, ctx.Draws)
}

func TestBindFreedModelDrawsNothing(t *testing.T) {

	logtest.Install(t)
	ctx := glmock.New()
	b := glh.New(ctx)

	a := newModel(ctx)
	freed := newModel(ctx)
	freed.Free()

	b.BindModel(a).Draw()
	require.Len(t, ctx.Draws, 1)

	// The previous model must not be drawn in place of the rejected one
	ctx.Draws = nil
	access := b.BindModel(freed)
	access.Draw()
	assert.Nil(t, access.Model)
	assert.Empty(t, ctx.Draws)
	assert.Equal(t, models.Model(a), b.CurrentModel())
}

func TestBindNilModel(t *testing.T) {

	logtest.Install(t)
	ctx := glmock.New()
	b := glh.New(ctx)

	var reasons []glh.ModelErrorReason
	b.ModelErrorHandler = func(err glh.ModelError) { reasons = append(reasons, err.Reason) }

	var access *glh.ModelAccess
	assert.NotPanics(t, func() { access = b.BindModel(nil) })
	assert.Equal(t, []glh.ModelErrorReason{glh.ModelReasonNoVAO}, reasons)

	access.Draw()
	assert.Empty(t, ctx.Draws)
	assert.Zero(t, ctx.Count("BindVertexArray"))
}

func TestInvalidateModelAfterRefresh(t *testing.T) {

	logtest.Install(t)
	ctx := glmock.New()
	b := glh.New(ctx)
	m := newModel(ctx)

	b.BindModel(m)
	require.Equal(t, m.VaoId(), ctx.BoundVao)

	// Refreshing binds and unbinds the vao directly
	m.AddMesh(meshes.NewMesh("tri2", make([]vertex.Vertex5, 3), []uint32{0, 1, 2}))
	m.RefreshModelData()
	require.Zero(t, ctx.BoundVao)

	b.InvalidateModel()
	assert.Nil(t, b.CurrentModel())

	ctx.ResetCounts()
	b.BindModel(m).Draw()
	assert.Equal(t, 1, ctx.Count("BindVertexArray"))
	require.Len(t, ctx.Draws, 1)
	assert.Equal(t, m.VaoId(), ctx.Draws[0].Vao)

	// Invalidating makes no GL calls
	ctx.ResetCounts()
	b.InvalidateModel()
	assert.Zero(t, ctx.TotalCalls())
}

func TestToggles(t *testing.T) {

	ctx := glmock.New()
	b := glh.New(ctx)

	b.EnableWireframe()
	b.EnableWireframe()
	assert.Equal(t, 1, ctx.Count("PolygonMode"))
	assert.Equal(t, uint32(glapi.LINE), ctx.PolygonModes[glapi.FRONT_AND_BACK])
	assert.True(t, b.IsWireframe())

	b.DisableWireframe()
	b.DisableWireframe()
	assert.Equal(t, 2, ctx.Count("PolygonMode"))
	assert.Equal(t, uint32(glapi.FILL), ctx.PolygonModes[glapi.FRONT_AND_BACK])

	b.EnableDepthTest()
	b.EnableDepthTest()
	b.EnableCulling()
	b.EnableCulling()
	assert.Equal(t, 2, ctx.Count("Enable"))
	assert.True(t, ctx.Capabilities[glapi.DEPTH_TEST])
	assert.True(t, ctx.Capabilities[glapi.CULL_FACE])

	b.DisableDepthTest()
	b.DisableDepthTest()
	b.SetCulling(false)
	b.SetCulling(false)
	assert.Equal(t, 2, ctx.Count("Disable"))
	assert.False(t, b.IsDepthTesting())
	assert.False(t, b.IsCulling())

	// Disabling something never enabled makes no call
	ctx.ResetCounts()
	b2 := glh.New(ctx)
	b2.DisableWireframe()
	b2.DisableDepthTest()
	b2.DisableCulling()
	assert.Zero(t, ctx.TotalCalls())
}

func TestReset(t *testing.T) {

	logtest.Install(t)
	ctx := glmock.New()
	b := glh.New(ctx)
	s := newShader(t, ctx, "s")

	b.Bind(s)
	b.EnableDepthTest()
	b.Reset()

	ctx.ResetCounts()
	b.Reset()
	assert.Zero(t, ctx.TotalCalls())
	assert.Zero(t, b.CurrentShaderHandle())
	assert.False(t, b.IsDepthTesting())

	b.Bind(s)
	assert.Equal(t, 1, ctx.Count("UseProgram"))
}
