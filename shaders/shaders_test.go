package shaders_test

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/glapi/glmock"
	"github.com/usharplibs/engine/logging/logtest"
	"github.com/usharplibs/engine/shaders"
)

const combinedSrc = `//shader:vertex
#version 410
layout(location = 0) in vec3 vertPos;
layout(location = 1) in vec2 vertUV;
void main() { gl_Position = vec4(vertPos, 1); }

//shader:fragment
#version 410
out vec4 fragColor;
void main() { fragColor = vec4(1); }
`

func TestCompileCombinedShader(t *testing.T) {

	ctx := glmock.New()

	prog, err := shaders.LoadAndCompileCombinedShaderSrc(ctx, []byte(combinedSrc))
	require.NoError(t, err)

	assert.NotZero(t, prog.Id)
	assert.NotZero(t, prog.VertShaderId)
	assert.NotZero(t, prog.FragShaderId)
	assert.Zero(t, prog.GeomShaderId)

	assert.Equal(t, []uint32{prog.VertShaderId, prog.FragShaderId}, ctx.Attached[prog.Id])
	assert.Contains(t, ctx.ShaderSources[prog.VertShaderId], "gl_Position")
	assert.NotContains(t, ctx.ShaderSources[prog.VertShaderId], "fragColor")
	assert.Equal(t, 1, ctx.Count("LinkProgram"))
	assert.ElementsMatch(t, []uint32{prog.VertShaderId, prog.FragShaderId}, ctx.DeletedShaders)
}

func TestCompileCombinedShaderErrors(t *testing.T) {

	logtest.Install(t)

	tests := []struct {
		name string
		src  string
	}{
		{name: "no markers", src: "void main() {}"},
		{name: "unknown stage", src: "//shader:compute\nvoid main() {}"},
		{name: "missing fragment", src: "//shader:vertex\nvoid main() {}"},
		{name: "missing vertex", src: "//shader:fragment\nvoid main() {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shaders.LoadAndCompileCombinedShaderSrc(glmock.New(), []byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestCompileFailureReportsInfoLog(t *testing.T) {

	rec := logtest.Install(t)

	ctx := glmock.New()
	ctx.FailCompile = true
	ctx.InfoLog = "0:3: syntax error"

	_, err := shaders.NewShader(ctx, "broken", []byte(combinedSrc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
	assert.Equal(t, 1, rec.Errors())
}

func TestLaterStageFailureDeletesEarlierStages(t *testing.T) {

	logtest.Install(t)

	ctx := glmock.New()
	ctx.FailCompileType = glapi.FRAGMENT_SHADER

	_, err := shaders.LoadAndCompileCombinedShaderSrc(ctx, []byte(combinedSrc))
	require.Error(t, err)

	// Both the attached vertex stage and the failed fragment stage are gone
	assert.Equal(t, 2, ctx.Count("CreateShader"))
	assert.Len(t, ctx.DeletedShaders, 2)
	assert.ElementsMatch(t, ctx.DeletedShaders, keys(ctx.ShaderTypes))
	assert.Equal(t, 1, ctx.Count("DeleteProgram"))
}

func keys(m map[uint32]uint32) []uint32 {

	out := make([]uint32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func TestLinkFailure(t *testing.T) {

	logtest.Install(t)

	ctx := glmock.New()
	ctx.FailLink = true
	ctx.InfoLog = "link failed"

	_, err := shaders.NewShader(ctx, "broken", []byte(combinedSrc))
	require.Error(t, err)
	assert.ErrorContains(t, err, "link failed")
	assert.Equal(t, 1, ctx.Count("DeleteProgram"))
}

func TestAccessCachesUniformLocations(t *testing.T) {

	rec := logtest.Install(t)

	ctx := glmock.New()
	ctx.MissingUniforms["missing"] = true

	shader, err := shaders.NewShader(ctx, "basic", []byte(combinedSrc))
	require.NoError(t, err)
	assert.Equal(t, shader.Handle, shader.Access.Program())

	shader.Access.SetFloat32("time", 1.5)
	shader.Access.SetFloat32("time", 2.5)
	assert.Equal(t, 1, ctx.Count("GetUniformLocation"))
	assert.Equal(t, float32(2.5), ctx.UniformValues[ctx.Uniforms["time"]])

	m := gglm.NewMat4Diag(2)
	shader.Access.SetMat4("projMat", &m)
	assert.Equal(t, m.Data, ctx.UniformValues[ctx.Uniforms["projMat"]])

	shader.Access.SetInt32("missing", 3)
	shader.Access.SetInt32("missing", 3)
	assert.Equal(t, 0, ctx.Count("ProgramUniform1i"))
	assert.Equal(t, 1, rec.Warnings())

	shader.Delete(ctx)
	assert.Zero(t, shader.Handle)
}
