package shaders

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

// Stage is one compiled shader stage (vertex, fragment, geometry) before linking
type Stage struct {
	Id   uint32
	Type ShaderType
}

func NewShaderProgram(ctx glapi.Context) (ShaderProgram, error) {

	id := ctx.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id, gl: ctx}, nil
}

// LoadAndCompileCombinedShaderSrc compiles a single source holding several stages, each
// starting with a '//shader:vertex', '//shader:fragment' or '//shader:geometry' line.
// A vertex and a fragment stage are required.
func LoadAndCompileCombinedShaderSrc(ctx glapi.Context, shaderSrc []byte) (ShaderProgram, error) {

	shaderSources := bytes.Split(shaderSrc, []byte("//shader:"))
	if len(shaderSources) < 2 {
		return ShaderProgram{}, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	shdrProg, err := NewShaderProgram(ctx)
	if err != nil {
		return ShaderProgram{}, fmt.Errorf("failed to create new shader program: %w", err)
	}

	// Stages compiled so far must not leak when a later one fails
	fail := func(err error) (ShaderProgram, error) {
		shdrProg.deleteStages()
		shdrProg.Delete()
		return ShaderProgram{}, err
	}

	loadedShdrCount := 0
	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		var shdrType ShaderType
		if bytes.HasPrefix(src, []byte("vertex")) {
			src = src[6:]
			shdrType = ShaderType_Vertex
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			src = src[8:]
			shdrType = ShaderType_Fragment
		} else if bytes.HasPrefix(src, []byte("geometry")) {
			src = src[8:]
			shdrType = ShaderType_Geometry
		} else {
			return fail(errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'"))
		}

		stage, err := CompileShaderOfType(ctx, src, shdrType)
		if err != nil {
			return fail(err)
		}

		loadedShdrCount++
		shdrProg.AttachShader(stage)
	}

	if loadedShdrCount == 0 {
		return fail(errors.New("no valid shaders found. Please put '//shader:vertex' or '//shader:fragment' or '//shader:geometry' before your shaders"))
	}

	if shdrProg.VertShaderId == 0 {
		return fail(errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader"))
	}

	if shdrProg.FragShaderId == 0 {
		return fail(errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader"))
	}

	// Link already deleted the stages
	if err := shdrProg.Link(); err != nil {
		shdrProg.Delete()
		return ShaderProgram{}, fmt.Errorf("failed to link shader program: %w", err)
	}

	return shdrProg, nil
}

func CompileShaderOfType(ctx glapi.Context, shaderSource []byte, shaderType ShaderType) (Stage, error) {

	shaderId := ctx.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Stage{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", ctx.GetError())
	}

	ctx.ShaderSource(shaderId, string(shaderSource))
	ctx.CompileShader(shaderId)

	if ok, errMsg := ctx.ShaderCompileStatus(shaderId); !ok {
		logging.Error("Compilation of shader failed", "shaderId", shaderId, "type", shaderType, "err", errMsg)
		ctx.DeleteShader(shaderId)
		return Stage{}, errors.New(errMsg)
	}

	return Stage{Id: shaderId, Type: shaderType}, nil
}
