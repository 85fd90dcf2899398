package shaders

import (
	"errors"

	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32
	gl           glapi.Context
}

func (sp *ShaderProgram) AttachShader(stage Stage) {

	sp.gl.AttachShader(sp.Id, stage.Id)
	switch stage.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = stage.Id
	case ShaderType_Fragment:
		sp.FragShaderId = stage.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = stage.Id
	default:
		logging.Fatalf("Unknown shader type '%d' for shader id '%d'", stage.Type, stage.Id)
	}
}

// Link links the program and deletes the attached stages, which are no longer needed after linking
func (sp *ShaderProgram) Link() error {

	sp.gl.LinkProgram(sp.Id)
	sp.deleteStages()

	if ok, infoLog := sp.gl.ProgramLinkStatus(sp.Id); !ok {
		logging.Error("Linking of shader program failed", "programId", sp.Id, "err", infoLog)
		return errors.New(infoLog)
	}

	return nil
}

func (sp *ShaderProgram) deleteStages() {

	for _, id := range [...]uint32{sp.VertShaderId, sp.FragShaderId, sp.GeomShaderId} {
		if id != 0 {
			sp.gl.DeleteShader(id)
		}
	}
}

func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	sp.gl.DeleteProgram(sp.Id)
	sp.Id = 0
}
