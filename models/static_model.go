package models

import (
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/vertex"
)

var _ Model = &StaticModel{}

// StaticModel is uploaded once with static usage and can't change afterwards
type StaticModel struct {
	mergedModel
}

func NewStaticModel(ctx glapi.Context) *StaticModel {
	return &StaticModel{
		mergedModel: newMergedModel(ctx, buffers.BufUsage_Static_Draw),
	}
}

// SetMesh replaces the meshes of the model. It is ignored with a warning once the model is setup.
func (m *StaticModel) SetMesh(ms ...meshes.Mesh[vertex.Vertex5]) *StaticModel {

	if m.wasSetup {
		logging.Warn("Tried to change the meshes of a static model after setup!")
		return m
	}

	m.meshes.clear()
	m.meshes.add(ms...)
	m.isDirty = true
	return m
}

func (m *StaticModel) Setup() {
	m.setupGL()
}
