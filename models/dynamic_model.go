package models

import (
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/vertex"
)

var _ Model = &DynamicModel{}

// DynamicModel merges its meshes into one buffer and re-uploads when its meshes change
type DynamicModel struct {
	mergedModel
}

func NewDynamicModel(ctx glapi.Context, bufferHint buffers.BufUsage) *DynamicModel {
	return &DynamicModel{
		mergedModel: newMergedModel(ctx, bufferHint),
	}
}

// SetMesh replaces all meshes of the model
func (m *DynamicModel) SetMesh(ms ...meshes.Mesh[vertex.Vertex5]) *DynamicModel {
	m.ClearModelData()
	return m.AddMesh(ms...)
}

func (m *DynamicModel) AddMesh(ms ...meshes.Mesh[vertex.Vertex5]) *DynamicModel {

	if m.meshes.add(ms...) {
		m.isDirty = true
	}

	return m
}

func (m *DynamicModel) ClearModelData() {
	m.meshes.clear()
	m.isDirty = true
}

// Setup creates the GL objects and does the first upload
func (m *DynamicModel) Setup() {
	m.setupGL()
}

// RefreshModelData re-merges and re-uploads the meshes, but only if they changed
// since the last upload.
//
// The upload binds the model's vao and leaves vao 0 bound. A glh.Binder in use must be told
// with InvalidateModel before the next BindModel.
func (m *DynamicModel) RefreshModelData() {

	if !m.isDirty {
		return
	}

	if m.warnIfFreed("RefreshModelData") {
		return
	}

	if !m.wasSetup {
		logging.Warn("Tried to refresh a model that was not setup!")
		return
	}

	m.upload()
}
