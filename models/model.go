// Package models owns GPU buffers for groups of meshes and uploads them on demand.
//
// There are three flavours:
//   - StaticModel: meshes are merged and uploaded once during Setup.
//   - DynamicModel: meshes can change after Setup; RefreshModelData re-merges and re-uploads when dirty.
//   - MutableModel: generic over the vertex type, every mesh gets its own VBO/EBO pair that is
//     deleted and regenerated on every Build.
//
// Misuse (empty setup, double setup, too many meshes) is logged and the call is skipped,
// it never panics or returns an error. All models must be used from the GL thread.
package models

import (
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/vertex"
)

// MaxMeshes is the most meshes a single model holds
const MaxMeshes = 255

// OnEmpty decides what Setup does when the model has no meshes
type OnEmpty uint8

const (
	OnEmptyWarn OnEmpty = iota
	OnEmptySilentlyFail
)

// Model is anything glh.Binder can bind and draw
type Model interface {
	VaoId() uint32
	WasSetup() bool
	WasFreed() bool
	Draw()
}

type base struct {
	gl  glapi.Context
	Vao buffers.VertexArray

	BufferHint   buffers.BufUsage
	IfBuildEmpty OnEmpty

	wasSetup bool
	wasFreed bool
	isDirty  bool
}

func (b *base) VaoId() uint32 {
	return b.Vao.Id
}

func (b *base) WasSetup() bool {
	return b.wasSetup
}

func (b *base) WasFreed() bool {
	return b.wasFreed
}

func (b *base) IsDirty() bool {
	return b.isDirty
}

// canSetup logs and returns false when an empty or already setup model is setup
func (b *base) canSetup(meshCount int) bool {

	if meshCount == 0 {
		if b.IfBuildEmpty == OnEmptyWarn {
			logging.Warn("Tried to setup an empty model!")
		}
		return false
	}

	if b.wasSetup {
		logging.Warn("This model was already setup!")
		return false
	}

	return true
}

type meshList[V vertex.Vertex] struct {
	meshes []meshes.Mesh[V]
}

// add appends meshes until MaxMeshes is reached. Every rejected mesh logs one error.
// Returns true if at least one mesh was added.
func (l *meshList[V]) add(ms ...meshes.Mesh[V]) bool {

	added := false
	for i := 0; i < len(ms); i++ {

		if len(l.meshes) >= MaxMeshes {
			logging.Error("Cannot add mesh because the model is at the mesh limit. If you're seeing this then you should probably split up your models.", "limit", MaxMeshes, "mesh", ms[i].Name)
			continue
		}

		l.meshes = append(l.meshes, ms[i])
		added = true
	}

	return added
}

func (l *meshList[V]) clear() {
	l.meshes = l.meshes[:0]
}

func (l *meshList[V]) len() int {
	return len(l.meshes)
}
