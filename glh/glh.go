// Package glh keeps track of bound GL state so redundant state changes are never sent to the driver.
package glh

import (
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/models"
	"github.com/usharplibs/engine/shaders"
)

// ModelAccess is handed out by BindModel and draws whatever model is currently bound
type ModelAccess struct {
	Model models.Model
}

// Draw draws the bound model, or does nothing if no model is bound
func (ma *ModelAccess) Draw() {
	if ma.Model != nil {
		ma.Model.Draw()
	}
}

// Binder caches the shader, model and toggles last sent to one GL context.
//
// It assumes it is the only thing changing that state on the context, unless told otherwise
// through InvalidateModel or Reset, and that it is only used from the thread owning the
// context. It has no locking.
type Binder struct {
	gl glapi.Context

	isWireframe    bool
	isDepthTesting bool
	isCulling      bool

	currentShaderHandle uint32
	modelAccess         ModelAccess

	// Called when binding a shader or model that can't be bound. The bind is then skipped.
	ShaderErrorHandler func(ShaderError)
	ModelErrorHandler  func(ModelError)
}

func New(ctx glapi.Context) *Binder {
	return &Binder{
		gl:                 ctx,
		ShaderErrorHandler: LogShaderError,
		ModelErrorHandler:  LogModelError,
	}
}

func (b *Binder) IsWireframe() bool {
	return b.isWireframe
}

func (b *Binder) IsDepthTesting() bool {
	return b.isDepthTesting
}

func (b *Binder) IsCulling() bool {
	return b.isCulling
}

func (b *Binder) CurrentShaderHandle() uint32 {
	return b.currentShaderHandle
}

// CurrentModel returns the bound model, or nil
func (b *Binder) CurrentModel() models.Model {
	return b.modelAccess.Model
}

// Bind makes shader the current program and returns its uniform access.
// A shader without a handle is reported to ShaderErrorHandler and nothing is bound.
func (b *Binder) Bind(shader *shaders.Shader) *shaders.Access {

	if shader == nil || shader.Handle == 0 {
		b.ShaderErrorHandler(ShaderError{Shader: shader, Reason: ShaderReasonNoHandle})
		if shader == nil {
			return nil
		}
		return shader.Access
	}

	if b.currentShaderHandle != shader.Handle {
		b.currentShaderHandle = shader.Handle
		b.gl.UseProgram(b.currentShaderHandle)
	}

	return shader.Access
}

// BindModel binds the vao of model. Models that are nil, were never setup or were freed
// are reported to ModelErrorHandler, nothing is bound and the returned access draws nothing.
func (b *Binder) BindModel(model models.Model) *ModelAccess {

	if model == nil {
		b.ModelErrorHandler(ModelError{Reason: ModelReasonNoVAO})
		return &ModelAccess{}
	}

	// Freed is checked first because freeing also clears the vao handle
	if model.WasFreed() {
		b.ModelErrorHandler(ModelError{Reason: ModelReasonWasFreed})
		return &ModelAccess{}
	}

	if model.VaoId() == 0 {
		b.ModelErrorHandler(ModelError{Reason: ModelReasonNoVAO})
		return &ModelAccess{}
	}

	if b.modelAccess.Model == nil || b.modelAccess.Model.VaoId() != model.VaoId() {
		b.modelAccess.Model = model
		b.gl.BindVertexArray(model.VaoId())
	}

	return &b.modelAccess
}

// InvalidateModel forgets the bound model without touching GL, so the next BindModel
// always binds. Call it after anything that binds a vao directly, like
// DynamicModel.RefreshModelData or MutableModel.Build.
func (b *Binder) InvalidateModel() {
	b.modelAccess.Model = nil
}

func (b *Binder) UnbindShader() {

	if b.currentShaderHandle == 0 {
		return
	}

	b.currentShaderHandle = 0
	b.gl.UseProgram(0)
}

func (b *Binder) UnbindModel() {

	if b.modelAccess.Model == nil {
		return
	}

	b.modelAccess.Model = nil
	b.gl.BindVertexArray(0)
}

// Reset forgets all cached state without touching GL. Use it when something outside the
// binder (a recreated context, a third party renderer) changed the state behind its back.
func (b *Binder) Reset() {
	b.currentShaderHandle = 0
	b.modelAccess.Model = nil
	b.isWireframe = false
	b.isDepthTesting = false
	b.isCulling = false
}

// EnableWireframe enables wireframe mode
func (b *Binder) EnableWireframe() {
	if !b.isWireframe {
		b.gl.PolygonMode(glapi.FRONT_AND_BACK, glapi.LINE)
		b.isWireframe = true
	}
}

// DisableWireframe disables wireframe mode
func (b *Binder) DisableWireframe() {
	if b.isWireframe {
		b.gl.PolygonMode(glapi.FRONT_AND_BACK, glapi.FILL)
		b.isWireframe = false
	}
}

// EnableDepthTest enables depth testing
func (b *Binder) EnableDepthTest() {
	if !b.isDepthTesting {
		b.gl.Enable(glapi.DEPTH_TEST)
		b.isDepthTesting = true
	}
}

// DisableDepthTest disables depth testing
func (b *Binder) DisableDepthTest() {
	if b.isDepthTesting {
		b.gl.Disable(glapi.DEPTH_TEST)
		b.isDepthTesting = false
	}
}

// EnableCulling enables face culling
func (b *Binder) EnableCulling() {
	if !b.isCulling {
		b.gl.Enable(glapi.CULL_FACE)
		b.isCulling = true
	}
}

// DisableCulling disables face culling
func (b *Binder) DisableCulling() {
	if b.isCulling {
		b.gl.Disable(glapi.CULL_FACE)
		b.isCulling = false
	}
}

// SetWireframe, SetDepthTest and SetCulling are the toggles in boolean form, for config driven setups

func (b *Binder) SetWireframe(enabled bool) {
	if enabled {
		b.EnableWireframe()
	} else {
		b.DisableWireframe()
	}
}

func (b *Binder) SetDepthTest(enabled bool) {
	if enabled {
		b.EnableDepthTest()
	} else {
		b.DisableDepthTest()
	}
}

func (b *Binder) SetCulling(enabled bool) {
	if enabled {
		b.EnableCulling()
	} else {
		b.DisableCulling()
	}
}
