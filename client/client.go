// Package client owns the SDL window and GL context and drives the load phases:
// PreInit -> Init (window + context) -> GL (GL objects created) -> PostGL (frame loop) -> Done.
package client

import (
	"runtime"

	"github.com/bloeys/gglm/gglm"
	"github.com/usharplibs/engine/assert"
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/config"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/glapi/gogl"
	"github.com/usharplibs/engine/glh"
	"github.com/usharplibs/engine/input"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/shaders"
	"github.com/usharplibs/engine/ui"
	"github.com/veandco/go-sdl2/sdl"
)

type Client struct {
	Cfg        config.Config
	ModelUsage buffers.BufUsage

	SDLWin *sdl.Window
	GlCtx  sdl.GLContext
	GL     glapi.Context
	Binder *glh.Binder

	UI       ui.Layer
	UIShader *shaders.Shader

	EventCallbacks []func(sdl.Event)

	// OnSetupGL runs during LoadStateGL, after the UI elements are setup
	OnSetupGL func(c *Client) error
	// OnFrame runs every frame before the UI is rendered
	OnFrame func(c *Client, time float64)
	// OnUIClick runs when the left mouse button goes down over an enabled UI element
	OnUIClick func(c *Client, r ui.Renderer)

	loadState ui.LoadState
}

func New(cfg config.Config) (*Client, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	usage, _ := cfg.Render.Usage()
	return &Client{
		Cfg:        cfg,
		ModelUsage: usage,
		loadState:  ui.LoadStatePreInit,
	}, nil
}

func (c *Client) LoadState() ui.LoadState {
	return c.loadState
}

// AddUIElement adds an element to the UI. Elements added before LoadStateGL are setup with the
// rest of the UI, and ones added during it (e.g. from OnSetupGL) are setup right away.
// Adding an element after that phase is fatal since it could never be setup.
func (c *Client) AddUIElement(r ui.Renderer) {
	if err := c.UI.Attach(c.loadState, c.GL, r); err != nil {
		logging.Fatal("Failed to add ui element", "err", err)
	}
}

// Init creates the window and GL context. It must be called from the main goroutine.
func (c *Client) Init() error {

	assert.T(c.loadState == ui.LoadStatePreInit, "Client.Init called during %s", c.loadState)

	runtime.LockOSThread()

	if err := initSDL(); err != nil {
		return err
	}

	win := &c.Cfg.Window
	sdlWin, err := sdl.CreateWindow(win.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, win.Width, win.Height, uint32(WindowFlags_OPENGL|WindowFlags_RESIZABLE))
	if err != nil {
		return err
	}
	c.SDLWin = sdlWin

	c.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		return err
	}

	glCtx, err := gogl.Init()
	if err != nil {
		return err
	}

	c.GL = glCtx
	c.Binder = glh.New(glCtx)
	SetVSync(win.VSync)

	c.loadState = ui.LoadStateInit
	logging.Info("Client initialized", "title", win.Title, "width", win.Width, "height", win.Height)
	return nil
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

// SetupGL moves to LoadStateGL, applies the render config, and sets up the UI.
// Any setup failure here is fatal because nothing can be drawn without it.
func (c *Client) SetupGL() {

	assert.T(c.loadState == ui.LoadStateInit, "Client.SetupGL called during %s", c.loadState)
	c.loadState = ui.LoadStateGL

	c.GL.ClearColor(0, 0, 0, 1)
	c.GL.Enable(glapi.BLEND)
	c.GL.BlendFunc(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA)

	c.Binder.SetDepthTest(c.Cfg.Render.DepthTest)
	c.Binder.SetCulling(c.Cfg.Render.CullFace)
	c.Binder.SetWireframe(c.Cfg.Render.Wireframe)

	var err error
	c.UIShader, err = shaders.NewShader(c.GL, "ui", []byte(uiShaderSrc))
	if err != nil {
		logging.Fatal("Failed to compile ui shader", "err", err)
	}

	if err := c.UI.SetupGL(c.loadState, c.GL); err != nil {
		logging.Fatal("Failed to setup ui", "err", err)
	}

	if c.OnSetupGL != nil {
		if err := c.OnSetupGL(c); err != nil {
			logging.Fatal("Failed to setup client GL", "err", err)
		}
	}

	// Model setup above binds vaos directly
	c.Binder.InvalidateModel()

	c.handleWindowResize()
	c.loadState = ui.LoadStatePostGL
}

// Run pumps events and renders until the window is closed
func (c *Client) Run() {

	assert.T(c.loadState == ui.LoadStatePostGL, "Client.Run called during %s", c.loadState)

	for {

		c.handleInputs()
		if input.IsQuitClicked() {
			break
		}

		if input.KeyClicked(sdl.K_F1) {
			c.Binder.SetWireframe(!c.Binder.IsWireframe())
		}

		if input.MouseClicked(sdl.BUTTON_LEFT) && c.OnUIClick != nil {
			if r := c.UI.Hit(input.MousePos()); r != nil {
				c.OnUIClick(c, r)
			}
		}

		time := float64(sdl.GetTicks()) / 1000

		c.GL.Clear(glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT)

		if c.OnFrame != nil {
			c.OnFrame(c, time)
		}

		// UI is drawn on top of everything and shouldn't be culled or depth tested
		depthTest, culling := c.Binder.IsDepthTesting(), c.Binder.IsCulling()
		c.Binder.DisableDepthTest()
		c.Binder.DisableCulling()

		if access := c.Binder.Bind(c.UIShader); access != nil {
			access.SetFloat32("time", float32(time))
		}
		c.UI.Render(c.Binder, c.UIShader, time)

		c.Binder.SetDepthTest(depthTest)
		c.Binder.SetCulling(culling)

		c.SDLWin.GLSwap()
	}

	c.loadState = ui.LoadStateDone
}

func (c *Client) handleInputs() {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(c.EventCallbacks); i++ {
			c.EventCallbacks[i](event)
		}

		input.HandleEvent(event)

		if e, ok := event.(*sdl.WindowEvent); ok && e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			c.handleWindowResize()
		}
	}
}

func (c *Client) handleWindowResize() {

	fbWidth, fbHeight := c.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	c.GL.Viewport(0, 0, fbWidth, fbHeight)

	// Ui works in window pixels with the origin at the top left
	winWidth, winHeight := c.SDLWin.GetSize()
	proj := gglm.Ortho(0, float32(winWidth), float32(winHeight), 0, -1000, 1000).Mat4
	c.UIShader.Access.SetMat4("projMat", &proj)
}

func (c *Client) Destroy() {

	if c.UIShader != nil {
		c.UIShader.Delete(c.GL)
	}

	if c.GlCtx != nil {
		sdl.GLDeleteContext(c.GlCtx)
	}

	if c.SDLWin != nil {
		if err := c.SDLWin.Destroy(); err != nil {
			logging.Error("Failed to destroy window", "err", err)
		}
	}

	sdl.Quit()
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}
