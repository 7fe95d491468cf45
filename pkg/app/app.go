package app

import (
	"fmt"
	"time"

	"github.com/gregjohnson2017/xenogl/pkg/config"
	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/gfx/gl33"
	"github.com/gregjohnson2017/xenogl/pkg/log"
	"github.com/gregjohnson2017/xenogl/pkg/perf"
	"github.com/gregjohnson2017/xenogl/pkg/util"
	"github.com/veandco/go-sdl2/sdl"
)

// Application holds state for the demo application
type Application struct {
	cfg         *config.Config
	ctx         *gfx.Context
	pipeline    *Pipeline
	texture     *gfx.Texture2D
	watcher     *ShaderWatcher
	postEvtActs chan func()
	done        chan struct{}
	running     bool
	started     time.Time
	ticker      *time.Ticker
	win         *sdl.Window
	glContext   sdl.GLContext
}

// New builds the demo pipeline on the GL context current on win.
func New(win *sdl.Window, glContext sdl.GLContext, cfg *config.Config) (*Application, error) {
	be, err := gl33.New()
	if err != nil {
		return nil, err
	}
	ctx := gfx.NewContext(be)
	ctx.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3])
	ctx.Viewport(0, 0, int(cfg.Window.ScreenWidth), int(cfg.Window.ScreenHeight))
	ctx.Enable(gfx.Blend)

	app := &Application{
		cfg:         cfg,
		ctx:         ctx,
		postEvtActs: make(chan func()),
		done:        make(chan struct{}),
		ticker:      time.NewTicker(time.Second / time.Duration(cfg.Window.FramesPerSecond)),
		win:         win,
		glContext:   glContext,
	}

	if cfg.Texture != "" {
		tex, err := gfx.NewTexture2DFromFile(cfg.Texture)
		if err != nil {
			return nil, fmt.Errorf("load texture: %w", err)
		}
		ctx.AddTexture(tex)
		app.texture = tex
	}

	pipeline, err := app.buildPipeline()
	if err != nil {
		return nil, err
	}
	app.pipeline = pipeline

	if cfg.Shaders.Watch {
		w, err := WatchShaders(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			return nil, fmt.Errorf("watch shaders: %w", err)
		}
		app.watcher = w
		go app.forwardChanges(w.Changes())
	}
	return app, nil
}

func (app *Application) buildPipeline() (*Pipeline, error) {
	vs, fs, err := LoadShaders(app.cfg.Shaders)
	if err != nil {
		return nil, err
	}
	p := NewPipeline(vs, fs)
	p.Resize(app.cfg.Window.ScreenWidth, app.cfg.Window.ScreenHeight)
	if app.texture != nil {
		p.UseTexture(app.texture.Unit())
	}
	if _, err := p.Attach(app.ctx); err != nil {
		p.Delete()
		return nil, err
	}
	return p, nil
}

// forwardChanges turns shader changes into reloads on the render thread
// until changes closes or the application quits.
func (app *Application) forwardChanges(changes <-chan string) {
	for name := range changes {
		select {
		case app.postEvtActs <- app.reload:
			log.Infof("reloading shaders after change to %v", name)
		case <-app.done:
			return
		}
	}
}

// reload swaps in a pipeline built from the current shader sources. A
// pipeline that fails to build leaves the running one in place.
func (app *Application) reload() {
	sw := util.Start()
	defer sw.StopRecordAverage("app.reload")

	p, err := app.buildPipeline()
	if err != nil {
		log.Warnf("shader reload failed: %v", err)
		return
	}
	if err := app.ctx.ActivateProgram(p.Program()); err != nil {
		log.Warnf("shader reload failed: %v", err)
		_ = p.Detach(app.ctx)
		return
	}
	if err := app.pipeline.Detach(app.ctx); err != nil {
		log.Warnf("remove old pipeline: %v", err)
	}
	app.pipeline = p
}

// Start sets up the state for running
func (app *Application) Start() {
	app.running = true
	app.started = time.Now()
	app.win.Show()
}

// HandleSdlEvent checks the type of a given SDL event and runs the method associated with that event
func (app *Application) HandleSdlEvent(e sdl.Event) {
	switch evt := e.(type) {
	case *sdl.QuitEvent:
		app.running = false
	case *sdl.KeyboardEvent:
		app.handleKeyboardEvent(evt)
	case *sdl.WindowEvent:
		app.handleWindowEvent(evt)
	}
}

// PostEventActions performs any necessary actions following event polling
func (app *Application) PostEventActions() {
	// handle all events in pipe
	hasEvents := true
	for hasEvents {
		select {
		case closure := <-app.postEvtActs:
			closure()
		default:
			// no more in pipe
			hasEvents = false
		}
	}

	sw := util.Start()
	app.render()
	sw.StopRecordAverage("app.render")

	app.win.GLSwap()
	<-app.ticker.C
}

func (app *Application) render() {
	var q gl33.Query
	if app.cfg.Log.Metrics {
		q = gl33.StartQuery()
	}
	app.pipeline.Update(time.Since(app.started))
	app.ctx.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)
	app.ctx.Draw(gfx.Triangles)
	if app.cfg.Log.Metrics {
		q.Stop("render")
	}
}

func (app *Application) handleKeyboardEvent(evt *sdl.KeyboardEvent) {
	if evt.Type != sdl.KEYDOWN {
		return
	}
	switch evt.Keysym.Sym {
	case sdl.K_ESCAPE:
		app.running = false
	case sdl.K_r:
		app.reload()
	}
}

func (app *Application) handleWindowEvent(evt *sdl.WindowEvent) {
	if evt.Event != sdl.WINDOWEVENT_RESIZED {
		return
	}
	app.cfg.Window.ScreenWidth = evt.Data1
	app.cfg.Window.ScreenHeight = evt.Data2
	app.ctx.Viewport(0, 0, int(evt.Data1), int(evt.Data2))
	app.pipeline.Resize(evt.Data1, evt.Data2)
}

// Running returns whether the application is still running
func (app *Application) Running() bool {
	return app.running
}

// Quit cleans up resources
func (app *Application) Quit() {
	perf.LogMetrics()

	close(app.done)
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			log.Warnf("close shader watcher: %v", err)
		}
	}
	app.ticker.Stop()
	app.ctx.Delete()

	sdl.GLDeleteContext(app.glContext)
	if err := app.win.Destroy(); err != nil {
		log.Warnf("destroy window: %v", err)
	}
	sdl.Quit()
}
