// Package viewer implements the interactive mesh viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/catalog"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/config"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/camera"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/debug"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/input"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/renderer"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/timer"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/window"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/logger"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

const title = "meshview"

var boundsColor = [4]float32{1, 0.85, 0.2, 1}

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	sched    *timer.Scheduler
	shots    *debug.ScreenshotCapture

	state       *State
	captureNext bool
	gpu         map[int]*renderer.GPUMesh
	bounds      []math.AABB3
	grid        []debug.LineVertex
}

// New opens the window and prepares the items for display.
func New(cfg *config.Config, items []catalog.Item) (*Viewer, error) {
	if len(items) == 0 {
		return nil, errors.New("nothing to view: catalog is empty")
	}

	v := &Viewer{
		cfg:    cfg,
		log:    logger.Named("viewer"),
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		sched:  timer.New(),
		shots:  debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "meshview"),
		state:  NewState(items, cfg.Viewer),
		gpu:    make(map[int]*renderer.GPUMesh),
		bounds: make([]math.AABB3, len(items)),
		grid:   debug.GridLines(10, 1),
	}
	for i := range items {
		v.bounds[i] = geometry.GetVertexBounds3D(items[i].Mesh.Vertices)
	}

	v.camera.FOV = cfg.Viewer.FOV
	v.camera.DragSensitivity = cfg.Viewer.OrbitSpeed
	v.camera.ZoomStep = cfg.Viewer.ZoomStep

	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("items", len(items)),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create window")
	}

	// The renderer needs the GL context the window just created
	w, h := v.window.GetDrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		v.window.Close()
		return nil, errors.Wrap(err, "failed to create renderer")
	}

	if cfg.Viewer.CycleInterval > 0 {
		v.sched.Every(cfg.Viewer.CycleInterval, func() {
			if !v.state.Paused {
				v.state.Next()
				v.selectionChanged()
			}
		})
	}

	v.selectionChanged()
	return v, nil
}

// Run starts the main loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var minFrame time.Duration
	if v.cfg.Graphics.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
	}

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			if err := v.handleEvent(event); err != nil {
				return err
			}
		}

		v.sched.Advance(dt)

		if err := v.render(); err != nil {
			return errors.Wrap(err, "render error")
		}
		if v.captureNext {
			v.captureNext = false
			v.capture()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.Viewer.ShowFPS {
				v.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	for _, gm := range v.gpu {
		gm.Delete()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		w, h := v.window.GetDrawableSize()
		v.renderer.Resize(w, h)

	case input.EventMouseMove:
		if v.input.IsButtonHeld(sdl.BUTTON_LEFT) {
			v.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(event.Wheel)

	case input.EventKeyDown:
		action := KeyAction(event.Key)
		if event.Repeat && action != ActionNext && action != ActionPrev {
			return nil
		}
		return v.perform(action)
	}
	return nil
}

func (v *Viewer) perform(action Action) error {
	switch action {
	case ActionQuit:
		v.running = false
	case ActionResetCamera:
		v.camera.FitToBounds(v.bounds[v.state.Index()])
	case ActionScreenshot:
		v.captureNext = true
	default:
		if v.state.Apply(action) {
			v.selectionChanged()
		} else {
			v.updateTitle()
		}
	}
	return nil
}

// capture reads the finished back buffer before it is presented.
func (v *Viewer) capture() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// selectionChanged refits the camera and uploads the new item on first view.
func (v *Viewer) selectionChanged() {
	idx := v.state.Index()
	item := v.state.Current()
	if _, ok := v.gpu[idx]; !ok {
		gm, err := v.renderer.Upload(&item.Mesh)
		if err != nil {
			v.log.Warn("skipping item", zap.String("name", item.Name), zap.Error(err))
		} else {
			v.gpu[idx] = gm
		}
	}
	v.camera.FitToBounds(v.bounds[idx])
	v.updateTitle()

	v.log.Debug("showing item",
		zap.String("name", item.Name),
		zap.String("kind", string(item.Kind)),
		zap.Int("triangles", item.Mesh.TriangleCount()),
	)
}

func (v *Viewer) updateTitle() {
	item := v.state.Current()
	status := ""
	if v.cfg.Viewer.CycleInterval > 0 && v.state.Paused {
		status = " [paused]"
	}
	v.window.SetTitle(fmt.Sprintf("%s - %s (%s) %d/%d, %d tris, %s%s",
		title, item.Name, item.Kind, v.state.Index()+1, v.state.Len(),
		item.Mesh.TriangleCount(), v.state.ShadingName(), status))
}

// render draws the current frame.
func (v *Viewer) render() error {
	view := v.camera.ViewMatrix()
	proj := v.camera.ProjectionMatrix(v.renderer.Aspect())

	v.renderer.Begin()

	if gm, ok := v.gpu[v.state.Index()]; ok {
		v.renderer.SetWireframe(v.state.Wireframe)
		v.renderer.DrawMesh(gm, mgl32.Ident4(), view, proj, v.state.Shading)
		v.renderer.SetWireframe(false)
	}

	viewProj := proj.Mul4(view)
	if v.state.ShowGrid {
		v.renderer.DrawLines(v.grid, viewProj)
	}
	if v.state.ShowBounds {
		lines := debug.BoundsLines(v.bounds[v.state.Index()], debug.DefaultBoundsPadding, boundsColor)
		v.renderer.DrawLines(lines, viewProj)
	}
	return nil
}
