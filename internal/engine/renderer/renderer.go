// Package renderer uploads generated meshes to OpenGL and draws them.
package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/debug"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/lighting"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/shader"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/logger"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram uint32
	locModel    int32
	locView     int32
	locProj     int32
	locMode     int32
	locSunDir   int32
	locSunColor int32
	locAmbient  int32

	lineProgram  uint32
	locViewProj  int32
	lineVAO      uint32
	lineVBO      uint32
	lineCapacity int

	Sun lighting.Sun
}

// GPUMesh is a mesh resident in GPU buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		Sun:    lighting.DefaultSun(),
	}

	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.meshProgram, err = shader.CompileProgram(shader.MeshVertex, shader.MeshFragment)
	if err != nil {
		return nil, errors.Wrap(err, "mesh program")
	}
	r.locModel = shader.MustGetUniform(r.meshProgram, "uModel")
	r.locView = shader.MustGetUniform(r.meshProgram, "uView")
	r.locProj = shader.MustGetUniform(r.meshProgram, "uProjection")
	r.locMode = shader.MustGetUniform(r.meshProgram, "uMode")
	r.locSunDir = shader.GetUniform(r.meshProgram, "uSunDir")
	r.locSunColor = shader.GetUniform(r.meshProgram, "uSunColor")
	r.locAmbient = shader.GetUniform(r.meshProgram, "uAmbient")

	r.lineProgram, err = shader.CompileProgram(shader.LineVertex, shader.LineFragment)
	if err != nil {
		r.Close()
		return nil, errors.Wrap(err, "line program")
	}
	r.locViewProj = shader.MustGetUniform(r.lineProgram, "uViewProj")
	r.createLineBuffers()

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.meshProgram != 0 {
		gl.DeleteProgram(r.meshProgram)
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetWireframe switches polygon rasterization between fill and line.
func (r *Renderer) SetWireframe(on bool) {
	mode := uint32(gl.FILL)
	if on {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
}

// Upload copies a mesh into new GPU buffers.
func (r *Renderer) Upload(m *geometry.Mesh[geometry.VertexPCUTBN]) (*GPUMesh, error) {
	if len(m.Vertices) == 0 {
		return nil, errors.New("upload: mesh has no vertices")
	}
	data := PackVertices(m.Vertices)

	gm := &GPUMesh{indexed: m.Indexed()}
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	attrib(shader.AttribPosition, 3, VertexStride, offsetPosition)
	attrib(shader.AttribColor, 4, VertexStride, offsetColor)
	attrib(shader.AttribUV, 2, VertexStride, offsetUV)
	attrib(shader.AttribTangent, 3, VertexStride, offsetTangent)
	attrib(shader.AttribBitangent, 3, VertexStride, offsetBitangent)
	attrib(shader.AttribNormal, 3, VertexStride, offsetNormal)

	if gm.indexed {
		gl.GenBuffers(1, &gm.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
		gm.count = int32(len(m.Indices))
	} else {
		gm.count = int32(len(m.Vertices))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("mesh uploaded",
		zap.Uint32("vao", gm.vao),
		zap.Int32("count", gm.count),
		zap.Bool("indexed", gm.indexed),
	)
	return gm, nil
}

// attrib enables a float attribute at the given float offset.
func attrib(loc uint32, size int32, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, stride, uintptr(offset*4))
	gl.EnableVertexAttribArray(loc)
}

// Delete releases the GPU buffers.
func (gm *GPUMesh) Delete() {
	if gm.ebo != 0 {
		gl.DeleteBuffers(1, &gm.ebo)
	}
	gl.DeleteBuffers(1, &gm.vbo)
	gl.DeleteVertexArrays(1, &gm.vao)
}

// DrawMesh draws gm with the given transforms and shading mode.
func (r *Renderer) DrawMesh(gm *GPUMesh, model, view, proj mgl32.Mat4, mode int32) {
	gl.UseProgram(r.meshProgram)
	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.locProj, 1, false, &proj[0])
	gl.Uniform1i(r.locMode, mode)
	gl.Uniform3fv(r.locSunDir, 1, &r.Sun.Direction[0])
	gl.Uniform3fv(r.locSunColor, 1, &r.Sun.Color[0])
	gl.Uniform3fv(r.locAmbient, 1, &r.Sun.Ambient[0])

	gl.BindVertexArray(gm.vao)
	if gm.indexed {
		gl.DrawElements(gl.TRIANGLES, gm.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, gm.count)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) createLineBuffers() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, LineStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, LineStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// DrawLines streams overlay lines and draws them with depth testing.
func (r *Renderer) DrawLines(lines []debug.LineVertex, viewProj mgl32.Mat4) {
	if len(lines) == 0 {
		return
	}
	data := PackLines(lines)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	if len(data) > r.lineCapacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
		r.lineCapacity = len(data)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.UseProgram(r.lineProgram)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])
	gl.BindVertexArray(r.lineVAO)
	gl.DrawArrays(gl.LINES, 0, int32(len(lines)))
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
