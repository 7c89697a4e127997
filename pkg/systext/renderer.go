// pkg/systext/renderer.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package systext

import (
	"log/slog"

	"github.com/strokefont/systext/pkg/log"
	"github.com/strokefont/systext/pkg/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws text laid out with a GlyphTable as line segments, using
// a single draw call. All of its methods must be called on the thread
// where the device's graphics context is current.
type Renderer struct {
	dev    renderer.Device
	lg     *log.Logger
	glyphs *GlyphTable

	program       uint32
	vao           uint32
	buffer        uint32
	projectionLoc int32
	colorLoc      int32

	projection mgl32.Mat4
	color      [4]float32

	vertices    [][2]float32
	numVertices int

	stats renderer.RendererStats
}

// NewRenderer returns a renderer that uses the built-in stroke font. Init
// must be called before it draws anything.
func NewRenderer(dev renderer.Device, lg *log.Logger) *Renderer {
	return &Renderer{
		dev:        dev,
		lg:         lg,
		glyphs:     StrokeFont(),
		projection: mgl32.Ident4(),
		color:      [4]float32{1, 1, 1, 1},
	}
}

// Init builds the shader program and vertex array using the built-in
// shaders.
func (r *Renderer) Init() error {
	return r.InitShaders(vertexShaderSource, fragmentShaderSource)
}

// InitShaders is like Init but with the given shader sources. The vertex
// shader must take the position as a vec2 at attribute location 0. On
// failure it returns a *renderer.CompileError or *renderer.LinkError and
// the Renderer is left uninitialized.
func (r *Renderer) InitShaders(vertexShader, fragmentShader string) error {
	r.Dispose()

	program, err := renderer.NewProgram(r.dev, vertexShader, fragmentShader)
	if err != nil {
		r.lg.Error("Unable to create system text program", slog.Any("error", err))
		return err
	}
	r.program = program
	r.projectionLoc = r.dev.UniformLocation(program, projectionUniform)
	r.colorLoc = r.dev.UniformLocation(program, colorUniform)

	r.vao = r.dev.CreateVertexArray()
	r.dev.BindVertexArray(r.vao)

	r.buffer = r.dev.CreateBuffer()
	r.dev.BindArrayBuffer(r.buffer)

	r.dev.VertexAttribPointer(0, 2, 2*4, 0)
	r.dev.EnableVertexAttribArray(0)

	r.lg.Info("Created system text renderer", slog.Int("program", int(r.program)),
		slog.Int("vao", int(r.vao)), slog.Int("buffer", int(r.buffer)))

	// Text may have been set before we had somewhere to put it.
	r.upload()

	return nil
}

// Initialized reports whether Init has succeeded and Dispose hasn't been
// called since.
func (r *Renderer) Initialized() bool {
	return r.program != 0
}

// SetText replaces the text that is drawn. Characters without a glyph are
// skipped.
func (r *Renderer) SetText(lines []TextLine) {
	r.vertices = r.glyphs.Layout(lines)
	if r.Initialized() {
		r.upload()
	}
}

func (r *Renderer) upload() {
	r.dev.BindVertexArray(r.vao)
	r.dev.BindArrayBuffer(r.buffer)
	r.dev.BufferData(r.vertices)
	r.numVertices = len(r.vertices)

	r.stats.Uploads++
	r.stats.BufferBytes += 8 * len(r.vertices)

	r.lg.Debug("Uploaded system text vertices", slog.Int("vertices", r.numVertices))
}

// SetProjection sets the matrix that vertex positions are transformed by.
// It is the identity by default, so positions are in clip space.
func (r *Renderer) SetProjection(m mgl32.Mat4) {
	r.projection = m
}

// SetColor sets the RGBA color of the strokes.
func (r *Renderer) SetColor(rgba [4]float32) {
	r.color = rgba
}

// Render draws the current text. It does nothing before Init.
func (r *Renderer) Render() {
	if !r.Initialized() || r.numVertices == 0 {
		return
	}

	r.dev.UseProgram(r.program)
	if r.projectionLoc >= 0 {
		r.dev.UniformMatrix4(r.projectionLoc, r.projection)
	}
	if r.colorLoc >= 0 {
		r.dev.Uniform4(r.colorLoc, r.color)
	}
	r.dev.BindVertexArray(r.vao)
	r.dev.DrawLines(0, int32(r.numVertices))

	r.stats.DrawCalls++
	r.stats.Lines += r.numVertices / 2
}

// Vertices returns the laid-out vertices of the current text; the slice
// must not be modified.
func (r *Renderer) Vertices() [][2]float32 {
	return r.vertices
}

// VertexCount returns the number of vertices the next Render will draw.
func (r *Renderer) VertexCount() int {
	return r.numVertices
}

func (r *Renderer) Stats() renderer.RendererStats {
	return r.stats
}

// Dispose releases the GPU objects held by the renderer. The current text
// is kept and is uploaded again if Init is called later.
func (r *Renderer) Dispose() {
	if r.buffer != 0 {
		r.dev.DeleteBuffer(r.buffer)
		r.buffer = 0
	}
	if r.vao != 0 {
		r.dev.DeleteVertexArray(r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		r.dev.DeleteProgram(r.program)
		r.program = 0
	}
	r.projectionLoc, r.colorLoc = -1, -1
	r.numVertices = 0
}
