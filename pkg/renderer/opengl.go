// pkg/renderer/opengl.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"strings"

	"github.com/strokefont/systext/pkg/log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// OpenGL implements Device using an OpenGL 3.3 core profile context.
type OpenGL struct {
	lg *log.Logger
}

// NewOpenGL loads the OpenGL entry points; a context must already be
// current on the calling thread.
func NewOpenGL(lg *log.Logger) (*OpenGL, error) {
	lg.Info("Starting OpenGL initialization")
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	lg.Infof("OpenGL vendor %s renderer %s version %s", gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION)))

	lg.Info("Finished OpenGL initialization")
	return &OpenGL{lg: lg}, nil
}

// Check logs any pending OpenGL error.
func (ogl *OpenGL) Check() {
	if err := gl.GetError(); err != gl.NO_ERROR {
		ogl.lg.Errorf("GL error %#x", err)
	}
}

func (ogl *OpenGL) Viewport(x, y, w, h int32) {
	gl.Viewport(x, y, w, h)
}

func (ogl *OpenGL) Clear(rgba [4]float32) {
	gl.ClearColor(rgba[0], rgba[1], rgba[2], rgba[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (ogl *OpenGL) CreateShader(stage ShaderStage) uint32 {
	if stage == FragmentShader {
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return gl.CreateShader(gl.VERTEX_SHADER)
}

func (ogl *OpenGL) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (ogl *OpenGL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (ogl *OpenGL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (ogl *OpenGL) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(buf))
	return trimInfoLog(buf)
}

func (ogl *OpenGL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (ogl *OpenGL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (ogl *OpenGL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (ogl *OpenGL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (ogl *OpenGL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (ogl *OpenGL) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(buf))
	return trimInfoLog(buf)
}

func (ogl *OpenGL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (ogl *OpenGL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (ogl *OpenGL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (ogl *OpenGL) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (ogl *OpenGL) Uniform4(location int32, v [4]float32) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (ogl *OpenGL) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (ogl *OpenGL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (ogl *OpenGL) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (ogl *OpenGL) CreateBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (ogl *OpenGL) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (ogl *OpenGL) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (ogl *OpenGL) VertexAttribPointer(index uint32, components int32, stride int32, offset int) {
	gl.VertexAttribPointer(index, components, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (ogl *OpenGL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (ogl *OpenGL) BufferData(vertices [][2]float32) {
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, 8*len(vertices), gl.Ptr(&vertices[0][0]), gl.STATIC_DRAW)
}

func (ogl *OpenGL) DrawLines(first, count int32) {
	gl.DrawArrays(gl.LINES, first, count)
}

// Drivers pad info logs with NULs and usually end them with a newline.
func trimInfoLog(s string) string {
	return strings.TrimRight(s, "\x00\r\n ")
}
