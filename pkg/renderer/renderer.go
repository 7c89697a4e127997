// pkg/renderer/renderer.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderStage identifies the pipeline stage a shader is compiled for.
type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex shader"
	case FragmentShader:
		return "fragment shader"
	default:
		return fmt.Sprintf("shader stage %d", int(s))
	}
}

// Device is the small slice of a graphics API that is needed to draw
// line geometry with a shader program. Handles are opaque non-zero
// identifiers; zero never names a live object.
//
// All methods must be called from the thread on which the device's
// context is current.
type Device interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderCompiled reports the compile status of the shader.
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramLinked reports the link status of the program.
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 if the program has no active uniform of
	// the given name.
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform4(location int32, v [4]float32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	CreateBuffer() uint32
	BindArrayBuffer(buffer uint32)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes float vertex attribute index in the
	// currently bound array buffer; stride and offset are in bytes.
	VertexAttribPointer(index uint32, components int32, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	// BufferData replaces the contents of the currently bound array
	// buffer with the given vertices.
	BufferData(vertices [][2]float32)

	// DrawLines draws count vertices starting at first as independent
	// line segments.
	DrawLines(first, count int32)
}

// RendererStats encapsulates assorted statistics from rendering.
type RendererStats struct {
	Uploads     int
	BufferBytes int
	DrawCalls   int
	Lines       int
}

func (rs *RendererStats) String() string {
	return fmt.Sprintf("%d uploads (%.2f KiB), %d draw calls: %d lines",
		rs.Uploads, float32(rs.BufferBytes)/1024, rs.DrawCalls, rs.Lines)
}

func (rs *RendererStats) Merge(s RendererStats) {
	rs.Uploads += s.Uploads
	rs.BufferBytes += s.BufferBytes
	rs.DrawCalls += s.DrawCalls
	rs.Lines += s.Lines
}

func (rs RendererStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("uploads", rs.Uploads),
		slog.Int("buffer_bytes", rs.BufferBytes),
		slog.Int("draw_calls", rs.DrawCalls),
		slog.Int("lines", rs.Lines),
	)
}
