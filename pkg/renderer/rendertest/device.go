// pkg/renderer/rendertest/device.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package rendertest provides an in-memory renderer.Device that records
// the calls made to it, so that code driving the GPU can be tested
// without a graphics context.
package rendertest

import (
	"slices"
	"strings"

	"github.com/strokefont/systext/pkg/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Device implements renderer.Device. A shader fails to compile if its
// source lacks a main function or if CompileLogs has an entry for its
// stage; a program fails to link if FailLink is set or LinkLog is
// non-empty.
type Device struct {
	CompileLogs map[renderer.ShaderStage]string
	FailLink    bool
	LinkLog     string
	// Uniforms lists the names that UniformLocation resolves.
	Uniforms []string

	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	VertexArrays map[uint32]bool
	// Buffers maps live buffer handles to their current contents.
	Buffers map[uint32][][2]float32

	BoundProgram     uint32
	BoundVertexArray uint32
	BoundBuffer      uint32

	Attribs        map[uint32]Attrib
	UniformValues  map[int32]any
	Draws          []Draw
	BufferUploads  int
	DeletedObjects int

	next uint32
}

type Shader struct {
	Stage    renderer.ShaderStage
	Source   string
	Compiled bool
}

type Program struct {
	Shaders []uint32
	Linked  bool
}

type Attrib struct {
	// VertexArray and Buffer were bound when the attribute was specified.
	VertexArray uint32
	Buffer      uint32
	Components  int32
	Stride      int32
	Offset      int
	Enabled     bool
}

type Draw struct {
	Program     uint32
	VertexArray uint32
	First       int32
	Count       int32
	// Vertices holds the vertices the draw read from the buffer bound to
	// the vertex array's attribute 0.
	Vertices [][2]float32
}

var _ renderer.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{
		CompileLogs:   make(map[renderer.ShaderStage]string),
		Uniforms:      []string{"projection", "color"},
		Shaders:       make(map[uint32]*Shader),
		Programs:      make(map[uint32]*Program),
		VertexArrays:  make(map[uint32]bool),
		Buffers:       make(map[uint32][][2]float32),
		Attribs:       make(map[uint32]Attrib),
		UniformValues: make(map[int32]any),
	}
}

// LiveObjects returns the number of handles that have been created and not
// yet deleted.
func (d *Device) LiveObjects() int {
	return len(d.Shaders) + len(d.Programs) + len(d.VertexArrays) + len(d.Buffers)
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

func (d *Device) CreateShader(stage renderer.ShaderStage) uint32 {
	h := d.handle()
	d.Shaders[h] = &Shader{Stage: stage}
	return h
}

func (d *Device) ShaderSource(shader uint32, source string) {
	if s, ok := d.Shaders[shader]; ok {
		s.Source = source
	}
}

func (d *Device) CompileShader(shader uint32) {
	if s, ok := d.Shaders[shader]; ok {
		_, fail := d.CompileLogs[s.Stage]
		s.Compiled = !fail && strings.Contains(s.Source, "void main(")
	}
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	s, ok := d.Shaders[shader]
	return ok && s.Compiled
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	s, ok := d.Shaders[shader]
	if !ok || s.Compiled {
		return ""
	}
	if l, ok := d.CompileLogs[s.Stage]; ok {
		return l
	}
	return "0:1(1): error: syntax error, unexpected end of file"
}

func (d *Device) DeleteShader(shader uint32) {
	if _, ok := d.Shaders[shader]; ok {
		delete(d.Shaders, shader)
		d.DeletedObjects++
	}
}

func (d *Device) CreateProgram() uint32 {
	h := d.handle()
	d.Programs[h] = &Program{}
	return h
}

func (d *Device) AttachShader(program, shader uint32) {
	if p, ok := d.Programs[program]; ok {
		p.Shaders = append(p.Shaders, shader)
	}
}

func (d *Device) LinkProgram(program uint32) {
	p, ok := d.Programs[program]
	if !ok {
		return
	}
	p.Linked = !d.FailLink && d.LinkLog == "" && len(p.Shaders) == 2 &&
		slices.IndexFunc(p.Shaders, func(s uint32) bool {
			sh, ok := d.Shaders[s]
			return !ok || !sh.Compiled
		}) == -1
}

func (d *Device) ProgramLinked(program uint32) bool {
	p, ok := d.Programs[program]
	return ok && p.Linked
}

func (d *Device) ProgramInfoLog(program uint32) string {
	if p, ok := d.Programs[program]; !ok || p.Linked {
		return ""
	}
	return d.LinkLog
}

func (d *Device) UseProgram(program uint32) {
	d.BoundProgram = program
}

func (d *Device) DeleteProgram(program uint32) {
	if _, ok := d.Programs[program]; ok {
		delete(d.Programs, program)
		d.DeletedObjects++
	}
	if d.BoundProgram == program {
		d.BoundProgram = 0
	}
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	if p, ok := d.Programs[program]; !ok || !p.Linked {
		return -1
	}
	return int32(slices.Index(d.Uniforms, name))
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	if location >= 0 {
		d.UniformValues[location] = m
	}
}

func (d *Device) Uniform4(location int32, v [4]float32) {
	if location >= 0 {
		d.UniformValues[location] = v
	}
}

func (d *Device) CreateVertexArray() uint32 {
	h := d.handle()
	d.VertexArrays[h] = true
	return h
}

func (d *Device) BindVertexArray(vao uint32) {
	d.BoundVertexArray = vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	if d.VertexArrays[vao] {
		delete(d.VertexArrays, vao)
		d.DeletedObjects++
	}
	if d.BoundVertexArray == vao {
		d.BoundVertexArray = 0
	}
}

func (d *Device) CreateBuffer() uint32 {
	h := d.handle()
	d.Buffers[h] = nil
	return h
}

func (d *Device) BindArrayBuffer(buffer uint32) {
	d.BoundBuffer = buffer
}

func (d *Device) DeleteBuffer(buffer uint32) {
	if _, ok := d.Buffers[buffer]; ok {
		delete(d.Buffers, buffer)
		d.DeletedObjects++
	}
	if d.BoundBuffer == buffer {
		d.BoundBuffer = 0
	}
}

func (d *Device) VertexAttribPointer(index uint32, components int32, stride int32, offset int) {
	a := d.Attribs[index]
	a.VertexArray, a.Buffer = d.BoundVertexArray, d.BoundBuffer
	a.Components, a.Stride, a.Offset = components, stride, offset
	d.Attribs[index] = a
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	a := d.Attribs[index]
	a.Enabled = true
	d.Attribs[index] = a
}

func (d *Device) BufferData(vertices [][2]float32) {
	if _, ok := d.Buffers[d.BoundBuffer]; !ok {
		return
	}
	d.Buffers[d.BoundBuffer] = slices.Clone(vertices)
	d.BufferUploads++
}

func (d *Device) DrawLines(first, count int32) {
	draw := Draw{
		Program:     d.BoundProgram,
		VertexArray: d.BoundVertexArray,
		First:       first,
		Count:       count,
	}
	if a, ok := d.Attribs[0]; ok && a.Enabled && a.VertexArray == d.BoundVertexArray {
		buf := d.Buffers[a.Buffer]
		end := min(int(first+count), len(buf))
		if int(first) < end {
			draw.Vertices = slices.Clone(buf[first:end])
		}
	}
	d.Draws = append(d.Draws, draw)
}
