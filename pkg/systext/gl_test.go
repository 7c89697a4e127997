// pkg/systext/gl_test.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build gl

// These tests need a display and an OpenGL 3.3 driver; run them with
// "go test -tags gl".

package systext

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/strokefont/systext/pkg/platform"
	"github.com/strokefont/systext/pkg/renderer"
)

var (
	glDevice *renderer.OpenGL
	mainFunc = make(chan func())
)

// onMainThread runs f on the thread that owns the GL context; test
// functions run on goroutines of their own. f must not call t.Fatal.
func onMainThread(f func()) {
	done := make(chan struct{})
	mainFunc <- func() {
		defer close(done)
		f()
	}
	<-done
}

func TestMain(m *testing.M) {
	runtime.LockOSThread()

	plat, err := platform.New(&platform.Config{InitialWindowSize: [2]int{64, 64}, Hidden: true}, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skipping OpenGL tests: %v\n", err)
		os.Exit(0)
	}
	glDevice, err = renderer.NewOpenGL(nil)
	if err != nil {
		plat.Dispose()
		fmt.Fprintf(os.Stderr, "skipping OpenGL tests: %v\n", err)
		os.Exit(0)
	}

	result := make(chan int)
	go func() { result <- m.Run() }()

	for {
		select {
		case f := <-mainFunc:
			f()
		case code := <-result:
			plat.Dispose()
			os.Exit(code)
		}
	}
}

func TestOpenGLInitAndRender(t *testing.T) {
	onMainThread(func() {
		r := NewRenderer(glDevice, nil)
		defer r.Dispose()

		if err := r.Init(); err != nil {
			t.Errorf("Init: %v", err)
			return
		}
		r.SetText([]TextLine{{Text: "HELLO", Position: [2]float32{-0.9, 0.5}, CharSize: [2]float32{0.2, 0.3}}})
		glDevice.Clear([4]float32{0, 0, 0, 1})
		r.Render()
		glDevice.Check()

		if r.Stats().DrawCalls != 1 {
			t.Errorf("expected a draw call, got stats %+v", r.Stats())
		}
	})
}

func TestOpenGLCompileError(t *testing.T) {
	onMainThread(func() {
		r := NewRenderer(glDevice, nil)
		defer r.Dispose()

		err := r.InitShaders("#version 330 core\nvoid main() { gl_Position = vec4(0.0) +; }\n", fragmentShaderSource)
		var ce *renderer.CompileError
		if !errors.As(err, &ce) {
			t.Errorf("expected a CompileError, got %v", err)
			return
		}
		if ce.Stage != renderer.VertexShader {
			t.Errorf("error reported for %s", ce.Stage)
		}
		if ce.Log == "" {
			t.Errorf("driver returned an empty info log")
		}
		if r.Initialized() {
			t.Errorf("initialized after compile failure")
		}
	})
}

func TestOpenGLLinkError(t *testing.T) {
	const vertex = `#version 330 core
layout(location = 0) in vec2 inPosition;
out vec3 v2fColor;
void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
    v2fColor = vec3(1.0);
}
`
	const fragment = `#version 330 core
in vec4 v2fColor;
out vec4 outColor;
void main() {
    outColor = v2fColor;
}
`
	onMainThread(func() {
		r := NewRenderer(glDevice, nil)
		defer r.Dispose()

		err := r.InitShaders(vertex, fragment)
		if !errors.Is(err, renderer.ErrLink) {
			t.Errorf("expected a link error, got %v", err)
			return
		}
		if err.Error() == "" {
			t.Errorf("empty link error message")
		}
		if r.Initialized() {
			t.Errorf("initialized after link failure")
		}
	})
}
