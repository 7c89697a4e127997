// pkg/platform/glfw.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"fmt"

	"github.com/strokefont/systext/pkg/log"
	"github.com/strokefont/systext/pkg/math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwPlatform implements the Platform interface using GLFW.
type glfwPlatform struct {
	window *glfw.Window
	config *Config
	lg     *log.Logger
}

// New creates a window with an OpenGL 3.3 core context and makes the
// context current on the calling thread, which must be the main thread.
func New(config *Config, lg *log.Logger) (Platform, error) {
	lg.Info("Starting GLFW initialization")
	err := glfw.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	lg.Infof("GLFW: %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if config.InitialWindowSize[0] <= 0 || config.InitialWindowSize[1] <= 0 {
		config.InitialWindowSize = [2]int{1024, 768}
	}
	if !config.Hidden {
		if m := glfw.GetPrimaryMonitor(); m != nil {
			vm := m.GetVideoMode()
			config.InitialWindowSize[0] = math.Clamp(config.InitialWindowSize[0], 64, vm.Width)
			config.InitialWindowSize[1] = math.Clamp(config.InitialWindowSize[1], 64, vm.Height)

			// If window position is out of bounds, create the window at (100, 100)
			if config.InitialWindowPosition[0] < 0 || config.InitialWindowPosition[1] < 0 ||
				config.InitialWindowPosition[0] > vm.Width || config.InitialWindowPosition[1] > vm.Height {
				config.InitialWindowPosition = [2]int{100, 100}
			}
		}
	}
	if config.Title == "" {
		config.Title = "systext"
	}

	// Start with an invisible window so that we can position it first
	glfw.WindowHint(glfw.Visible, glfw.False)
	if config.EnableMSAA {
		glfw.WindowHint(glfw.Samples, 4)
	}

	window, err := glfw.CreateWindow(config.InitialWindowSize[0], config.InitialWindowSize[1], config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if !config.Hidden {
		window.SetPos(config.InitialWindowPosition[0], config.InitialWindowPosition[1])
		window.Show()
	}
	window.MakeContextCurrent()

	platform := &glfwPlatform{
		config: config,
		window: window,
		lg:     lg,
	}
	window.SetKeyCallback(platform.keyCallback)
	platform.EnableVSync(true)

	lg.Info("Finished GLFW initialization")

	return platform, nil
}

func (g *glfwPlatform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (g *glfwPlatform) EnableVSync(sync bool) {
	if sync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (g *glfwPlatform) Dispose() {
	g.window.Destroy()
	glfw.Terminate()
}

func (g *glfwPlatform) ShouldStop() bool {
	return g.window.ShouldClose()
}

func (g *glfwPlatform) ProcessEvents() {
	glfw.PollEvents()
}

func (g *glfwPlatform) PostRender() {
	g.window.SwapBuffers()
}

func (g *glfwPlatform) SetWindowTitle(text string) {
	g.window.SetTitle(text)
}

func (g *glfwPlatform) WindowSize() [2]int {
	w, h := g.window.GetSize()
	return [2]int{w, h}
}

func (g *glfwPlatform) FramebufferSize() [2]int {
	w, h := g.window.GetFramebufferSize()
	return [2]int{w, h}
}
