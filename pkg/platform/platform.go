// pkg/platform/platform.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

// Platform is the interface that abstracts the window and graphics
// context that text is drawn into.
type Platform interface {
	// ProcessEvents handles all pending window events.
	ProcessEvents()
	// PostRender performs the buffer swap.
	PostRender()
	// Dispose is called when the application is shutting down and is when
	// resources are be freed.
	Dispose()
	// ShouldStop returns true if the window is to be closed.
	ShouldStop() bool
	// SetWindowTitle sets the title of the application window.
	SetWindowTitle(text string)
	// EnableVSync specifies whether v-sync should be used when rendering;
	// v-sync is on by default and should only be disabled for benchmarking.
	EnableVSync(sync bool)
	// WindowSize returns the size of the window.
	WindowSize() [2]int
	// FramebufferSize returns the dimension of the framebuffer.
	FramebufferSize() [2]int
}

type Config struct {
	InitialWindowSize     [2]int
	InitialWindowPosition [2]int

	EnableMSAA bool

	// Hidden windows are never shown; they only provide a context.
	Hidden bool
	Title  string
}
