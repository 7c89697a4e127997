// cmd/systext/main.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// This file contains the implementation of the main() function, which
// opens a window and draws the given text with the stroke font until
// the window is closed.

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/strokefont/systext/pkg/log"
	"github.com/strokefont/systext/pkg/platform"
	"github.com/strokefont/systext/pkg/renderer"
	"github.com/strokefont/systext/pkg/systext"

	"github.com/apenwarr/fixconsole"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/goforj/godump"
)

var (
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
	text       = flag.String("text", `HELLO\nWORLD`, "text to draw; \\n starts a new row")
	charWidth  = flag.Float64("charwidth", 24, "character advance in pixels")
	charHeight = flag.Float64("charheight", 32, "line advance in pixels")
	width      = flag.Int("width", 800, "initial window width")
	height     = flag.Int("height", 600, "initial window height")
	msaa       = flag.Bool("msaa", false, "enable multisampling")
	frames     = flag.Int("frames", 0, "exit after this many frames (0: run until the window is closed)")
	dump       = flag.Bool("dump", false, "print the laid-out vertices and exit without opening a window")
)

func init() {
	// OpenGL and friends require that all calls be made from the primary
	// application thread, while by default, go allows the main thread to
	// run on different hardware threads over the course of
	// execution. Therefore, we must lock the main thread at startup time.
	runtime.LockOSThread()
}

const margin = 20

// textLines returns the text to draw, anchored at the top-left corner of
// a framebuffer of the given height.
func textLines(fbHeight int) []systext.TextLine {
	return []systext.TextLine{{
		Text:     strings.ReplaceAll(*text, `\n`, "\n"),
		Position: [2]float32{margin, float32(fbHeight - margin)},
		CharSize: [2]float32{float32(*charWidth), float32(*charHeight)},
	}}
}

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	if *dump {
		v := systext.Layout(textLines(*height))
		godump.Dump(v)
		fmt.Printf("%d vertices, %d segments, bounds %+v\n", len(v), len(v)/2,
			systext.StrokeFont().Bounds(textLines(*height)))
		return
	}

	lg := log.New(*logLevel, *logDir)

	if err := run(lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(lg *log.Logger) error {
	plat, err := platform.New(&platform.Config{
		InitialWindowSize: [2]int{*width, *height},
		EnableMSAA:        *msaa,
		Title:             "systext",
	}, lg)
	if err != nil {
		return err
	}
	defer plat.Dispose()

	ogl, err := renderer.NewOpenGL(lg)
	if err != nil {
		return err
	}

	tr := systext.NewRenderer(ogl, lg)
	if err := tr.Init(); err != nil {
		return fmt.Errorf("system text renderer: %w", err)
	}
	defer tr.Dispose()

	var fbSize [2]int
	lastStats := time.Now()
	for frame := 0; !plat.ShouldStop() && (*frames == 0 || frame < *frames); frame++ {
		plat.ProcessEvents()

		// Text is positioned in framebuffer pixels, so it needs to be laid
		// out again whenever the window changes size.
		if sz := plat.FramebufferSize(); sz != fbSize {
			fbSize = sz
			ogl.Viewport(0, 0, int32(sz[0]), int32(sz[1]))
			tr.SetProjection(mgl32.Ortho2D(0, float32(sz[0]), 0, float32(sz[1])))
			tr.SetText(textLines(sz[1]))
			lg.Info("Framebuffer resized", slog.Int("width", sz[0]), slog.Int("height", sz[1]),
				slog.Int("vertices", tr.VertexCount()))
		}

		ogl.Clear([4]float32{0, 0, 0, 1})
		tr.Render()
		ogl.Check()

		plat.PostRender()

		if time.Since(lastStats) > 10*time.Second {
			lg.Info("Render statistics", slog.Any("stats", tr.Stats()))
			lastStats = time.Now()
		}
	}

	lg.Info("Exiting", slog.Any("stats", tr.Stats()), slog.Duration("uptime", time.Since(lg.Start)))
	return nil
}
