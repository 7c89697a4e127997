// pkg/systext/shaders.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package systext

import (
	_ "embed"
)

var (
	//go:embed shaders/text.vert
	vertexShaderSource string
	//go:embed shaders/text.frag
	fragmentShaderSource string
)

const (
	projectionUniform = "projection"
	colorUniform      = "color"
)
