// pkg/renderer/program.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

// NewProgram compiles the two shaders and links them into a program. On
// failure it returns a *CompileError or *LinkError and every object it
// created has already been deleted.
func NewProgram(dev Device, vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(dev, vertexShaderSource, VertexShader)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(dev, fragmentShaderSource, FragmentShader)
	if err != nil {
		dev.DeleteShader(vertexShader)
		return 0, err
	}

	program := dev.CreateProgram()

	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	dev.LinkProgram(program)

	// The program keeps what it needs; the shader objects can go either way.
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	if !dev.ProgramLinked(program) {
		log := dev.ProgramInfoLog(program)
		dev.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}

	return program, nil
}

func compileShader(dev Device, source string, stage ShaderStage) (uint32, error) {
	shader := dev.CreateShader(stage)

	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if !dev.ShaderCompiled(shader) {
		log := dev.ShaderInfoLog(shader)
		dev.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return shader, nil
}
