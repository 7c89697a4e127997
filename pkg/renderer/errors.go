// pkg/renderer/errors.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("shader program link failed")
)

// CompileError is returned when a shader fails to compile. Log holds the
// driver's info log, which may be empty.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s: %v", e.Stage, ErrCompile)
	}
	return fmt.Sprintf("%s: %v: %s", e.Stage, ErrCompile, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return ErrLink.Error()
	}
	return fmt.Sprintf("%v: %s", ErrLink, e.Log)
}

func (e *LinkError) Unwrap() error { return ErrLink }
