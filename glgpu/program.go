// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Program is a linked shader program.
type Program struct {
	handle  uint32
	shaders []*Shader
}

// LinkProgram attaches the given shaders to a new program and links it.
// It returns an error including the info log if linking fails.
// The program owns the shaders afterwards and deletes them in [Program.Delete].
func LinkProgram(shaders ...*Shader) (*Program, error) {
	handle := gl.CreateProgram()
	if handle == 0 {
		return nil, fmt.Errorf("glgpu: creating program failed")
	}
	for _, sh := range shaders {
		gl.AttachShader(handle, sh.handle)
	}
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("glgpu: failed to link program: %s", trimLog(msg))
	}
	return &Program{handle: handle, shaders: shaders}, nil
}

// Handle returns the GL name of the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes the program current.
func (pr *Program) Use() {
	gl.UseProgram(pr.handle)
}

// Uniform returns the location of the named uniform variable.
// It returns an error if the program has no active uniform of that name.
func (pr *Program) Uniform(name string) (int32, error) {
	loc := gl.GetUniformLocation(pr.handle, gl.Str(cString(name)))
	if loc < 0 {
		return -1, fmt.Errorf("glgpu: uniform %q not found in program", name)
	}
	return loc, nil
}

// Attrib returns the location of the named vertex attribute.
// It returns an error if the program has no active attribute of that name.
func (pr *Program) Attrib(name string) (uint32, error) {
	loc := gl.GetAttribLocation(pr.handle, gl.Str(cString(name)))
	if loc < 0 {
		return 0, fmt.Errorf("glgpu: attribute %q not found in program", name)
	}
	return uint32(loc), nil
}

// Delete detaches and deletes the shaders and deletes the program.
func (pr *Program) Delete() {
	if pr.handle == 0 {
		return
	}
	for _, sh := range pr.shaders {
		if sh.handle != 0 {
			gl.DetachShader(pr.handle, sh.handle)
		}
		sh.Delete()
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
}
