// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu sets up and draws the triangle with OpenGL 3.3 core.
// A current OpenGL context is required for everything in this package.
package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ShaderTypes are the shader stages used by the demo.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	if st == FragmentShader {
		return "fragment"
	}
	return "vertex"
}

// GPUType returns the GL enum of the shader type.
func (st ShaderTypes) GPUType() uint32 {
	if st == FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// Shader is a compiled shader object.
type Shader struct {
	handle uint32
	typ    ShaderTypes
}

// CompileShader compiles the given GLSL source as a shader of the given type.
// It returns an error including the info log if compilation fails.
func CompileShader(typ ShaderTypes, src string) (*Shader, error) {
	handle := gl.CreateShader(typ.GPUType())
	if handle == 0 {
		return nil, fmt.Errorf("glgpu: creating %s shader failed", typ)
	}

	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return nil, fmt.Errorf("glgpu: failed to compile %s shader: %s", typ, trimLog(msg))
	}
	return &Shader{handle: handle, typ: typ}, nil
}

// Handle returns the GL name of the shader.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Type returns the type of the shader.
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Delete deletes the shader. It is a no-op if already deleted.
func (sh *Shader) Delete() {
	if sh.handle == 0 {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
}

// cString returns s with a null terminator, which gl.Strs and gl.Str require.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// trimLog removes the null padding and surrounding whitespace of an info log.
func trimLog(msg string) string {
	return strings.TrimSpace(strings.TrimRight(msg, "\x00"))
}
