// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/triangle/frame"
	"cogentcore.org/triangle/math32"
	"cogentcore.org/triangle/mesh"
	"cogentcore.org/triangle/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Triangle holds the GPU resources for drawing the vertex colored triangle:
// one vertex buffer, one vertex array and one program.
// It implements frame.Renderer.
type Triangle struct {
	program     *Program
	vbo         uint32
	vao         uint32
	mvp         int32
	background  [3]float32
	vertexCount int32
}

// NewTriangle uploads the given vertices, builds the shader program and
// configures the vertex array. background is the clear color.
// Every resource created before an error is released before returning.
func NewTriangle(background [3]float32, vertices [3]mesh.Vertex) (*Triangle, error) {
	tr := &Triangle{background: background, vertexCount: int32(len(vertices))}

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, mesh.Size(vertices[:]), gl.Ptr(&vertices[0]), gl.STATIC_DRAW)

	if err := tr.configProgram(); err != nil {
		tr.Delete()
		return nil, err
	}
	if err := tr.configVertexArray(); err != nil {
		tr.Delete()
		return nil, err
	}
	if err := Error(); err != nil {
		tr.Delete()
		return nil, err
	}
	return tr, nil
}

func (tr *Triangle) configProgram() error {
	vs, err := CompileShader(VertexShader, shaders.Vertex)
	if err != nil {
		return err
	}
	fs, err := CompileShader(FragmentShader, shaders.Fragment)
	if err != nil {
		vs.Delete()
		return err
	}
	tr.program, err = LinkProgram(vs, fs)
	if err != nil {
		vs.Delete()
		fs.Delete()
		return err
	}
	tr.mvp, err = tr.program.Uniform(shaders.MVPUniform)
	return err
}

func (tr *Triangle) configVertexArray() error {
	pos, err := tr.program.Attrib(shaders.PosAttrib)
	if err != nil {
		return err
	}
	col, err := tr.program.Attrib(shaders.ColorAttrib)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)
	// the attribute pointers source from the buffer bound to ARRAY_BUFFER
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointerWithOffset(pos, mesh.PosSize, gl.FLOAT, false, mesh.Stride, uintptr(mesh.PosOffset))
	gl.EnableVertexAttribArray(col)
	gl.VertexAttribPointerWithOffset(col, mesh.ColorSize, gl.FLOAT, false, mesh.Stride, uintptr(mesh.ColorOffset))
	return nil
}

// Render clears the framebuffer of the given size and
// draws the triangle with the given transform.
func (tr *Triangle) Render(width, height int, mvp math32.Matrix4) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(tr.background[0], tr.background[1], tr.background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	tr.program.Use()
	gl.UniformMatrix4fv(tr.mvp, 1, false, &mvp[0])
	gl.BindVertexArray(tr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, tr.vertexCount)
}

// Delete releases the vertex array, the buffer and the program with its shaders.
func (tr *Triangle) Delete() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.program != nil {
		tr.program.Delete()
		tr.program = nil
	}
}

var _ frame.Renderer = (*Triangle)(nil)
