// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders embeds the GLSL sources of the triangle program.
package shaders

import _ "embed"

// Vertex is the vertex shader source.
//
//go:embed triangle.vert
var Vertex string

// Fragment is the fragment shader source.
//
//go:embed triangle.frag
var Fragment string

// Names of the program variables resolved after linking.
const (
	MVPUniform  = "MVP"
	PosAttrib   = "vPos"
	ColorAttrib = "vCol"
)
