// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds the vertex data uploaded to the GPU.
package mesh

import "unsafe"

// Vertex is one interleaved vertex: a 2D position followed by an RGB color.
// The field order and sizes define the attribute layout in the vertex buffer.
type Vertex struct {
	Pos   [2]float32
	Color [3]float32
}

// Layout of [Vertex] in bytes.
const (
	Stride      = int32(unsafe.Sizeof(Vertex{}))
	PosOffset   = int(unsafe.Offsetof(Vertex{}.Pos))
	ColorOffset = int(unsafe.Offsetof(Vertex{}.Color))

	// PosSize and ColorSize are the component counts of each attribute.
	PosSize   = int32(len(Vertex{}.Pos))
	ColorSize = int32(len(Vertex{}.Color))
)

// Triangle is the static triangle drawn by the demo:
// red bottom-left, green bottom-right, blue top.
var Triangle = [3]Vertex{
	{Pos: [2]float32{-0.6, -0.4}, Color: [3]float32{1, 0, 0}},
	{Pos: [2]float32{0.6, -0.4}, Color: [3]float32{0, 1, 0}},
	{Pos: [2]float32{0, 0.6}, Color: [3]float32{0, 0, 1}},
}

// Area returns the signed area of the triangle formed by the positions
// of the given vertices. It is positive for counter-clockwise winding
// and zero for a degenerate triangle.
func Area(vs [3]Vertex) float32 {
	a, b, c := vs[0].Pos, vs[1].Pos, vs[2].Pos
	return ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])) / 2
}

// Size returns the number of bytes occupied by the given vertices.
func Size(vs []Vertex) int {
	return len(vs) * int(Stride)
}
