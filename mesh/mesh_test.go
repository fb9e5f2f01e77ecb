// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, int32(20), Stride)
	assert.Equal(t, 0, PosOffset)
	assert.Equal(t, 8, ColorOffset)
	assert.Equal(t, int32(2), PosSize)
	assert.Equal(t, int32(3), ColorSize)
	assert.Equal(t, 60, Size(Triangle[:]))
}

func TestTriangle(t *testing.T) {
	assert.Len(t, Triangle, 3)
	assert.InDelta(t, 0.6, Area(Triangle), 1e-6)

	want := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, v := range Triangle {
		assert.Equal(t, want[i], v.Color, "vertex %d", i)
		for _, c := range v.Color {
			assert.GreaterOrEqual(t, c, float32(0))
			assert.LessOrEqual(t, c, float32(1))
		}
	}
}

func TestArea(t *testing.T) {
	line := [3]Vertex{
		{Pos: [2]float32{0, 0}},
		{Pos: [2]float32{1, 1}},
		{Pos: [2]float32{2, 2}},
	}
	assert.Zero(t, Area(line))

	cw := [3]Vertex{Triangle[0], Triangle[2], Triangle[1]}
	assert.InDelta(t, -0.6, Area(cw), 1e-6)
}
