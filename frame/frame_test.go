// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"testing"

	"cogentcore.org/triangle/math32"
	"github.com/stretchr/testify/assert"
)

type fakeSurface struct {
	width, height int
	closeAfter    int // polls before a close is requested; -1 for never
	escapeOnPoll  int // poll count at which Escape is pressed; 0 for never

	closed bool
	polls  int
	swaps  int
	time   float64
}

func (sf *fakeSurface) ShouldClose() bool                    { return sf.closed }
func (sf *fakeSurface) SetShouldClose(value bool)            { sf.closed = value }
func (sf *fakeSurface) FramebufferSize() (width, height int) { return sf.width, sf.height }
func (sf *fakeSurface) Time() float64                        { return sf.time }
func (sf *fakeSurface) SwapBuffers()                         { sf.swaps++ }

func (sf *fakeSurface) PollEvents() {
	sf.polls++
	sf.time += 0.5
	if sf.escapeOnPoll > 0 && sf.polls == sf.escapeOnPoll {
		HandleKey(sf, KeyEscape, Press)
	}
	if sf.closeAfter >= 0 && sf.polls >= sf.closeAfter {
		sf.closed = true
	}
}

type fakeRenderer struct {
	sizes [][2]int
	mvps  []math32.Matrix4
}

func (rd *fakeRenderer) Render(width, height int, mvp math32.Matrix4) {
	rd.sizes = append(rd.sizes, [2]int{width, height})
	rd.mvps = append(rd.mvps, mvp)
}

func TestLoopRunsUntilClose(t *testing.T) {
	sf := &fakeSurface{width: 640, height: 480, closeAfter: 3}
	rd := &fakeRenderer{}
	lp := NewLoop(sf, rd)
	assert.Equal(t, Running, lp.State())

	n := lp.Run()
	assert.Equal(t, 3, n)
	assert.Equal(t, Closing, lp.State())
	assert.Equal(t, 3, sf.swaps)
	assert.Equal(t, 3, sf.polls)
	assert.Len(t, rd.mvps, 3)
	assert.Equal(t, [2]int{640, 480}, rd.sizes[0])

	// the rotation follows the surface time
	assert.Equal(t, Transform(640.0/480.0, 0), rd.mvps[0])
	assert.Equal(t, Transform(640.0/480.0, 1), rd.mvps[2])

	// closing is final
	assert.Equal(t, Closing, lp.Step())
	assert.Equal(t, 3, sf.swaps)
}

func TestLoopClosedBeforeFirstFrame(t *testing.T) {
	sf := &fakeSurface{width: 1, height: 1, closeAfter: -1, closed: true}
	rd := &fakeRenderer{}
	assert.Equal(t, 0, NewLoop(sf, rd).Run())
	assert.Empty(t, rd.mvps)
	assert.Zero(t, sf.polls)
}

func TestLoopEscape(t *testing.T) {
	sf := &fakeSurface{width: 100, height: 100, closeAfter: -1, escapeOnPoll: 2}
	lp := NewLoop(sf, &fakeRenderer{})

	assert.Equal(t, Running, lp.Step())
	// Escape is pressed during this iteration's poll
	assert.Equal(t, Closing, lp.Step())
	assert.Equal(t, 2, lp.Frames())
}

func TestLoopMinimized(t *testing.T) {
	sf := &fakeSurface{width: 0, height: 0, closeAfter: 2}
	rd := &fakeRenderer{}
	assert.Equal(t, 2, NewLoop(sf, rd).Run())
	assert.Empty(t, rd.mvps)
	assert.Equal(t, 2, sf.swaps)
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key    Key
		action KeyAction
		want   bool
	}{
		{KeyEscape, Press, true},
		{KeyEscape, Release, false},
		{KeyEscape, Repeat, false},
		{KeyOther, Press, false},
	}
	for _, tt := range tests {
		sf := &fakeSurface{}
		assert.Equal(t, tt.want, HandleKey(sf, tt.key, tt.action))
		assert.Equal(t, tt.want, sf.ShouldClose())
	}
}

func TestAspect(t *testing.T) {
	r, ok := Aspect(640, 480)
	assert.True(t, ok)
	assert.InDelta(t, 4.0/3.0, r, 1e-6)

	_, ok = Aspect(640, 0)
	assert.False(t, ok)
	_, ok = Aspect(0, 480)
	assert.False(t, ok)
}

func TestTransformExtent(t *testing.T) {
	for _, ratio := range []float32{0.5, 1, 4.0 / 3.0, 2} {
		m := Transform(ratio, 0)
		// horizontal extent is [-ratio, ratio], vertical is [-1, 1]
		assert.InDelta(t, 1, m.MulVector3AsPoint(math32.Vec3(ratio, 0, 0)).X, 1e-6)
		assert.InDelta(t, -1, m.MulVector3AsPoint(math32.Vec3(-ratio, 0, 0)).X, 1e-6)
		assert.InDelta(t, 1, m.MulVector3AsPoint(math32.Vec3(0, 1, 0)).Y, 1e-6)
		assert.InDelta(t, -1, m.MulVector3AsPoint(math32.Vec3(0, -1, 0)).Y, 1e-6)
	}

	// rotation happens before projection
	m := Transform(2, math32.Pi/2)
	v := m.MulVector3AsPoint(math32.Vec3(1, 0, 0))
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 1, v.Y, 1e-6)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Closing", Closing.String())
}
