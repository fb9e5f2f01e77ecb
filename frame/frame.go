// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame runs the steady-state render loop: each iteration reads the
// framebuffer size, computes the MVP transform, renders, presents the frame
// and polls input, until the surface asks to close.
package frame

import (
	"log/slog"

	"cogentcore.org/triangle/math32"
)

// State is the state of a [Loop].
type State int

const (
	// Running renders a frame each iteration.
	Running State = iota

	// Closing is final: the surface asked to close and no more frames are rendered.
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "Closing"
	}
	return "Running"
}

// Surface is the window being drawn into.
type Surface interface {
	// ShouldClose reports whether closing was requested,
	// by the window system or by a key press.
	ShouldClose() bool

	// FramebufferSize returns the size of the drawable area in pixels.
	FramebufferSize() (width, height int)

	// Time returns the elapsed time in seconds.
	Time() float64

	// SwapBuffers presents the rendered frame, blocking for vsync
	// depending on the swap interval.
	SwapBuffers()

	// PollEvents processes pending input events without waiting.
	PollEvents()
}

// Renderer draws one frame of the given framebuffer size with the given transform.
type Renderer interface {
	Render(width, height int, mvp math32.Matrix4)
}

// Aspect returns the width / height ratio of a framebuffer.
// It returns false if either dimension is not positive,
// as happens while the window is minimized.
func Aspect(width, height int) (float32, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	return float32(width) / float32(height), true
}

// Transform returns the MVP matrix at time t seconds for the given aspect ratio:
// a rotation of t radians around Z followed by an orthographic projection
// of [-ratio, ratio] x [-1, 1].
func Transform(ratio, t float32) math32.Matrix4 {
	m := math32.RotationZ(t)
	p := math32.Ortho(-ratio, ratio, -1, 1, 1, -1)
	return p.Mul(m)
}

// Loop drives a [Renderer] on a [Surface].
type Loop struct {
	Surface  Surface
	Renderer Renderer

	state  State
	frames int
}

// NewLoop returns a new [Loop] in the [Running] state.
func NewLoop(sf Surface, rd Renderer) *Loop {
	return &Loop{Surface: sf, Renderer: rd}
}

// State returns the current state of the loop.
func (lp *Loop) State() State {
	return lp.state
}

// Frames returns the number of frames presented so far.
func (lp *Loop) Frames() int {
	return lp.frames
}

// Step runs one iteration if the loop is still running and returns the
// resulting state. The close request is checked before the frame, and
// again after polling, so a close requested during polling is observed
// within the same iteration.
func (lp *Loop) Step() State {
	if lp.state == Closing {
		return lp.state
	}
	if lp.Surface.ShouldClose() {
		lp.close()
		return lp.state
	}
	w, h := lp.Surface.FramebufferSize()
	if ratio, ok := Aspect(w, h); ok {
		mvp := Transform(ratio, float32(lp.Surface.Time()))
		lp.Renderer.Render(w, h, mvp)
	}
	lp.Surface.SwapBuffers()
	lp.frames++
	lp.Surface.PollEvents()
	if lp.Surface.ShouldClose() {
		lp.close()
	}
	return lp.state
}

// Run steps the loop until it is [Closing] and
// returns the number of frames presented.
func (lp *Loop) Run() int {
	for lp.Step() == Running {
	}
	return lp.frames
}

func (lp *Loop) close() {
	lp.state = Closing
	slog.Debug("frame loop closing", "frames", lp.frames)
}
