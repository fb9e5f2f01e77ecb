// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens the demo window and its OpenGL context with glfw.
//
// IMPORTANT: everything in this package must be called on the main thread,
// which must be locked with runtime.LockOSThread.
package window

import (
	"fmt"
	"log/slog"

	"cogentcore.org/triangle/config"
	"cogentcore.org/triangle/frame"
	"cogentcore.org/triangle/logx"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes glfw and returns the function that terminates it.
// The caller must defer terminate on every path once Init succeeds.
// Errors are logged in addition to being returned.
func Init() (terminate func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, logx.Log(fmt.Errorf("initializing GLFW: %w", err))
	}
	return glfw.Terminate, nil
}

// Version returns the version of the glfw library in use as major.minor.rev.
func Version() string {
	major, minor, rev := glfw.GetVersion()
	return fmt.Sprintf("%d.%d.%d", major, minor, rev)
}

// Window is a glfw window with a current OpenGL context.
// It implements [frame.Surface] and [frame.Closer].
type Window struct {
	glw *glfw.Window
}

// New creates a window according to the given config, makes its
// OpenGL context current and sets the swap interval.
// Pressing Escape in the window requests it to close.
func New(cfg *config.Config) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	if cfg.GL.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if cfg.GL.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	glw, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return nil, logx.Log(fmt.Errorf("creating window: %w", err))
	}
	w := &Window{glw: glw}
	glw.SetKeyCallback(w.onKey)
	glw.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)
	slog.Debug("window created", "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height), "gl", fmt.Sprintf("%d.%d", cfg.GL.Major, cfg.GL.Minor))
	return w, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if frame.HandleKey(w, frameKey(key), frameAction(action)) {
		slog.Debug("escape pressed, closing window")
	}
}

func frameKey(key glfw.Key) frame.Key {
	if key == glfw.KeyEscape {
		return frame.KeyEscape
	}
	return frame.KeyOther
}

func frameAction(action glfw.Action) frame.KeyAction {
	switch action {
	case glfw.Press:
		return frame.Press
	case glfw.Repeat:
		return frame.Repeat
	}
	return frame.Release
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose sets the close flag of the window.
func (w *Window) SetShouldClose(value bool) {
	w.glw.SetShouldClose(value)
}

// FramebufferSize returns the size of the framebuffer in pixels,
// which may differ from the window size on high DPI displays.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glw.GetFramebufferSize()
}

// Time returns the number of seconds since glfw was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// PollEvents processes pending events, calling the key callback as needed.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	w.glw.Destroy()
}

var (
	_ frame.Surface = (*Window)(nil)
	_ frame.Closer  = (*Window)(nil)
)
