// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo runs the rotating triangle: it acquires glfw, the window
// and the GPU resources once, runs the frame loop and releases everything
// in reverse order on every exit path.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/triangle/config"
	"cogentcore.org/triangle/frame"
	"cogentcore.org/triangle/glgpu"
	"cogentcore.org/triangle/mesh"
	"cogentcore.org/triangle/window"
)

// Run opens the window described by cfg and draws the triangle until
// the window is closed or Escape is pressed. The glfw version is
// printed to stdout. It must be called on the main thread.
func Run(cfg *config.Config, stdout io.Writer) error {
	terminate, err := window.Init()
	if err != nil {
		return err
	}
	defer terminate()
	fmt.Fprintf(stdout, "Running GLFW version %s\n", window.Version())

	win, err := window.New(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	if err := glgpu.Init(); err != nil {
		return err
	}
	tri, err := glgpu.NewTriangle(cfg.Background, mesh.Triangle)
	if err != nil {
		return err
	}
	defer tri.Delete()

	frames := frame.NewLoop(win, tri).Run()
	slog.Info("window closed", "frames", frames)
	return nil
}
