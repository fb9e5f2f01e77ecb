// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command demo opens a window and rotates a vertex colored triangle
// until the window is closed or Escape is pressed.
package main

import (
	"os"
	"runtime"
)

func init() {
	// must lock main thread for glfw and OpenGL!
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
