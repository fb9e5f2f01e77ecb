// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/triangle/cli"
	"cogentcore.org/triangle/config"
	"cogentcore.org/triangle/demo"
	"cogentcore.org/triangle/logx"
)

// runDemo is replaced in tests, which must not open a window.
var runDemo = demo.Run

// run is like main, except that it takes the command line and the output
// streams as arguments and returns the exit code, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	var arg0 string
	if len(args) > 0 {
		arg0, args = args[0], args[1:]
	}
	exe := cli.ExeName(arg0)

	switch cli.Parse(args) {
	case cli.Help:
		cli.Usage(stdout, exe)
		return 0
	case cli.Invalid:
		cli.Usage(stderr, exe)
		return 1
	}

	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logx.UserLevel = cfg.Level()
	logx.SetDefaultLogger(stderr)

	if err := runDemo(cfg, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v; aborting.\n", err)
		return 1
	}
	return 0
}
