// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"cogentcore.org/triangle/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usage = "Usage: demo\n    GLFW tutorial with OpenGL.\n"

// stubDemo replaces the windowed demo for the duration of the test.
func stubDemo(t *testing.T, fn func(cfg *config.Config, stdout io.Writer) error) {
	t.Helper()
	prev, prevLogger := runDemo, slog.Default()
	runDemo = fn
	t.Cleanup(func() {
		runDemo = prev
		slog.SetDefault(prevLogger)
	})
}

func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			stubDemo(t, func(*config.Config, io.Writer) error {
				t.Fatal("demo must not run")
				return nil
			})
			var stdout, stderr bytes.Buffer
			code := run([]string{"/usr/bin/demo", arg}, &stdout, &stderr)
			assert.Equal(t, 0, code)
			assert.Equal(t, usage, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRunInvalid(t *testing.T) {
	tests := [][]string{
		{"demo", "-x"},
		{"demo", "--version"},
		{"demo", "-h", "extra"},
		{"demo", "a", "b", "c"},
	}
	for _, args := range tests {
		stubDemo(t, func(*config.Config, io.Writer) error {
			t.Fatal("demo must not run")
			return nil
		})
		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr)
		assert.Equal(t, 1, code, "%q", args)
		assert.Empty(t, stdout.String())
		assert.Equal(t, usage, stderr.String())
	}
}

func TestRunNoArgs(t *testing.T) {
	var got *config.Config
	stubDemo(t, func(cfg *config.Config, stdout io.Writer) error {
		got = cfg
		return nil
	})
	var stdout, stderr bytes.Buffer
	code := run([]string{"demo"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	require.NotNil(t, got)
	assert.Equal(t, 640, got.Window.Width)
	assert.Equal(t, 480, got.Window.Height)
}

func TestRunDemoError(t *testing.T) {
	stubDemo(t, func(*config.Config, io.Writer) error {
		return errors.New("creating window: no display")
	})
	var stdout, stderr bytes.Buffer
	code := run([]string{"demo"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: creating window: no display; aborting.")
}

func TestRunEmptyArgs(t *testing.T) {
	stubDemo(t, func(*config.Config, io.Writer) error { return nil })
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run(nil, &stdout, &stderr))
}
