// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

// Error drains the GL error queue and returns the errors found,
// or nil if there were none.
func Error() error {
	var errs []error
	// without a context glGetError never returns NO_ERROR
	for range 16 {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		name, ok := glErrorNames[code]
		if !ok {
			name = fmt.Sprintf("0x%04x", code)
		}
		errs = append(errs, fmt.Errorf("glgpu: OpenGL error %s", name))
	}
	return errors.Join(errs...)
}
