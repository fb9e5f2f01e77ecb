// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import "log/slog"

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	logx.Log(MyFunc(v))
//	// or
//	return logx.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
