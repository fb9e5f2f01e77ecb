// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

// Closer is anything whose close flag can be set, such as a window.
type Closer interface {
	SetShouldClose(value bool)
}

// Key identifies the keys the loop reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

// KeyAction is the kind of key event.
type KeyAction int

const (
	Release KeyAction = iota
	Press
	Repeat
)

// HandleKey requests closing when Escape is pressed.
// It reports whether the event was handled.
func HandleKey(c Closer, key Key, action KeyAction) bool {
	if key == KeyEscape && action == Press {
		c.SetShouldClose(true)
		return true
	}
	return false
}
