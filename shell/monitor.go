// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

// Monitor describes one attached display.
type Monitor struct {
	Name     string
	Size     PhysicalSize
	Position PhysicalPosition
	DPI      uint32
	Primary  bool
}
