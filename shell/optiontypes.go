// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "github.com/LawrenceBuckingham/azul/base/option"

// Optional-value aliases instantiated across the shell's public
// surface. One generic wrapper serves every payload type; this
// manifest only names the combinations that actually cross the API.
type (
	OptionString           = option.Option[string]
	OptionChar             = option.Option[rune]
	OptionI32              = option.Option[int32]
	OptionU32              = option.Option[uint32]
	OptionF32              = option.Option[float32]
	OptionHandle           = option.Option[uintptr]
	OptionLogicalPosition  = option.Option[LogicalPosition]
	OptionLogicalSize      = option.Option[LogicalSize]
	OptionPhysicalPosition = option.Option[PhysicalPosition]
	OptionPhysicalSize     = option.Option[PhysicalSize]
)
