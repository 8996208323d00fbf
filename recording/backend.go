// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"github.com/gogpu/outline/render"
)

// Backend executes recorded outline commands against an output device.
//
// Backends translate the high-level command stream into GPU work (or into
// bookkeeping, for trace/test backends). Execution order matches recording
// order exactly; backends must not reorder across ClearMask boundaries,
// since each ClearMask starts a new layer's mask.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Treat a nil or invalid Resources value in Begin as an error
//  3. Tolerate Begin/End pairs with no drawing commands in between
//  4. Release any per-pass state in End, even after a failed command
type Backend interface {
	// Begin starts a pass targeting the given surface with the given
	// resources. It is driven by the buffer's leading BindTargetCommand.
	Begin(target render.RenderTarget, res Resources) error

	// ClearMask clears the silhouette mask ahead of a layer's objects.
	ClearMask() error

	// DrawMask renders one object's silhouette into the mask.
	DrawMask(obj Renderable) error

	// Outline composites the mask onto the target with the given style.
	Outline(style Style) error

	// End finalizes the pass and submits any pending GPU work.
	End() error
}
