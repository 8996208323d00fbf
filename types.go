// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"github.com/gogpu/outline/recording"
)

// The shared vocabulary between the orchestration core and the recording
// layer lives in the recording package; aliases give callers one import
// for everyday use while maintaining full compatibility with recording.

// Renderable is a host-provided handle to one renderable 3D object.
// It is an alias for recording.Renderable.
type Renderable = recording.Renderable

// Resources is the opaque rendering resource capability an effect draws
// with. The core only ever consults IsValid; the shader package provides
// the concrete implementation. It is an alias for recording.Resources.
type Resources = recording.Resources

// Style describes the visual appearance of one outline layer.
// It is an alias for recording.Style.
type Style = recording.Style

// Mode selects how a layer's outline is rendered.
// It is an alias for recording.Mode.
type Mode = recording.Mode

// Render mode constants, re-exported for convenience.
const (
	// ModeSolid renders a hard-edged outline.
	ModeSolid = recording.ModeSolid
	// ModeBlurred renders a soft outline using separable gaussian blur.
	ModeBlurred = recording.ModeBlurred
)

// Releaser is implemented by renderables that hold per-object outline
// state (cached silhouette geometry, material property blocks). Layer and
// collection resets invoke it so hosts can release that state when the
// outline configuration is torn down.
type Releaser interface {
	// ReleaseOutline releases per-object outline render state.
	ReleaseOutline()
}
