// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording provides the persistent command buffer for outline
// rendering.
//
// The outline effect never draws directly. Each frame, if the outline
// configuration changed, the driver records typed command structures into a
// CommandBuffer; the host executes the buffer against the GPU later in the
// frame via a Backend. Buffers persist across frames, so unchanged outline
// state costs no re-recording.
//
// Design follows Cairo's approach of typed command structs for
// inspectability and debuggability, rather than a binary serialization
// format.
//
// # Architecture
//
// Commands capture one outline render pass:
//   - BindTargetCommand binds the target surface and resources (always first)
//   - ClearMaskCommand resets the silhouette mask before a layer draws
//   - DrawMaskCommand renders one object's silhouette into the mask
//   - OutlineCommand composites the mask onto the target with one style
//
// # Example
//
//	buf := recording.NewCommandBuffer("outline")
//	r, _ := recording.NewRenderer(buf, target, res)
//	r.Mask(objects...)
//	r.Outline(style)
//	r.Close()
//
//	// Host side, later in the frame:
//	buf.Execute(backend)
package recording

import (
	"image/color"

	"github.com/gogpu/outline/render"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one step of the outline render pass.
type CommandType uint8

const (
	// CmdBindTarget binds the render target and resources for the pass.
	CmdBindTarget CommandType = iota
	// CmdClearMask clears the silhouette mask.
	CmdClearMask
	// CmdDrawMask draws one object's silhouette into the mask.
	CmdDrawMask
	// CmdOutline composites the mask onto the target with one style.
	CmdOutline
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBindTarget: "BindTarget",
	CmdClearMask:  "ClearMask",
	CmdDrawMask:   "DrawMask",
	CmdOutline:    "Outline",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands represent individual steps of an outline render pass that are
// recorded once and replayed by a Backend each frame.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Commands
// --------------------------------------------------------------------------

// BindTargetCommand binds the target surface and the shared resources for
// the duration of the pass. It is always the first command in a buffer.
type BindTargetCommand struct {
	// Target is the surface the outline pass composites onto.
	Target render.RenderTarget
	// Resources is the opaque resource capability the pass draws with.
	Resources Resources
}

// Type implements Command.
func (BindTargetCommand) Type() CommandType { return CmdBindTarget }

// ClearMaskCommand clears the silhouette mask to empty.
// Recorded once per layer, before the layer's objects draw their masks.
type ClearMaskCommand struct{}

// Type implements Command.
func (ClearMaskCommand) Type() CommandType { return CmdClearMask }

// DrawMaskCommand renders a single object's silhouette into the mask.
type DrawMaskCommand struct {
	// Object is the host-provided renderable to draw.
	Object Renderable
}

// Type implements Command.
func (DrawMaskCommand) Type() CommandType { return CmdDrawMask }

// OutlineCommand composites the current mask onto the bound target using
// one layer's style. Backends expand this into the blur and blend passes
// the style calls for.
type OutlineCommand struct {
	// Style is the visual style of the layer being composited.
	Style Style
}

// Type implements Command.
func (OutlineCommand) Type() CommandType { return CmdOutline }

// --------------------------------------------------------------------------
// Supporting Types
// --------------------------------------------------------------------------

// Renderable is a host-provided handle to one renderable 3D object.
//
// The recording layer treats renderables as opaque identities: it stores
// them in DrawMaskCommand and hands them back to the Backend at execution
// time. Hosts typically implement Renderable on their mesh-instance or
// scene-node types.
type Renderable interface {
	// Visible reports whether the object should currently be drawn.
	// Invisible objects are skipped at record time.
	Visible() bool
}

// Resources is the opaque resource capability outline rendering consumes.
//
// Concrete implementations (see the shader package) carry compiled shader
// modules and GPU state; the orchestration core only ever asks whether the
// resources are usable.
type Resources interface {
	// IsValid reports whether the resources are usable for rendering.
	IsValid() bool
}

// Mode selects how a layer's outline is rendered.
type Mode uint8

const (
	// ModeSolid renders a hard-edged outline.
	ModeSolid Mode = iota
	// ModeBlurred renders a soft outline using separable gaussian blur.
	ModeBlurred
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSolid:
		return "Solid"
	case ModeBlurred:
		return "Blurred"
	default:
		return "Unknown"
	}
}

// Width limits for outline styles, in pixels.
const (
	// MinWidth is the minimum outline width.
	MinWidth = 1
	// MaxWidth is the maximum outline width.
	MaxWidth = 32
)

// Style describes the visual appearance of one outline layer.
//
// Style is a comparable value type: layers snapshot it to detect
// out-of-band authoring changes, so it must never grow reference fields.
type Style struct {
	// Color is the outline color.
	Color color.RGBA
	// Width is the outline width in pixels, clamped to [MinWidth, MaxWidth].
	Width int
	// Intensity scales the blur falloff. Only meaningful for ModeBlurred.
	Intensity float32
	// Mode selects solid or blurred rendering.
	Mode Mode
}

// DefaultStyle returns the default outline style: a solid red outline,
// four pixels wide.
func DefaultStyle() Style {
	return Style{
		Color:     color.RGBA{R: 0xff, A: 0xff},
		Width:     4,
		Intensity: 2,
		Mode:      ModeSolid,
	}
}

// Blurred reports whether the style uses the blur passes.
func (s Style) Blurred() bool {
	return s.Mode == ModeBlurred
}

// Clamped returns a copy of the style with the width clamped to the
// supported range. Recording clamps styles so backends never see widths
// outside [MinWidth, MaxWidth].
func (s Style) Clamped() Style {
	if s.Width < MinWidth {
		s.Width = MinWidth
	}
	if s.Width > MaxWidth {
		s.Width = MaxWidth
	}
	return s
}
