// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"github.com/gogpu/outline/recording"
)

// Effect is the per-camera outline driver.
//
// An Effect owns exactly one persistent command buffer while enabled, and
// one layer collection (possibly shared with other effects). Once per
// frame its Update decides whether the outline configuration changed and,
// only then, re-records the buffer. The host executes the buffer and
// later invokes EndFrame to accept the consumed changes.
//
// Lifecycle:
//
//	effect := outline.NewEffect(outline.WithResources(res))
//	effect.Enable(camera)   // allocates + registers the command buffer
//	// per frame: effect.Update(); <host executes>; effect.EndFrame()
//	effect.Disable()        // unregisters + releases the buffer
//	effect.Close()          // teardown: also resets the collection
//
// Effect is not safe for concurrent use.
type Effect struct {
	res    Resources
	layers *LayerCollection
	event  RenderEvent

	cam Camera
	cmd *recording.CommandBuffer

	// changed is the driver-local dirty flag, distinct from the
	// collection's own change tracking. Set on enable and on any
	// reference replacement (resources, collection, sharing).
	changed bool
}

// NewEffect creates a disabled effect configured by the given options.
func NewEffect(opts ...Option) *Effect {
	e := &Effect{event: BeforeEffects}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enabled reports whether the effect is attached to a camera.
func (e *Effect) Enabled() bool {
	return e.cam != nil
}

// Event returns the render event the command buffer registers at.
// The event is fixed at construction (see WithEvent).
func (e *Effect) Event() RenderEvent {
	return e.event
}

// CommandBuffer returns the effect's persistent command buffer, or nil
// while the effect is disabled. Exposed for hosts that execute buffers
// directly rather than through Camera bookkeeping.
func (e *Effect) CommandBuffer() *recording.CommandBuffer {
	return e.cmd
}

// Layers returns the effect's layer collection, creating an empty one on
// first access so the effect is always render-ready. Subsequent reads
// return the same instance.
func (e *Effect) Layers() *LayerCollection {
	if e.layers == nil {
		e.layers = NewLayerCollection()
		e.changed = true
	}
	return e.layers
}

// SetLayers replaces the effect's layer collection reference.
// Returns ErrNilLayers for nil. Assigning a collection owned by another
// effect establishes sharing: both effects observe and react to changes
// made via either.
func (e *Effect) SetLayers(c *LayerCollection) error {
	if c == nil {
		return ErrNilLayers
	}
	e.layers = c
	e.changed = true
	return nil
}

// Resources returns the effect's resource capability, which may be nil.
func (e *Effect) Resources() Resources {
	return e.res
}

// SetResources replaces the effect's resource capability.
// Returns ErrNilResources for nil.
func (e *Effect) SetResources(res Resources) error {
	if res == nil {
		return ErrNilResources
	}
	e.res = res
	e.changed = true
	return nil
}

// ShareLayersWith assigns this effect's layer collection to other, lazily
// creating the collection first if this effect has none. Afterwards both
// effects render the same layer membership and either can mutate it;
// dirtiness is observed by both since it lives on the shared objects.
func (e *Effect) ShareLayersWith(other *Effect) error {
	if other == nil {
		return ErrNilEffect
	}
	other.layers = e.Layers()
	other.changed = true
	return nil
}

// Enable attaches the effect to a camera: it allocates the persistent
// command buffer, registers it at the configured render event, and marks
// the effect changed so the first Update records.
//
// Returns ErrNilCamera for a nil camera and ErrEnabled when already
// enabled. On registration failure the buffer is released again.
func (e *Effect) Enable(cam Camera) error {
	if cam == nil {
		return ErrNilCamera
	}
	if e.cam != nil {
		return ErrEnabled
	}

	buf := recording.NewCommandBuffer("outline")
	if err := cam.AttachBuffer(e.event, buf); err != nil {
		return err
	}

	e.cam = cam
	e.cmd = buf
	e.changed = true
	Logger().Info("outline effect enabled", "event", e.event)
	return nil
}

// Disable detaches the effect from its camera, unregistering and
// releasing the command buffer. Safe to call when not enabled.
func (e *Effect) Disable() {
	if e.cam == nil {
		return
	}
	if e.cmd != nil {
		e.cam.DetachBuffer(e.event, e.cmd)
	}
	e.cmd = nil
	e.cam = nil
}

// Update is the per-frame tick (phase 2): evaluate dirtiness and
// conditionally rebuild the command buffer.
//
// When neither the local flag nor the collection reports a change, Update
// does nothing; unchanged outline state costs zero re-recording. When
// dirty, the buffer is re-recorded against the camera's current target;
// with absent or invalid resources (or no collection) the buffer is
// cleared to empty instead, so the submission degrades rather than going
// stale. The local flag is cleared on every rebuild path; the
// collection's flags are cleared later, in EndFrame.
func (e *Effect) Update() {
	if e.cam == nil || e.cmd == nil {
		return
	}
	if !e.changed && (e.layers == nil || !e.layers.IsChanged()) {
		return
	}
	e.changed = false

	if e.res == nil || !e.res.IsValid() || e.layers == nil {
		e.cmd.Clear()
		Logger().Warn("outline rebuild degraded to empty submission",
			"resourcesValid", e.res != nil && e.res.IsValid(),
			"hasLayers", e.layers != nil)
		return
	}

	r, err := recording.NewRenderer(e.cmd, e.cam.Target(), e.res)
	if err != nil {
		e.cmd.Clear()
		Logger().Warn("outline rebuild failed", "err", err)
		return
	}
	defer r.Close()

	e.layers.Render(r, e.res)
	Logger().Debug("outline commands re-recorded", "commands", e.cmd.Len())
}

// EndFrame is the late per-frame phase (phase 4): accept the changes the
// frame's rebuild consumed. Deliberately decoupled from Update so changes
// made mid-frame by other systems surface on the next frame instead of
// being dropped.
func (e *Effect) EndFrame() {
	if e.layers != nil {
		e.layers.AcceptChanges()
	}
}

// Close tears the effect down permanently: it disables the effect and
// propagates a full reset to the collection so layers release per-object
// render state. The collection itself (possibly shared) is left attached
// to any other effects using it.
func (e *Effect) Close() error {
	e.Disable()
	if e.layers != nil {
		e.layers.Reset()
	}
	return nil
}

// Ensure Effect satisfies the host frame contract.
var _ FrameHook = (*Effect)(nil)
