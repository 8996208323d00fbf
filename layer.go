// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"github.com/gogpu/outline/recording"
)

// Layer is a named group of renderable objects sharing one outline style.
//
// A layer belongs to zero or one LayerCollection at a time. The
// back-reference to the owning collection is maintained exclusively by the
// collection's mutation methods; reassigning a layer to another collection
// atomically detaches it from the old owner.
//
// The Style field is the authoring surface: external tools may write it
// directly. Direct writes are not observed until the next UpdateChanged
// (the authoring-sync hook); programmatic callers should use SetStyle,
// which marks the layer changed immediately.
type Layer struct {
	name    string
	enabled bool

	// Style is the layer's outline style. See the type doc for the two
	// mutation paths.
	Style Style

	// applied is the style snapshot as of the last accepted change;
	// UpdateChanged compares against it to detect out-of-band edits.
	applied Style

	// priority is authored alongside the style but does not affect render
	// order today: layers render strictly in collection order.
	priority int

	objects []Renderable
	parent  *LayerCollection
	changed bool
}

// NewLayer creates an enabled layer with the default style.
func NewLayer(name string) *Layer {
	style := recording.DefaultStyle()
	return &Layer{
		name:    name,
		enabled: true,
		Style:   style,
		applied: style,
	}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// SetName renames the layer. Renaming does not affect rendered output and
// does not mark the layer changed.
func (l *Layer) SetName(name string) {
	l.name = name
}

// Enabled reports whether the layer renders.
func (l *Layer) Enabled() bool {
	return l.enabled
}

// SetEnabled toggles rendering of the layer and marks it changed when the
// value actually flips.
func (l *Layer) SetEnabled(enabled bool) {
	if l.enabled == enabled {
		return
	}
	l.enabled = enabled
	l.changed = true
}

// SetStyle replaces the layer style and marks the layer changed.
func (l *Layer) SetStyle(s Style) {
	l.Style = s
	l.changed = true
}

// Priority returns the authored layer priority.
//
// Priority is reserved: it is persisted and authored, but layers render
// strictly in collection order regardless of priority.
func (l *Layer) Priority() int {
	return l.priority
}

// SetPriority stores the authored priority. It does not reorder the
// owning collection and does not mark the layer changed.
func (l *Layer) SetPriority(p int) {
	l.priority = p
}

// Collection returns the collection that owns this layer, or nil when the
// layer is detached. The reference is non-owning.
func (l *Layer) Collection() *LayerCollection {
	return l.parent
}

// Add adds an object to the layer. Adding an object that is already a
// member is a no-op. Returns ErrNilRenderable for a nil object.
func (l *Layer) Add(obj Renderable) error {
	if obj == nil {
		return ErrNilRenderable
	}
	if l.indexOf(obj) >= 0 {
		return nil
	}
	l.objects = append(l.objects, obj)
	l.changed = true
	return nil
}

// Remove removes an object from the layer. Returns false when the object
// is nil or not a member; removing an absent object is not an error.
func (l *Layer) Remove(obj Renderable) bool {
	i := l.indexOf(obj)
	if i < 0 {
		return false
	}
	l.objects = append(l.objects[:i], l.objects[i+1:]...)
	l.changed = true
	return true
}

// Contains reports whether the object is a member of the layer.
func (l *Layer) Contains(obj Renderable) bool {
	return l.indexOf(obj) >= 0
}

// Len returns the number of member objects.
func (l *Layer) Len() int {
	return len(l.objects)
}

// Objects returns the member objects in insertion order.
// The returned slice is a copy, stable until the next mutation.
func (l *Layer) Objects() []Renderable {
	out := make([]Renderable, len(l.objects))
	copy(out, l.objects)
	return out
}

// Clear removes all member objects. A clear of an empty layer is a no-op
// and does not mark the layer changed.
func (l *Layer) Clear() {
	if len(l.objects) == 0 {
		return
	}
	l.objects = nil
	l.changed = true
}

// IsChanged reports whether the layer mutated since the last accepted
// change. Direct Style writes are only reflected after UpdateChanged.
func (l *Layer) IsChanged() bool {
	return l.changed
}

// UpdateChanged re-checks the layer for out-of-band mutation: if the
// Style field no longer matches the last accepted snapshot, the layer is
// marked changed. Authoring integrations call this once per frame, before
// the rebuild decision.
func (l *Layer) UpdateChanged() {
	if l.Style != l.applied {
		l.changed = true
	}
}

// Render records the layer's mask and composite commands into the shared
// renderer scope. Disabled layers, layers with no visible objects, and
// invalid resources record nothing. Dirty state is not cleared here;
// acknowledgment is a separate phase.
func (l *Layer) Render(r *recording.Renderer, res Resources) {
	if r == nil || !l.enabled {
		return
	}
	if res == nil || !res.IsValid() {
		return
	}
	if r.Mask(l.objects...) == 0 {
		return
	}
	r.Outline(l.Style)
}

// Reset releases per-object outline state via the optional Releaser hook
// and drops all members. Used when the owning configuration is torn down.
func (l *Layer) Reset() {
	for _, obj := range l.objects {
		if rel, ok := obj.(Releaser); ok {
			rel.ReleaseOutline()
		}
	}
	l.objects = nil
	l.changed = true
}

// acceptChanges clears the dirty flag and snapshots the style.
// Called by the owning collection's AcceptChanges.
func (l *Layer) acceptChanges() {
	l.applied = l.Style
	l.changed = false
}

// indexOf returns the index of obj in the member slice, or -1.
// Membership is identity comparison on the interface value.
func (l *Layer) indexOf(obj Renderable) int {
	if obj == nil {
		return -1
	}
	for i, o := range l.objects {
		if o == obj {
			return i
		}
	}
	return -1
}
