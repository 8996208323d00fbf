// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"slices"

	"github.com/gogpu/outline/recording"
)

// LayerCollection is an ordered, mutable sequence of layers forming the
// complete outline configuration for one or more effects.
//
// Order is significant: layers render strictly in sequence order.
// (Priority-based ordering is a reserved extension; see Layer.Priority.)
//
// Every mutation maintains the layer→collection back-references and the
// aggregate dirty flag. Invariants:
//   - every contained layer's Collection() points at this collection
//   - no layer appears twice
//   - a layer detached by any operation has a nil back-reference
//
// A collection may be shared by multiple effects (by reference, never by
// value); dirtiness lives on the shared collection and layer objects, so
// mutations through one sharer are visible to all on their next check.
//
// LayerCollection is not safe for concurrent use.
type LayerCollection struct {
	layers  []*Layer
	changed bool
}

// NewLayerCollection creates an empty layer collection.
func NewLayerCollection() *LayerCollection {
	return &LayerCollection{}
}

// Len returns the number of layers.
func (c *LayerCollection) Len() int {
	return len(c.layers)
}

// Get returns the layer at index. Returns an error wrapping
// ErrIndexOutOfRange when the index is invalid.
func (c *LayerCollection) Get(index int) (*Layer, error) {
	if index < 0 || index >= len(c.layers) {
		return nil, indexError(index, len(c.layers))
	}
	return c.layers[index], nil
}

// Set replaces the layer at index.
//
// Returns ErrNilLayer for a nil layer and an ErrIndexOutOfRange error for
// an invalid index. Assigning a layer this collection already owns is
// silently ignored, whether it sits in the target slot or a different one;
// a second occurrence would violate the no-duplicates invariant, and moving
// a layer requires an explicit Remove first (the same rule Insert applies).
// On a real replace the old occupant is detached, the new layer is adopted
// (detaching it from any previous owner), and the collection is marked
// changed.
func (c *LayerCollection) Set(index int, layer *Layer) error {
	if index < 0 || index >= len(c.layers) {
		return indexError(index, len(c.layers))
	}
	if layer == nil {
		return ErrNilLayer
	}
	if layer.parent == c {
		return nil
	}

	c.layers[index].parent = nil
	c.adopt(layer)
	c.layers[index] = layer
	c.changed = true
	return nil
}

// IndexOf returns the first index of the layer, or -1 when the layer is
// nil or not a member.
func (c *LayerCollection) IndexOf(layer *Layer) int {
	if layer == nil {
		return -1
	}
	for i, l := range c.layers {
		if l == layer {
			return i
		}
	}
	return -1
}

// Contains reports whether the layer is a member of the collection.
func (c *LayerCollection) Contains(layer *Layer) bool {
	return c.IndexOf(layer) >= 0
}

// Add appends a layer to the end of the collection.
// Adding a layer this collection already owns is a no-op.
func (c *LayerCollection) Add(layer *Layer) error {
	return c.Insert(len(c.layers), layer)
}

// Insert inserts a layer at index.
//
// Returns ErrNilLayer for a nil layer and an ErrIndexOutOfRange error when
// index is outside [0, Len()]. Inserting a layer this collection already
// owns is silently ignored, even at a different index. (The re-insert
// guard runs before the position is considered; moving a layer requires an
// explicit Remove followed by Insert.) A layer owned by another collection
// is detached from it first, atomically with the insert.
func (c *LayerCollection) Insert(index int, layer *Layer) error {
	if layer == nil {
		return ErrNilLayer
	}
	if index < 0 || index > len(c.layers) {
		return indexError(index, len(c.layers))
	}
	if layer.parent == c {
		return nil
	}

	c.adopt(layer)
	c.layers = slices.Insert(c.layers, index, layer)
	c.changed = true
	return nil
}

// Remove removes a layer from the collection and clears its
// back-reference. Returns false when the layer is nil or not a member;
// removing an absent layer is not an error.
func (c *LayerCollection) Remove(layer *Layer) bool {
	i := c.IndexOf(layer)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// RemoveAt removes the layer at index. Returns an ErrIndexOutOfRange
// error when the index is invalid.
func (c *LayerCollection) RemoveAt(index int) error {
	if index < 0 || index >= len(c.layers) {
		return indexError(index, len(c.layers))
	}
	c.removeAt(index)
	return nil
}

// Clear removes all layers and clears their back-references.
// Clearing an empty collection is a no-op and does not mark it changed.
// Detaching does not destroy the layers.
func (c *LayerCollection) Clear() {
	if len(c.layers) == 0 {
		return
	}
	for _, l := range c.layers {
		l.parent = nil
	}
	c.layers = nil
	c.changed = true
}

// Layers returns the layers in sequence order.
// The returned slice is a copy, stable until the next mutation.
func (c *LayerCollection) Layers() []*Layer {
	out := make([]*Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// IsChanged reports whether the collection or any contained layer changed
// since the last AcceptChanges. The answer is recomputed on every call,
// never cached: a layer dirtied through a shared reference is observed
// immediately.
func (c *LayerCollection) IsChanged() bool {
	if c.changed {
		return true
	}
	for _, l := range c.layers {
		if l.IsChanged() {
			return true
		}
	}
	return false
}

// AcceptChanges clears every layer's change flag, then the aggregate flag.
//
// Call it only after the corresponding render submission has consumed the
// dirty state and after externally mutated layer content has stabilized
// for the frame; accepting too early can mask a same-frame change.
// Effects call this from their late frame phase.
func (c *LayerCollection) AcceptChanges() {
	for _, l := range c.layers {
		l.acceptChanges()
	}
	c.changed = false
}

// Render asks each layer, in sequence order, to record its commands into
// the shared renderer scope. All layers' commands accumulate into the one
// underlying buffer; there is no isolation between layers.
//
// Render does not clear dirty state; submission and acknowledgment are
// separate phases.
func (c *LayerCollection) Render(r *recording.Renderer, res Resources) {
	if r == nil {
		return
	}
	for _, l := range c.layers {
		l.Render(r, res)
	}
}

// UpdateChanged re-checks every layer for out-of-band mutation. Authoring
// integrations call this once per frame, before effects decide whether to
// rebuild.
func (c *LayerCollection) UpdateChanged() {
	for _, l := range c.layers {
		l.UpdateChanged()
	}
}

// Reset propagates a full reset to every layer, releasing per-object
// render state. Used on teardown. Membership of the collection itself is
// unchanged.
func (c *LayerCollection) Reset() {
	for _, l := range c.layers {
		l.Reset()
	}
}

// adopt takes ownership of a layer, detaching it from any previous owner
// first. The detach marks the previous owner changed, so reassignment is
// observed on both sides.
func (c *LayerCollection) adopt(layer *Layer) {
	if p := layer.parent; p != nil && p != c {
		p.Remove(layer)
	}
	layer.parent = c
}

// removeAt removes the layer at a known-valid index.
func (c *LayerCollection) removeAt(index int) {
	l := c.layers[index]
	c.layers = slices.Delete(c.layers, index, index+1)
	l.parent = nil
	c.changed = true
}
