// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"

	"github.com/gogpu/outline/render"
)

// Renderer records one outline render pass into a command buffer.
//
// A Renderer is a scoped recorder: construction clears the buffer and binds
// the target surface, Close finalizes the recording. The scope is shared:
// multiple layers record into the same Renderer in sequence, and all their
// commands accumulate into the one buffer with no isolation between layers.
//
// Callers must guarantee Close runs on every exit path, typically:
//
//	r, err := recording.NewRenderer(buf, target, res)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// The Renderer is not safe for concurrent use.
type Renderer struct {
	buf    *CommandBuffer
	target render.RenderTarget
	closed bool
}

// NewRenderer opens a recording scope over buf, bound to the given target
// surface and resources. Any previously recorded commands are discarded.
//
// Returns an error if buf or target is nil. A nil resources value is
// recorded as-is; backends treat it as an invalid capability.
func NewRenderer(buf *CommandBuffer, target render.RenderTarget, res Resources) (*Renderer, error) {
	if buf == nil {
		return nil, errors.New("recording: nil command buffer")
	}
	if target == nil {
		return nil, errors.New("recording: nil render target")
	}

	buf.Clear()
	buf.append(BindTargetCommand{Target: target, Resources: res})

	return &Renderer{buf: buf, target: target}, nil
}

// Target returns the render target this scope is bound to.
func (r *Renderer) Target() render.RenderTarget {
	return r.target
}

// Mask records a mask pass for the given objects: one ClearMask followed by
// a DrawMask per visible object. Nil and invisible objects are skipped.
//
// Returns the number of objects recorded. When no object is visible,
// nothing is recorded and the caller should skip the matching Outline.
func (r *Renderer) Mask(objects ...Renderable) int {
	if r.closed {
		return 0
	}

	n := 0
	for _, obj := range objects {
		if obj == nil || !obj.Visible() {
			continue
		}
		if n == 0 {
			r.buf.append(ClearMaskCommand{})
		}
		r.buf.append(DrawMaskCommand{Object: obj})
		n++
	}
	return n
}

// Outline records the composite pass for one layer style. The style is
// clamped to the supported width range before recording.
func (r *Renderer) Outline(style Style) {
	if r.closed {
		return
	}
	r.buf.append(OutlineCommand{Style: style.Clamped()})
}

// Close finalizes the recording. After Close, Mask and Outline are no-ops.
// Close is idempotent and always returns nil; the error return exists so
// the Renderer satisfies the usual closer shape under defer.
func (r *Renderer) Close() error {
	r.closed = true
	return nil
}
