// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package trace provides a bookkeeping backend that records executed
// outline commands as readable strings instead of GPU work.
//
// It is useful for tests, debugging, and headless tools that want to
// inspect exactly what a frame would submit:
//
//	import _ "github.com/gogpu/outline/backend/trace"
//
//	b := recording.MustBackend("trace")
//	buf.Execute(b)
//	for _, op := range b.(*trace.Backend).Ops() {
//	    fmt.Println(op)
//	}
package trace

import (
	"errors"
	"fmt"

	"github.com/gogpu/outline/recording"
	"github.com/gogpu/outline/render"
)

// BackendTrace is the registry name of the trace backend.
const BackendTrace = "trace"

func init() {
	recording.Register(BackendTrace, func() recording.Backend {
		return NewBackend()
	})
}

// Backend records executed commands as strings.
// The zero value is not usable; create instances with NewBackend.
//
// Backend is not safe for concurrent use.
type Backend struct {
	ops   []string
	began bool
}

// NewBackend creates an empty trace backend.
func NewBackend() *Backend {
	return &Backend{ops: make([]string, 0, 16)}
}

// Ops returns the operations executed so far, in order, one readable
// string per backend call.
func (b *Backend) Ops() []string {
	out := make([]string, len(b.ops))
	copy(out, b.ops)
	return out
}

// Reset discards all recorded operations.
func (b *Backend) Reset() {
	b.ops = b.ops[:0]
	b.began = false
}

// Begin starts a pass. A nil target or an absent/invalid resource
// capability is an error; the recording layer never emits either.
func (b *Backend) Begin(target render.RenderTarget, res recording.Resources) error {
	if target == nil {
		return errors.New("trace: nil render target")
	}
	if res == nil || !res.IsValid() {
		return errors.New("trace: invalid resources")
	}
	b.began = true
	b.ops = append(b.ops, fmt.Sprintf("Begin %dx%d", target.Width(), target.Height()))
	return nil
}

// ClearMask records a mask clear. Calling it outside a pass is an error.
func (b *Backend) ClearMask() error {
	if !b.began {
		return errors.New("trace: ClearMask without Begin")
	}
	b.ops = append(b.ops, "ClearMask")
	return nil
}

// DrawMask records a mask draw for one object. Calling it outside a pass
// is an error.
func (b *Backend) DrawMask(obj recording.Renderable) error {
	if !b.began {
		return errors.New("trace: DrawMask without Begin")
	}
	b.ops = append(b.ops, fmt.Sprintf("DrawMask %T", obj))
	return nil
}

// Outline records a composite pass for one style. Calling it outside a
// pass is an error.
func (b *Backend) Outline(style recording.Style) error {
	if !b.began {
		return errors.New("trace: Outline without Begin")
	}
	b.ops = append(b.ops, fmt.Sprintf("Outline %s width=%d", style.Mode, style.Width))
	return nil
}

// End finalizes the pass.
func (b *Backend) End() error {
	if !b.began {
		return errors.New("trace: End without Begin")
	}
	b.began = false
	b.ops = append(b.ops, "End")
	return nil
}

// Ensure Backend implements recording.Backend.
var _ recording.Backend = (*Backend)(nil)
