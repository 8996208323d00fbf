// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"errors"
	"testing"

	"github.com/gogpu/outline/recording"
	"github.com/gogpu/outline/render"
)

// testCamera is a host camera that tracks buffer registration and counts
// target queries, which only happen on an actual rebuild.
type testCamera struct {
	target   render.RenderTarget
	attached []*recording.CommandBuffer
	queries  int
}

func newTestCamera() *testCamera {
	return &testCamera{target: render.NewPixmapTarget(64, 64)}
}

func (c *testCamera) AttachBuffer(event RenderEvent, buf *recording.CommandBuffer) error {
	c.attached = append(c.attached, buf)
	return nil
}

func (c *testCamera) DetachBuffer(event RenderEvent, buf *recording.CommandBuffer) {
	for i, b := range c.attached {
		if b == buf {
			c.attached = append(c.attached[:i], c.attached[i+1:]...)
			return
		}
	}
}

func (c *testCamera) Target() render.RenderTarget {
	c.queries++
	return c.target
}

func TestEffectEnableDisable(t *testing.T) {
	e := NewEffect()
	cam := newTestCamera()

	if err := e.Enable(nil); !errors.Is(err, ErrNilCamera) {
		t.Errorf("Enable(nil) = %v, want ErrNilCamera", err)
	}
	if err := e.Enable(cam); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	if !e.Enabled() {
		t.Error("Enabled() = false after Enable")
	}
	if e.CommandBuffer() == nil {
		t.Fatal("CommandBuffer() = nil while enabled")
	}
	if len(cam.attached) != 1 {
		t.Errorf("camera has %d buffers, want 1", len(cam.attached))
	}
	if err := e.Enable(cam); !errors.Is(err, ErrEnabled) {
		t.Errorf("double Enable() = %v, want ErrEnabled", err)
	}

	e.Disable()
	if e.Enabled() {
		t.Error("Enabled() = true after Disable")
	}
	if e.CommandBuffer() != nil {
		t.Error("CommandBuffer() should be nil after Disable")
	}
	if len(cam.attached) != 0 {
		t.Errorf("camera has %d buffers after Disable, want 0", len(cam.attached))
	}
	e.Disable()
}

func TestEffectLazyLayers(t *testing.T) {
	e := NewEffect()
	c := e.Layers()
	if c == nil {
		t.Fatal("Layers() = nil")
	}
	if e.Layers() != c {
		t.Error("Layers() should return the same instance")
	}

	if err := e.SetLayers(nil); !errors.Is(err, ErrNilLayers) {
		t.Errorf("SetLayers(nil) = %v, want ErrNilLayers", err)
	}
	other := NewLayerCollection()
	if err := e.SetLayers(other); err != nil {
		t.Fatalf("SetLayers() error: %v", err)
	}
	if e.Layers() != other {
		t.Error("Layers() should return the replacement")
	}
}

func TestEffectUpdateRecordsOnce(t *testing.T) {
	e := NewEffect(WithResources(&testResources{valid: true}))
	cam := newTestCamera()
	if err := e.Enable(cam); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}

	l := NewLayer("test")
	l.Add(&testObject{visible: true})
	e.Layers().Add(l)

	e.Update()
	if cam.queries != 1 {
		t.Errorf("target queried %d times, want 1", cam.queries)
	}
	if e.CommandBuffer().Len() != 4 {
		t.Errorf("buffer has %d commands, want 4", e.CommandBuffer().Len())
	}
	e.EndFrame()

	// Nothing changed: the next frames must not re-record.
	e.Update()
	e.EndFrame()
	e.Update()
	if cam.queries != 1 {
		t.Errorf("target queried %d times after stable frames, want 1", cam.queries)
	}

	// A layer mutation triggers exactly one more rebuild.
	l.SetEnabled(false)
	e.Update()
	e.EndFrame()
	if cam.queries != 2 {
		t.Errorf("target queried %d times after mutation, want 2", cam.queries)
	}
	if e.CommandBuffer().Len() != 1 {
		t.Errorf("buffer has %d commands for disabled layer, want 1", e.CommandBuffer().Len())
	}
}

func TestEffectUpdateInvalidResources(t *testing.T) {
	res := &testResources{valid: true}
	e := NewEffect(WithResources(res))
	cam := newTestCamera()
	if err := e.Enable(cam); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}

	l := NewLayer("test")
	l.Add(&testObject{visible: true})
	e.Layers().Add(l)

	e.Update()
	e.EndFrame()
	if e.CommandBuffer().Len() == 0 {
		t.Fatal("expected commands with valid resources")
	}

	// Resources going invalid must empty the buffer, never leave it stale.
	res.valid = false
	l.SetEnabled(false)
	l.SetEnabled(true)
	e.Update()
	if e.CommandBuffer().Len() != 0 {
		t.Errorf("buffer has %d commands with invalid resources, want 0", e.CommandBuffer().Len())
	}
}

func TestEffectSharedLayers(t *testing.T) {
	res := &testResources{valid: true}
	e1 := NewEffect(WithResources(res))
	e2 := NewEffect(WithResources(res))

	if err := e1.ShareLayersWith(nil); !errors.Is(err, ErrNilEffect) {
		t.Errorf("ShareLayersWith(nil) = %v, want ErrNilEffect", err)
	}
	if err := e1.ShareLayersWith(e2); err != nil {
		t.Fatalf("ShareLayersWith() error: %v", err)
	}
	if e1.Layers() != e2.Layers() {
		t.Fatal("effects should share one collection")
	}

	cam1 := newTestCamera()
	cam2 := newTestCamera()
	if err := e1.Enable(cam1); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	if err := e2.Enable(cam2); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}

	l := NewLayer("shared")
	l.Add(&testObject{visible: true})
	e1.Layers().Add(l)

	// A mutation through one effect is rendered by both.
	e1.Update()
	e2.Update()
	if e1.CommandBuffer().Len() != 4 {
		t.Errorf("e1 buffer has %d commands, want 4", e1.CommandBuffer().Len())
	}
	if e2.CommandBuffer().Len() != 4 {
		t.Errorf("e2 buffer has %d commands, want 4", e2.CommandBuffer().Len())
	}
	e1.EndFrame()
	e2.EndFrame()
}

func TestEffectEndFrameDecoupled(t *testing.T) {
	e := NewEffect(WithResources(&testResources{valid: true}))
	cam := newTestCamera()
	if err := e.Enable(cam); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	l := NewLayer("test")
	e.Layers().Add(l)
	e.Update()

	e.EndFrame()

	// A mutation after EndFrame stays pending for the next frame.
	l.SetEnabled(false)
	if !e.Layers().IsChanged() {
		t.Error("mid-frame mutation should stay pending")
	}
	e.Update()
	e.EndFrame()
	if e.Layers().IsChanged() {
		t.Error("accepted mutation should be cleared")
	}
}

func TestEffectOptions(t *testing.T) {
	res := &testResources{valid: true}
	layers := NewLayerCollection()
	e := NewEffect(
		WithResources(res),
		WithLayers(layers),
		WithEvent(AfterOpaques),
	)

	if e.Resources() != res {
		t.Error("WithResources not applied")
	}
	if e.Layers() != layers {
		t.Error("WithLayers not applied")
	}
	if e.Event() != AfterOpaques {
		t.Errorf("Event() = %v, want AfterOpaques", e.Event())
	}
}

func TestEffectClose(t *testing.T) {
	e := NewEffect(WithResources(&testResources{valid: true}))
	cam := newTestCamera()
	if err := e.Enable(cam); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}

	obj := &testObject{visible: true}
	l := NewLayer("test")
	l.Add(obj)
	e.Layers().Add(l)

	if err := e.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if e.Enabled() {
		t.Error("Close should disable the effect")
	}
	if obj.released != 1 {
		t.Errorf("released = %d, want 1", obj.released)
	}
}
