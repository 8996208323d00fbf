// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/outline/recording"
	"github.com/gogpu/outline/render"
)

// testObject is a minimal renderable for layer membership tests.
type testObject struct {
	visible  bool
	released int
}

func (o *testObject) Visible() bool { return o.visible }

func (o *testObject) ReleaseOutline() { o.released++ }

// testResources is a resource capability with controllable validity.
type testResources struct {
	valid bool
}

func (r *testResources) IsValid() bool { return r.valid }

func TestNewLayer(t *testing.T) {
	l := NewLayer("enemies")

	if l.Name() != "enemies" {
		t.Errorf("Name() = %q, want %q", l.Name(), "enemies")
	}
	if !l.Enabled() {
		t.Error("new layer should be enabled")
	}
	if l.Collection() != nil {
		t.Error("new layer should be detached")
	}
	if l.IsChanged() {
		t.Error("new layer should not be changed")
	}
	if l.Style != recording.DefaultStyle() {
		t.Errorf("Style = %+v, want default", l.Style)
	}
}

func TestLayerAddRemove(t *testing.T) {
	l := NewLayer("test")
	obj := &testObject{visible: true}

	if err := l.Add(nil); !errors.Is(err, ErrNilRenderable) {
		t.Errorf("Add(nil) = %v, want ErrNilRenderable", err)
	}
	if err := l.Add(obj); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if !l.Contains(obj) {
		t.Error("Contains() = false after Add")
	}
	if !l.IsChanged() {
		t.Error("layer should be changed after Add")
	}

	// Re-adding a member is a no-op.
	if err := l.Add(obj); err != nil {
		t.Fatalf("Add() again error: %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Add, want 1", l.Len())
	}

	if !l.Remove(obj) {
		t.Error("Remove() = false for member")
	}
	if l.Remove(obj) {
		t.Error("Remove() = true for absent object")
	}
	if l.Remove(nil) {
		t.Error("Remove(nil) = true")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Remove, want 0", l.Len())
	}
}

func TestLayerSetEnabled(t *testing.T) {
	l := NewLayer("test")

	l.SetEnabled(true)
	if l.IsChanged() {
		t.Error("setting the current value should not mark changed")
	}

	l.SetEnabled(false)
	if l.Enabled() {
		t.Error("Enabled() = true after SetEnabled(false)")
	}
	if !l.IsChanged() {
		t.Error("flipping enabled should mark changed")
	}
}

func TestLayerStyleChangeTracking(t *testing.T) {
	l := NewLayer("test")

	// Direct field writes are invisible until UpdateChanged.
	l.Style.Width = 10
	if l.IsChanged() {
		t.Error("direct Style write should not be observed immediately")
	}
	l.UpdateChanged()
	if !l.IsChanged() {
		t.Error("UpdateChanged should observe the Style edit")
	}

	l.acceptChanges()
	if l.IsChanged() {
		t.Error("acceptChanges should clear the flag")
	}

	// Once accepted, the same style no longer reads as changed.
	l.UpdateChanged()
	if l.IsChanged() {
		t.Error("UpdateChanged should be quiet for an accepted style")
	}

	// SetStyle marks changed immediately.
	s := l.Style
	s.Color = color.RGBA{G: 0xff, A: 0xff}
	l.SetStyle(s)
	if !l.IsChanged() {
		t.Error("SetStyle should mark changed")
	}
}

func TestLayerClearEmpty(t *testing.T) {
	l := NewLayer("test")
	l.Clear()
	if l.IsChanged() {
		t.Error("clearing an empty layer should not mark changed")
	}
}

func TestLayerReset(t *testing.T) {
	l := NewLayer("test")
	obj := &testObject{visible: true}
	if err := l.Add(obj); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	l.acceptChanges()

	l.Reset()
	if obj.released != 1 {
		t.Errorf("released = %d, want 1", obj.released)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", l.Len())
	}
	if !l.IsChanged() {
		t.Error("Reset should mark changed")
	}
}

func TestLayerRender(t *testing.T) {
	buf := recording.NewCommandBuffer("test")
	target := render.NewPixmapTarget(64, 64)
	res := &testResources{valid: true}

	record := func(l *Layer) []recording.Command {
		r, err := recording.NewRenderer(buf, target, res)
		if err != nil {
			t.Fatalf("NewRenderer() error: %v", err)
		}
		defer r.Close()
		l.Render(r, res)
		return buf.Commands()
	}

	l := NewLayer("test")
	visible := &testObject{visible: true}
	hidden := &testObject{visible: false}
	if err := l.Add(visible); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := l.Add(hidden); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	// Bind + ClearMask + DrawMask(visible) + Outline.
	cmds := record(l)
	if len(cmds) != 4 {
		t.Fatalf("recorded %d commands, want 4", len(cmds))
	}
	want := []recording.CommandType{
		recording.CmdBindTarget,
		recording.CmdClearMask,
		recording.CmdDrawMask,
		recording.CmdOutline,
	}
	for i, w := range want {
		if cmds[i].Type() != w {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Type(), w)
		}
	}

	// Disabled layers record nothing past the binding.
	l.SetEnabled(false)
	if cmds := record(l); len(cmds) != 1 {
		t.Errorf("disabled layer recorded %d commands, want 1", len(cmds))
	}
	l.SetEnabled(true)

	// A layer with no visible member skips its Outline too.
	l.Remove(visible)
	if cmds := record(l); len(cmds) != 1 {
		t.Errorf("invisible-only layer recorded %d commands, want 1", len(cmds))
	}

	// Invalid resources record nothing.
	l.Add(visible)
	r, err := recording.NewRenderer(buf, target, res)
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	defer r.Close()
	l.Render(r, &testResources{valid: false})
	if buf.Len() != 1 {
		t.Errorf("invalid resources recorded %d commands, want 1", buf.Len())
	}
}
