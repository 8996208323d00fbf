// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/outline/recording"
	"github.com/gogpu/outline/render"
)

func TestRegistered(t *testing.T) {
	if !recording.IsRegistered(BackendWGPU) {
		t.Fatal("wgpu backend should self-register")
	}
	b := recording.MustBackend(BackendWGPU)
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("MustBackend returned %T, want *Backend", b)
	}
}

func TestInitValidation(t *testing.T) {
	b := NewBackend()
	if b.Name() != BackendWGPU {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendWGPU)
	}
	if err := b.Init(nil, nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Init(nil, nil) = %v, want ErrNoDevice", err)
	}
}

func TestBeginRequiresInit(t *testing.T) {
	b := NewBackend()
	err := b.Begin(render.NewPixmapTarget(8, 8), nil)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Begin() = %v, want ErrNotInitialized", err)
	}
}

func TestCommandsRequirePass(t *testing.T) {
	b := NewBackend()

	if err := b.ClearMask(); !errors.Is(err, ErrNoPass) {
		t.Errorf("ClearMask() = %v, want ErrNoPass", err)
	}
	if err := b.DrawMask(nil); !errors.Is(err, ErrNoPass) {
		t.Errorf("DrawMask() = %v, want ErrNoPass", err)
	}
	if err := b.Outline(recording.DefaultStyle()); !errors.Is(err, ErrNoPass) {
		t.Errorf("Outline() = %v, want ErrNoPass", err)
	}
	if err := b.End(); !errors.Is(err, ErrNoPass) {
		t.Errorf("End() = %v, want ErrNoPass", err)
	}
}

func TestDestroyWithoutInit(t *testing.T) {
	b := NewBackend()
	b.Destroy()
	if b.initialized {
		t.Error("Destroy should leave the backend uninitialized")
	}
}
