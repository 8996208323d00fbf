// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image/color"
	"testing"
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdBindTarget, "BindTarget"},
		{CmdClearMask, "ClearMask"},
		{CmdDrawMask, "DrawMask"},
		{CmdOutline, "Outline"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.ct, got, tt.want)
		}
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Color != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("Color = %v, want red", s.Color)
	}
	if s.Width < MinWidth || s.Width > MaxWidth {
		t.Errorf("Width = %d outside [%d, %d]", s.Width, MinWidth, MaxWidth)
	}
	if s.Mode != ModeSolid {
		t.Errorf("Mode = %v, want ModeSolid", s.Mode)
	}
	if s.Blurred() {
		t.Error("default style should not be blurred")
	}
}

func TestStyleClamped(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{-5, MinWidth},
		{0, MinWidth},
		{MinWidth, MinWidth},
		{7, 7},
		{MaxWidth, MaxWidth},
		{MaxWidth + 1, MaxWidth},
		{1000, MaxWidth},
	}
	for _, tt := range tests {
		s := Style{Width: tt.width}
		if got := s.Clamped().Width; got != tt.want {
			t.Errorf("Style{Width: %d}.Clamped().Width = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if got := ModeSolid.String(); got != "Solid" {
		t.Errorf("ModeSolid.String() = %q, want %q", got, "Solid")
	}
	if got := ModeBlurred.String(); got != "Blurred" {
		t.Errorf("ModeBlurred.String() = %q, want %q", got, "Blurred")
	}

	s := Style{Mode: ModeBlurred}
	if !s.Blurred() {
		t.Error("Blurred() = false for ModeBlurred style")
	}
}
