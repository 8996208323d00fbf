// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"errors"
	"fmt"
)

// Structural violations are programmer errors and surface immediately to
// the caller; they are never swallowed by the rendering path.
var (
	// ErrNilLayer is returned when a nil layer is passed to a collection
	// mutation.
	ErrNilLayer = errors.New("outline: nil layer")

	// ErrNilLayers is returned when a nil collection is assigned to an
	// effect.
	ErrNilLayers = errors.New("outline: nil layer collection")

	// ErrNilResources is returned when nil resources are assigned to an
	// effect.
	ErrNilResources = errors.New("outline: nil resources")

	// ErrNilRenderable is returned when a nil object is added to a layer.
	ErrNilRenderable = errors.New("outline: nil renderable")

	// ErrNilCamera is returned when an effect is enabled with a nil camera.
	ErrNilCamera = errors.New("outline: nil camera")

	// ErrNilEffect is returned when sharing layers with a nil effect.
	ErrNilEffect = errors.New("outline: nil effect")

	// ErrEnabled is returned when enabling an already enabled effect.
	ErrEnabled = errors.New("outline: effect already enabled")

	// ErrIndexOutOfRange is returned by bounds-checked collection
	// operations. Use errors.Is to test for it; the returned error wraps
	// it with the offending index.
	ErrIndexOutOfRange = errors.New("outline: index out of range")
)

// indexError wraps ErrIndexOutOfRange with the offending index and the
// valid range.
func indexError(index, length int) error {
	return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, index, length)
}
