// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import "errors"

var (
	// ErrNoDevice is returned when Init receives a nil device or queue.
	ErrNoDevice = errors.New("wgpu: no device")

	// ErrNotInitialized is returned when a pass starts before Init.
	ErrNotInitialized = errors.New("wgpu: backend not initialized")

	// ErrInvalidResources is returned when Begin receives resources that
	// are not valid compiled outline shaders.
	ErrInvalidResources = errors.New("wgpu: invalid shader resources")

	// ErrNoPass is returned for commands outside a Begin/End pair.
	ErrNoPass = errors.New("wgpu: no pass in progress")

	errNilTarget = errors.New("nil render target")
)
