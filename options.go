// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

// Option configures an Effect during creation.
// Use functional options to customize Effect behavior.
//
// Example:
//
//	// Default: no resources yet, buffer runs before post effects
//	effect := outline.NewEffect()
//
//	// Fully configured
//	effect := outline.NewEffect(
//	    outline.WithResources(res),
//	    outline.WithLayers(shared),
//	    outline.WithEvent(outline.AfterEverything),
//	)
type Option func(*Effect)

// WithResources sets the effect's resource capability.
// A nil value is ignored; an effect without resources degrades to empty
// submissions until resources are assigned via SetResources.
func WithResources(res Resources) Option {
	return func(e *Effect) {
		if res != nil {
			e.res = res
		}
	}
}

// WithLayers sets the effect's layer collection, typically to share one
// collection across several effects from construction. A nil value is
// ignored; the collection is otherwise lazily created on first access.
func WithLayers(c *LayerCollection) Option {
	return func(e *Effect) {
		if c != nil {
			e.layers = c
		}
	}
}

// WithEvent sets the render event the command buffer registers at.
// The default is BeforeEffects. The event is fixed for the lifetime of
// the effect; changing it would require a disable/enable cycle anyway to
// re-register the buffer.
func WithEvent(event RenderEvent) Option {
	return func(e *Effect) {
		e.event = event
	}
}
