// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"fmt"
)

// ErrNoTarget is returned by Execute when a buffer contains drawing
// commands without a preceding target binding.
var ErrNoTarget = errors.New("recording: command stream has no target binding")

// CommandBuffer is a persistent, host-executed list of outline commands.
//
// A buffer is owned by one effect driver. The driver re-records it only
// when the outline configuration changed; the host executes it once per
// frame regardless. An empty buffer is a valid no-op submission.
//
// CommandBuffer is not safe for concurrent use. The frame loop is a single
// logical thread: recording and execution never overlap.
type CommandBuffer struct {
	name     string
	commands []Command
}

// NewCommandBuffer creates an empty command buffer with the given debug name.
func NewCommandBuffer(name string) *CommandBuffer {
	return &CommandBuffer{
		name:     name,
		commands: make([]Command, 0, 16),
	}
}

// Name returns the buffer's debug name.
func (b *CommandBuffer) Name() string {
	return b.name
}

// Len returns the number of recorded commands.
func (b *CommandBuffer) Len() int {
	return len(b.commands)
}

// Commands returns the recorded commands in order.
// The returned slice is a copy; mutating it does not affect the buffer.
func (b *CommandBuffer) Commands() []Command {
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// Clear removes all recorded commands. The buffer remains usable; an empty
// buffer executed by a backend is a no-op submission.
func (b *CommandBuffer) Clear() {
	b.commands = b.commands[:0]
}

// append adds a command to the buffer. Only the Renderer records commands;
// keeping this unexported preserves the invariant that every non-empty
// buffer starts with a target binding.
func (b *CommandBuffer) append(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// Execute replays the buffer to the given backend.
//
// An empty buffer returns nil without touching the backend. Otherwise the
// backend's Begin is driven by the leading BindTargetCommand and End is
// called after the last command, even when a drawing command fails.
func (b *CommandBuffer) Execute(backend Backend) error {
	if backend == nil {
		return errors.New("recording: nil backend")
	}
	if len(b.commands) == 0 {
		return nil
	}

	began := false
	var execErr error

	for _, cmd := range b.commands {
		if execErr != nil {
			break
		}
		switch c := cmd.(type) {
		case BindTargetCommand:
			if err := backend.Begin(c.Target, c.Resources); err != nil {
				return fmt.Errorf("recording: %s: begin: %w", b.name, err)
			}
			began = true
		case ClearMaskCommand:
			if !began {
				return ErrNoTarget
			}
			execErr = backend.ClearMask()
		case DrawMaskCommand:
			if !began {
				return ErrNoTarget
			}
			execErr = backend.DrawMask(c.Object)
		case OutlineCommand:
			if !began {
				return ErrNoTarget
			}
			execErr = backend.Outline(c.Style)
		}
	}

	if began {
		if err := backend.End(); err != nil && execErr == nil {
			execErr = err
		}
	}
	if execErr != nil {
		return fmt.Errorf("recording: %s: %w", b.name, execErr)
	}
	return nil
}
