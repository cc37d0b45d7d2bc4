// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package turn

import "context"

// Generator is the text generation service: one prompt in, one completion
// out. It must honour ctx cancellation but sets no deadline of its own.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EventKind identifies what a background unit is reporting.
type EventKind int

const (
	// EventStatus asks for the thinking line to be appended.
	EventStatus EventKind = iota
	// EventReply carries the generated text.
	EventReply
	// EventFailure carries the generation error.
	EventFailure
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventStatus:
		return "status"
	case EventReply:
		return "reply"
	case EventFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event is one message from a background unit to the UI goroutine.
type Event struct {
	TurnID string
	Kind   EventKind
	Text   string
	Err    error
}

// GenerationError wraps a generator failure for display.
type GenerationError struct {
	TurnID string
	Cause  error
}

func (e *GenerationError) Error() string {
	return "An error occurred: " + e.Cause.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
