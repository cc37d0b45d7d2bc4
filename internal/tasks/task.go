// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/localbot/internal/util"
)

// =============================================================================
// TASK STATUS
// =============================================================================

// TaskStatus represents the current state of a generation request.
type TaskStatus string

const (
	TaskStatusQueued   TaskStatus = "Queued"
	TaskStatusRunning  TaskStatus = "Running"
	TaskStatusComplete TaskStatus = "Complete"
	TaskStatusFailed   TaskStatus = "Failed"
	TaskStatusCanceled TaskStatus = "Canceled"
)

// String returns the string representation of the task status.
func (s TaskStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusComplete || s == TaskStatusFailed || s == TaskStatusCanceled
}

// =============================================================================
// TASK STRUCTURE
// =============================================================================

// Task is one pending request: a prompt handed to the text generation
// service on its own goroutine.
type Task struct {
	ID        string
	Prompt    string
	Status    TaskStatus
	StartTime time.Time
	EndTime   time.Time
	Error     string

	cancel context.CancelFunc
	mu     sync.RWMutex
}

// NewTask creates a queued task for the given prompt.
func NewTask(prompt string) *Task {
	return &Task{
		ID:     uuid.New().String(),
		Prompt: prompt,
		Status: TaskStatusQueued,
	}
}

// SetStatus updates the status, rejecting invalid transitions.
// Valid transitions: Queued -> Running -> Complete/Failed/Canceled
func (t *Task) SetStatus(status TaskStatus) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !isValidTransition(t.Status, status) {
		return fmt.Errorf("invalid status transition from %s to %s", t.Status, status)
	}
	t.Status = status
	switch {
	case status == TaskStatusRunning && t.StartTime.IsZero():
		t.StartTime = time.Now()
	case status.IsTerminal() && t.EndTime.IsZero():
		t.EndTime = time.Now()
	}
	return nil
}

func isValidTransition(from, to TaskStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case TaskStatusQueued:
		return to == TaskStatusRunning || to == TaskStatusCanceled
	case TaskStatusRunning:
		return to.IsTerminal()
	default:
		return false
	}
}

// GetStatus returns the current task status.
func (t *Task) GetStatus() TaskStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.Status
}

// GetError returns the failure description, if any.
func (t *Task) GetError() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.Error
}

// Duration returns how long the task has been running or took to finish.
func (t *Task) Duration() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.StartTime.IsZero() {
		return 0
	}
	if t.EndTime.IsZero() {
		return time.Since(t.StartTime)
	}
	return t.EndTime.Sub(t.StartTime)
}

// Summary returns a one-line description for logs.
func (t *Task) Summary() string {
	status := t.GetStatus()
	summary := fmt.Sprintf("[%s] %q - %s", t.ID[:8], util.TruncateRunes(t.Prompt, 32), status)
	if d := t.Duration(); d > 0 {
		summary += fmt.Sprintf(" (%.1fs)", d.Seconds())
	}
	return summary
}

func (t *Task) setCancel(cancel context.CancelFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancel = cancel
}

// release frees the task context once the outcome is recorded.
func (t *Task) release() {
	t.mu.RLock()
	cancel := t.cancel
	t.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
}

func (t *Task) fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Status.IsTerminal() {
		return
	}
	t.Error = err.Error()
	t.Status = TaskStatusFailed
	t.EndTime = time.Now()
}

// Cancel cancels a queued or running task. Returns false if it had already
// finished.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Status.IsTerminal() {
		return false
	}
	if t.cancel != nil {
		t.cancel()
	}
	t.Status = TaskStatusCanceled
	t.EndTime = time.Now()
	return true
}
