// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"context"
	"errors"
	"sync"
)

// DefaultMaxHistory bounds how many finished tasks are remembered.
const DefaultMaxHistory = 100

// Tracker records every pending request. It does not limit concurrency:
// any number of tasks may be running at once.
type Tracker struct {
	mu         sync.RWMutex
	running    map[string]*Task
	history    []*Task
	maxHistory int
}

// NewTracker creates a tracker keeping at most maxHistory finished tasks.
func NewTracker(maxHistory int) *Tracker {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Tracker{
		running:    make(map[string]*Task),
		history:    make([]*Task, 0),
		maxHistory: maxHistory,
	}
}

// Start marks the task running and returns the context its generation call
// must use. The context is cancelled only through Cancel/CancelAll or when
// parent is done.
func (tr *Tracker) Start(parent context.Context, task *Task) context.Context {
	ctx, cancel := context.WithCancel(parent)
	task.setCancel(cancel)
	_ = task.SetStatus(TaskStatusRunning)

	tr.mu.Lock()
	tr.running[task.ID] = task
	tr.mu.Unlock()
	return ctx
}

// Finish records the outcome of a task, releases its context and moves it
// to history.
func (tr *Tracker) Finish(task *Task, err error) {
	switch {
	case err == nil:
		_ = task.SetStatus(TaskStatusComplete)
	case errors.Is(err, context.Canceled):
		task.Cancel()
	default:
		task.fail(err)
	}
	task.release()

	tr.mu.Lock()
	defer tr.mu.Unlock()
	delete(tr.running, task.ID)
	tr.history = append(tr.history, task)
	if len(tr.history) > tr.maxHistory {
		tr.history = tr.history[len(tr.history)-tr.maxHistory:]
	}
}

// Get returns a running or remembered task by ID.
func (tr *Tracker) Get(id string) *Task {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	if t, ok := tr.running[id]; ok {
		return t
	}
	for _, t := range tr.history {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Pending returns the number of tasks still running.
func (tr *Tracker) Pending() int {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return len(tr.running)
}

// History returns finished tasks, oldest first.
func (tr *Tracker) History() []*Task {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	out := make([]*Task, len(tr.history))
	copy(out, tr.history)
	return out
}

// CancelAll cancels every running task. Used on shutdown only.
func (tr *Tracker) CancelAll() int {
	tr.mu.RLock()
	running := make([]*Task, 0, len(tr.running))
	for _, t := range tr.running {
		running = append(running, t)
	}
	tr.mu.RUnlock()

	n := 0
	for _, t := range running {
		if t.Cancel() {
			n++
		}
	}
	return n
}
