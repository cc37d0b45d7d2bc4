// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewTask(t *testing.T) {
	task := NewTask("hello")

	if task.ID == "" {
		t.Error("Task ID should not be empty")
	}
	if task.Prompt != "hello" {
		t.Errorf("Expected prompt 'hello', got '%s'", task.Prompt)
	}
	if task.GetStatus() != TaskStatusQueued {
		t.Errorf("Expected status Queued, got %s", task.GetStatus())
	}
}

func TestTaskStatusTransitions(t *testing.T) {
	tests := []struct {
		from    TaskStatus
		to      TaskStatus
		wantErr bool
	}{
		{TaskStatusQueued, TaskStatusRunning, false},
		{TaskStatusQueued, TaskStatusCanceled, false},
		{TaskStatusQueued, TaskStatusComplete, true},
		{TaskStatusRunning, TaskStatusComplete, false},
		{TaskStatusRunning, TaskStatusFailed, false},
		{TaskStatusComplete, TaskStatusRunning, true},
		{TaskStatusFailed, TaskStatusComplete, true},
		{TaskStatusRunning, TaskStatusRunning, false},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s->%s", tc.from, tc.to), func(t *testing.T) {
			task := NewTask("x")
			task.Status = tc.from
			err := task.SetStatus(tc.to)
			if (err != nil) != tc.wantErr {
				t.Errorf("SetStatus error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestTaskCancel(t *testing.T) {
	task := NewTask("x")
	if !task.Cancel() {
		t.Error("queued task should be cancelable")
	}
	if task.GetStatus() != TaskStatusCanceled {
		t.Errorf("Expected Canceled, got %s", task.GetStatus())
	}
	if task.Cancel() {
		t.Error("canceled task should not cancel twice")
	}
}

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker(10)
	a := NewTask("a")
	b := NewTask("b")

	tr.Start(context.Background(), a)
	tr.Start(context.Background(), b)
	if tr.Pending() != 2 {
		t.Fatalf("Expected 2 pending, got %d", tr.Pending())
	}

	tr.Finish(a, nil)
	tr.Finish(b, errors.New("out of memory"))

	if tr.Pending() != 0 {
		t.Errorf("Expected 0 pending, got %d", tr.Pending())
	}
	if a.GetStatus() != TaskStatusComplete {
		t.Errorf("a status = %s, want Complete", a.GetStatus())
	}
	if b.GetStatus() != TaskStatusFailed {
		t.Errorf("b status = %s, want Failed", b.GetStatus())
	}
	if b.GetError() != "out of memory" {
		t.Errorf("b error = %q", b.GetError())
	}
	if tr.Get(a.ID) != a {
		t.Error("Get should find finished task")
	}
	if len(tr.History()) != 2 {
		t.Errorf("Expected 2 history entries, got %d", len(tr.History()))
	}
}

func TestTrackerFinishReleasesContext(t *testing.T) {
	tr := NewTracker(10)
	task := NewTask("a")

	ctx := tr.Start(context.Background(), task)
	tr.Finish(task, nil)

	select {
	case <-ctx.Done():
	default:
		t.Fatal("task context should be released after Finish")
	}
	if task.GetStatus() != TaskStatusComplete {
		t.Errorf("status = %s, want Complete", task.GetStatus())
	}
}

func TestTrackerHistoryBound(t *testing.T) {
	tr := NewTracker(3)
	for i := 0; i < 5; i++ {
		task := NewTask(fmt.Sprintf("p%d", i))
		tr.Start(context.Background(), task)
		tr.Finish(task, nil)
	}

	history := tr.History()
	if len(history) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(history))
	}
	if history[0].Prompt != "p2" {
		t.Errorf("oldest kept = %q, want p2", history[0].Prompt)
	}
}

func TestTrackerCancelAll(t *testing.T) {
	tr := NewTracker(10)
	task := NewTask("slow")
	ctx := tr.Start(context.Background(), task)

	if n := tr.CancelAll(); n != 1 {
		t.Errorf("CancelAll = %d, want 1", n)
	}

	select {
	case <-ctx.Done():
	default:
		t.Fatal("task context should be cancelled")
	}

	tr.Finish(task, ctx.Err())
	if task.GetStatus() != TaskStatusCanceled {
		t.Errorf("status = %s, want Canceled", task.GetStatus())
	}
}
