// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks tracks the in-flight generation requests of the chat TUI.
//
// Every submitted message becomes one Task. Tasks are never merged or
// queued behind each other: each runs on its own goroutine, and the
// Tracker only records their lifecycle so the UI can show how many
// replies are still pending and so shutdown can cancel them.
//
// # Lifecycle
//
//	Queued -> Running -> Complete | Failed | Canceled
//
// # Usage
//
//	tracker := tasks.NewTracker(100)
//	task := tasks.NewTask(prompt)
//	ctx := tracker.Start(parent, task)
//	reply, err := gen.Generate(ctx, prompt)
//	tracker.Finish(task, err)
package tasks
