// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package turn implements the chat turn lifecycle with background
// generation.
//
// A turn moves through Idle -> Submitted -> AwaitingReply -> Displayed or
// Failed. Submit runs on the UI goroutine: it appends the User entry and
// starts one background unit. The unit never touches the log. It sends a
// Status event, calls the generator, then sends a Reply or Failure event.
// The UI goroutine drains Events and calls Apply, which makes it the only
// writer of the log.
//
// Turns are independent. Any number may be in flight, and their events
// interleave in arrival order. The thinking status line stays in the log
// after the reply or failure.
//
// # Usage
//
//	ctrl := turn.NewController(transcript.New(), ollamaClient, turn.Options{MaxPromptRunes: 8192})
//	defer ctrl.Close()
//	ctrl.Submit("hello")
//	for ev := range ctrl.Events() {
//	    if err := ctrl.Apply(ev); err != nil {
//	        showError(err)
//	    }
//	}
package turn
