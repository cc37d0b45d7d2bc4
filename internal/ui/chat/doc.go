// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat window of localbot.

The Model is a Bubble Tea model wrapping a turn.Controller. Bubble Tea's
Update loop is the UI goroutine: it submits turns, and it is the only place
where controller events are applied to the conversation log.

# Layout

	header     - title and model name
	viewport   - the conversation log, one line per entry
	input      - single line text input
	status bar - model, pending replies, shortcuts

# Events

A waitForEvent command blocks on the controller's event channel and turns
each event into a TurnEventMsg. Handling that message re-arms the command,
so exactly one reader is waiting at any time.

# Keys

	enter        submit the input (empty input is ignored)
	ctrl+s       save the conversation log
	pgup/pgdown  scroll the log
	esc/ctrl+c   quit, or dismiss an open modal with enter/esc
*/
package chat
