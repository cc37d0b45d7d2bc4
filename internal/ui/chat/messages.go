// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/localbot/internal/transcript"
	"github.com/jeranaias/localbot/internal/turn"
)

// =============================================================================
// MESSAGES
// =============================================================================

// TurnEventMsg carries one event from a background unit.
type TurnEventMsg struct {
	Event turn.Event
}

// SaveResultMsg reports the outcome of writing the conversation log.
type SaveResultMsg struct {
	Path string
	Err  error
}

// =============================================================================
// COMMANDS
// =============================================================================

// waitForEvent blocks until the next controller event arrives.
func waitForEvent(events <-chan turn.Event) tea.Cmd {
	return func() tea.Msg {
		return TurnEventMsg{Event: <-events}
	}
}

// saveCmd writes the log text to path.
func saveCmd(log *transcript.Log, path string) tea.Cmd {
	return func() tea.Msg {
		return SaveResultMsg{Path: path, Err: log.Save(path)}
	}
}
