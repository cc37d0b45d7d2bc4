// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/localbot/internal/ui/components"
)

// Update handles Bubble Tea messages. It runs on the UI goroutine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TurnEventMsg:
		return m.handleTurnEvent(msg)

	case SaveResultMsg:
		return m.handleSaveResult(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = vpHeight
	m.input.Width = msg.Width - len(m.input.Prompt) - 1

	m.refreshLog()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.activeModal() != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dismissModal()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		return m, saveCmd(m.ctrl.Log(), m.savePath)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if _, ok := m.ctrl.Submit(m.input.Value()); ok {
			m.input.Reset()
			m.refreshLog()
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleTurnEvent(msg TurnEventMsg) (tea.Model, tea.Cmd) {
	if err := m.ctrl.Apply(msg.Event); err != nil {
		m.pushModal(components.NewErrorModal(err))
	}
	m.refreshLog()
	return m, waitForEvent(m.ctrl.Events())
}

func (m Model) handleSaveResult(msg SaveResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("SAVE_FAILED | path=%s error=%v", msg.Path, msg.Err)
		m.err = fmt.Errorf("save conversation: %w", msg.Err)
		return m, tea.Quit
	}
	log.Printf("SAVE_OK | path=%s entries=%d", msg.Path, m.ctrl.Log().Len())
	m.pushModal(components.NewInfoModal("Saved", "Conversation saved to "+msg.Path))
	return m, nil
}

// refreshLog re-renders the log into the viewport, following the tail
// when the user has not scrolled up.
func (m *Model) refreshLog() {
	follow := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderLog())
	if follow {
		m.viewport.GotoBottom()
	}
}
