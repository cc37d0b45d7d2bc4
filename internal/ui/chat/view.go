// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/localbot/internal/transcript"
	"github.com/jeranaias/localbot/internal/ui/components"
	"github.com/jeranaias/localbot/internal/util"
)

// View renders the chat window.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body := m.viewport.View()
	if modal := m.activeModal(); modal != nil {
		box := modal.View(m.theme, m.width)
		if more := len(m.modals) - 1; more > 0 {
			box = lipgloss.JoinVertical(lipgloss.Center, box,
				m.theme.ModalHint.Render(fmt.Sprintf("%d more", more)))
		}
		body = lipgloss.Place(m.width, m.viewport.Height,
			lipgloss.Center, lipgloss.Center, box)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.theme.Divider.Render(strings.Repeat("─", m.width)),
		m.input.View(),
		m.renderStatusBar(),
	)
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("localbot")
	if m.modelName != "" {
		title += "  " + util.TruncateWidth(m.modelName, m.width-12)
	}
	return m.theme.Header.Width(m.width).Render(title)
}

// renderLog renders every entry as its literal line, wrapped to the
// viewport width.
func (m Model) renderLog() string {
	entries := m.ctrl.Log().Entries()
	if len(entries) == 0 {
		return m.theme.Placeholder.Render("Say something to start the conversation.")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := strings.TrimSuffix(e.Line(), "\n")
		b.WriteString(m.lineStyle(e.Kind).Width(m.viewport.Width).Render(line))
	}
	return b.String()
}

func (m Model) lineStyle(kind transcript.Kind) lipgloss.Style {
	switch kind {
	case transcript.KindUser:
		return m.theme.UserLine
	case transcript.KindBot:
		return m.theme.BotLine
	default:
		return m.theme.StatusLine
	}
}

func (m Model) renderStatusBar() string {
	bar := components.StatusBar{
		ModelName: m.modelName,
		Pending:   m.ctrl.Pending(),
		Spinner:   m.spinner.View(),
		Hints:     m.keys.ShortHelp(),
	}
	return bar.View(m.theme, m.width)
}
