// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/localbot/internal/ui/styles"
	"github.com/jeranaias/localbot/internal/util"
)

// StatusBar is the bottom line of the chat window.
type StatusBar struct {
	ModelName string
	Pending   int
	Spinner   string // current spinner frame, shown while replies are pending
	Hints     []key.Binding
}

// View renders the bar exactly width columns wide. Hints are dropped
// first when space runs out.
func (s StatusBar) View(theme *styles.Theme, width int) string {
	inner := width - 2
	if inner < 1 {
		return ""
	}

	left := theme.StatusModel.Render(util.TruncateWidth(s.ModelName, inner/2))
	if s.Pending > 0 {
		left += "  " + s.Spinner + " " +
			theme.StatusBusy.Render(fmt.Sprintf("%d pending", s.Pending))
	}

	var hints []string
	for _, b := range s.Hints {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	right := theme.ShortcutKey.Render(strings.Join(hints, "  "))

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 1 && len(hints) > 0 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return theme.StatusBar.Width(width).MaxWidth(width).Render(line)
}
