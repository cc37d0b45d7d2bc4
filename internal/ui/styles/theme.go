// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the styled components of the chat window.
type Theme struct {
	// ==========================================================================
	// FRAME
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Divider     lipgloss.Style

	// ==========================================================================
	// LOG LINES
	// ==========================================================================

	UserLine   lipgloss.Style
	BotLine    lipgloss.Style
	StatusLine lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS BAR
	// ==========================================================================

	InputPrompt lipgloss.Style
	Placeholder lipgloss.Style
	StatusBar   lipgloss.Style
	StatusModel lipgloss.Style
	StatusBusy  lipgloss.Style
	ShortcutKey lipgloss.Style
	Spinner     lipgloss.Style

	// ==========================================================================
	// MODALS
	// ==========================================================================

	ModalError lipgloss.Style
	ModalInfo  lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHint  lipgloss.Style
}

// NewTheme builds the default theme.
func NewTheme() *Theme {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Foreground(TextPrimary)

	return &Theme{
		Header: lipgloss.NewStyle().
			Background(SurfaceDim).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		Divider: lipgloss.NewStyle().
			Foreground(Overlay),

		UserLine: lipgloss.NewStyle().
			Foreground(Cyan),
		BotLine: lipgloss.NewStyle().
			Foreground(Purple),
		StatusLine: lipgloss.NewStyle().
			Foreground(Amber).
			Italic(true),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(TextMuted),
		StatusBar: lipgloss.NewStyle().
			Background(SurfaceDim).
			Foreground(TextSecondary).
			Padding(0, 1),
		StatusModel: lipgloss.NewStyle().
			Foreground(Emerald),
		StatusBusy: lipgloss.NewStyle().
			Foreground(Amber),
		ShortcutKey: lipgloss.NewStyle().
			Foreground(TextMuted),
		Spinner: lipgloss.NewStyle().
			Foreground(Purple),

		ModalError: modal.BorderForeground(Rose),
		ModalInfo:  modal.BorderForeground(Emerald),
		ModalTitle: lipgloss.NewStyle().
			Bold(true),
		ModalHint: lipgloss.NewStyle().
			Foreground(TextMuted),
	}
}
