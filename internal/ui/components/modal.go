// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/localbot/internal/ollama"
	"github.com/jeranaias/localbot/internal/ui/styles"
)

// ModalKind selects the modal's border color and title.
type ModalKind int

const (
	ModalError ModalKind = iota
	ModalInfo
)

// Modal is a dismissible notification box.
type Modal struct {
	Kind        ModalKind
	Title       string
	Message     string
	Suggestions []string
}

// NewErrorModal builds an error modal for err. The message is err's text
// unchanged; known Ollama failures get suggestions below it.
func NewErrorModal(err error) Modal {
	m := Modal{Kind: ModalError, Title: "Error", Message: err.Error()}

	switch {
	case ollama.IsNotRunning(err):
		m.Suggestions = []string{
			"Start Ollama: ollama serve",
			"Check the URL in ~/.localbot/config.toml",
		}
	case ollama.IsModelNotFound(err):
		m.Suggestions = []string{
			"List available models: ollama list",
			"Pull the model: ollama pull <name>",
		}
	case ollama.IsTimeout(err):
		m.Suggestions = []string{
			"Raise generation.timeout_secs, or set it to 0 for no limit",
		}
	}
	return m
}

// NewInfoModal builds a confirmation modal.
func NewInfoModal(title, message string) Modal {
	return Modal{Kind: ModalInfo, Title: title, Message: message}
}

// View renders the modal at most width columns wide.
func (m Modal) View(theme *styles.Theme, width int) string {
	boxWidth := width / 2
	if boxWidth < 40 {
		boxWidth = width - 4
	}
	if boxWidth > 80 {
		boxWidth = 80
	}

	box, icon := theme.ModalInfo, styles.IndicatorOK
	if m.Kind == ModalError {
		box, icon = theme.ModalError, styles.IndicatorError
	}

	// border and padding take 6 columns
	textWidth := boxWidth - 6
	if textWidth < 10 {
		textWidth = 10
	}
	text := lipgloss.NewStyle().Width(textWidth)

	parts := []string{
		theme.ModalTitle.Render(icon + " " + m.Title),
		"",
		text.Render(m.Message),
	}
	if len(m.Suggestions) > 0 {
		parts = append(parts, "")
		for _, s := range m.Suggestions {
			parts = append(parts, theme.ModalHint.Render(text.Render("* "+s)))
		}
	}
	parts = append(parts, "", theme.ModalHint.Render("enter/esc to dismiss"))

	return box.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
