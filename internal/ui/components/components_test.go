// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/localbot/internal/ollama"
	"github.com/jeranaias/localbot/internal/ui/styles"
)

// =============================================================================
// MODAL TESTS
// =============================================================================

func TestNewErrorModal_KeepsMessage(t *testing.T) {
	m := NewErrorModal(errors.New("An error occurred: boom"))

	assert.Equal(t, ModalError, m.Kind)
	assert.Equal(t, "An error occurred: boom", m.Message)
	assert.Empty(t, m.Suggestions)
}

func TestNewErrorModal_Suggestions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not running", ollama.ErrNotRunning, "ollama serve"},
		{"model missing", fmt.Errorf("wrapped: %w", ollama.ErrModelNotFound), "ollama pull"},
		{"timeout", ollama.ErrTimeout, "timeout_secs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorModal(tt.err)
			joined := fmt.Sprint(m.Suggestions)
			assert.Contains(t, joined, tt.want)
		})
	}
}

func TestModalView(t *testing.T) {
	theme := styles.NewTheme()

	out := NewInfoModal("Saved", "Conversation saved to conversation.txt").View(theme, 100)
	assert.Contains(t, out, "Conversation saved to conversation.txt")
	assert.Contains(t, out, styles.IndicatorOK)
	assert.LessOrEqual(t, lipgloss.Width(out), 80)

	out = NewErrorModal(ollama.ErrNotRunning).View(theme, 100)
	assert.Contains(t, out, styles.IndicatorError)
	assert.Contains(t, out, "ollama serve")
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar_Width(t *testing.T) {
	theme := styles.NewTheme()
	bar := StatusBar{
		ModelName: "phi",
		Pending:   2,
		Spinner:   "|",
		Hints:     []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send"))},
	}

	out := bar.View(theme, 60)
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, out, "phi")
	assert.Contains(t, out, "2 pending")
	assert.Contains(t, out, "enter send")
}

func TestStatusBar_NarrowDropsHints(t *testing.T) {
	theme := styles.NewTheme()
	bar := StatusBar{
		ModelName: "phi",
		Hints:     []key.Binding{key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("C-s", "save conversation now"))},
	}

	out := bar.View(theme, 20)
	assert.NotContains(t, out, "save conversation")
	assert.Contains(t, out, "phi")
}

func TestStatusBar_Idle(t *testing.T) {
	out := StatusBar{ModelName: "phi"}.View(styles.NewTheme(), 40)
	assert.NotContains(t, out, "pending")
}
