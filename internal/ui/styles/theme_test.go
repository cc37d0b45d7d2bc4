// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTheme_RendersPlainText(t *testing.T) {
	theme := NewTheme()

	for name, style := range map[string]func(...string) string{
		"user":   theme.UserLine.Render,
		"bot":    theme.BotLine.Render,
		"status": theme.StatusLine.Render,
	} {
		out := style("hello")
		assert.Contains(t, out, "hello", name)
	}
}

func TestNewTheme_ModalsHaveBorders(t *testing.T) {
	theme := NewTheme()

	out := theme.ModalError.Render("boom")
	lines := strings.Split(out, "\n")
	// border + padding + content + padding + border
	assert.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, out, "boom")
}
