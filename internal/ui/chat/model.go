// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/localbot/internal/turn"
	"github.com/jeranaias/localbot/internal/ui/components"
	"github.com/jeranaias/localbot/internal/ui/styles"
)

// Fixed rows around the viewport: header, divider, input, status bar.
const chromeHeight = 4

// DefaultSavePath is where ctrl+s writes the log when no path is configured.
const DefaultSavePath = "conversation.txt"

// =============================================================================
// CHAT MODEL
// =============================================================================

// Options configures the chat window.
type Options struct {
	ModelName string
	SavePath  string
}

// Model is the Bubble Tea model for the chat window.
type Model struct {
	ctrl  *turn.Controller
	theme *styles.Theme
	keys  KeyMap

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	modelName string
	savePath  string

	width  int
	height int

	// modals is a FIFO of notifications; the head is on screen
	modals []components.Modal
	err    error
}

// New creates a chat model driving ctrl.
func New(ctrl *turn.Controller, theme *styles.Theme, opts Options) Model {
	if theme == nil {
		theme = styles.NewTheme()
	}
	if opts.SavePath == "" {
		opts.SavePath = DefaultSavePath
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.PlaceholderStyle = theme.Placeholder
	ti.Placeholder = "Type a message..."
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	return Model{
		ctrl:      ctrl,
		theme:     theme,
		keys:      DefaultKeyMap(),
		viewport:  vp,
		input:     ti,
		spinner:   sp,
		modelName: opts.ModelName,
		savePath:  opts.SavePath,
	}
}

// Init starts the cursor blink, the spinner and the event reader.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForEvent(m.ctrl.Events()),
	)
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// activeModal returns the notification on screen, or nil.
func (m Model) activeModal() *components.Modal {
	if len(m.modals) == 0 {
		return nil
	}
	return &m.modals[0]
}

func (m *Model) pushModal(modal components.Modal) {
	m.modals = append(m.modals, modal)
}

func (m *Model) dismissModal() {
	if len(m.modals) > 0 {
		m.modals = m.modals[1:]
	}
}
