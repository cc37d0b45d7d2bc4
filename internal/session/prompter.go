// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrAborted means the user pressed Ctrl+C at a prompt.
var ErrAborted = errors.New("input aborted")

// Prompter shows a label and reads one line of input.
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// NewPrompter returns a line-editing prompter when in is a terminal and a
// plain line reader otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return NewLinePrompter()
	}
	return NewReaderPrompter(in, out)
}

// =============================================================================
// LINE EDITING
// =============================================================================

// LinePrompter reads from the terminal with line editing and history.
type LinePrompter struct {
	line *liner.State
}

// NewLinePrompter takes over the terminal until Close is called.
func NewLinePrompter() *LinePrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinePrompter{line: line}
}

// Prompt reads one line.
func (p *LinePrompter) Prompt(label string) (string, error) {
	input, err := p.line.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read %q: %w", strings.TrimSpace(label), err)
	}
	if strings.TrimSpace(input) != "" {
		p.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (p *LinePrompter) Close() error {
	return p.line.Close()
}

// =============================================================================
// PLAIN READER
// =============================================================================

// ReaderPrompter writes labels to w and reads lines from r.
type ReaderPrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewReaderPrompter creates a prompter over r and w.
func NewReaderPrompter(r io.Reader, w io.Writer) *ReaderPrompter {
	return &ReaderPrompter{r: bufio.NewReader(r), w: w}
}

// Prompt reads up to the next newline. A final line without a newline is
// accepted; reading past the end returns io.EOF.
func (p *ReaderPrompter) Prompt(label string) (string, error) {
	if p.w != nil {
		fmt.Fprint(p.w, label)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %q: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op.
func (p *ReaderPrompter) Close() error {
	return nil
}
