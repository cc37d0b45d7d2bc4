// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Browser is the web automation channel: open a URL, press Enter in the
// focused window, close the current tab.
type Browser interface {
	Open(ctx context.Context, url string) error
	PressEnter(ctx context.Context) error
	CloseTab(ctx context.Context) error
}

// commandRunner runs argv. When wait is false the process is started and
// reaped in the background.
type commandRunner func(ctx context.Context, argv []string, wait bool) error

// SystemBrowser drives the desktop browser with the platform's URL opener
// and keystroke tool.
type SystemBrowser struct {
	// Opener replaces the default URL opener, e.g. "firefox".
	Opener string

	run commandRunner
}

// NewSystemBrowser creates a browser using opener, or the platform default
// when opener is empty.
func NewSystemBrowser(opener string) *SystemBrowser {
	return &SystemBrowser{Opener: opener, run: runCommand}
}

// Open opens url in a new tab.
func (b *SystemBrowser) Open(ctx context.Context, url string) error {
	return b.run(ctx, openArgs(b.Opener, url), false)
}

// PressEnter sends the Enter key to the focused window.
func (b *SystemBrowser) PressEnter(ctx context.Context) error {
	return b.run(ctx, enterArgs(), true)
}

// CloseTab sends the close-tab shortcut to the focused window.
func (b *SystemBrowser) CloseTab(ctx context.Context) error {
	return b.run(ctx, closeTabArgs(), true)
}

func runCommand(ctx context.Context, argv []string, wait bool) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%w: %s not found", ErrNoBrowser, argv[0])
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	if !wait {
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("start %s: %w", argv[0], err)
		}
		go func() {
			_ = cmd.Wait()
		}()
		return nil
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		log.Printf("BROWSER_CMD_FAILED | cmd=%s output=%q", argv[0], strings.TrimSpace(string(out)))
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	return nil
}
