// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Messenger is the messaging automation service used by the session
// script.
type Messenger interface {
	// ScheduleMessage registers a send at the next hour:minute and returns
	// without waiting for it.
	ScheduleMessage(phone, message string, hour, minute int) error
	// SendInstantly sends now and, when closeAfter is set, closes the tab.
	SendInstantly(ctx context.Context, phone, message string, closeAfter bool) error
	// ImageToASCII converts an image and writes outputName + ".txt".
	ImageToASCII(imagePath, outputName string) (string, error)
}

// Config configures a WebMessenger.
type Config struct {
	WebURL     string
	WaitTime   time.Duration // page load wait before pressing Enter
	CloseTime  time.Duration // wait after sending before closing the tab
	ASCIIWidth int
	Location   *time.Location
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		WebURL:     DefaultWebURL,
		WaitTime:   15 * time.Second,
		CloseTime:  3 * time.Second,
		ASCIIWidth: DefaultASCIIWidth,
	}
}

// WebMessenger sends through WhatsApp Web in a Browser.
type WebMessenger struct {
	cfg     Config
	browser Browser
	sched   *Scheduler
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewWebMessenger creates a messenger and starts its scheduler.
func NewWebMessenger(cfg Config, browser Browser) *WebMessenger {
	if cfg.WebURL == "" {
		cfg.WebURL = DefaultWebURL
	}
	if cfg.ASCIIWidth <= 0 {
		cfg.ASCIIWidth = DefaultASCIIWidth
	}
	return &WebMessenger{
		cfg:     cfg,
		browser: browser,
		sched:   NewScheduler(cfg.Location),
		sleep:   sleepContext,
	}
}

// ScheduleMessage validates the recipient now and sends at hour:minute.
// The tab is left open after a scheduled send.
func (m *WebMessenger) ScheduleMessage(phone, message string, hour, minute int) error {
	if _, err := SendURL(m.cfg.WebURL, phone, message); err != nil {
		return err
	}

	job, err := m.sched.Once(hour, minute, func(ctx context.Context) error {
		if err := m.SendInstantly(ctx, phone, message, false); err != nil {
			return fmt.Errorf("scheduled send to %s: %w", maskPhone(phone), err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("WHATSAPP_SCHEDULED | to=%s at=%s", maskPhone(phone), job.Next.Format("2006-01-02 15:04"))
	return nil
}

// SendInstantly opens the chat, waits for the page, presses Enter and
// optionally closes the tab.
func (m *WebMessenger) SendInstantly(ctx context.Context, phone, message string, closeAfter bool) error {
	u, err := SendURL(m.cfg.WebURL, phone, message)
	if err != nil {
		return err
	}

	if err := m.browser.Open(ctx, u); err != nil {
		return err
	}
	if err := m.sleep(ctx, m.cfg.WaitTime); err != nil {
		return err
	}
	if err := m.browser.PressEnter(ctx); err != nil {
		return err
	}
	log.Printf("WHATSAPP_SENT | to=%s runes=%d", maskPhone(phone), len([]rune(message)))

	if !closeAfter {
		return nil
	}
	if err := m.sleep(ctx, m.cfg.CloseTime); err != nil {
		return err
	}
	return m.browser.CloseTab(ctx)
}

// ImageToASCII converts imagePath with the configured width.
func (m *WebMessenger) ImageToASCII(imagePath, outputName string) (string, error) {
	return ImageToASCII(imagePath, outputName, m.cfg.ASCIIWidth)
}

// Pending returns the number of scheduled sends that have not fired.
func (m *WebMessenger) Pending() int {
	return m.sched.Pending()
}

// Wait blocks until scheduled sends have fired or ctx is done and returns
// the first failed send.
func (m *WebMessenger) Wait(ctx context.Context) error {
	return m.sched.Wait(ctx)
}

// Close stops the scheduler, cancelling a send in progress. Unfired sends
// are dropped.
func (m *WebMessenger) Close() {
	m.sched.Stop()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
