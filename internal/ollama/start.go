// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"
)

// startPollInterval is how often a freshly started server is probed.
const startPollInterval = 500 * time.Millisecond

// startOllamaProcess launches `ollama serve` in the background and waits
// until it answers health checks or startupTimeout elapses.
func (c *Client) startOllamaProcess(ctx context.Context) error {
	ollamaPath, err := findOllamaExecutable()
	if err != nil {
		return &ClientError{Type: ErrTypeNotRunning, Message: "failed to find Ollama executable", Cause: err}
	}

	cmd := exec.Command(ollamaPath, "serve")
	// GPU selection variables (OLLAMA_VULKAN etc.) must reach the server.
	cmd.Env = os.Environ()
	detachProcess(cmd)

	if err := cmd.Start(); err != nil {
		return &ClientError{
			Type:    ErrTypeNotRunning,
			Message: fmt.Sprintf("failed to start Ollama (path: %s)", ollamaPath),
			Cause:   err,
		}
	}
	if cmd.Process != nil {
		// The server outlives us.
		_ = cmd.Process.Release()
	}

	log.Printf("OLLAMA_START | path=%s", ollamaPath)
	start := time.Now()
	deadline := start.Add(startupTimeout)
	var lastErr error

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return &ClientError{Type: ErrTypeConnection, Message: "Ollama startup cancelled", Cause: ctx.Err()}
		default:
		}

		checkCtx, cancel := context.WithTimeout(ctx, time.Second)
		lastErr = c.CheckRunning(checkCtx)
		cancel()
		if lastErr == nil {
			log.Printf("OLLAMA_READY | elapsed=%.1fs", time.Since(start).Seconds())
			return nil
		}
		time.Sleep(startPollInterval)
	}

	return &ClientError{
		Type:    ErrTypeNotRunning,
		Message: fmt.Sprintf("Ollama started but not responding after %s (path: %s)", startupTimeout, ollamaPath),
		Cause:   lastErr,
	}
}
