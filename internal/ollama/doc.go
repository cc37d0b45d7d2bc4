// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for the local Ollama server,
// which is the text generation service behind the chat TUI.
//
// Each call is stateless: one prompt goes in, one completion comes out.
// No conversation history is sent.
//
// # Key Types
//
//   - Client: HTTP client for the Ollama API
//   - ClientConfig: base URL, model and generation bounds
//   - GenerateRequest / GenerateResponse: /api/generate payloads
//   - ClientError: typed error with ErrorType for errors.As checks
//
// # Usage
//
//	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
//	    BaseURL:         "http://127.0.0.1:11434",
//	    DefaultModel:    "phi",
//	    MaxOutputTokens: 150,
//	})
//	if err := client.EnsureRunning(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	reply, err := client.Generate(ctx, "Write a haiku about Go")
//
// Generate has no deadline of its own; it runs until Ollama answers or
// ctx is cancelled.
package ollama
