// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transcript holds the visible conversation log of the chat TUI.
//
// A Log is an append-only list of role-tagged entries. Each entry renders
// as exactly one line of text, and the concatenation of those lines is
// both what the chat view shows and what Save writes to disk.
//
// # Key Types
//
//   - Kind: User, Bot or Status
//   - Entry: one appended line with its ID and timestamp
//   - Log: the thread-safe, append-only sequence
//
// # Usage
//
//	log := transcript.New()
//	log.AppendUser("hello")
//	log.AppendStatus(transcript.ThinkingText)
//	log.AppendBot("hi there")
//	err := log.Save("conversation.txt")
package transcript
