// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the interactive WhatsApp session script:
// read recipient, message and send time from the terminal, then schedule
// the message, send it once immediately and render an image as ASCII art.
//
// Input is read with liner line editing on a terminal and line by line
// from a pipe. Any error ends the session; nothing is retried.
package session
