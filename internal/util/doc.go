// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the localbot packages.
//
// # Key Functions
//
// String Utilities:
//   - ClampRunes: UTF-8 safe prompt bounding without an ellipsis
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - TruncateWidth: display-width truncation for the status bar
//
// File Operations:
//   - AtomicWriteFile: crash-safe overwrite used for saved conversations
//     and the config file
//
// # Usage
//
//	prompt := util.ClampRunes(input, cfg.Generation.MaxPromptRunes)
//	err := util.AtomicWriteFile("conversation.txt", data, 0644)
package util
