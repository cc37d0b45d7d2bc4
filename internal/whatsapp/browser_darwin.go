// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build darwin

package whatsapp

func openArgs(opener, url string) []string {
	if opener != "" {
		return []string{"open", "-a", opener, url}
	}
	return []string{"open", url}
}

func enterArgs() []string {
	return []string{"osascript", "-e", `tell application "System Events" to key code 36`}
}

func closeTabArgs() []string {
	return []string{"osascript", "-e", `tell application "System Events" to keystroke "w" using command down`}
}
