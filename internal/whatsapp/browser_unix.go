// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !darwin && !windows

package whatsapp

func openArgs(opener, url string) []string {
	if opener != "" {
		return []string{opener, url}
	}
	return []string{"xdg-open", url}
}

func enterArgs() []string {
	return []string{"xdotool", "key", "--clearmodifiers", "Return"}
}

func closeTabArgs() []string {
	return []string{"xdotool", "key", "--clearmodifiers", "ctrl+w"}
}
