// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package whatsapp

func openArgs(opener, url string) []string {
	if opener != "" {
		return []string{opener, url}
	}
	return []string{"rundll32", "url.dll,FileProtocolHandler", url}
}

func enterArgs() []string {
	return sendKeys("~")
}

func closeTabArgs() []string {
	return sendKeys("^w")
}

func sendKeys(keys string) []string {
	return []string{"powershell", "-NoProfile", "-NonInteractive", "-Command",
		"(New-Object -ComObject WScript.Shell).SendKeys('" + keys + "')"}
}
