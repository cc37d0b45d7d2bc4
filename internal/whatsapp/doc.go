// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package whatsapp drives WhatsApp Web through the system browser.

Nothing here speaks the WhatsApp protocol. A send opens a pre-filled
"send" URL in the browser, waits for the page to load, and presses Enter
in the focused window:

	m := whatsapp.NewWebMessenger(cfg, whatsapp.NewSystemBrowser(""))
	defer m.Close()

	err := m.SendInstantly(ctx, "+15551234567", "hello", true)

Scheduled sends are one-shot cron entries that remove themselves after
firing. They run on the scheduler's goroutine, so callers that exit must
call Wait first.

ImageToASCII renders an image as rows of characters and writes them to a
".txt" file next to the given output name.
*/
package whatsapp
