// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the colors and lipgloss styles of the chat window.

All colors are lipgloss.AdaptiveColor values so the window reads on both
light and dark terminals. Theme groups the styles used by the chat view:

	UserLine, BotLine, StatusLine  - conversation log lines
	StatusBar, StatusModel         - bottom bar with model and pending count
	ModalError, ModalInfo          - error notification and save confirmation
*/
package styles
