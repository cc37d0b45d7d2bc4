// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"time"

	"github.com/google/uuid"
)

// ThinkingText is the status line appended while a reply is generated.
const ThinkingText = "Bot is thinking & typing..."

// =============================================================================
// KIND
// =============================================================================

// Kind tags who produced an entry.
type Kind int

const (
	KindUser Kind = iota
	KindBot
	KindStatus
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindBot:
		return "bot"
	case KindStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Prefix returns the speaker label shown before the text.
// Status lines have none.
func (k Kind) Prefix() string {
	switch k {
	case KindUser:
		return "You: "
	case KindBot:
		return "Bot: "
	default:
		return ""
	}
}

// =============================================================================
// ENTRY
// =============================================================================

// Entry is a single line of the conversation log.
type Entry struct {
	ID        string
	Kind      Kind
	Text      string
	Timestamp time.Time
}

// NewEntry creates an entry with a fresh ID.
func NewEntry(kind Kind, text string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Line returns the literal on-screen form of the entry, newline included.
func (e Entry) Line() string {
	return e.Kind.Prefix() + e.Text + "\n"
}
