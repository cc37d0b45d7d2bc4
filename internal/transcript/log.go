// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jeranaias/localbot/internal/util"
)

// Log is an append-only conversation log. Entries are never edited or
// removed once appended. Safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
}

// New creates an empty log.
func New() *Log {
	return &Log{entries: make([]Entry, 0)}
}

// Append adds an entry and returns it.
func (l *Log) Append(kind Kind, text string) Entry {
	e := NewEntry(kind, text)
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
	return e
}

// AppendUser appends a User entry.
func (l *Log) AppendUser(text string) Entry {
	return l.Append(KindUser, text)
}

// AppendBot appends a Bot entry.
func (l *Log) AppendBot(text string) Entry {
	return l.Append(KindBot, text)
}

// AppendStatus appends a Status entry.
func (l *Log) AppendStatus(text string) Entry {
	return l.Append(KindStatus, text)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Entries returns a copy of all entries in order.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns how many entries have the given kind.
func (l *Log) Count(kind Kind) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, e := range l.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Text returns the literal visible log: every entry's line, in order.
func (l *Log) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.Line())
	}
	return sb.String()
}

// Save writes Text to path, replacing any previous file.
func (l *Log) Save(path string) error {
	if err := util.AtomicWriteFile(path, []byte(l.Text()), 0644); err != nil {
		return fmt.Errorf("failed to save conversation to %s: %w", path, err)
	}
	return nil
}
