// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Line(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
		want string
	}{
		{KindUser, "hello", "You: hello\n"},
		{KindBot, "hi there", "Bot: hi there\n"},
		{KindStatus, ThinkingText, "Bot is thinking & typing...\n"},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, NewEntry(tc.kind, tc.text).Line())
		})
	}
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	a := NewEntry(KindUser, "x")
	b := NewEntry(KindUser, "x")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}

func TestLog_AppendKeepsOrder(t *testing.T) {
	log := New()
	log.AppendUser("hello")
	log.AppendStatus(ThinkingText)
	log.AppendBot("hi")

	entries := log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, KindUser, entries[0].Kind)
	assert.Equal(t, KindStatus, entries[1].Kind)
	assert.Equal(t, KindBot, entries[2].Kind)
	assert.Equal(t, "You: hello\nBot is thinking & typing...\nBot: hi\n", log.Text())
}

func TestLog_EntriesReturnsCopy(t *testing.T) {
	log := New()
	log.AppendUser("original")

	entries := log.Entries()
	entries[0].Text = "changed"

	assert.Equal(t, "original", log.Entries()[0].Text)
}

func TestLog_Count(t *testing.T) {
	log := New()
	log.AppendUser("a")
	log.AppendStatus(ThinkingText)
	log.AppendUser("b")

	assert.Equal(t, 2, log.Count(KindUser))
	assert.Equal(t, 1, log.Count(KindStatus))
	assert.Equal(t, 0, log.Count(KindBot))
}

func TestLog_SaveWritesVisibleText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversation.txt")
	log := New()
	log.AppendUser("hello")
	log.AppendStatus(ThinkingText)
	log.AppendBot("hi")

	require.NoError(t, log.Save(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, log.Text(), string(got))
}

func TestLog_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversation.txt")

	first := New()
	for i := 0; i < 5; i++ {
		first.AppendUser("a fairly long line that makes the first file bigger")
	}
	require.NoError(t, first.Save(path))

	second := New()
	second.AppendUser("short")
	require.NoError(t, second.Save(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "You: short\n", string(got))
}

func TestLog_EmptySave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversation.txt")
	require.NoError(t, New().Save(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLog_ConcurrentAppend(t *testing.T) {
	log := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.AppendUser("x")
			_ = log.Text()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, log.Len())
}
