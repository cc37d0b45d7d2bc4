// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	argv []string
	wait bool
}

func fakeBrowser(opener string) (*SystemBrowser, *[]call) {
	var calls []call
	b := NewSystemBrowser(opener)
	b.run = func(ctx context.Context, argv []string, wait bool) error {
		calls = append(calls, call{argv: argv, wait: wait})
		return nil
	}
	return b, &calls
}

func TestSystemBrowser_OpenDoesNotWait(t *testing.T) {
	b, calls := fakeBrowser("")
	require.NoError(t, b.Open(context.Background(), "https://web.whatsapp.com/send?phone=1"))

	require.Len(t, *calls, 1)
	c := (*calls)[0]
	assert.False(t, c.wait)
	assert.Equal(t, "https://web.whatsapp.com/send?phone=1", c.argv[len(c.argv)-1])
}

func TestSystemBrowser_CustomOpener(t *testing.T) {
	b, calls := fakeBrowser("firefox")
	require.NoError(t, b.Open(context.Background(), "https://example.com"))

	assert.Contains(t, (*calls)[0].argv, "firefox")
}

func TestSystemBrowser_KeystrokesWait(t *testing.T) {
	b, calls := fakeBrowser("")
	require.NoError(t, b.PressEnter(context.Background()))
	require.NoError(t, b.CloseTab(context.Background()))

	require.Len(t, *calls, 2)
	for _, c := range *calls {
		assert.True(t, c.wait)
		assert.NotEmpty(t, c.argv)
	}
	assert.NotEqual(t, (*calls)[0].argv, (*calls)[1].argv)
}

func TestRunCommand_MissingTool(t *testing.T) {
	err := runCommand(context.Background(), []string{"localbot-no-such-tool-xyz"}, true)
	assert.ErrorIs(t, err, ErrNoBrowser)
}
