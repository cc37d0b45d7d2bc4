// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"tui"}, CmdTUI},
		{[]string{"whatsapp"}, CmdWhatsApp},
		{[]string{"WA"}, CmdWhatsApp},
		{[]string{"ascii", "img.png"}, CmdASCII},
		{[]string{"models"}, CmdModels},
		{[]string{"config"}, CmdConfig},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
		{[]string{"bogus"}, CmdUnknown},
	}

	for _, tt := range tests {
		got, _ := ParseArgs(tt.argv)
		assert.Equal(t, tt.want, got, "%v", tt.argv)
	}
}

func TestParseArgs_GlobalFlagsAnywhere(t *testing.T) {
	cmd, args := ParseArgs([]string{"--model", "phi", "whatsapp", "--debug", "--config=/tmp/c.toml"})

	assert.Equal(t, CmdWhatsApp, cmd)
	assert.Equal(t, "phi", args.Model)
	assert.Equal(t, "/tmp/c.toml", args.ConfigPath)
	assert.True(t, args.Debug)
	assert.Empty(t, args.Raw)
}

func TestParseArgs_ModelEquals(t *testing.T) {
	cmd, args := ParseArgs([]string{"--model=llama3.2"})
	assert.Equal(t, CmdTUI, cmd)
	assert.Equal(t, "llama3.2", args.Model)
}

func TestParseArgs_ASCII(t *testing.T) {
	_, args := ParseArgs([]string{"ascii", "photo.jpeg", "--out", "art", "--width=120"})
	assert.Equal(t, "photo.jpeg", args.ImagePath)
	assert.Equal(t, "art", args.Output)
	assert.Equal(t, 120, args.Width)

	_, args = ParseArgs([]string{"ascii", "-o", "short"})
	assert.Equal(t, "", args.ImagePath)
	assert.Equal(t, "short", args.Output)
	assert.Equal(t, 0, args.Width)
}

func TestParseArgs_UnknownKeepsName(t *testing.T) {
	cmd, args := ParseArgs([]string{"Frobnicate", "x"})
	assert.Equal(t, CmdUnknown, cmd)
	assert.Equal(t, "Frobnicate", args.Name)
	assert.Equal(t, []string{"x"}, args.Raw)
}

// =============================================================================
// ARG PARSER TESTS
// =============================================================================

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"show", "--lines", "50", "--since=2024-01-01", "--json", "--quiet=false", "extra"})

	assert.Equal(t, "show", p.Positional(0))
	assert.Equal(t, "extra", p.Positional(1))
	assert.Equal(t, "", p.Positional(5))
	assert.Equal(t, 2, p.PositionalCount())
	assert.Equal(t, "50", p.Flag("lines"))
	assert.Equal(t, "50", p.Flag("--lines"))
	assert.Equal(t, "2024-01-01", p.Flag("since"))
	assert.True(t, p.BoolFlag("json"))
	assert.False(t, p.BoolFlag("quiet"))
	assert.Equal(t, 50, p.FlagIntOrDefault("lines", 1))
	assert.Equal(t, 7, p.FlagIntOrDefault("since", 7))
	assert.Equal(t, "x", p.FlagOrDefault("missing", "x"))
}

func TestColorDecision(t *testing.T) {
	assert.False(t, colorDecision("1", "1", true))
	assert.True(t, colorDecision("", "1", false))
	assert.True(t, colorDecision("", "", true))
	assert.False(t, colorDecision("", "", false))
}

func TestParseArgs_ConfigAction(t *testing.T) {
	_, args := ParseArgs([]string{"config"})
	assert.Equal(t, "path", args.Action)

	_, args = ParseArgs([]string{"config", "INIT"})
	assert.Equal(t, "init", args.Action)
}
