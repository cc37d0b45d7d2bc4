// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and terminal helpers for
// localbot.
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdTUI:
//	    runTUI(args)
//	case cli.CmdWhatsApp:
//	    runWhatsApp(args)
//	}
//
// Global flags (--model, --config, --debug) may appear anywhere on the
// command line. Command-specific flags are read with ArgParser.
package cli
