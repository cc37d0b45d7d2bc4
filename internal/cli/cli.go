// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdWhatsApp
	CmdASCII
	CmdModels
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Model      string
	ConfigPath string
	Debug      bool

	// ascii command
	ImagePath string
	Output    string
	Width     int

	// config command: "path" or "init"
	Action string

	// Name is the command word as typed.
	Name string

	// Raw args remaining after the command word
	Raw []string
}

const usageText = `localbot - chat with a local language model

Usage:
  localbot                       Start the chat window (default)
  localbot tui                   Same as above
  localbot whatsapp              Schedule and send a WhatsApp message
  localbot ascii [IMAGE]         Convert an image to ASCII art
    --out NAME                   Output name, ".txt" is appended (default: ascii)
    --width N                    Characters per row (default: 80)
  localbot models                List models installed in Ollama
  localbot config [path|init]    Show the config path or write the defaults
  localbot version               Show version information
  localbot help                  Show this help

Global flags:
  --model NAME                   Ollama model to use
  --config PATH                  Config file (default: ~/.localbot/config.toml)
  --debug                        Write a debug log

Chat window keys:
  enter        send the message
  ctrl+s       save the conversation
  pgup/pgdown  scroll
  esc, ctrl+c  quit

Environment:
  LOCALBOT_MODEL, LOCALBOT_OLLAMA_URL, LOCALBOT_SAVE_PATH,
  LOCALBOT_BROWSER, LOCALBOT_DEBUG

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("localbot version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
	fmt.Printf("  Go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv (without the program name) into a command and
// its arguments.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	parsed.Name = remaining[0]
	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui", "chat":
		return CmdTUI, parsed

	case "whatsapp", "wa":
		return CmdWhatsApp, parsed

	case "ascii":
		parseASCIIArgs(&parsed, remaining)
		return CmdASCII, parsed

	case "models", "list":
		return CmdModels, parsed

	case "config":
		parsed.Action = "path"
		if len(remaining) > 0 {
			parsed.Action = strings.ToLower(remaining[0])
		}
		return CmdConfig, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		return CmdUnknown, parsed
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsed Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--debug":
			parsed.Debug = true
		case arg == "--model" || arg == "--config":
			if i+1 < len(args) {
				i++
				if arg == "--model" {
					parsed.Model = args[i]
				} else {
					parsed.ConfigPath = args[i]
				}
			}
		case strings.HasPrefix(arg, "--model="):
			parsed.Model = strings.TrimPrefix(arg, "--model=")
		case strings.HasPrefix(arg, "--config="):
			parsed.ConfigPath = strings.TrimPrefix(arg, "--config=")
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsed
}

// parseASCIIArgs parses "ascii [IMAGE] [--out NAME] [--width N]".
func parseASCIIArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.ImagePath = p.Positional(0)
	args.Output = p.FlagOrDefault("out", p.Flag("o"))
	args.Width = p.FlagIntOrDefault("width", 0)
}
