// localbot - chat with a local language model, plus a WhatsApp session
// script.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/localbot/internal/cli"
	"github.com/jeranaias/localbot/internal/config"
	"github.com/jeranaias/localbot/internal/ollama"
	"github.com/jeranaias/localbot/internal/session"
	"github.com/jeranaias/localbot/internal/transcript"
	"github.com/jeranaias/localbot/internal/turn"
	"github.com/jeranaias/localbot/internal/ui/chat"
	"github.com/jeranaias/localbot/internal/ui/styles"
	"github.com/jeranaias/localbot/internal/whatsapp"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// startupTimeout bounds the Ollama reachability check, including an
// automatic `ollama serve`.
const startupTimeout = 30 * time.Second

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdWhatsApp:
		err = runWhatsApp(args)
	case cli.CmdASCII:
		err = runASCII(args)
	case cli.CmdModels:
		err = runModels(args)
	case cli.CmdConfig:
		err = runConfig(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args.Name)
		cli.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// CONFIG AND LOGGING
// =============================================================================

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(args cli.Args) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if args.Model != "" {
		cfg.Local.OllamaModel = args.Model
	}
	if args.Debug {
		cfg.Logging.Debug = true
	}
	return cfg, nil
}

// setupTUILogging keeps log output off the alternate screen: it goes to
// the debug log file when enabled and is discarded otherwise.
func setupTUILogging(cfg *config.Config) (func(), error) {
	if !cfg.Logging.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "localbot")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

// setupCLILogging sends log output to stderr. Commands other than the
// session script only log in debug mode.
func setupCLILogging(cfg *config.Config, always bool) {
	log.SetFlags(log.LstdFlags)
	if always || cfg.Logging.Debug {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// connectOllama returns a client for the configured server, starting it
// when auto_start is set.
func connectOllama(cfg *config.Config) (*ollama.Client, error) {
	client := ollama.NewClientWithConfig(cfg.OllamaClientConfig())

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var err error
	if cfg.Local.AutoStart {
		err = client.EnsureRunning(ctx)
	} else {
		err = client.CheckRunning(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("ollama at %s: %w", cfg.Local.OllamaURL, err)
	}
	return client, nil
}

// =============================================================================
// CHAT WINDOW
// =============================================================================

// runTUI starts the chat window.
func runTUI(args cli.Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	closeLog, err := setupTUILogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := connectOllama(cfg)
	if err != nil {
		return err
	}
	log.Printf("TUI_START | model=%s url=%s", client.GetDefaultModel(), cfg.Local.OllamaURL)

	ctrl := turn.NewController(transcript.New(), client, turn.Options{
		MaxPromptRunes: cfg.Generation.MaxPromptRunes,
	})
	defer ctrl.Close()

	m := chat.New(ctrl, styles.NewTheme(), chat.Options{
		ModelName: client.GetDefaultModel(),
		SavePath:  cfg.Chat.SavePath,
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run chat window: %w", err)
	}
	if fm, ok := final.(chat.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	log.Printf("TUI_EXIT | entries=%d pending=%d", ctrl.Log().Len(), ctrl.Pending())
	return nil
}

// =============================================================================
// WHATSAPP SESSION
// =============================================================================

// runWhatsApp runs the interactive session script and then waits for the
// scheduled send, since the job lives in this process.
func runWhatsApp(args cli.Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	setupCLILogging(cfg, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messenger := whatsapp.NewWebMessenger(cfg.WhatsApp.MessengerConfig(), whatsapp.NewSystemBrowser(cfg.WhatsApp.Browser))
	defer messenger.Close()

	prompter := session.NewPrompter(os.Stdin, os.Stdout)
	params, err := session.Run(ctx, prompter, messenger, session.Options{
		ImagePath:   cfg.WhatsApp.ImagePath,
		ASCIIOutput: cfg.WhatsApp.ASCIIOutput,
	})
	prompter.Close()
	if err != nil {
		return err
	}

	n := messenger.Pending()
	if n == 0 {
		return nil
	}
	fmt.Printf("Waiting for %d scheduled message(s) at %02d:%02d. Press Ctrl+C to quit.\n", n, params.Hour, params.Minute)
	if err := messenger.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println(cli.DimStyle.Render("Stopped before the scheduled send."))
			return nil
		}
		return err
	}
	fmt.Println(cli.SuccessStyle.Render("Scheduled message sent."))
	return nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// runASCII converts an image without running the session.
func runASCII(args cli.Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	setupCLILogging(cfg, false)
	cli.ApplyColorProfile()

	image := args.ImagePath
	if image == "" {
		image = cfg.WhatsApp.ImagePath
	}
	out := args.Output
	if out == "" {
		out = cfg.WhatsApp.ASCIIOutput
	}
	width := args.Width
	if width <= 0 {
		width = cfg.WhatsApp.ASCIIWidth
	}

	art, err := whatsapp.ImageToASCII(image, out, width)
	if err != nil {
		return err
	}
	fmt.Println(art)
	fmt.Fprintln(os.Stderr, cli.SuccessStyle.Render("Wrote "+out+".txt"))
	return nil
}

// runModels lists the models installed in Ollama.
func runModels(args cli.Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	setupCLILogging(cfg, false)
	cli.ApplyColorProfile()

	client, err := connectOllama(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	models, err := client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("list models: %w", err)
	}

	label := cli.LabelStyle.Width(min(28, cli.GetTerminalWidth()/2))
	fmt.Println(cli.TitleStyle.Render("Installed models"))
	if len(models) == 0 {
		fmt.Println(cli.DimStyle.Render("  none, run `ollama pull " + cfg.Local.OllamaModel + "`"))
		return nil
	}
	for _, m := range models {
		marker := "  "
		if m.Name == cfg.Local.OllamaModel || m.Name == cfg.Local.OllamaModel+":latest" {
			marker = cli.SuccessStyle.Render("* ")
		}
		fmt.Println(marker + label.Render(m.Name) + m.FormatSize())
	}
	return nil
}

// runConfig prints the config file path, or writes the current settings
// there with "init".
func runConfig(args cli.Args) error {
	cli.ApplyColorProfile()

	path := args.ConfigPath
	if path == "" {
		p, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		path = p
	}

	switch args.Action {
	case "path":
		fmt.Println(path)
		return nil
	case "init":
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		cfg, err := loadConfig(cli.Args{Model: args.Model})
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		if err := config.SaveTOML(cfg, path); err != nil {
			return err
		}
		fmt.Println(cli.SuccessStyle.Render("Wrote " + path))
		return nil
	default:
		return fmt.Errorf("unknown config action %q (want path or init)", args.Action)
	}
}
