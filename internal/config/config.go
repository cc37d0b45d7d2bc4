// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/localbot/internal/ollama"
	"github.com/jeranaias/localbot/internal/util"
	"github.com/jeranaias/localbot/internal/whatsapp"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete localbot configuration.
type Config struct {
	Version string `toml:"version"`

	Local      LocalConfig      `toml:"local"`
	Generation GenerationConfig `toml:"generation"`
	Chat       ChatConfig       `toml:"chat"`
	WhatsApp   WhatsAppConfig   `toml:"whatsapp"`
	Logging    LoggingConfig    `toml:"logging"`
}

// LocalConfig contains local Ollama configuration.
type LocalConfig struct {
	// OllamaURL is the URL of the Ollama server
	OllamaURL string `toml:"ollama_url"`
	// OllamaModel is the model every chat turn is sent to
	OllamaModel string `toml:"ollama_model"`
	// AutoStart runs `ollama serve` when the server is not reachable
	AutoStart bool `toml:"auto_start"`
}

// GenerationConfig bounds each call to the text generation service.
type GenerationConfig struct {
	// MaxPromptRunes truncates the prompt before it is sent
	MaxPromptRunes int `toml:"max_prompt_runes"`
	// MaxOutputTokens caps the reply length (Ollama num_predict)
	MaxOutputTokens int `toml:"max_output_tokens"`
	// Temperature for sampling; 0 keeps the model default
	Temperature float64 `toml:"temperature"`
	// TimeoutSecs bounds one generation call; 0 means no timeout
	TimeoutSecs int `toml:"timeout_secs"`
}

// ChatConfig contains chat TUI settings.
type ChatConfig struct {
	// SavePath is where ctrl+s writes the visible conversation
	SavePath string `toml:"save_path"`
}

// WhatsAppConfig contains settings for the web automation channel.
type WhatsAppConfig struct {
	// WebURL is the WhatsApp Web base URL
	WebURL string `toml:"web_url"`
	// WaitSecs is how long the page gets to load before Enter is pressed
	WaitSecs int `toml:"wait_secs"`
	// CloseSecs is the delay between sending and closing the tab
	CloseSecs int `toml:"close_secs"`
	// Browser overrides the system URL opener (e.g. "firefox")
	Browser string `toml:"browser"`
	// ImagePath is the image converted by the whatsapp command
	ImagePath string `toml:"image_path"`
	// ASCIIOutput is the output name; ".txt" is appended
	ASCIIOutput string `toml:"ascii_output"`
	// ASCIIWidth is the number of characters per ASCII-art row
	ASCIIWidth int `toml:"ascii_width"`
}

// LoggingConfig controls the debug log.
type LoggingConfig struct {
	// Debug enables writing the log file
	Debug bool `toml:"debug"`
	// File is the debug log path (empty = ~/.localbot/debug.log)
	File string `toml:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Local: LocalConfig{
			OllamaURL:   "http://127.0.0.1:11434",
			OllamaModel: "phi",
			AutoStart:   true,
		},

		Generation: GenerationConfig{
			MaxPromptRunes:  8192,
			MaxOutputTokens: 150,
		},

		Chat: ChatConfig{
			SavePath: "conversation.txt",
		},

		WhatsApp: WhatsAppConfig{
			WebURL:      "https://web.whatsapp.com",
			WaitSecs:    15,
			CloseSecs:   3,
			ImagePath:   "folders/name.jpeg",
			ASCIIOutput: "ascii",
			ASCIIWidth:  80,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the localbot configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".localbot"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads ~/.localbot/config.toml if it exists, otherwise starts from
// defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}
	return finish(Default())
}

// LoadFromPath loads configuration from a specific TOML file.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to path atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# localbot configuration file\n")
	buf.WriteString("# Generated by localbot - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// DEFAULTS, ENV OVERRIDES, VALIDATION
// =============================================================================

// SetDefaults fills zero values with defaults. Zero is meaningful for
// Generation.TimeoutSecs and Generation.Temperature and is kept.
func (c *Config) SetDefaults() {
	d := Default()

	if c.Version == "" {
		c.Version = d.Version
	}
	if c.Local.OllamaURL == "" {
		c.Local.OllamaURL = d.Local.OllamaURL
	}
	if c.Local.OllamaModel == "" {
		c.Local.OllamaModel = d.Local.OllamaModel
	}
	if c.Generation.MaxPromptRunes == 0 {
		c.Generation.MaxPromptRunes = d.Generation.MaxPromptRunes
	}
	if c.Generation.MaxOutputTokens == 0 {
		c.Generation.MaxOutputTokens = d.Generation.MaxOutputTokens
	}
	if c.Chat.SavePath == "" {
		c.Chat.SavePath = d.Chat.SavePath
	}
	if c.WhatsApp.WebURL == "" {
		c.WhatsApp.WebURL = d.WhatsApp.WebURL
	}
	if c.WhatsApp.WaitSecs == 0 {
		c.WhatsApp.WaitSecs = d.WhatsApp.WaitSecs
	}
	if c.WhatsApp.CloseSecs == 0 {
		c.WhatsApp.CloseSecs = d.WhatsApp.CloseSecs
	}
	if c.WhatsApp.ImagePath == "" {
		c.WhatsApp.ImagePath = d.WhatsApp.ImagePath
	}
	if c.WhatsApp.ASCIIOutput == "" {
		c.WhatsApp.ASCIIOutput = d.WhatsApp.ASCIIOutput
	}
	if c.WhatsApp.ASCIIWidth == 0 {
		c.WhatsApp.ASCIIWidth = d.WhatsApp.ASCIIWidth
	}
}

// ApplyEnvOverrides applies LOCALBOT_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if model := os.Getenv("LOCALBOT_MODEL"); model != "" {
		c.Local.OllamaModel = model
	}
	if u := os.Getenv("LOCALBOT_OLLAMA_URL"); u != "" {
		c.Local.OllamaURL = u
	}
	if p := os.Getenv("LOCALBOT_SAVE_PATH"); p != "" {
		c.Chat.SavePath = p
	}
	if b := os.Getenv("LOCALBOT_BROWSER"); b != "" {
		c.WhatsApp.Browser = b
	}
	if d := os.Getenv("LOCALBOT_DEBUG"); d != "" {
		c.Logging.Debug = d == "1" || strings.EqualFold(d, "true")
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.Local.OllamaURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{"local.ollama_url", "must be an absolute http(s) URL"})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, ValidationError{"local.ollama_url", "scheme must be http or https"})
	}
	if strings.TrimSpace(c.Local.OllamaModel) == "" {
		errs = append(errs, ValidationError{"local.ollama_model", "must not be empty"})
	}
	if c.Generation.MaxPromptRunes < 0 {
		errs = append(errs, ValidationError{"generation.max_prompt_runes", "must not be negative"})
	}
	if c.Generation.MaxOutputTokens < 0 {
		errs = append(errs, ValidationError{"generation.max_output_tokens", "must not be negative"})
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		errs = append(errs, ValidationError{"generation.temperature", "must be between 0 and 2"})
	}
	if c.Generation.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{"generation.timeout_secs", "must not be negative"})
	}
	if u, err := url.Parse(c.WhatsApp.WebURL); err != nil || u.Scheme != "https" {
		errs = append(errs, ValidationError{"whatsapp.web_url", "must be an https URL"})
	}
	if c.WhatsApp.WaitSecs < 0 || c.WhatsApp.CloseSecs < 0 {
		errs = append(errs, ValidationError{"whatsapp.wait_secs", "delays must not be negative"})
	}
	if c.WhatsApp.ASCIIWidth < 1 {
		errs = append(errs, ValidationError{"whatsapp.ascii_width", "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// DERIVED SETTINGS
// =============================================================================

// OllamaClientConfig builds the Ollama client settings from this config.
func (c *Config) OllamaClientConfig() *ollama.ClientConfig {
	return &ollama.ClientConfig{
		BaseURL:         c.Local.OllamaURL,
		DefaultModel:    c.Local.OllamaModel,
		MaxOutputTokens: c.Generation.MaxOutputTokens,
		Temperature:     c.Generation.Temperature,
		GenerateTimeout: time.Duration(c.Generation.TimeoutSecs) * time.Second,
	}
}

// WaitDuration returns the page load delay before a message is sent.
func (w WhatsAppConfig) WaitDuration() time.Duration {
	return time.Duration(w.WaitSecs) * time.Second
}

// CloseDuration returns the delay before the tab is closed.
func (w WhatsAppConfig) CloseDuration() time.Duration {
	return time.Duration(w.CloseSecs) * time.Second
}

// MessengerConfig builds the web automation settings.
func (w WhatsAppConfig) MessengerConfig() whatsapp.Config {
	return whatsapp.Config{
		WebURL:     w.WebURL,
		WaitTime:   w.WaitDuration(),
		CloseTime:  w.CloseDuration(),
		ASCIIWidth: w.ASCIIWidth,
	}
}

// LogPath returns the debug log file path.
func (c *Config) LogPath() (string, error) {
	if c.Logging.File != "" {
		return c.Logging.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}
