// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every LOCALBOT_* variable for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOCALBOT_MODEL", "LOCALBOT_OLLAMA_URL", "LOCALBOT_SAVE_PATH", "LOCALBOT_BROWSER", "LOCALBOT_DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "phi", cfg.Local.OllamaModel)
	assert.Equal(t, "http://127.0.0.1:11434", cfg.Local.OllamaURL)
	assert.Equal(t, 150, cfg.Generation.MaxOutputTokens)
	assert.Equal(t, 0, cfg.Generation.TimeoutSecs)
	assert.Equal(t, "conversation.txt", cfg.Chat.SavePath)
	assert.Equal(t, "folders/name.jpeg", cfg.WhatsApp.ImagePath)
	assert.Equal(t, "ascii", cfg.WhatsApp.ASCIIOutput)
	assert.Equal(t, 15*time.Second, cfg.WhatsApp.WaitDuration())
	assert.Equal(t, 3*time.Second, cfg.WhatsApp.CloseDuration())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[local]
ollama_model = "llama3.2"

[generation]
max_output_tokens = 300
timeout_secs = 60

[chat]
save_path = "/tmp/chat.txt"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "llama3.2", cfg.Local.OllamaModel)
	assert.Equal(t, 300, cfg.Generation.MaxOutputTokens)
	assert.Equal(t, "/tmp/chat.txt", cfg.Chat.SavePath)
	// Keys absent from the file keep defaults
	assert.Equal(t, "http://127.0.0.1:11434", cfg.Local.OllamaURL)
	assert.Equal(t, 8192, cfg.Generation.MaxPromptRunes)

	client := cfg.OllamaClientConfig()
	assert.Equal(t, 60*time.Second, client.GenerateTimeout)
	assert.Equal(t, "llama3.2", client.DefaultModel)
}

func TestLoadFromPath_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[local\nollama_model="), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[local]\nollama_url = \"ftp://x\"\n"), 0644))

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "local.ollama_url", verrs[0].Field)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LOCALBOT_MODEL", "mistral")
	t.Setenv("LOCALBOT_OLLAMA_URL", "http://10.0.0.2:11434")
	t.Setenv("LOCALBOT_SAVE_PATH", "out.txt")
	t.Setenv("LOCALBOT_BROWSER", "firefox")
	t.Setenv("LOCALBOT_DEBUG", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "mistral", cfg.Local.OllamaModel)
	assert.Equal(t, "http://10.0.0.2:11434", cfg.Local.OllamaURL)
	assert.Equal(t, "out.txt", cfg.Chat.SavePath)
	assert.Equal(t, "firefox", cfg.WhatsApp.Browser)
	assert.True(t, cfg.Logging.Debug)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Local.OllamaModel = " "
	cfg.Generation.Temperature = 3
	cfg.Generation.TimeoutSecs = -1
	cfg.WhatsApp.WebURL = "http://web.whatsapp.com"

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
}

func TestSetDefaults_KeepsMeaningfulZeros(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	assert.Equal(t, "phi", cfg.Local.OllamaModel)
	assert.Equal(t, 0, cfg.Generation.TimeoutSecs)
	assert.Equal(t, 0.0, cfg.Generation.Temperature)
	assert.Equal(t, 80, cfg.WhatsApp.ASCIIWidth)
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.Local.OllamaModel = "gemma2"
	cfg.WhatsApp.WaitSecs = 20

	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "gemma2", loaded.Local.OllamaModel)
	assert.Equal(t, 20, loaded.WhatsApp.WaitSecs)
}

func TestLogPath(t *testing.T) {
	cfg := Default()
	cfg.Logging.File = "/var/log/localbot.log"
	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/localbot.log", path)
}

func TestMessengerConfig(t *testing.T) {
	cfg := Default()
	cfg.WhatsApp.WaitSecs = 20
	cfg.WhatsApp.CloseSecs = 5
	cfg.WhatsApp.ASCIIWidth = 100

	m := cfg.WhatsApp.MessengerConfig()
	assert.Equal(t, cfg.WhatsApp.WebURL, m.WebURL)
	assert.Equal(t, 20*time.Second, m.WaitTime)
	assert.Equal(t, 5*time.Second, m.CloseTime)
	assert.Equal(t, 100, m.ASCIIWidth)
}
