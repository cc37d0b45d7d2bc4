// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for localbot.
//
// Configuration is read from ~/.localbot/config.toml when present, then
// environment overrides are applied, missing values are filled with
// defaults, and the result is validated.
//
// # Environment Variables
//
//   - LOCALBOT_MODEL: overrides local.ollama_model
//   - LOCALBOT_OLLAMA_URL: overrides local.ollama_url
//   - LOCALBOT_SAVE_PATH: overrides chat.save_path
//   - LOCALBOT_BROWSER: overrides whatsapp.browser
//   - LOCALBOT_DEBUG: enables logging.debug
//
// # Usage
//
//	cfg, err := config.Load()
//	client := ollama.NewClientWithConfig(cfg.OllamaClientConfig())
package config
