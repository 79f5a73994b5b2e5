// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/catwalk/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/catwalk/config.toml on macOS, %APPDATA%\catwalk\config.toml
// on Windows). The package provides type-safe configuration access and covers HTTP fetch
// pacing, virtual environment setup, output locations, and UI settings.
//
// TOML parsing goes through go-toml so syntax errors carry file positions; value
// constraints the format cannot express are enforced by the IsValid tree on Config.
package config
