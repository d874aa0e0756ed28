// Package config handles configuration management for turboterm.
// It layers, lowest precedence first: embedded defaults, the user config
// file (TOML or YAML), TURBOTERM_* environment variables and command-line
// overrides.
package config
