// Package config manages user settings stored at ~/.agentos/config.yaml,
// backed by Viper with AGENTOS_* environment variable overrides.
package config
