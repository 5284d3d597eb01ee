// Package config loads the toolkit's input settings.
//
// Settings resolve in three layers, later winning: built-in defaults, an
// optional TOML config file, and GLINT_* environment variables.
package config
