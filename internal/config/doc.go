// Package config provides the calculator's settings.
//
// Settings are resolved in layers, with higher layers overriding lower:
//
//	3. Environment variables   <- RECKON_* (highest priority)
//	2. Settings file           <- settings.toml
//	1. Built-in defaults       <- lowest priority
//
// The settings file lives at ~/.config/reckon/settings.toml by default
// and can be pointed elsewhere with the -config flag or RECKON_BASE_DIR.
//
// The core consumes Settings as a read-only value: numeric limits
// (history size, display precision, input magnitude ceiling) and the
// auto-save flag. Validate enforces that the numeric limits are
// positive; a violation is fatal at startup.
//
// Watch provides live reload of the settings file through fsnotify so a
// running session picks up changes to auto_save or precision without a
// restart.
package config
