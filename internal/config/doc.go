// Package config loads settings for the placeholder command.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← PLACEHOLDER_*
//	├─────────────────────────────┤
//	│  2. Config File (TOML)      │  ← --config path
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// A missing config file is not an error. The merged result is validated
// before it is returned.
//
// Example file:
//
//	[logging]
//	level = "debug"
//	format = "json"
//
//	[render]
//	format = "text"
//	open = "[["
//	close = "]]"
//	highlight = "#ffd75f"
//
//	[watch]
//	debounce = "250ms"
package config
