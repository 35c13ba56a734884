// Package configs manages envage's user-level CLI settings.
//
// Settings are optional: every command works with built-in defaults when no
// config file exists. The file lives under the XDG config directory and is
// plain TOML, small enough to edit by hand.
//
// The core library never reads settings; they only shape CLI flag defaults.
package configs
