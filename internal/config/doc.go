// Package config loads layerterm's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/layerterm/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Fields missing from the file keep their defaults
//
// # TOML Format
//
//	backend  = "tea"     # or "tcell"
//	log_file = "~/.local/state/layerterm/layerterm.log"
//
//	[border]
//	weight = "light"     # light | heavy
//	count  = "single"    # single | double
//	dash   = "none"      # none | double | triple | quadruple
//	corner = "arc"       # box | arc
//
//	[viewer]
//	path      = "~/notes.txt"
//	max_lines = 2000
//
// An explicit empty log_file disables logging. An empty viewer path shows
// built-in text. A non-positive max_lines reads the whole file.
//
// # Errors
//
// Syntax errors and unknown enum values are returned wrapped with the field
// name, for example:
//
//	parse config: border.weight: unknown line weight "thick"
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory. A relative config path
// given to Load is made absolute against the current directory; relative
// log_file and viewer.path values inside the file are taken relative to the
// directory holding the config file.
package config
