package main

import "embed"

// configFS holds the built-in config presets
//
//go:embed configs
var configFS embed.FS
