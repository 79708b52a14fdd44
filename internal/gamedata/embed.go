// Package gamedata provides embedded level and face data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds levels.json and faces.json at build time.
//
//go:embed *.json
var dataFS embed.FS
