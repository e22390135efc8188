// Package gamedata provides embedded tile, monster and investigator data.
package gamedata

import "embed"

// dataFS holds the JSON definitions shipped with the binary.
//
//go:embed *.json
var dataFS embed.FS
