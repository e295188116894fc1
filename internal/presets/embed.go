// Package presets provides named parameter-bundle presets embedded at
// build time and decoded from JSON in an embed.FS by Load/MustLoad.
package presets

import "embed"

//go:embed data/*.json
var dataFS embed.FS
