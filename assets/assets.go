// Package assets embeds the level maps shipped with the server.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// FS returns the embedded assets root. Levels live under config.Level.LevelsDir.
func FS() fs.FS {
	return assetFS
}
