package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/symbiotic/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded assets for loaders that take an fs.FS.
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded level. Names are sorted.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAll(assetFS, levelsDir)
}

// LoadLevel parses the embedded level called name (without the .tmx suffix).
func LoadLevel(name string) (*leveldata.Level, error) {
	lvl, err := leveldata.Load(assetFS, fmt.Sprintf("%s/%s.tmx", levelsDir, name))
	if err != nil {
		return nil, err
	}
	return lvl, nil
}
