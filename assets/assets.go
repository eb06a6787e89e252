package assets

import (
	"embed"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset tree. Levels live under config.C.LevelsDir.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader loads from the embedded assets.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS loads from fsys, for example os.DirFS of an assets
// directory on disk.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevels loads every .tmx file in the levels directory.
func (l *LevelLoader) LoadLevels() (map[string]*leveldata.CollisionData, []string, error) {
	return leveldata.LoadAllLevels(l.fsys, cfg.C.LevelsDir)
}

// LoadLevel loads a single level by stem name.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.CollisionData, error) {
	return leveldata.LoadCollisionData(l.fsys, fmt.Sprintf("%s/%s.tmx", cfg.C.LevelsDir, name))
}

func (l *LevelLoader) MustLoadLevel(name string) *leveldata.CollisionData {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
