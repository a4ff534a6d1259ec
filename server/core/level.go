package core

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/arena/config"
	"github.com/automoto/arena/shared/collision"
	"github.com/automoto/arena/shared/geometry"
	"github.com/automoto/arena/shared/leveldata"
)

// Level holds the server's collision tree and spawn data for one map.
type Level struct {
	Name      string
	Tree      *collision.TreeCollider
	Spawns    []geometry.RectangleBody
	MapWidth  int
	MapHeight int
}

// NewLevel indexes parsed collision data with the given backend.
func NewLevel(name string, data *leveldata.CollisionData, backend string) (*Level, error) {
	tree, err := data.BuildTree(backend)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	spawns := tree.GetAllByType(collision.LeafType(config.Level.SpawnType))

	log.Printf("Loaded level %s: %d leaves (%d solid), %d spawn points, %dx%d map",
		name, tree.Len(), data.Count(collision.ColliderFull), len(spawns), data.MapWidth, data.MapHeight)

	return &Level{
		Name:      name,
		Tree:      tree,
		Spawns:    spawns,
		MapWidth:  data.MapWidth,
		MapHeight: data.MapHeight,
	}, nil
}

// Bounds returns the playable map rectangle.
func (l *Level) Bounds() geometry.RectangleBody {
	return geometry.NewRectangleBody(0, 0, float64(l.MapWidth), float64(l.MapHeight))
}

// LoadAllLevels loads all .tmx levels from the given assets directory,
// returning a map of Level keyed by stem name plus a sorted name list.
func LoadAllLevels(assetsDir, backend string) (map[string]*Level, []string, error) {
	return LoadLevels(os.DirFS(assetsDir), backend)
}

// LoadLevels is LoadAllLevels over any assets filesystem, such as assets.FS().
func LoadLevels(fsys fs.FS, backend string) (map[string]*Level, []string, error) {
	collisionMap, names, err := leveldata.LoadAllLevels(fsys, config.Level.LevelsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	levels := make(map[string]*Level, len(names))
	for _, name := range names {
		level, err := NewLevel(name, collisionMap[name], backend)
		if err != nil {
			return nil, nil, err
		}
		levels[name] = level
	}

	return levels, names, nil
}
