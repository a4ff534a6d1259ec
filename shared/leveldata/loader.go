package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/arena/config"
	"github.com/automoto/arena/shared/collision"
	"github.com/lafriks/go-tiled"
)

// LoadCollisionData parses a TMX file into collision leaves. It takes an fs.FS
// so callers can pass embed.FS (client) or os.DirFS (server).
//
// Leaves come from three places:
//   - every tile of the wall layer is a solid leaf, typed by the tileset
//     tile's "type" property
//   - every object of the collider group becomes a leaf with its "collider"
//     (default "full") and "type" properties
//   - every object of the spawn group becomes a non-colliding spawn leaf
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Parse solid tiles from the wall layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != config.Level.WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				leafType := config.Level.WallType
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if t := tilesetTile.Properties.GetInt("type"); t != 0 {
						leafType = t
					}
				}

				data.Leaves = append(data.Leaves, *collision.NewLeaf(
					float64(x)*tileW, float64(y)*tileH, tileW, tileH,
					collision.ColliderFull, collision.LeafType(leafType),
				))
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case config.Level.ColliderGroup:
			for _, o := range og.Objects {
				tag := o.Properties.GetString("collider")
				if tag == "" {
					tag = collision.ColliderFull.String()
				}
				kind, err := collision.ParseColliderKind(tag)
				if err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				data.Leaves = append(data.Leaves, *collision.NewLeaf(
					o.X, o.Y, o.Width, o.Height,
					kind, collision.LeafType(o.Properties.GetInt("type")),
				))
			}

		case config.Level.SpawnGroup:
			// Point objects have no size; give them one unit so they are
			// still a usable rectangle.
			for _, o := range og.Objects {
				data.Leaves = append(data.Leaves, *collision.NewLeaf(
					o.X, o.Y, math.Max(o.Width, 1), math.Max(o.Height, 1),
					collision.ColliderNone, collision.LeafType(config.Level.SpawnType),
				))
			}
		}
	}

	for i := range data.Leaves {
		if err := data.Leaves[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", tmxPath, err)
		}
	}

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

// NewIndex creates an empty index of the named backend sized for this level.
func (d *CollisionData) NewIndex(backend string) (collision.Index, error) {
	switch backend {
	case config.BackendRTree, "":
		return collision.NewRTreeIndex(config.Collision.RTreeMinChildren, config.Collision.RTreeMaxChildren), nil
	case config.BackendGrid:
		return collision.NewGridIndex(d.MapWidth, d.MapHeight,
			config.Collision.GridCellWidth, config.Collision.GridCellHeight), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// BuildTree indexes a copy of every leaf in a new TreeCollider.
func (d *CollisionData) BuildTree(backend string) (*collision.TreeCollider, error) {
	index, err := d.NewIndex(backend)
	if err != nil {
		return nil, err
	}

	leaves := make([]*collision.Leaf, len(d.Leaves))
	for i := range d.Leaves {
		leaf := d.Leaves[i]
		leaves[i] = &leaf
	}

	tree := collision.NewTreeCollider(collision.WithIndex(index))
	if err := tree.Insert(leaves...); err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	return tree, nil
}
