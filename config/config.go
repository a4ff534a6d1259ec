package config

// CollisionConfig selects and sizes the spatial index behind each level.
type CollisionConfig struct {
	Backend string // "rtree" or "grid"

	// R-tree node fan-out
	RTreeMinChildren int
	RTreeMaxChildren int

	// Grid cell size in world units
	GridCellWidth  int
	GridCellHeight int
}

// LevelConfig names the parts of a TMX map the level loader reads.
type LevelConfig struct {
	LevelsDir     string // Directory of .tmx files, relative to the assets root
	WallLayer     string // Tile layer whose tiles become solid leaves
	ColliderGroup string // Object group of free-form leaves with collider/type properties
	SpawnGroup    string // Object group of player spawn points

	// Leaf types (float64 in Tiled, stored as int)
	WallType  int
	SpawnType int
}

// ArenaConfig contains the server simulation's body sizes and speeds.
type ArenaConfig struct {
	PlayerRadius   float64
	PlayerMaxSpeed float64 // Max distance a player may move per step
	BulletRadius   float64
	BulletSpeed    float64
	BulletLifetime int64 // Milliseconds before a bullet expires on its own
}

// Global configuration instances
var Collision CollisionConfig
var Level LevelConfig
var Arena ArenaConfig

// Backend names
const (
	BackendRTree = "rtree"
	BackendGrid  = "grid"
)

func init() {
	Collision = CollisionConfig{
		Backend: BackendRTree,

		RTreeMinChildren: 25,
		RTreeMaxChildren: 50,

		GridCellWidth:  32,
		GridCellHeight: 32,
	}

	Level = LevelConfig{
		LevelsDir:     "levels",
		WallLayer:     "walls",
		ColliderGroup: "colliders",
		SpawnGroup:    "spawners",

		WallType:  1,
		SpawnType: 2,
	}

	Arena = ArenaConfig{
		PlayerRadius:   16,
		PlayerMaxSpeed: 8,
		BulletRadius:   4,
		BulletSpeed:    12,
		BulletLifetime: 3000,
	}
}
