package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/arena/config"
	"github.com/automoto/arena/shared/collision"
	"github.com/automoto/arena/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="4">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="walls.png" width="32" height="16"/>
  <tile id="1">
   <properties>
    <property name="type" type="int" value="7"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
1,1,0,0,
0,0,0,2,
0,0,0,0
</data>
 </layer>
 <objectgroup id="2" name="colliders">
  <object id="1" x="0" y="32" width="20" height="16">
   <properties>
    <property name="collider" value="zone"/>
    <property name="type" type="int" value="5"/>
   </properties>
  </object>
  <object id="2" x="40" y="40" width="8" height="8"/>
 </objectgroup>
 <objectgroup id="3" name="spawners">
  <object id="3" x="24" y="40">
   <point/>
  </object>
 </objectgroup>
</map>
`

const badColliderTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="colliders">
  <object id="1" x="0" y="0" width="8" height="8">
   <properties>
    <property name="collider" value="half"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/arena.tmx": {Data: []byte(arenaTMX)},
		"levels/bad.tmx":   {Data: []byte(badColliderTMX)},
		"other/b.tmx":      {Data: []byte(arenaTMX)},
		"other/a.tmx":      {Data: []byte(arenaTMX)},
	}
}

func TestLoadCollisionData(t *testing.T) {
	data, err := LoadCollisionData(testFS(), "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 64, data.MapWidth)
	assert.Equal(t, 48, data.MapHeight)

	wallType := collision.LeafType(config.Level.WallType)
	spawnType := collision.LeafType(config.Level.SpawnType)
	assert.ElementsMatch(t, []collision.Leaf{
		*collision.NewLeaf(0, 0, 16, 16, collision.ColliderFull, wallType),
		*collision.NewLeaf(16, 0, 16, 16, collision.ColliderFull, wallType),
		*collision.NewLeaf(48, 16, 16, 16, collision.ColliderFull, 7),
		*collision.NewLeaf(0, 32, 20, 16, collision.ColliderZone, 5),
		*collision.NewLeaf(40, 40, 8, 8, collision.ColliderFull, 0),
		*collision.NewLeaf(24, 40, 1, 1, collision.ColliderNone, spawnType),
	}, data.Leaves)

	assert.Equal(t, 4, data.Count(collision.ColliderFull))
	assert.Equal(t, 1, data.Count(collision.ColliderZone))
	assert.Equal(t, 1, data.Count(collision.ColliderNone))
}

func TestLoadCollisionDataRejectsUnknownCollider(t *testing.T) {
	_, err := LoadCollisionData(testFS(), "levels/bad.tmx")
	require.Error(t, err)
	assert.ErrorIs(t, err, collision.ErrUnknownCollider)
}

func TestLoadCollisionDataMissingFile(t *testing.T) {
	_, err := LoadCollisionData(testFS(), "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(testFS(), "other")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)
	assert.Len(t, levels["a"].Leaves, 6)

	_, _, err = LoadAllLevels(testFS(), "levels")
	assert.ErrorIs(t, err, collision.ErrUnknownCollider)

	_, _, err = LoadAllLevels(testFS(), "empty")
	assert.Error(t, err)
}

func TestBuildTree(t *testing.T) {
	data, err := LoadCollisionData(testFS(), "levels/arena.tmx")
	require.NoError(t, err)

	for _, backend := range []string{config.BackendRTree, config.BackendGrid} {
		t.Run(backend, func(t *testing.T) {
			tree, err := data.BuildTree(backend)
			require.NoError(t, err)
			assert.Equal(t, 6, tree.Len())

			spawns := tree.GetAllByType(collision.LeafType(config.Level.SpawnType))
			assert.Equal(t, []geometry.RectangleBody{geometry.NewRectangleBody(24, 40, 1, 1)}, spawns)

			// A body pushed up into the top-left wall tiles lands flush below them.
			corrected := tree.CorrectWithCircle(geometry.NewCircleBody(8, 20, 6))
			assert.Equal(t, geometry.NewCircleBody(8, 22, 6), corrected)

			// The zone leaf is searchable but does not move anything.
			inZone := geometry.NewRectangleBody(4, 36, 4, 4)
			assert.Len(t, tree.SearchWithRectangle(inZone), 1)
			assert.Equal(t, inZone, tree.CorrectWithRectangle(inZone))
		})
	}

	_, err = data.BuildTree("quadtree")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestBuildTreeCopiesLeaves(t *testing.T) {
	data, err := LoadCollisionData(testFS(), "levels/arena.tmx")
	require.NoError(t, err)

	tree, err := data.BuildTree(config.BackendRTree)
	require.NoError(t, err)

	data.Leaves[0].MaxX = 1000
	for _, leaf := range tree.All() {
		assert.NotEqual(t, 1000.0, leaf.MaxX)
	}
}
