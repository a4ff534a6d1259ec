package core

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/automoto/arena/config"
	"github.com/automoto/arena/shared/collision"
	"github.com/automoto/arena/shared/gamemath"
	"github.com/automoto/arena/shared/geometry"
	"github.com/automoto/arena/shared/netcomponents"
	"github.com/automoto/arena/tags"
	"github.com/yohamta/donburi"
)

var (
	ErrNoSpawnPoints   = errors.New("level has no spawn points")
	ErrPlayerExists    = errors.New("player already in arena")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrPlayerNotInGame = errors.New("player entity is no longer valid")
)

// Hit is reported when a bullet reaches a player other than its shooter.
type Hit struct {
	ShooterID string
	TargetID  string
}

// Arena runs players and bullets against one level. All methods serialise on
// an internal lock, so the level's tree only ever sees one caller at a time.
type Arena struct {
	world donburi.World
	level *Level

	players   map[string]donburi.Entity
	nextSpawn int
	mu        sync.Mutex
}

// NewArena creates an empty arena on level.
func NewArena(level *Level) *Arena {
	return &Arena{
		world:   donburi.NewWorld(),
		level:   level,
		players: make(map[string]donburi.Entity),
	}
}

// World returns the ECS world
func (a *Arena) World() donburi.World {
	return a.world
}

// Level returns the level the arena runs on.
func (a *Arena) Level() *Level {
	return a.level
}

// PlayerCount returns the number of players in the arena
func (a *Arena) PlayerCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.players)
}

// SpawnPlayer creates a player at the next spawn point, cycling through them.
func (a *Arena) SpawnPlayer(id string) (donburi.Entity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.players[id]; exists {
		return 0, fmt.Errorf("%w: %s", ErrPlayerExists, id)
	}
	if len(a.level.Spawns) == 0 {
		return 0, fmt.Errorf("%s: %w", a.level.Name, ErrNoSpawnPoints)
	}

	spawn := a.level.Spawns[a.nextSpawn%len(a.level.Spawns)]
	a.nextSpawn++

	entity := a.world.Create(
		tags.Player,
		netcomponents.NetPosition,
		netcomponents.NetBody,
		netcomponents.NetPlayerState,
	)
	entry := a.world.Entry(entity)

	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{
		X: spawn.CenterX(),
		Y: spawn.CenterY(),
	})
	netcomponents.NetBody.SetValue(entry, netcomponents.NetBodyData{
		Radius: config.Arena.PlayerRadius,
	})
	netcomponents.NetPlayerState.SetValue(entry, netcomponents.NetPlayerStateData{
		ID: id,
	})

	a.players[id] = entity
	log.Printf("Player %s spawned at (%.1f, %.1f)", id, spawn.CenterX(), spawn.CenterY())

	return entity, nil
}

// RemovePlayer deletes a player's entity.
func (a *Arena) RemovePlayer(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	entity, exists := a.players[id]
	if !exists {
		return false
	}
	delete(a.players, id)

	if a.world.Valid(entity) {
		a.world.Remove(entity)
	}
	log.Printf("Player %s removed", id)
	return true
}

func (a *Arena) playerEntry(id string) (*donburi.Entry, error) {
	entity, exists := a.players[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	if !a.world.Valid(entity) {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotInGame, id)
	}
	return a.world.Entry(entity), nil
}

func bodyOf(entry *donburi.Entry) geometry.CircleBody {
	pos := netcomponents.NetPosition.Get(entry)
	body := netcomponents.NetBody.Get(entry)
	return geometry.NewCircleBody(pos.X, pos.Y, body.Radius)
}

// PlayerBody returns the player's current collision circle.
func (a *Arena) PlayerBody(id string) (geometry.CircleBody, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, err := a.playerEntry(id)
	if err != nil {
		return geometry.CircleBody{}, err
	}
	return bodyOf(entry), nil
}

// MovePlayer moves a player by (dx, dy), capped at the configured max speed,
// then pushes the result out of solid geometry and keeps it inside the map.
func (a *Arena) MovePlayer(id string, dx, dy float64) (geometry.CircleBody, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, err := a.playerEntry(id)
	if err != nil {
		return geometry.CircleBody{}, err
	}

	if dist := math.Hypot(dx, dy); dist > config.Arena.PlayerMaxSpeed {
		scale := config.Arena.PlayerMaxSpeed / dist
		dx, dy = dx*scale, dy*scale
	}

	moved := bodyOf(entry)
	moved.X += dx
	moved.Y += dy

	corrected := a.level.Tree.CorrectWithCircle(moved)
	corrected.X = gamemath.ClampFloat(corrected.X, corrected.Radius, float64(a.level.MapWidth)-corrected.Radius)
	corrected.Y = gamemath.ClampFloat(corrected.Y, corrected.Radius, float64(a.level.MapHeight)-corrected.Radius)

	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: corrected.X, Y: corrected.Y})
	return corrected, nil
}

// Shoot fires a bullet from the player's center along rotation.
func (a *Arena) Shoot(id string, rotation float64, shotAt int64) (donburi.Entity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	shooter, err := a.playerEntry(id)
	if err != nil {
		return 0, err
	}
	origin := netcomponents.NetPosition.Get(shooter)

	entity := a.world.Create(
		tags.Bullet,
		netcomponents.NetPosition,
		netcomponents.NetBody,
		netcomponents.NetBullet,
	)
	entry := a.world.Entry(entity)

	netcomponents.NetPosition.SetValue(entry, *origin)
	netcomponents.NetBody.SetValue(entry, netcomponents.NetBodyData{Radius: config.Arena.BulletRadius})
	netcomponents.NetBullet.SetValue(entry, netcomponents.NetBulletData{
		PlayerID: id,
		Rotation: rotation,
		Speed:    config.Arena.BulletSpeed,
		Active:   true,
		ShotAt:   shotAt,
	})
	return entity, nil
}

// hitsWall reports whether any solid leaf overlaps the bullet's box. Zones
// and markers do not stop bullets.
func (a *Arena) hitsWall(bullet geometry.CircleBody) bool {
	for _, leaf := range a.level.Tree.SearchWithCircle(bullet) {
		if leaf.Solid() {
			return true
		}
	}
	return false
}

// Step advances every active bullet once. A bullet is deactivated when it
// expires, leaves the map, touches a solid leaf, or reaches a player other
// than its shooter; the last case is returned as a Hit.
func (a *Arena) Step(now int64) []Hit {
	a.mu.Lock()
	defer a.mu.Unlock()

	type target struct {
		entry *donburi.Entry
		id    string
		body  geometry.CircleBody
	}
	var targets []target
	tags.Player.Each(a.world, func(entry *donburi.Entry) {
		targets = append(targets, target{
			entry: entry,
			id:    netcomponents.NetPlayerState.Get(entry).ID,
			body:  bodyOf(entry),
		})
	})

	bounds := a.level.Bounds()
	var hits []Hit

	tags.Bullet.Each(a.world, func(entry *donburi.Entry) {
		bullet := netcomponents.NetBullet.Get(entry)
		if !bullet.Active {
			return
		}
		if now-bullet.ShotAt > config.Arena.BulletLifetime {
			bullet.Active = false
			return
		}

		pos := netcomponents.NetPosition.Get(entry)
		dx, dy := gamemath.Step(bullet.Rotation, bullet.Speed)
		pos.X += dx
		pos.Y += dy

		body := bodyOf(entry)
		if !collision.CircleToRectangle(body, bounds) || a.hitsWall(body) {
			bullet.Active = false
			return
		}

		for _, t := range targets {
			if t.id == bullet.PlayerID || !collision.CircleToCircle(body, t.body) {
				continue
			}
			bullet.Active = false
			netcomponents.NetPlayerState.Get(t.entry).Hits++
			hits = append(hits, Hit{ShooterID: bullet.PlayerID, TargetID: t.id})
			return
		}
	})

	return hits
}

// RemoveInactiveBullets deletes spent bullets and returns how many were removed.
func (a *Arena) RemoveInactiveBullets() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	var spent []donburi.Entity
	tags.Bullet.Each(a.world, func(entry *donburi.Entry) {
		if !netcomponents.NetBullet.Get(entry).Active {
			spent = append(spent, entry.Entity())
		}
	})
	for _, entity := range spent {
		a.world.Remove(entity)
	}
	return len(spent)
}

// ActiveBullets returns the number of bullets still in flight.
func (a *Arena) ActiveBullets() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	tags.Bullet.Each(a.world, func(entry *donburi.Entry) {
		if netcomponents.NetBullet.Get(entry).Active {
			n++
		}
	})
	return n
}
