package netcomponents

import "github.com/yohamta/donburi"

type NetBulletData struct {
	PlayerID string  // Shooter
	Rotation float64 // Radians, Y grows downward
	Speed    float64 // World units per step
	Active   bool
	ShotAt   int64 // Unix ms
}

var NetBullet = donburi.NewComponentType[NetBulletData]()
