package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerStateData struct {
	ID   string
	Hits int // Times this player has been hit by a bullet
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
