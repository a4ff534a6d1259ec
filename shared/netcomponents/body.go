package netcomponents

import "github.com/yohamta/donburi"

// NetBodyData gives an entity a circular collision body centered on its
// NetPosition.
type NetBodyData struct {
	Radius float64
}

var NetBody = donburi.NewComponentType[NetBodyData]()
