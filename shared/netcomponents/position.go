// Package netcomponents holds the donburi components shared by the server
// simulation and any client mirroring it. They carry plain data only.
package netcomponents

import "github.com/yohamta/donburi"

// NetPositionData is the center of a body in world units.
type NetPositionData struct {
	X, Y float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()
