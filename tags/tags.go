package tags

import "github.com/yohamta/donburi"

var (
	Rig    = donburi.NewTag().SetName("Rig")
	Wall   = donburi.NewTag().SetName("Wall")
	Leader = donburi.NewTag().SetName("Leader")
)

// Resolv tags for collision
const (
	ResolvSolid = "solid"
	ResolvRig   = "rig"
)
