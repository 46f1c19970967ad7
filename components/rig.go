package components

import (
	"github.com/automoto/interpose/interp"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RigData is a procedurally animated stick figure. Joint angles are driven
// by tween sequences at the logic rate; the resulting pose is captured into
// the interpolation engine every logic step.
type RigData struct {
	ID interp.EntityID

	// Local pose rebuilt each logic step, in config.Rig bone order.
	Bones   []interp.BoneTransform
	RootRot [3]interp.Angle

	Swings []*gween.Sequence // per-bone joint swing, nil for static bones
	Lean   *gween.Sequence   // whole-body lean (root rotation)
	Pulse  *gween.Sequence   // torso breathing scale

	Heading float64 // wander direction in radians
	Leader  bool    // camera follows the leader rig
}

var Rig = donburi.NewComponentType[RigData]()
