package systems

import (
	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the leader rig. With the camera interpolation flag
// on the follow is exponentially smoothed; with it off the camera snaps to
// the target every frame, matching how a pose channel snaps when its flag
// is off.
func UpdateCamera(e *ecs.ECS) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)

	leader, ok := tags.Leader.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(leader)
	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2

	// Prefer the blended root position when the engine can serve one, so
	// the camera tracks the same motion the leader is drawn with.
	smooth := false
	if smEntry, ok := components.Smoother.First(e.World); ok {
		sm := components.Smoother.Get(smEntry)
		if sm.Engine.Config().Camera {
			smooth = true
		}
		rig := components.Rig.Get(leader)
		if pose := sm.Engine.Pose(rig.ID); pose != nil {
			targetX = pose.RootPos.X
			targetY = pose.RootPos.Y
		}
	}

	if !smooth {
		cam.Position.X = targetX
		cam.Position.Y = targetY
	} else {
		cam.Position.X += (targetX - cam.Position.X) * cfg.Camera.FollowSmoothing
		cam.Position.Y += (targetY - cam.Position.Y) * cfg.Camera.FollowSmoothing
	}

	clampCameraToArena(e, cam)
}

func clampCameraToArena(e *ecs.ECS, cam *components.CameraData) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	a := components.Arena.Get(arenaEntry)

	halfW := float64(cfg.C.Width) / 2
	halfH := float64(cfg.C.Height) / 2
	maxX := float64(a.Width) - halfW
	maxY := float64(a.Height) - halfH

	if cam.Position.X < halfW {
		cam.Position.X = halfW
	} else if cam.Position.X > maxX {
		cam.Position.X = maxX
	}
	if cam.Position.Y < halfH {
		cam.Position.Y = halfH
	} else if cam.Position.Y > maxY {
		cam.Position.Y = maxY
	}
}
