package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/interp"
	"github.com/automoto/interpose/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLogic advances the fixed-rate simulation. The clock turns real
// frame time into whole logic steps; each step animates every rig, then
// notifies the engine of the tick and captures each rig's fresh pose.
func UpdateLogic(e *ecs.ECS) {
	smEntry, ok := components.Smoother.First(e.World)
	if !ok {
		return
	}
	sm := components.Smoother.Get(smEntry)

	steps := sm.Clock.Advance(time.Now())
	stepSec := float32(sm.Clock.Step().Seconds())

	for i := 0; i < steps; i++ {
		stepRigs(e, stepSec)
		sm.Engine.OnLogicTick()
		captureRigs(e, sm.Engine)
	}

	sm.History.Push(sm.Clock.Alpha(), steps, sm.Clock.LastDelta().Seconds())
}

// stepRigs runs one logic step of rig animation: joint tweens, wander
// movement with wall collision, and the rebuilt local pose.
func stepRigs(e *ecs.ECS, stepSec float32) {
	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		rig := components.Rig.Get(entry)
		obj := components.Object.Get(entry)

		// Wander: occasionally pick a new heading, bounce off walls.
		if rand.Float64() < cfg.Rig.TurnChance {
			rig.Heading = rand.Float64() * 2 * math.Pi
		}
		dx := math.Cos(rig.Heading) * cfg.Rig.WanderSpeed
		dy := math.Sin(rig.Heading) * cfg.Rig.WanderSpeed
		if col := obj.Check(dx, 0, tags.ResolvSolid); col != nil {
			dx = 0
			rig.Heading = math.Pi - rig.Heading
		}
		if col := obj.Check(0, dy, tags.ResolvSolid); col != nil {
			dy = 0
			rig.Heading = -rig.Heading
		}
		obj.X += dx
		obj.Y += dy
		obj.Update()

		// Rebuild the local pose from the joint tweens.
		for i := 0; i < cfg.BoneCountRig; i++ {
			swing := float32(0)
			if seq := rig.Swings[i]; seq != nil {
				swing, _, _ = seq.Update(stepSec)
			}
			rig.Bones[i] = interp.BoneTransform{
				Rot:   [3]interp.Angle{0, 0, interp.AngleFromDegrees(cfg.Rig.RestDeg[i] + float64(swing))},
				Scale: interp.Vec3{X: 1, Y: 1, Z: 1},
			}
		}

		// Torso breathes via the scale channel.
		pulse, _, _ := rig.Pulse.Update(stepSec)
		rig.Bones[cfg.BoneTorso].Scale.Y = float64(pulse)

		// Whole-body lean rides on the root rotation.
		lean, _, _ := rig.Lean.Update(stepSec)
		rig.RootRot = [3]interp.Angle{0, 0, interp.AngleFromDegrees(float64(lean))}
	})
}

// captureRigs records every rig's pose with the engine for the current
// tick.
func captureRigs(e *ecs.ECS, engine *interp.Engine) {
	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		rig := components.Rig.Get(entry)
		obj := components.Object.Get(entry)
		root := interp.Vec3{
			X: obj.X + obj.W/2,
			Y: obj.Y + obj.H/2,
		}
		engine.Capture(rig.ID, rig.Bones, root, rig.RootRot)
	})
}
