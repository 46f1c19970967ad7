package systems

import (
	"image/color"
	"math"

	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/interp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const headRadius = 4

// DrawArena paints the background and wall rectangles.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.Background)

	camX, camY := cameraOffset(e)
	components.Arena.Each(e.World, func(entry *donburi.Entry) {
		a := components.Arena.Get(entry)
		for _, w := range a.Walls {
			vector.DrawFilledRect(screen,
				float32(w.X-camX), float32(w.Y-camY),
				float32(w.W), float32(w.H),
				cfg.Arena.WallColor, false)
		}
	})
}

// DrawRigs advances the interpolation engine for this render frame, then
// draws every rig from its blended pose. Rigs the engine cannot serve
// (gate off, engine disabled, not yet valid) fall back to their raw
// current-tick pose, which is exactly the unsmoothed look.
func DrawRigs(e *ecs.ECS, screen *ebiten.Image) {
	smEntry, ok := components.Smoother.First(e.World)
	if !ok {
		return
	}
	sm := components.Smoother.Get(smEntry)
	sm.Engine.Update(sm.Clock.Alpha())

	camX, camY := cameraOffset(e)
	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		rig := components.Rig.Get(entry)
		obj := components.Object.Get(entry)

		clr := cfg.White
		if rig.Leader {
			clr = cfg.Orange
		}

		if pose := sm.Engine.Pose(rig.ID); pose != nil {
			drawSkeleton(screen, pose, camX, camY, clr)
			return
		}

		// Raw 30 Hz pose, no smoothing.
		raw := interp.SkeletonSnapshot{
			RootPos:   interp.Vec3{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2},
			RootRot:   rig.RootRot,
			BoneCount: len(rig.Bones),
		}
		copy(raw.Bones[:], rig.Bones)
		drawSkeleton(screen, &raw, camX, camY, clr)
	})
}

// drawSkeleton walks the bone tree, accumulating parent angles and tip
// positions, and strokes one line per bone. Angle zero points down the
// screen; Scale.Y stretches a bone along its length.
func drawSkeleton(screen *ebiten.Image, pose *interp.SkeletonSnapshot, camX, camY float64, clr color.RGBA) {
	var tipX, tipY, ang [cfg.BoneCountRig]float64

	rootX := pose.RootPos.X - camX
	rootY := pose.RootPos.Y - camY
	rootAng := signedRadians(pose.RootRot[2])

	n := pose.BoneCount
	if n > cfg.BoneCountRig {
		n = cfg.BoneCountRig
	}
	for i := 0; i < n; i++ {
		baseX, baseY, baseAng := rootX, rootY, rootAng
		if p := cfg.Rig.Parents[i]; p >= 0 {
			baseX, baseY, baseAng = tipX[p], tipY[p], ang[p]
		}

		a := baseAng + signedRadians(pose.Bones[i].Rot[2])
		ln := cfg.Rig.Lengths[i] * pose.Bones[i].Scale.Y
		ex := baseX + math.Sin(a)*ln
		ey := baseY + math.Cos(a)*ln

		vector.StrokeLine(screen,
			float32(baseX), float32(baseY),
			float32(ex), float32(ey),
			cfg.Rig.Thickness, clr, true)

		if i == cfg.BoneHead {
			vector.DrawFilledCircle(screen, float32(ex), float32(ey), headRadius, clr, true)
		}

		tipX[i], tipY[i], ang[i] = ex, ey, a
	}

	vector.DrawFilledCircle(screen, float32(rootX), float32(rootY), cfg.Rig.JointSize, clr, true)
}

// signedRadians maps a wrapping angle to (-π, π] so small negative leans
// do not read as near-full turns.
func signedRadians(a interp.Angle) float64 {
	return float64(int16(a)) * (2 * math.Pi / 65536.0)
}

func cameraOffset(e *ecs.ECS) (float64, float64) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	cam := components.Camera.Get(camEntry)
	return cam.Position.X - float64(cfg.C.Width)/2, cam.Position.Y - float64(cfg.C.Height)/2
}
