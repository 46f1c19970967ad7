package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/interpose/archetypes"
	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/interp"
	"github.com/automoto/interpose/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rig collision footprint, a small box around the root
const rigBoxSize = 10.0

var nextRigID interp.EntityID

// CreateRig spawns a wandering stick figure at the given position. The
// leader rig is the one the camera follows.
func CreateRig(e *ecs.ECS, x, y float64, leader bool) *donburi.Entry {
	var entry *donburi.Entry
	if leader {
		entry = archetypes.Rig.Spawn(e, tags.Leader)
	} else {
		entry = archetypes.Rig.Spawn(e)
	}

	obj := resolv.NewObject(x-rigBoxSize/2, y-rigBoxSize/2, rigBoxSize, rigBoxSize, tags.ResolvRig)
	obj.SetShape(resolv.NewRectangle(0, 0, rigBoxSize, rigBoxSize))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	nextRigID++
	rig := components.RigData{
		ID:      nextRigID,
		Bones:   make([]interp.BoneTransform, cfg.BoneCountRig),
		Swings:  make([]*gween.Sequence, cfg.BoneCountRig),
		Heading: rand.Float64() * 2 * math.Pi,
		Leader:  leader,
	}

	// Each animated joint yoyos between -amplitude and +amplitude forever.
	// A random pre-roll desynchronizes rigs spawned on the same tick.
	for i := 0; i < cfg.BoneCountRig; i++ {
		amp := float32(cfg.Rig.SwingDeg[i])
		if amp == 0 {
			continue
		}
		seq := gween.NewSequence(gween.New(-amp, amp, cfg.Rig.SwingSec[i], ease.InOutSine))
		seq.SetYoyo(true)
		seq.SetLoop(-1)
		seq.Update(rand.Float32() * cfg.Rig.SwingSec[i])
		rig.Swings[i] = seq
	}

	lean := gween.NewSequence(gween.New(-float32(cfg.Rig.LeanDeg), float32(cfg.Rig.LeanDeg), cfg.Rig.LeanSec, ease.InOutSine))
	lean.SetYoyo(true)
	lean.SetLoop(-1)
	rig.Lean = lean

	pulse := gween.NewSequence(gween.New(1-float32(cfg.Rig.PulseScale), 1+float32(cfg.Rig.PulseScale), cfg.Rig.PulseSec, ease.InOutQuad))
	pulse.SetYoyo(true)
	pulse.SetLoop(-1)
	rig.Pulse = pulse

	components.Rig.SetValue(entry, rig)
	return entry
}
