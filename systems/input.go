package systems

import (
	"math/rand"

	"github.com/automoto/interpose/components"
	"github.com/automoto/interpose/systems/factory"
	"github.com/automoto/interpose/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const sharpnessStep = 0.1

var showHelp = true

// UpdateInput handles the demo's keyboard controls: toggling the engine,
// its per-channel flags and the feature gate, adjusting blend sharpness,
// and spawning or removing rigs. Settings changes are saved immediately.
func UpdateInput(e *ecs.ECS) {
	smEntry, ok := components.Smoother.First(e.World)
	if !ok {
		return
	}
	sm := components.Smoother.Get(smEntry)
	conf := sm.Engine.Config()
	changed := false

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		conf.Enabled = !conf.Enabled
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		conf.Position = !conf.Position
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		conf.Rotation = !conf.Rotation
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		conf.Scale = !conf.Scale
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		conf.Camera = !conf.Camera
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		sm.GateOn = !sm.GateOn
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		conf.Sharpness -= sharpnessStep
		if conf.Sharpness < 0 {
			conf.Sharpness = 0
		}
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		conf.Sharpness += sharpnessStep
		if conf.Sharpness > 1 {
			conf.Sharpness = 1
		}
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		spawnRig(e)
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		removeOneRig(e, sm)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		resetArena(e, sm)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		showHelp = !showHelp
	}

	if changed {
		SaveCurrentSettings(sm)
	}
}

// spawnRig adds a rig at a random spawn point.
func spawnRig(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	a := components.Arena.Get(arenaEntry)
	sp := a.Spawns[rand.Intn(len(a.Spawns))]
	factory.CreateRig(e, sp.X, sp.Y, false)
}

// removeOneRig removes an arbitrary non-leader rig, freeing its engine
// slot eagerly instead of waiting for the staleness heuristic.
func removeOneRig(e *ecs.ECS, sm *components.SmootherData) {
	var victim *donburi.Entry
	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		if victim == nil && !entry.HasComponent(tags.Leader) {
			victim = entry
		}
	})
	if victim == nil {
		return
	}
	removeRig(e, sm, victim)
}

func removeRig(e *ecs.ECS, sm *components.SmootherData, entry *donburi.Entry) {
	rig := components.Rig.Get(entry)
	obj := components.Object.Get(entry)
	sm.Engine.RemoveEntity(rig.ID)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	e.World.Remove(entry.Entity())
}

// resetArena is the demo's scene transition: every rig is despawned, the
// engine table is flushed in one call, and the original spawn set comes
// back.
func resetArena(e *ecs.ECS, sm *components.SmootherData) {
	var rigs []*donburi.Entry
	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		rigs = append(rigs, entry)
	})
	for _, entry := range rigs {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		e.World.Remove(entry.Entity())
	}
	sm.Engine.RemoveAll()

	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	a := components.Arena.Get(arenaEntry)
	for _, sp := range a.Spawns {
		factory.CreateRig(e, sp.X, sp.Y, sp.Leader)
	}
}
