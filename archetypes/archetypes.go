package archetypes

import (
	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Rig = newArchetype(
		tags.Rig,
		components.Rig,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Space = newArchetype(
		components.Space,
	)
	Smoother = newArchetype(
		components.Smoother,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
