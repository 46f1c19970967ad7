package factory

import (
	"github.com/automoto/interpose/archetypes"
	"github.com/automoto/interpose/arena"
	"github.com/automoto/interpose/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateArena(e *ecs.ECS, a *arena.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(e)
	components.Arena.SetValue(entry, components.ArenaData{Arena: a})
	return entry
}
