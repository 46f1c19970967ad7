package factory

import (
	"github.com/automoto/interpose/archetypes"
	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/interp"
	"github.com/automoto/interpose/telemetry"
	"github.com/automoto/interpose/timestep"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSmoother spawns the singleton owning the interpolation engine and
// its clock. The engine's feature gate reads the component's GateOn field,
// standing in for the host toggle that would gate interpolation in a real
// integration.
func CreateSmoother(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Smoother.Spawn(e)
	components.Smoother.SetValue(entry, components.SmootherData{
		Clock:   timestep.NewClock(cfg.Sim.LogicRate),
		History: &telemetry.FrameHistory{},
		GateOn:  true,
	})

	data := components.Smoother.Get(entry)
	data.Engine = interp.NewEngine(func() bool {
		return components.Smoother.Get(entry).GateOn
	})
	data.Engine.Init()
	return entry
}
