package scenes

import (
	"log"
	"sync"

	"github.com/automoto/interpose/assets"
	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/systems"
	"github.com/automoto/interpose/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DemoScene runs the interpolation demo: a handful of wandering stick
// figures animated at the logic rate and drawn at the render rate through
// the engine.
type DemoScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewDemoScene() *DemoScene {
	return &DemoScene{}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DemoScene) configure() {
	a, err := assets.LoadArena()
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateLogic)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawRigs)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ds.ecs = e

	factory.CreateArena(e, a)
	factory.CreateSpace(e, a.Width, a.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateCamera(e)

	for _, w := range a.Walls {
		factory.CreateWall(e, w.X, w.Y, w.W, w.H)
	}

	sm := factory.CreateSmoother(e)
	smData := components.Smoother.Get(sm)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(smData, saved)
	}
	if tps := smData.Engine.Config().TargetFPS; tps > 0 {
		ebiten.SetTPS(tps)
	}

	for _, sp := range a.Spawns {
		factory.CreateRig(e, sp.X, sp.Y, sp.Leader)
	}
}
