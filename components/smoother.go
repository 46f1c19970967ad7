package components

import (
	"github.com/automoto/interpose/interp"
	"github.com/automoto/interpose/telemetry"
	"github.com/automoto/interpose/timestep"
	"github.com/yohamta/donburi"
)

// SmootherData is the singleton that owns the interpolation engine, the
// fixed-step clock that feeds it, and the frame-timing history shown on the
// HUD. GateOn stands in for the host feature flag that would normally gate
// the engine (the high-framerate patch toggle); the engine's gate closure
// reads it.
type SmootherData struct {
	Engine  *interp.Engine
	Clock   *timestep.Clock
	History *telemetry.FrameHistory
	GateOn  bool
}

var Smoother = donburi.NewComponentType[SmootherData]()
