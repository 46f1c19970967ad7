package systems

import (
	"fmt"

	"github.com/automoto/interpose/components"
	cfg "github.com/automoto/interpose/config"
	"github.com/automoto/interpose/interp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"I interp on/off   1/2/3 pos/rot/scale   4 camera   G gate",
	"-/= sharpness   SPACE spawn   BKSP remove   N reset   H help",
}

// DrawHUD renders the status readout and the alpha pacing graph.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	smEntry, ok := components.Smoother.First(e.World)
	if !ok {
		return
	}
	sm := components.Smoother.Get(smEntry)
	conf := sm.Engine.Config()
	face := basicfont.Face7x13

	rigCount := 0
	components.Rig.Each(e.World, func(_ *donburi.Entry) {
		rigCount++
	})

	m := cfg.HUD.Margin
	y := m + 10

	line := fmt.Sprintf("rigs %d  slots %d/%d  tick %d",
		rigCount, sm.Engine.EntityCount(), interp.MaxEntities, sm.Engine.Tick())
	text.Draw(screen, line, face, m, y, cfg.HUD.TextColor)
	y += cfg.HUD.LineHeight

	line = fmt.Sprintf("alpha %.2f  frame %.1fms  sharpness %.1f",
		sm.Clock.Alpha(), sm.History.AvgDT()*1000, conf.Sharpness)
	text.Draw(screen, line, face, m, y, cfg.HUD.TextColor)
	y += cfg.HUD.LineHeight

	x := m
	x = drawFlag(screen, "interp", conf.Enabled, x, y)
	x = drawFlag(screen, "pos", conf.Position, x, y)
	x = drawFlag(screen, "rot", conf.Rotation, x, y)
	x = drawFlag(screen, "scale", conf.Scale, x, y)
	x = drawFlag(screen, "cam", conf.Camera, x, y)
	drawFlag(screen, "gate", sm.GateOn, x, y)
	y += cfg.HUD.LineHeight

	if showHelp {
		for _, h := range helpLines {
			text.Draw(screen, h, face, m, y, cfg.HUD.DimColor)
			y += cfg.HUD.LineHeight
		}
	}

	drawAlphaGraph(screen, sm)
}

// drawFlag prints a named on/off flag and returns the next x position.
func drawFlag(screen *ebiten.Image, name string, on bool, x, y int) int {
	clr := cfg.HUD.OffColor
	if on {
		clr = cfg.HUD.OnColor
	}
	text.Draw(screen, name, basicfont.Face7x13, x, y, clr)
	return x + (len(name)+1)*7
}

// drawAlphaGraph plots recent per-frame alpha values in the bottom-left
// corner. Smooth pacing shows as an even sawtooth; hitches show as gaps.
func drawAlphaGraph(screen *ebiten.Image, sm *components.SmootherData) {
	gw, gh := cfg.HUD.GraphWidth, cfg.HUD.GraphHeight
	gx := cfg.HUD.Margin
	gy := cfg.C.Height - cfg.HUD.Margin - gh

	vector.DrawFilledRect(screen,
		float32(gx), float32(gy), float32(gw), float32(gh),
		cfg.HUD.GraphBg, false)

	n := sm.History.Len()
	if n > gw {
		n = gw
	}
	for i := 0; i < n; i++ {
		s, ok := sm.History.At(i)
		if !ok {
			break
		}
		h := float32(s.Alpha) * float32(gh)
		x := float32(gx + gw - 1 - i)
		vector.StrokeLine(screen,
			x, float32(gy+gh),
			x, float32(gy+gh)-h,
			1, cfg.HUD.GraphColor, false)
	}
}
