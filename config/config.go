package config

import "image/color"

// Config holds general window/application configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// SimConfig contains simulation pacing configuration
type SimConfig struct {
	LogicRate int // fixed logic steps per second
	RenderTPS int // ebiten update rate (render pacing)
}

// RigConfig describes the demo stick-figure skeleton: a bone tree with
// per-bone rest angles and swing animation parameters. Bone i attaches to
// the tip of Parents[i]; -1 attaches directly to the entity root.
type RigConfig struct {
	Parents  []int     // parent bone index, -1 = root
	Lengths  []float64 // bone length in pixels
	RestDeg  []float64 // rest-pose angle in degrees, relative to parent
	SwingDeg []float64 // swing amplitude in degrees (0 = static bone)
	SwingSec []float32 // seconds for one half swing

	WanderSpeed float64 // root movement in pixels per logic step
	TurnChance  float64 // probability per step of picking a new heading
	LeanDeg     float64 // whole-body lean amplitude (root rotation)
	LeanSec     float32 // seconds for one half lean
	PulseScale  float64 // torso breathing scale amplitude
	PulseSec    float32 // seconds for one half breath

	Thickness float32 // stroke width for bone lines
	JointSize float32 // radius of joint dots
}

// ArenaConfig contains level loading and arena rendering configuration
type ArenaConfig struct {
	LevelPath  string
	Background color.RGBA
	WallColor  color.RGBA
	CellSize   int // resolv space cell size
}

// CameraConfig contains camera follow behavior
type CameraConfig struct {
	FollowSmoothing float64 // per-frame follow factor (0.0-1.0)
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin      int
	LineHeight  int
	TextColor   color.RGBA
	DimColor    color.RGBA
	OnColor     color.RGBA
	OffColor    color.RGBA
	GraphWidth  int
	GraphHeight int
	GraphColor  color.RGBA
	GraphBg     color.RGBA
}

// Global configuration instances
var C *Config
var Sim SimConfig
var Rig RigConfig
var Arena ArenaConfig
var Camera CameraConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray     = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Green    = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Red      = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Orange   = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	SkyBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkWall = color.RGBA{R: 70, G: 80, B: 100, A: 255}
)

// Stick-figure bone indices. The tree is fixed; only angles animate.
const (
	BoneTorso = iota
	BoneHead
	BoneUpperArmL
	BoneForearmL
	BoneUpperArmR
	BoneForearmR
	BoneThighL
	BoneShinL
	BoneThighR
	BoneShinR
	BoneCountRig
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "interpose demo",
	}

	Sim = SimConfig{
		LogicRate: 30,
		RenderTPS: 60,
	}

	// Angle convention: 0 degrees points down (+Y on screen), positive is
	// clockwise. Rest angles are relative to the parent bone.
	Rig = RigConfig{
		Parents: []int{
			-1,            // torso attaches at the hip (entity root)
			BoneTorso,     // head
			BoneTorso,     // upper arm L
			BoneUpperArmL, // forearm L
			BoneTorso,     // upper arm R
			BoneUpperArmR, // forearm R
			-1,            // thigh L
			BoneThighL,    // shin L
			-1,            // thigh R
			BoneThighR,    // shin R
		},
		Lengths:  []float64{24, 8, 12, 11, 12, 11, 14, 13, 14, 13},
		RestDeg:  []float64{180, 0, 160, 20, -160, -20, 15, -10, -15, 10},
		SwingDeg: []float64{0, 8, 25, 15, 25, 15, 30, 20, 30, 20},
		SwingSec: []float32{0, 1.2, 0.5, 0.4, 0.5, 0.4, 0.5, 0.45, 0.5, 0.45},

		WanderSpeed: 1.6,
		TurnChance:  0.02,
		LeanDeg:     6,
		LeanSec:     0.8,
		PulseScale:  0.06,
		PulseSec:    1.0,

		Thickness: 2,
		JointSize: 2,
	}

	Arena = ArenaConfig{
		LevelPath:  "levels/arena.tmx",
		Background: color.RGBA{R: 15, G: 20, B: 35, A: 255},
		WallColor:  DarkWall,
		CellSize:   16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	HUD = HUDConfig{
		Margin:      8,
		LineHeight:  14,
		TextColor:   White,
		DimColor:    Gray,
		OnColor:     Green,
		OffColor:    Red,
		GraphWidth:  128,
		GraphHeight: 24,
		GraphColor:  SkyBlue,
		GraphBg:     color.RGBA{R: 0, G: 0, B: 0, A: 140},
	}
}
