package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/interpose/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the interpolation settings stored on disk
type SavedSettings struct {
	Enabled   bool    `json:"enabled"`
	Position  bool    `json:"position"`
	Rotation  bool    `json:"rotation"`
	Scale     bool    `json:"scale"`
	Camera    bool    `json:"camera"`
	Sharpness float64 `json:"sharpness"`
	TargetFPS int     `json:"targetFps"`
	GateOn    bool    `json:"gateOn"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "interpose",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error means
// there are no saved settings yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live engine configuration to disk.
func SaveCurrentSettings(sm *components.SmootherData) {
	conf := sm.Engine.Config()
	saved := &SavedSettings{
		Enabled:   conf.Enabled,
		Position:  conf.Position,
		Rotation:  conf.Rotation,
		Scale:     conf.Scale,
		Camera:    conf.Camera,
		Sharpness: conf.Sharpness,
		TargetFPS: conf.TargetFPS,
		GateOn:    sm.GateOn,
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("Warning: Failed to save settings: %v", err)
	}
}

// ApplySavedSettings copies saved settings onto the live engine
// configuration and gate.
func ApplySavedSettings(sm *components.SmootherData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	conf := sm.Engine.Config()
	conf.Enabled = saved.Enabled
	conf.Position = saved.Position
	conf.Rotation = saved.Rotation
	conf.Scale = saved.Scale
	conf.Camera = saved.Camera
	conf.Sharpness = saved.Sharpness
	if saved.TargetFPS > 0 {
		conf.TargetFPS = saved.TargetFPS
	}
	sm.GateOn = saved.GateOn
}
