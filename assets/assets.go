package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/interpose/arena"
	cfg "github.com/automoto/interpose/config"
)

//go:embed all:levels
var levelFS embed.FS

// LoadArena loads the embedded demo arena.
func LoadArena() (*arena.Arena, error) {
	a, err := arena.Load(levelFS, cfg.Arena.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return a, nil
}
