package arena

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file and returns the arena geometry: wall rectangles
// from the "Walls" object group and rig spawn points from "RigSpawn". It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				a.Walls = append(a.Walls, Rect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case "RigSpawn":
			for _, o := range og.Objects {
				a.Spawns = append(a.Spawns, Spawn{
					X:      o.X,
					Y:      o.Y,
					Leader: o.Name == "leader",
				})
			}
		}
	}

	if len(a.Spawns) == 0 {
		return nil, fmt.Errorf("TMX %s has no RigSpawn points", tmxPath)
	}
	return a, nil
}
