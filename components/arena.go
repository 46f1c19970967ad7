package components

import (
	"github.com/automoto/interpose/arena"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ArenaData holds the loaded level geometry.
type ArenaData struct {
	*arena.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()

// SpaceData holds the resolv collision space built from the arena walls.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
