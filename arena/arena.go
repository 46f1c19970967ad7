package arena

// Rect is an axis-aligned wall rectangle in pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Spawn is a rig spawn point. The leader spawn is the one the camera
// follows.
type Spawn struct {
	X, Y   float64
	Leader bool
}

// Arena holds the walkable area parsed from a TMX map: outer dimensions,
// wall rectangles, and rig spawn points.
type Arena struct {
	Width  int // pixels
	Height int // pixels
	Walls  []Rect
	Spawns []Spawn
}
