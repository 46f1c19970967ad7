// Package interp smooths fixed-rate skeletal animation for presentation at an
// arbitrary render rate. The host captures one pose per tracked entity each
// logic tick; each render frame the engine blends the previous and current
// captures by a caller-supplied alpha and hands the result back for drawing.
// It never touches simulation state: every failure path degrades to a silent
// no-op or a frozen pose, not an error.
package interp

// MaxEntities is the fixed number of tracking slots. The table never grows;
// captures for new entities beyond this are silently dropped.
const MaxEntities = 128

// staleTicks is the grace period before an entity that stopped being
// captured is excluded from blending. Its last rendered pose stays frozen.
const staleTicks = 2

// EntityID is an opaque, caller-stable handle for a tracked entity. It must
// not be reused for an unrelated entity while the original is still tracked.
type EntityID uint64

// Config is the engine's live tuning state. Callers mutate it directly
// through Engine.Config; access is single-threaded by contract, so there is
// no locking.
type Config struct {
	// Enabled gates all capture and blending work.
	Enabled bool

	// TargetFPS is the presentation rate the host should pace renders at.
	// The engine itself only stores it; the host's clock consumes it.
	TargetFPS int

	// Per-channel interpolation toggles. A disabled channel snaps to the
	// current tick's value instead of blending.
	Position bool
	Rotation bool
	Scale    bool

	// Camera tells pose consumers whether camera movement should be
	// smoothed as well. The engine carries the flag for its consumers.
	Camera bool

	// Sharpness warps alpha before blending: 0 is a plain linear blend,
	// 1 is a hard snap at the halfway point. Values between bias alpha
	// toward whichever keyframe it is already closest to.
	Sharpness float64
}

type slotState uint8

const (
	slotEmpty  slotState = iota // free
	slotPrimed                  // one capture recorded, prev mirrors curr
	slotValid                   // two distinct ticks recorded, can blend
)

type slot struct {
	id       EntityID
	state    slotState
	lastTick uint64
	prev     SkeletonSnapshot
	curr     SkeletonSnapshot
	rendered SkeletonSnapshot
}

// Engine owns the entity tracking table and configuration. All methods
// assume exclusive, serialized access from a single logical thread; the zero
// value is unusable until Init.
type Engine struct {
	cfg         Config
	gate        func() bool
	tick        uint64
	initialized bool
	slots       [MaxEntities]slot
}

// NewEngine returns an engine gated by the given feature check, typically
// the host's "is the high-framerate patch on" toggle. A nil gate means
// always on. The engine is inert until Init is called.
func NewEngine(gate func() bool) *Engine {
	return &Engine{gate: gate}
}

// Init resets all tracking slots and installs the default configuration.
// Calling it while already initialized is a no-op. It always reports
// success today; the return value is reserved for future resource setup.
func (e *Engine) Init() bool {
	if e.initialized {
		return true
	}
	e.slots = [MaxEntities]slot{}
	e.tick = 0
	e.cfg = Config{
		Enabled:   true,
		TargetFPS: 60,
		Position:  true,
		Rotation:  true,
		Scale:     true,
		Camera:    true,
		Sharpness: 0,
	}
	e.initialized = true
	return true
}

// Shutdown clears all slots and marks the engine uninitialized. Safe to
// call when not initialized.
func (e *Engine) Shutdown() {
	if !e.initialized {
		return
	}
	e.slots = [MaxEntities]slot{}
	e.tick = 0
	e.initialized = false
}

// Config returns the live, mutable configuration. The pointer stays valid
// for the engine's lifetime; fields only take effect between Init and
// Shutdown.
func (e *Engine) Config() *Config {
	return &e.cfg
}

// enabled reports whether capture and blending should run at all.
func (e *Engine) enabled() bool {
	if !e.initialized || !e.cfg.Enabled {
		return false
	}
	return e.gate == nil || e.gate()
}

// OnLogicTick advances the tick counter. Call exactly once per simulation
// step, before any Capture calls for that step. No-op when uninitialized.
func (e *Engine) OnLogicTick() {
	if !e.initialized {
		return
	}
	e.tick++
}

// Capture records a keyframe for the entity at the current tick. The first
// capture primes the slot; blending starts once a second capture arrives on
// a later tick, so an entity's first frame never blends against garbage.
//
// Silent no-op when the engine is disabled or gated off, when bones is
// empty, or when the table is full. Bone counts beyond MaxBones are
// truncated here, at the single entry boundary.
func (e *Engine) Capture(id EntityID, bones []BoneTransform, rootPos Vec3, rootRot [3]Angle) {
	if !e.enabled() || len(bones) == 0 {
		return
	}
	if len(bones) > MaxBones {
		bones = bones[:MaxBones]
	}

	s := e.lookup(id)
	if s == nil {
		s = e.alloc(id)
		if s == nil {
			return // table full, drop the capture
		}
	}

	s.prev = s.curr
	s.curr.RootPos = rootPos
	s.curr.RootRot = rootRot
	s.curr.BoneCount = len(bones)
	copy(s.curr.Bones[:], bones)

	switch s.state {
	case slotEmpty:
		// Fresh slot: mirror curr into prev so the pair is coherent.
		s.prev = s.curr
		s.state = slotPrimed
	case slotPrimed:
		if s.lastTick != e.tick {
			s.state = slotValid
			s.rendered = s.curr
		}
	}
	s.lastTick = e.tick
}

// Update blends a pose for every valid, recently captured entity. Call once
// per render frame with alpha in [0, 1]; out-of-range values are clamped.
// Entities whose captures stopped more than staleTicks ago keep their last
// rendered pose untouched.
func (e *Engine) Update(alpha float64) {
	if !e.enabled() {
		return
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	alpha = sharpen(alpha, e.cfg.Sharpness)

	for i := range e.slots {
		s := &e.slots[i]
		if s.state != slotValid {
			continue
		}
		if e.tick-s.lastTick > staleTicks {
			continue
		}
		if s.prev.BoneCount != s.curr.BoneCount {
			// Topology changed mid-track; blending unrelated bones
			// produces garbage, so snap to the newest pose.
			s.rendered = s.curr
			continue
		}
		e.blend(s, alpha)
	}
}

// Pose returns the entity's most recently blended snapshot, or nil when the
// entity is untracked, not yet valid, or the engine is disabled. The result
// must not be mutated and is only stable until the next Update.
func (e *Engine) Pose(id EntityID) *SkeletonSnapshot {
	if !e.enabled() {
		return nil
	}
	s := e.lookup(id)
	if s == nil || s.state != slotValid {
		return nil
	}
	return &s.rendered
}

// RemoveEntity frees the entity's tracking slot immediately.
func (e *Engine) RemoveEntity(id EntityID) {
	if !e.initialized {
		return
	}
	if s := e.lookup(id); s != nil {
		*s = slot{}
	}
}

// RemoveAll frees every tracking slot. Intended for scene transitions,
// where waiting out the staleness grace period would leave one frame of
// dead poses on screen.
func (e *Engine) RemoveAll() {
	if !e.initialized {
		return
	}
	e.slots = [MaxEntities]slot{}
}

// EntityCount returns the number of allocated tracking slots.
func (e *Engine) EntityCount() int {
	n := 0
	for i := range e.slots {
		if e.slots[i].state != slotEmpty {
			n++
		}
	}
	return n
}

// Tick returns the current logic tick counter. Diagnostic only.
func (e *Engine) Tick() uint64 {
	return e.tick
}

func (e *Engine) lookup(id EntityID) *slot {
	for i := range e.slots {
		if e.slots[i].state != slotEmpty && e.slots[i].id == id {
			return &e.slots[i]
		}
	}
	return nil
}

func (e *Engine) alloc(id EntityID) *slot {
	for i := range e.slots {
		if e.slots[i].state == slotEmpty {
			e.slots[i] = slot{id: id}
			return &e.slots[i]
		}
	}
	return nil
}

// blend writes the interpolated pose into s.rendered. Channels with their
// config toggle off snap to the current tick's value instead.
func (e *Engine) blend(s *slot, alpha float64) {
	out := &s.rendered
	out.BoneCount = s.curr.BoneCount

	if e.cfg.Position {
		out.RootPos = s.prev.RootPos.Lerp(s.curr.RootPos, alpha)
	} else {
		out.RootPos = s.curr.RootPos
	}
	blendRot(&out.RootRot, &s.prev.RootRot, &s.curr.RootRot, alpha, e.cfg.Rotation)

	for i := 0; i < s.curr.BoneCount; i++ {
		pb, cb, ob := &s.prev.Bones[i], &s.curr.Bones[i], &out.Bones[i]
		if e.cfg.Position {
			ob.Pos = pb.Pos.Lerp(cb.Pos, alpha)
		} else {
			ob.Pos = cb.Pos
		}
		blendRot(&ob.Rot, &pb.Rot, &cb.Rot, alpha, e.cfg.Rotation)
		if e.cfg.Scale {
			ob.Scale = pb.Scale.Lerp(cb.Scale, alpha)
		} else {
			ob.Scale = cb.Scale
		}
	}
}

func blendRot(out, prev, curr *[3]Angle, alpha float64, on bool) {
	if !on {
		*out = *curr
		return
	}
	for i := 0; i < 3; i++ {
		out[i] = LerpAngle(prev[i], curr[i], alpha)
	}
}

// sharpen warps alpha toward the nearest keyframe. At s=0 it is the
// identity; at s=1 it becomes a hard snap at the midpoint.
func sharpen(alpha, s float64) float64 {
	if s <= 0 {
		return alpha
	}
	if s > 1 {
		s = 1
	}
	if alpha < 0.5 {
		return alpha * (1 - s)
	}
	return alpha + (1-alpha)*s
}
