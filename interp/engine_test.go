package interp

import "testing"

// testBones returns a simple skeleton pose whose values are derived from
// base, so different ticks are easy to tell apart in assertions.
func testBones(n int, base float64) []BoneTransform {
	bones := make([]BoneTransform, n)
	for i := range bones {
		bones[i] = BoneTransform{
			Pos:   Vec3{X: base + float64(i), Y: base * 2, Z: 0},
			Rot:   [3]Angle{Angle(uint16(base)), 0, AngleFromDegrees(base)},
			Scale: Vec3{X: 1, Y: 1, Z: 1},
		}
	}
	return bones
}

func newTestEngine() *Engine {
	e := NewEngine(nil)
	e.Init()
	return e
}

// capture runs one tick+capture pair for a single entity.
func capture(e *Engine, id EntityID, n int, base float64) {
	e.OnLogicTick()
	e.Capture(id, testBones(n, base), Vec3{X: base, Y: base}, [3]Angle{})
}

func TestInitIdempotent(t *testing.T) {
	e := NewEngine(nil)
	if !e.Init() {
		t.Fatal("Init failed")
	}
	capture(e, 1, 4, 10)
	if !e.Init() {
		t.Fatal("second Init failed")
	}
	if e.EntityCount() != 1 {
		t.Errorf("second Init reset state: count = %d, want 1", e.EntityCount())
	}
}

func TestUninitializedCallsAreNoOps(t *testing.T) {
	e := NewEngine(nil)
	e.OnLogicTick()
	e.Capture(1, testBones(4, 10), Vec3{}, [3]Angle{})
	e.Update(0.5)
	if e.Pose(1) != nil {
		t.Error("Pose before Init returned data")
	}
	if e.EntityCount() != 0 {
		t.Errorf("entity count = %d before Init, want 0", e.EntityCount())
	}
	e.RemoveEntity(1)
	e.RemoveAll()
	e.Shutdown() // never initialized, must not panic
	e.Shutdown()
}

func TestShutdownTwice(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 4, 10)
	e.Shutdown()
	e.Shutdown()
	if e.EntityCount() != 0 {
		t.Errorf("entity count = %d after Shutdown, want 0", e.EntityCount())
	}
}

func TestValidityGating(t *testing.T) {
	e := newTestEngine()
	capture(e, 7, 4, 10)
	if e.Pose(7) != nil {
		t.Error("Pose valid after a single capture")
	}
	capture(e, 7, 4, 20)
	if e.Pose(7) == nil {
		t.Error("Pose nil after two captures on distinct ticks")
	}
}

func TestSecondCaptureSameTickDoesNotValidate(t *testing.T) {
	e := newTestEngine()
	e.OnLogicTick()
	e.Capture(7, testBones(4, 10), Vec3{}, [3]Angle{})
	e.Capture(7, testBones(4, 20), Vec3{}, [3]Angle{})
	if e.Pose(7) != nil {
		t.Error("two captures on the same tick should not validate the slot")
	}
}

func TestUpdateBlendsMidpoint(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 2, 0)   // prev: pos 0
	capture(e, 1, 2, 100) // curr: pos 100
	e.Update(0.5)
	pose := e.Pose(1)
	if pose == nil {
		t.Fatal("Pose returned nil for a valid entity")
	}
	if pose.RootPos.X != 50 {
		t.Errorf("root X = %v at alpha 0.5, want 50", pose.RootPos.X)
	}
	if pose.Bones[0].Pos.X != 50 {
		t.Errorf("bone 0 X = %v at alpha 0.5, want 50", pose.Bones[0].Pos.X)
	}
	if pose.BoneCount != 2 {
		t.Errorf("bone count = %d, want 2", pose.BoneCount)
	}
}

func TestAlphaClamped(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 2, 0)
	capture(e, 1, 2, 100)

	e.Update(-5)
	low := e.Pose(1).RootPos.X
	e.Update(0)
	if e.Pose(1).RootPos.X != low {
		t.Errorf("alpha -5 gave %v, alpha 0 gave %v; want equal", low, e.Pose(1).RootPos.X)
	}

	e.Update(5)
	high := e.Pose(1).RootPos.X
	e.Update(1)
	if e.Pose(1).RootPos.X != high {
		t.Errorf("alpha 5 gave %v, alpha 1 gave %v; want equal", high, e.Pose(1).RootPos.X)
	}
	if high != 100 {
		t.Errorf("alpha 1 root X = %v, want 100", high)
	}
}

func TestRotationChannelToggle(t *testing.T) {
	e := newTestEngine()
	e.OnLogicTick()
	e.Capture(1, []BoneTransform{{Rot: [3]Angle{0x1000, 0, 0}}}, Vec3{}, [3]Angle{})
	e.OnLogicTick()
	e.Capture(1, []BoneTransform{{Rot: [3]Angle{0x2000, 0, 0}}}, Vec3{}, [3]Angle{})

	e.Update(0.5)
	if got := e.Pose(1).Bones[0].Rot[0]; got != 0x1800 {
		t.Errorf("blended rot = %#04x, want 0x1800", uint16(got))
	}

	e.Config().Rotation = false
	e.Update(0.5)
	if got := e.Pose(1).Bones[0].Rot[0]; got != 0x2000 {
		t.Errorf("snapped rot = %#04x, want current 0x2000", uint16(got))
	}
}

func TestBoneCountMismatchSnapsToCurrent(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 10, 0)
	capture(e, 1, 5, 100) // topology changed
	e.Update(0.5)
	pose := e.Pose(1)
	if pose == nil {
		t.Fatal("Pose returned nil")
	}
	if pose.BoneCount != 5 {
		t.Errorf("bone count = %d, want current 5", pose.BoneCount)
	}
	// Verbatim current snapshot, no blending.
	if pose.RootPos.X != 100 {
		t.Errorf("root X = %v, want unblended 100", pose.RootPos.X)
	}
	if pose.Bones[0].Pos.X != 100 {
		t.Errorf("bone 0 X = %v, want unblended 100", pose.Bones[0].Pos.X)
	}
}

func TestStaleEntityFrozen(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 2, 0)
	capture(e, 1, 2, 100)
	e.Update(0.5)
	frozen := *e.Pose(1)

	// Ticks advance without further captures for the entity.
	e.OnLogicTick()
	e.OnLogicTick()
	e.OnLogicTick()
	e.Update(0.25)

	pose := e.Pose(1)
	if pose == nil {
		t.Fatal("stale entity lost its pose")
	}
	if *pose != frozen {
		t.Error("stale entity's rendered pose was recomputed")
	}
}

func TestWithinGracePeriodStillBlends(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 2, 0)
	capture(e, 1, 2, 100)
	e.OnLogicTick() // one missed tick, still inside the grace period
	e.Update(1)
	if got := e.Pose(1).RootPos.X; got != 100 {
		t.Errorf("root X = %v within grace period, want 100", got)
	}
}

func TestBoneCountClampedToMax(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, MaxBones+32, 0)
	capture(e, 1, MaxBones+32, 100)
	e.Update(1)
	pose := e.Pose(1)
	if pose == nil {
		t.Fatal("Pose returned nil")
	}
	if pose.BoneCount != MaxBones {
		t.Errorf("bone count = %d, want clamped %d", pose.BoneCount, MaxBones)
	}
}

func TestEmptyCaptureIgnored(t *testing.T) {
	e := newTestEngine()
	e.OnLogicTick()
	e.Capture(1, nil, Vec3{}, [3]Angle{})
	e.Capture(2, []BoneTransform{}, Vec3{}, [3]Angle{})
	if e.EntityCount() != 0 {
		t.Errorf("entity count = %d after empty captures, want 0", e.EntityCount())
	}
}

func TestCapacityOverflow(t *testing.T) {
	e := newTestEngine()
	e.OnLogicTick()
	for id := EntityID(1); id <= MaxEntities+20; id++ {
		e.Capture(id, testBones(2, float64(id)), Vec3{}, [3]Angle{})
	}
	if e.EntityCount() != MaxEntities {
		t.Errorf("entity count = %d, want %d", e.EntityCount(), MaxEntities)
	}

	// Tracked entities must be unaffected by the dropped overflow captures.
	e.OnLogicTick()
	for id := EntityID(1); id <= MaxEntities; id++ {
		e.Capture(id, testBones(2, float64(id)+100), Vec3{}, [3]Angle{})
	}
	e.Update(1)
	if pose := e.Pose(1); pose == nil || pose.Bones[0].Pos.X != 101 {
		t.Error("slot 1 corrupted by overflow captures")
	}
	if pose := e.Pose(MaxEntities + 10); pose != nil {
		t.Error("overflow entity unexpectedly tracked")
	}
}

func TestRemoveEntityFreesSlot(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 2, 0)
	capture(e, 2, 2, 0)
	e.RemoveEntity(1)
	if e.EntityCount() != 1 {
		t.Errorf("entity count = %d after removal, want 1", e.EntityCount())
	}
	if e.Pose(1) != nil {
		t.Error("removed entity still has a pose")
	}
}

func TestRemoveAll(t *testing.T) {
	e := newTestEngine()
	for id := EntityID(1); id <= 10; id++ {
		capture(e, id, 2, 0)
	}
	e.RemoveAll()
	if e.EntityCount() != 0 {
		t.Errorf("entity count = %d after RemoveAll, want 0", e.EntityCount())
	}
}

func TestDisabledGateShortCircuit(t *testing.T) {
	on := false
	e := NewEngine(func() bool { return on })
	e.Init()
	capture(e, 1, 2, 0)
	capture(e, 1, 2, 100)
	e.Update(0.5)
	if e.EntityCount() != 0 {
		t.Errorf("entity count = %d with gate off, want 0", e.EntityCount())
	}

	on = true
	capture(e, 1, 2, 0)
	capture(e, 1, 2, 100)
	if e.EntityCount() != 1 {
		t.Errorf("entity count = %d with gate on, want 1", e.EntityCount())
	}
}

func TestConfigDisabledShortCircuit(t *testing.T) {
	e := newTestEngine()
	e.Config().Enabled = false
	capture(e, 1, 2, 0)
	if e.EntityCount() != 0 {
		t.Errorf("entity count = %d while disabled, want 0", e.EntityCount())
	}
}

func TestSharpnessWarpsAlpha(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 2, 0)
	capture(e, 1, 2, 100)

	e.Config().Sharpness = 1
	e.Update(0.4)
	if got := e.Pose(1).RootPos.X; got != 0 {
		t.Errorf("sharpness 1, alpha 0.4: root X = %v, want snap to 0", got)
	}
	e.Update(0.6)
	if got := e.Pose(1).RootPos.X; got != 100 {
		t.Errorf("sharpness 1, alpha 0.6: root X = %v, want snap to 100", got)
	}

	e.Config().Sharpness = 0
	e.Update(0.5)
	if got := e.Pose(1).RootPos.X; got != 50 {
		t.Errorf("sharpness 0, alpha 0.5: root X = %v, want 50", got)
	}
}

func TestShutdownThenReuseAfterInit(t *testing.T) {
	e := newTestEngine()
	capture(e, 1, 2, 0)
	e.Shutdown()
	e.Init()
	if e.EntityCount() != 0 {
		t.Errorf("entity count = %d after Shutdown+Init, want 0", e.EntityCount())
	}
	capture(e, 1, 2, 0)
	capture(e, 1, 2, 50)
	e.Update(1)
	if pose := e.Pose(1); pose == nil || pose.RootPos.X != 50 {
		t.Error("engine unusable after Shutdown+Init cycle")
	}
}
