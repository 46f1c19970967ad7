package interp

// MaxBones is the most bones a single skeleton snapshot can hold. Captures
// with more bones are truncated at the entry boundary.
const MaxBones = 64

// Vec3 is a 3D float vector.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp linearly interpolates from v to to by t.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
		Z: v.Z + (to.Z-v.Z)*t,
	}
}

// BoneTransform is one bone's local pose: translation, three independent
// wrapping rotation angles (x, y, z order), and scale.
type BoneTransform struct {
	Pos   Vec3
	Rot   [3]Angle
	Scale Vec3
}

// SkeletonSnapshot is a full skeletal pose captured at one logic tick.
// Entries in Bones beyond BoneCount are unused and carry no meaning.
type SkeletonSnapshot struct {
	RootPos   Vec3
	RootRot   [3]Angle
	BoneCount int
	Bones     [MaxBones]BoneTransform
}
