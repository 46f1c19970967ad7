package interp

import "math"

// Angle is a wrapping 16-bit rotation where the full uint16 range spans one
// turn: 0x0000 and 0xFFFF are adjacent, and overflow in either direction
// continues around the circle.
type Angle uint16

const anglePerTurn = 65536.0

// Radians converts the angle to radians in [0, 2π).
func (a Angle) Radians() float64 {
	return float64(a) * (2 * math.Pi / anglePerTurn)
}

// Degrees converts the angle to degrees in [0, 360).
func (a Angle) Degrees() float64 {
	return float64(a) * (360.0 / anglePerTurn)
}

// AngleFromDegrees converts degrees to a wrapping angle. Values outside
// [0, 360) wrap around the circle, including negatives.
func AngleFromDegrees(deg float64) Angle {
	return Angle(int64(math.Round(deg * (anglePerTurn / 360.0))))
}

// AngleFromRadians converts radians to a wrapping angle, wrapping values
// outside [0, 2π).
func AngleFromRadians(rad float64) Angle {
	return Angle(int64(math.Round(rad * (anglePerTurn / (2 * math.Pi)))))
}

// LerpAngle interpolates from a to b along the shortest arc. The wrapping
// subtraction b-a lands in int16 range, so its sign picks the short way
// around the circle: 0xFFF0 to 0x0010 is a +0x20 step, not a near-full
// backwards turn. t is expected in [0, 1].
func LerpAngle(a, b Angle, t float64) Angle {
	delta := int16(b - a)
	return a + Angle(int64(math.Round(float64(delta)*t)))
}
