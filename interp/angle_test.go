package interp

import (
	"math"
	"testing"
)

func TestLerpAngleShortestArcAcrossWrap(t *testing.T) {
	// 0xFFF0 -> 0x0010 is a short forward step over the wrap boundary.
	// The midpoint must land on 0x0000, not near 0x7FFF.
	got := LerpAngle(0xFFF0, 0x0010, 0.5)
	if got != 0x0000 {
		t.Errorf("wrap midpoint = %#04x, want 0x0000", uint16(got))
	}
}

func TestLerpAngleShortestArcBackwards(t *testing.T) {
	// 0x0010 -> 0xFFF0 should take the short backwards arc.
	got := LerpAngle(0x0010, 0xFFF0, 0.5)
	if got != 0x0000 {
		t.Errorf("backwards wrap midpoint = %#04x, want 0x0000", uint16(got))
	}
}

func TestLerpAngleEndpoints(t *testing.T) {
	a, b := Angle(0x1234), Angle(0xABCD)
	if got := LerpAngle(a, b, 0); got != a {
		t.Errorf("t=0: got %#04x, want %#04x", uint16(got), uint16(a))
	}
	if got := LerpAngle(a, b, 1); got != b {
		t.Errorf("t=1: got %#04x, want %#04x", uint16(got), uint16(b))
	}
}

func TestLerpAngleNoWrapCase(t *testing.T) {
	got := LerpAngle(0x1000, 0x2000, 0.5)
	if got != 0x1800 {
		t.Errorf("plain midpoint = %#04x, want 0x1800", uint16(got))
	}
}

func TestLerpAngleStaysOnShortArc(t *testing.T) {
	// For any t in [0,1] the result's distance from a must not exceed the
	// short-arc span between a and b.
	a, b := Angle(0xF000), Angle(0x0800) // short arc of 0x1800 forward
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		got := LerpAngle(a, b, tt)
		step := int16(got - a)
		if step < 0 || step > 0x1800 {
			t.Errorf("t=%.2f: step %d outside short arc [0, 0x1800]", tt, step)
		}
	}
}

func TestAngleDegreesRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 90, 180, 270, 359, -90, 450} {
		a := AngleFromDegrees(deg)
		want := math.Mod(deg, 360)
		if want < 0 {
			want += 360
		}
		if diff := math.Abs(a.Degrees() - want); diff > 0.01 {
			t.Errorf("AngleFromDegrees(%v).Degrees() = %v, want %v", deg, a.Degrees(), want)
		}
	}
}

func TestAngleRadians(t *testing.T) {
	a := Angle(0x8000) // half turn
	if diff := math.Abs(a.Radians() - math.Pi); diff > 1e-3 {
		t.Errorf("half turn = %v rad, want pi", a.Radians())
	}
	if got := AngleFromRadians(math.Pi / 2); math.Abs(got.Degrees()-90) > 0.01 {
		t.Errorf("quarter turn = %v deg, want 90", got.Degrees())
	}
}
