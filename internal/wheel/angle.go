// Package wheel holds the angle arithmetic of the prize wheel: sector layout,
// rotation planning and reading back the sector under the pointer.
//
// Angle convention, shared by every function in this package:
// angle 0 is 12 o'clock and angles grow clockwise. A positive rotation turns
// the wheel clockwise, so a point at wheel angle a is shown at screen angle
// (a + rotation) mod 360. The pointer never moves.
package wheel

import "math"

const (
	FullTurn = 360.0

	// PointerAngle is the fixed screen angle of the pointer.
	PointerAngle = 0.0
)

// Palette is cycled by sector index when colouring the wheel.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
	"#F8B739", "#6C5CE7", "#A29BFE", "#FD79A8",
}

// Normalize reduces any angle into [0,360). math.Mod is exact, so large
// accumulated rotations do not drift.
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		// -tiny + 360 rounds up to 360.
		a = 0
	}
	return a
}
