package wheel

import (
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// Resolve returns the index of the sector under the pointer when the wheel
// shows the given absolute rotation. sectors must be the layout the rotation
// was planned against.
//
// Rotating every sector by rotation and testing which one covers the pointer
// is the same as rotating the pointer back by rotation and testing which
// sector covers that wheel angle. The second form needs no wrap handling and
// keeps the sector boundaries exactly as Layout produced them.
func Resolve(rotation float64, sectors []types.Sector) (int, error) {
	a := WheelAngleAtPointer(rotation)
	for i, s := range sectors {
		if a >= s.StartAngle && a < s.EndAngle {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: rotation %.6f (wheel angle %.6f) over %d sectors",
		types.ErrNoSectorAtPointer, rotation, a, len(sectors))
}

// WheelAngleAtPointer is the wheel angle, in [0,360), shown under the pointer.
func WheelAngleAtPointer(rotation float64) float64 {
	return Normalize(PointerAngle - Normalize(rotation))
}

// SectorAt is Resolve returning the sector itself.
func SectorAt(rotation float64, sectors []types.Sector) (types.Sector, error) {
	idx, err := Resolve(rotation, sectors)
	if err != nil {
		return types.Sector{}, err
	}
	return sectors[idx], nil
}

// ScreenRange returns where a sector is drawn on screen at the given rotation.
// When start > end the range wraps across 360/0.
func ScreenRange(s types.Sector, rotation float64) (start, end float64) {
	r := Normalize(rotation)
	return Normalize(s.StartAngle + r), Normalize(s.EndAngle + r)
}
