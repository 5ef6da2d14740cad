package wheel

import "github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"

const (
	DefaultMinLaps = 5
	DefaultMaxLaps = 10
)

// Plan returns the absolute rotation that brings the centre of target under
// the pointer after at least one visible advance plus laps full turns.
// The result is always strictly greater than current.
func Plan(current float64, target types.Sector, laps int) float64 {
	if laps < 0 {
		laps = 0
	}
	next := current + Delta(current, target) + float64(laps)*FullTurn
	if next <= current {
		// The advance was below the precision of current.
		next += FullTurn
	}
	return next
}

// Delta is the clockwise advance in (0,360] that moves the centre of target
// from its current screen position to the pointer.
func Delta(current float64, target types.Sector) float64 {
	d := Normalize(PointerAngle - (target.Center() + current))
	if d == 0 {
		d = FullTurn
	}
	return d
}

// DrawLaps picks the number of extra full turns in [minLaps, maxLaps].
func DrawLaps(rnd types.RandSource, minLaps, maxLaps int) int {
	if minLaps < 0 {
		minLaps = 0
	}
	if maxLaps < minLaps {
		maxLaps = minLaps
	}
	return minLaps + rnd.Intn(maxLaps-minLaps+1)
}
