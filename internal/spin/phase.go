package spin

import "github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"

// Phase is a step of the spin lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseSettling
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSettling:
		return "settling"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Record describes one spin from the moment it is committed until it is acknowledged.
type Record struct {
	ID             string         `json:"id"`
	Phase          Phase          `json:"phase"`
	Selected       types.Item     `json:"selected"`
	Sectors        []types.Sector `json:"sectors"`
	BaseRotation   float64        `json:"base_rotation"`
	TargetRotation float64        `json:"target_rotation"`
	Laps           int            `json:"laps"`
}

func (r *Record) clone() Record {
	out := *r
	out.Sectors = append([]types.Sector(nil), r.Sectors...)
	return out
}
