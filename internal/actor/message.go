package actor

import (
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/spin"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// SpinMessage is sent to the actor to start a spin.
type SpinMessage struct {
	ResponseChan chan SpinResponse
}

// SpinResponse is the response sent back for a SpinMessage.
type SpinResponse struct {
	Record spin.Record
	Err    error
}

// CompleteMessage signals that the animation of the active spin has finished.
type CompleteMessage struct {
	ResponseChan chan CompleteResponse
}

// CompleteResponse is the response sent back for a CompleteMessage.
type CompleteResponse struct {
	Resolution types.Resolution
	Err        error
}

// AckMessage dismisses a resolved spin.
type AckMessage struct {
	ResponseChan chan error
}

// FlushMessage is sent to the actor to manually trigger a journal flush.
type FlushMessage struct {
	ResponseChan chan error
}

// SnapshotMessage is sent to the actor to manually trigger a snapshot.
type SnapshotMessage struct {
	ResponseChan chan error
}

// StateMessage is sent to the actor to request the current wheel state.
type StateMessage struct {
	ResponseChan chan State
}

// UpdateItemsMessage replaces the item list, as the editor does on save.
type UpdateItemsMessage struct {
	Items        []types.Item
	ResponseChan chan error
}

// State is a read-only view of the wheel.
type State struct {
	Phase           string            `json:"phase"`
	Spinning        bool              `json:"spinning"`
	Items           []types.Item      `json:"items"`
	Sectors         []types.Sector    `json:"sectors"`
	CurrentRotation float64           `json:"current_rotation"`
	TargetRotation  float64           `json:"target_rotation"`
	Spin            *spin.Record      `json:"spin,omitempty"`
	Resolution      *types.Resolution `json:"resolution,omitempty"`
	Spins           uint64            `json:"spins"`
}
