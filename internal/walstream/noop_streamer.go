package walstream

import "github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"

// NoOpStreamer is a Streamer that does nothing.
// It is used when streaming is disabled.
type NoOpStreamer struct{}

func NewNoOpStreamer() *NoOpStreamer {
	return &NoOpStreamer{}
}

func (s *NoOpStreamer) Stream(entry types.JournalEntry) {}
