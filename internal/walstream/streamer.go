package walstream

import "github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"

// Streamer defines the interface for forwarding flushed journal entries to an observer.
type Streamer interface {
	// Stream sends a journal entry downstream.
	// This method should be non-blocking.
	Stream(entry types.JournalEntry)
}
