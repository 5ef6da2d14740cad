package actor

import (
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/walstream"
)

// StreamingActor forwards flushed journal entries to a Streamer.
// It runs in its own goroutine until its mailbox is closed.
type StreamingActor struct {
	streamer walstream.Streamer
	mailbox  chan types.JournalEntry
}

// NewStreamingActor creates a new StreamingActor.
func NewStreamingActor(streamer walstream.Streamer, mailboxSize int) *StreamingActor {
	return &StreamingActor{
		streamer: streamer,
		mailbox:  make(chan types.JournalEntry, mailboxSize),
	}
}

// Receive streams entries until the mailbox is closed and drained.
func (a *StreamingActor) Receive() {
	for entry := range a.mailbox {
		a.streamer.Stream(entry)
	}
}
