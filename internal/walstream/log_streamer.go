package walstream

import (
	"encoding/json"
	"log/slog"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// LogStreamer is a Streamer that writes every entry to a logger.
type LogStreamer struct {
	logger *slog.Logger
}

// NewLogStreamer creates a new LogStreamer.
func NewLogStreamer(logger *slog.Logger) *LogStreamer {
	return &LogStreamer{logger: logger}
}

// Stream logs the journal entry.
func (s *LogStreamer) Stream(entry types.JournalEntry) {
	b, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("failed to marshal journal entry", "error", err)
		return
	}
	s.logger.Info("streaming journal entry", "entry", string(b))
}

// ChanStreamer forwards entries to a channel, dropping them when it is full.
type ChanStreamer struct {
	C chan types.JournalEntry
}

func NewChanStreamer(size int) *ChanStreamer {
	return &ChanStreamer{C: make(chan types.JournalEntry, size)}
}

func (s *ChanStreamer) Stream(entry types.JournalEntry) {
	select {
	case s.C <- entry:
	default:
	}
}
