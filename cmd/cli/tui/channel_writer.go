package tui

// ChannelWriter is an io.Writer feeding log lines to the TUI. Lines are
// dropped when the channel is full so a busy screen never stalls the actor.
type ChannelWriter struct {
	Ch      chan<- string
	Dropped int
}

func (w *ChannelWriter) Write(p []byte) (int, error) {
	select {
	case w.Ch <- string(p):
	default:
		w.Dropped++
	}
	return len(p), nil
}
