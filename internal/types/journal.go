package types

// LogType defines the type of a journal entry.
type LogType byte

const (
	LogTypeSpin LogType = iota + 1
	LogTypeUpdate
	LogTypeSnapshot
	LogTypeRotate
)

// LogError defines the type of a journal entry error.
type LogError byte

const (
	ErrorNone LogError = iota
	ErrorNothingToDraw
	ErrorPointerMismatch
	ErrorNoSectorAtPointer
)

const JournalBaseName = "wheel.journal"

// JournalEntry is implemented by every entry the journal can hold.
type JournalEntry interface {
	GetType() LogType
}

// JournalEntryBase carries the fields common to all entries.
type JournalEntryBase struct {
	Type  LogType  `json:"type"`
	Error LogError `json:"error,omitempty"`
}

func (b JournalEntryBase) GetType() LogType { return b.Type }

// JournalSpinItem records one resolved (or abandoned) spin.
type JournalSpinItem struct {
	JournalEntryBase
	SpinID    string  `json:"spin_id"`
	ItemName  string  `json:"item_name,omitempty"`
	Remaining int     `json:"remaining"`
	Rotation  float64 `json:"rotation"`
	Success   bool    `json:"success"`
}

// JournalUpdateItem records an item list replacement from the editor.
type JournalUpdateItem struct {
	JournalEntryBase
	Items []Item `json:"items"`
}

// JournalSnapshotItem points at the snapshot file recovery should start from.
type JournalSnapshotItem struct {
	JournalEntryBase
	Path string `json:"path"`
}

// JournalRotateItem is written as the last entry of a rotated journal file.
type JournalRotateItem struct {
	JournalEntryBase
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
}

// WheelSnapshot is the persisted wheel state.
type WheelSnapshot struct {
	Items    []Item  `json:"items"`
	Rotation float64 `json:"rotation"`
	Spins    uint64  `json:"spins"`
}

// Journal buffers entries and writes them to storage on Flush.
type Journal interface {
	LogSpin(item JournalSpinItem) error
	LogUpdate(item JournalUpdateItem) error
	LogSnapshot(item JournalSnapshotItem) error
	// Flush writes all buffered entries to storage.
	Flush() error
	// Reset drops buffered entries that were never flushed.
	Reset()
	Close() error
	Rotate(path string) error
	Size() (int64, error)
}

// LogFormatter encodes and decodes journal entries.
type LogFormatter interface {
	Encode(items []JournalEntry) ([]byte, error)
	Decode(data []byte) ([]JournalEntry, error)
}

// Storage is the byte sink behind a journal.
type Storage interface {
	Write(data []byte) error
	CanWrite(size int) bool
	Flush() error
	Close() error
	Size() (int64, error)
	FinalizeAndClose() error
}

// JournalStatus marks whether a journal file was closed cleanly.
type JournalStatus byte

const (
	JournalStatusOpen JournalStatus = iota + 1
	JournalStatusClosed
)

const JournalMagic uint32 = 0x57484C31 // "WHL1"
const JournalVersion1 uint16 = 1

// JournalHeader is the fixed binary header at the start of every journal file.
type JournalHeader struct {
	Magic      uint32
	Version    uint16
	Status     JournalStatus
	_          byte
	SeqNo      uint64
	DataLength uint64
}

// JournalHeaderSize is the encoded size of JournalHeader.
const JournalHeaderSize = 24
