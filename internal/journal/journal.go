package journal

import (
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal/formatter"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal/storage"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
)

// StorageFactory opens the storage behind a journal file.
type StorageFactory func(path string, seqNo uint64) (types.Storage, error)

// FileStorageFactory opens plain file storage.
func FileStorageFactory(opts ...storage.FileStorageOpt) StorageFactory {
	return func(path string, seqNo uint64) (types.Storage, error) {
		return storage.NewFileStorage(path, seqNo, opts...)
	}
}

// MMapStorageFactory opens memory mapped storage.
func MMapStorageFactory(opts ...storage.FileMMapStorageOps) StorageFactory {
	return func(path string, seqNo uint64) (types.Storage, error) {
		return storage.NewFileMMapStorage(path, seqNo, opts...)
	}
}

// Journal is a buffered write-ahead log of wheel events.
type Journal struct {
	path      string
	seqNo     uint64
	formatter types.LogFormatter
	storage   types.Storage
	factory   StorageFactory
	buffer    []types.JournalEntry
}

var _ types.Journal = (*Journal)(nil)

// NewJournal opens (or continues) the journal at path.
func NewJournal(path string, seqNo uint64, format types.LogFormatter, factory StorageFactory) (*Journal, error) {
	if format == nil {
		format = formatter.NewJSONFormatter()
	}
	if factory == nil {
		factory = FileStorageFactory()
	}
	store, err := factory(path, seqNo)
	if err != nil {
		return nil, err
	}
	return &Journal{
		path:      path,
		seqNo:     seqNo,
		formatter: format,
		storage:   store,
		factory:   factory,
		buffer:    make([]types.JournalEntry, 0, 64),
	}, nil
}

// Path returns the file currently written to.
func (w *Journal) Path() string {
	return w.path
}

func (w *Journal) LogSpin(item types.JournalSpinItem) error {
	item.Type = types.LogTypeSpin
	w.buffer = append(w.buffer, &item)
	return nil
}

func (w *Journal) LogUpdate(item types.JournalUpdateItem) error {
	item.Type = types.LogTypeUpdate
	w.buffer = append(w.buffer, &item)
	return nil
}

func (w *Journal) LogSnapshot(item types.JournalSnapshotItem) error {
	item.Type = types.LogTypeSnapshot
	w.buffer = append(w.buffer, &item)
	return nil
}

// Flush encodes the buffer and writes it in one piece. ErrJournalFull leaves
// the buffer intact so the caller can rotate and retry.
func (w *Journal) Flush() error {
	if len(w.buffer) == 0 {
		return nil
	}

	data, err := w.formatter.Encode(w.buffer)
	if err != nil {
		return err
	}

	if !w.storage.CanWrite(len(data)) {
		return types.ErrJournalFull
	}

	if err := w.storage.Write(data); err != nil {
		return err
	}

	w.buffer = w.buffer[:0]
	return w.storage.Flush()
}

func (w *Journal) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *Journal) Size() (int64, error) {
	return w.storage.Size()
}

func (w *Journal) Close() error {
	return w.storage.Close()
}

// Rotate closes the current file with a rotate entry and continues in path.
func (w *Journal) Rotate(path string) error {
	if len(w.buffer) > 0 {
		return types.ErrJournalBufferNotEmpty
	}

	rotate := &types.JournalRotateItem{
		JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeRotate},
		OldPath:          w.path,
		NewPath:          path,
	}
	data, err := w.formatter.Encode([]types.JournalEntry{rotate})
	if err != nil {
		return err
	}
	// A full file still gets closed; recovery follows sequence order anyway.
	if w.storage.CanWrite(len(data)) {
		if err := w.storage.Write(data); err != nil {
			return err
		}
	}
	if err := w.storage.FinalizeAndClose(); err != nil {
		return err
	}

	store, err := w.factory(path, w.seqNo+1)
	if err != nil {
		return fmt.Errorf("failed to open rotated journal %s: %w", path, err)
	}
	w.storage = store
	w.path = path
	w.seqNo++
	return nil
}

// ParseJournal reads a journal file and returns its entries and header.
func ParseJournal(path string, format types.LogFormatter) ([]types.JournalEntry, *types.JournalHeader, error) {
	data, err := utils.ReadFileContent(path)
	if err != nil {
		return nil, nil, err
	}
	if len(data) == 0 {
		return nil, nil, nil
	}

	hdr, err := storage.DecodeHeader(data)
	if err != nil {
		return nil, nil, fmt.Errorf("journal %s: %w", path, err)
	}

	body := data[types.JournalHeaderSize:]
	if n := int(hdr.DataLength); n < len(body) {
		body = body[:n]
	}
	if format == nil {
		format = formatter.NewJSONFormatter()
	}
	entries, err := format.Decode(body)
	if err != nil {
		return nil, nil, fmt.Errorf("journal %s: %w", path, err)
	}
	return entries, &hdr, nil
}
