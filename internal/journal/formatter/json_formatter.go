package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// JSONFormatter writes one JSON object per line.
type JSONFormatter struct{}

var _ types.LogFormatter = (*JSONFormatter)(nil)

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Encode(items []types.JournalEntry) ([]byte, error) {
	var encodedData []byte
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		encodedData = append(encodedData, data...)
		encodedData = append(encodedData, '\n') // Add newline for JSONL format
	}
	return encodedData, nil
}

// journalEntryWrapper is a helper struct to unmarshal polymorphic JournalEntry types.
type journalEntryWrapper struct {
	types.JournalEntry
}

func (w *journalEntryWrapper) UnmarshalJSON(data []byte) error {
	type typeFinder struct {
		Type types.LogType `json:"type"`
	}
	var tf typeFinder
	if err := json.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("failed to find type: %w", err)
	}

	var entry types.JournalEntry
	switch tf.Type {
	case types.LogTypeSpin:
		entry = &types.JournalSpinItem{}
	case types.LogTypeUpdate:
		entry = &types.JournalUpdateItem{}
	case types.LogTypeSnapshot:
		entry = &types.JournalSnapshotItem{}
	case types.LogTypeRotate:
		entry = &types.JournalRotateItem{}
	default:
		return fmt.Errorf("unknown log type: %d", tf.Type)
	}

	if err := json.Unmarshal(data, entry); err != nil {
		return err
	}
	w.JournalEntry = entry
	return nil
}

func (f *JSONFormatter) Decode(data []byte) ([]types.JournalEntry, error) {
	var items []types.JournalEntry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}

		var wrapper journalEntryWrapper
		if err := json.Unmarshal(line, &wrapper); err != nil {
			return nil, err
		}

		items = append(items, wrapper.JournalEntry)
	}
	return items, nil
}
