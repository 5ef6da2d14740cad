package utils

import (
	"log/slog"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// MockRandSource is a mock implementation of types.RandSource for predictable testing.
// Floats feeds Float64 and Ints feeds Intn (taken modulo n).
type MockRandSource struct {
	Floats   []float64
	Ints     []int
	floatIdx int
	intIdx   int
}

var _ types.RandSource = (*MockRandSource)(nil)

func (m *MockRandSource) Float64() float64 {
	if m.floatIdx >= len(m.Floats) {
		panic("not enough mock random floats")
	}
	val := m.Floats[m.floatIdx]
	m.floatIdx++
	return val
}

func (m *MockRandSource) Intn(n int) int {
	if len(m.Ints) == 0 {
		return 0
	}
	val := m.Ints[m.intIdx%len(m.Ints)]
	m.intIdx++
	return val % n
}

// FloatCalls returns how many values Float64 has handed out.
func (m *MockRandSource) FloatCalls() int {
	return m.floatIdx
}

// MockJournal records what it is given. FlushErrs are returned by successive
// Flush calls before it starts succeeding.
type MockJournal struct {
	Spins     []types.JournalSpinItem
	Updates   []types.JournalUpdateItem
	Snapshots []types.JournalSnapshotItem
	Rotations []string
	Flushes   int
	Resets    int
	Closed    bool
	Empty     bool
	FlushErrs []error
}

var _ types.Journal = (*MockJournal)(nil)

func (m *MockJournal) LogSpin(item types.JournalSpinItem) error {
	m.Spins = append(m.Spins, item)
	return nil
}
func (m *MockJournal) LogUpdate(item types.JournalUpdateItem) error {
	m.Updates = append(m.Updates, item)
	return nil
}
func (m *MockJournal) LogSnapshot(item types.JournalSnapshotItem) error {
	m.Snapshots = append(m.Snapshots, item)
	return nil
}
func (m *MockJournal) Flush() error {
	if len(m.FlushErrs) > 0 {
		err := m.FlushErrs[0]
		m.FlushErrs = m.FlushErrs[1:]
		return err
	}
	m.Flushes++
	m.Empty = false
	return nil
}
func (m *MockJournal) Reset()       { m.Resets++ }
func (m *MockJournal) Close() error { m.Closed = true; return nil }
func (m *MockJournal) Rotate(path string) error {
	m.Rotations = append(m.Rotations, path)
	return nil
}
func (m *MockJournal) Size() (int64, error) {
	if m.Empty {
		return 0, nil
	}
	return 1, nil
}

// MockUtils is a mock implementation of the types.Utils interface for testing.
type MockUtils struct {
	SnapshotPath string
	JournalPath  string
}

var _ types.Utils = (*MockUtils)(nil)

func (m *MockUtils) GetLogger() *slog.Logger {
	return nil // No logging in tests
}

func (m *MockUtils) GenRotatedJournalPath() *string {
	if m.JournalPath == "" {
		return nil
	}
	return &m.JournalPath
}

func (m *MockUtils) GenSnapshotPath() *string {
	if m.SnapshotPath == "" {
		return nil
	}
	return &m.SnapshotPath
}

func (m *MockUtils) GetJournalFiles() ([]string, error) {
	return []string{}, nil
}
