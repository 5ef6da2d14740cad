package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
)

func TestDefaultUtils_JournalPaths(t *testing.T) {
	dir := t.TempDir()
	u := utils.NewDefaultUtils(dir, dir, 0, nil)

	path, seq, err := u.GenNextJournalPath()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seq)
	assert.Equal(t, filepath.Join(dir, "wheel.journal.000"), path)

	for _, name := range []string{"wheel.journal.000", "wheel.journal.010", "wheel.journal.002", "other.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	files, err := u.GetJournalFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "wheel.journal.000"),
		filepath.Join(dir, "wheel.journal.002"),
		filepath.Join(dir, "wheel.journal.010"),
	}, files)

	path, seq, err = u.GenNextJournalPath()
	require.NoError(t, err)
	assert.Equal(t, uint64(11), seq)
	assert.Equal(t, filepath.Join(dir, "wheel.journal.011"), path)

	rotated := u.GenRotatedJournalPath()
	require.NotNil(t, rotated)
	assert.Equal(t, path, *rotated)

	snap := u.GenSnapshotPath()
	require.NotNil(t, snap)
	assert.Equal(t, filepath.Join(dir, "snapshot.json"), *snap)
}

func TestDefaultUtils_Disabled(t *testing.T) {
	u := utils.NewDefaultUtils("", "", 0, nil)
	assert.Nil(t, u.GenSnapshotPath())
	assert.Nil(t, u.GenRotatedJournalPath())
	files, err := u.GetJournalFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.NotNil(t, u.GetLogger())
}

func TestMockRandSource(t *testing.T) {
	m := &utils.MockRandSource{Floats: []float64{0.25, 0.5}, Ints: []int{7}}
	assert.Equal(t, 0.25, m.Float64())
	assert.Equal(t, 0.5, m.Float64())
	assert.Equal(t, 2, m.FloatCalls())
	assert.Equal(t, 1, m.Intn(6))
	assert.Panics(t, func() { m.Float64() })
}

func TestSeqFromPath(t *testing.T) {
	seq, err := utils.SeqFromPath("/tmp/wheel.journal.012")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), seq)

	_, err = utils.SeqFromPath("/tmp/wheel.journal")
	assert.Error(t, err)
}

func TestReadFileContentKeepsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	data := make([]byte, 40)
	data[0] = 1
	data[30] = 'x'
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, err := utils.ReadFileContent(path)
	require.NoError(t, err)
	assert.Len(t, got, 31)

	require.NoError(t, os.WriteFile(path, data[:24], 0644))
	got, err = utils.ReadFileContent(path)
	require.NoError(t, err)
	assert.Len(t, got, 24)
}
