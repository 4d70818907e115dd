package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSequence(t *testing.T) {
	seq := NewIDSequence("PLY", 1)
	assert.Equal(t, "PLY_00001", seq.Next())
	assert.Equal(t, "PLY_00002", seq.Next())
	assert.Equal(t, 3, seq.Peek())

	youth := NewIDSequence("PLY", 50000)
	assert.Equal(t, "PLY_50000", youth.Next())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "dragon-s-keep-rovers", Slug("Dragon's Keep Rovers"))
	assert.Equal(t, "sao-paulo-fc", Slug("São Paulo  FC"))
	assert.Equal(t, "", Slug("  --  "))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "MB", Initials("Moonlight Bay"))
	assert.Equal(t, "S", Initials("Stormwind"))
}

func TestGetAsInteger(t *testing.T) {
	v, err := GetAsInteger(" 2024 ")
	require.NoError(t, err)
	assert.Equal(t, 2024, v)

	_, err = GetAsInteger("24x")
	assert.Error(t, err)
	_, err = GetAsInteger(2.5)
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "clubs.csv")

	require.NoError(t, WriteFileAtomic(path, []byte("first")))
	require.NoError(t, WriteFileAtomic(path, []byte("second")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.True(t, FileExists(path))

	// a failed write leaves the previous contents and no temp files behind
	err = WriteFileAtomicFunc(path, func(f *os.File) error {
		f.Write([]byte("partial"))
		return errors.New("disk full")
	})
	require.Error(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
