package fdl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleRoundTrip(t *testing.T) {
	ds := generate(t, 42)
	dir := t.TempDir()
	path := filepath.Join(dir, "league.tar.br")
	require.NoError(t, ds.WriteBundle(path))

	got, err := ReadBundle(path)
	require.NoError(t, err)
	want, err := ds.EncodeFiles()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	var raw int
	for _, data := range want {
		raw += len(data)
	}
	assert.Less(t, int(info.Size()), raw, "bundle is compressed")
}

func TestBundleIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.tar.br"), filepath.Join(dir, "b.tar.br")
	require.NoError(t, generate(t, 3).WriteBundle(a))
	require.NoError(t, generate(t, 3).WriteBundle(b))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestReadBundleErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadBundle(filepath.Join(dir, "missing.tar.br"))
	assert.Error(t, err)

	junk := filepath.Join(dir, "junk.tar.br")
	require.NoError(t, os.WriteFile(junk, []byte("not a bundle at all"), 0644))
	_, err = ReadBundle(junk)
	assert.Error(t, err)
}
