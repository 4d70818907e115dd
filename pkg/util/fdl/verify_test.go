package fdl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, seed int64) (*Dataset, string) {
	t.Helper()
	ds := generate(t, seed)
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, ds.WriteCSV(dir))
	return ds, dir
}

func TestWriteCSV(t *testing.T) {
	ds, dir := writeDataset(t, 42)
	files, err := ds.EncodeFiles()
	require.NoError(t, err)
	for _, name := range ds.Files() {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, files[name], data, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(ds.Files()), "no temporary files are left behind")

	clubs, err := ReadTable[Club](filepath.Join(dir, ClubsFile))
	require.NoError(t, err)
	assert.Equal(t, ds.Clubs, clubs)
}

func TestVerifyDataset(t *testing.T) {
	_, dir := writeDataset(t, 42)
	require.NoError(t, VerifyDataset(dir, ""))
	require.NoError(t, VerifyDataset(dir, "2024-2025"))

	assert.Error(t, VerifyDataset(dir, "2023/24"), "no match file for that season")
	assert.Error(t, VerifyDataset(dir, "2024"))
	assert.Error(t, VerifyDataset(filepath.Join(dir, "missing"), ""))
}

func TestVerifyDatasetTamperedTable(t *testing.T) {
	ds, dir := writeDataset(t, 42)
	path := filepath.Join(dir, LeagueTableFile(ds.Season))
	table, err := ReadTable[LeagueTableRow](path)
	require.NoError(t, err)
	table[4].Points++
	require.NoError(t, WriteTable(path, table))

	err = VerifyDataset(dir, "")
	assert.ErrorIs(t, err, ErrTableMismatch)
	assert.Contains(t, err.Error(), "points")
}

func TestVerifyDatasetTamperedMatches(t *testing.T) {
	ds, dir := writeDataset(t, 42)
	path := filepath.Join(dir, MatchesFile(ds.Season))
	matches, err := ReadTable[Match](path)
	require.NoError(t, err)
	matches[10].HomeGoals += 2
	require.NoError(t, WriteTable(path, matches))

	assert.ErrorIs(t, VerifyDataset(dir, ""), ErrTableMismatch)
}

func TestVerifyDatasetReorderedTable(t *testing.T) {
	ds, dir := writeDataset(t, 42)
	path := filepath.Join(dir, LeagueTableFile(ds.Season))
	table, err := ReadTable[LeagueTableRow](path)
	require.NoError(t, err)
	table[0], table[1] = table[1], table[0]
	require.NoError(t, WriteTable(path, table))

	assert.ErrorIs(t, VerifyDataset(dir, ""), ErrTableMismatch)
}
