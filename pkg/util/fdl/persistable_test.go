package fdl

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCreateTableSQL(t *testing.T) {
	sql := generateCreateTableSQL(&LeagueTableRow{}, "league_table")
	assert.True(t, strings.HasPrefix(sql, "CREATE TABLE IF NOT EXISTS league_table ("))
	assert.Contains(t, sql, "PRIMARY KEY (season, club_id)")
	assert.Contains(t, sql, "FOREIGN KEY (club_id) REFERENCES clubs(club_id)")

	sql = generateCreateTableSQL(&Player{}, "players")
	assert.Contains(t, sql, "pace INTEGER")
	assert.Contains(t, sql, "overall_rating REAL NOT NULL")

	indexes := generateIndexSQL(&Match{}, "matches")
	assert.Contains(t, indexes, "CREATE INDEX IF NOT EXISTS idx_matches_season ON matches(season)")
	assert.Len(t, indexes, 4)
}

func TestStoreSave(t *testing.T) {
	ds := generate(t, 42)
	store, err := OpenStore(":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Save(ds))

	counts := map[string]int{
		"league_info":      1,
		"seasons":          len(ds.Seasons),
		"clubs":            len(ds.Clubs),
		"staff":            len(ds.Staff),
		"players":          len(ds.Players),
		"youth_academy":    len(ds.Youth),
		"matches":          len(ds.Matches),
		"league_table":     len(ds.Table),
		"transfer_history": len(ds.Transfers),
	}
	for table, want := range counts {
		got, err := store.Count(table)
		require.NoError(t, err, table)
		assert.Equal(t, want, got, table)
	}

	players, err := FindAll[Player](store, "players")
	require.NoError(t, err)
	assert.Equal(t, ds.Players, players)

	youth, err := FindAll[Player](store, "youth_academy")
	require.NoError(t, err)
	assert.Equal(t, ds.Youth, youth)

	table, err := FindWhere[LeagueTableRow](store, "league_table", "season = ?", ds.Season)
	require.NoError(t, err)
	assert.Equal(t, ds.Table, table)

	seasons, err := FindAll[Season](store, "seasons")
	require.NoError(t, err)
	assert.Equal(t, ds.Seasons, seasons)

	// rows must point at existing clubs
	err = store.BulkInsert([]Persistable{&StaffMember{StaffID: "STF_99999", ClubID: "CLB_99999", Role: "Scout"}})
	assert.Error(t, err)
	n, err := store.Count("staff")
	require.NoError(t, err)
	assert.Equal(t, len(ds.Staff), n, "failed insert is rolled back")
}

func TestWriteSQLiteAndVerify(t *testing.T) {
	ds := generate(t, 9)
	path := filepath.Join(t.TempDir(), "out", "league.db")
	require.NoError(t, ds.WriteSQLite(path))
	require.NoError(t, VerifySQLite(path, ""))
	require.NoError(t, VerifySQLite(path, "2024/25"))

	// a second export replaces the first
	require.NoError(t, ds.WriteSQLite(path))
	require.NoError(t, VerifySQLite(path, ""))

	assert.Error(t, VerifySQLite(filepath.Join(t.TempDir(), "none.db"), ""))
}
