package fdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(id string, md int, home, away string, hg, ag int) Match {
	return Match{
		MatchID: id, Season: "2024/25", Matchday: md,
		HomeClubID: home, HomeClubName: "Club " + home,
		AwayClubID: away, AwayClubName: "Club " + away,
		HomeGoals: hg, AwayGoals: ag, Status: StatusCompleted,
	}
}

func tableClubs() []Club {
	return []Club{
		{ClubID: "A", Name: "Club A"},
		{ClubID: "B", Name: "Club B"},
		{ClubID: "C", Name: "Club C"},
		{ClubID: "D", Name: "Club D"},
	}
}

func TestComputeLeagueTable(t *testing.T) {
	league := DefaultConfig().League
	matches := []Match{
		result("M1", 1, "A", "B", 2, 0),
		result("M2", 1, "C", "D", 1, 1),
		result("M3", 2, "B", "C", 3, 1),
		result("M4", 2, "D", "A", 0, 1),
	}
	table, err := ComputeLeagueTable(league, "2024/25", tableClubs(), matches)
	require.NoError(t, err)
	require.Len(t, table, 4)
	require.NoError(t, CheckTableArithmetic(league, table))

	a := table[0]
	assert.Equal(t, "A", a.ClubID)
	assert.Equal(t, 1, a.Position)
	assert.Equal(t, 2, a.Played)
	assert.Equal(t, 2, a.Won)
	assert.Equal(t, 6, a.Points)
	assert.Equal(t, 3, a.GoalsFor)
	assert.Equal(t, 0, a.GoalsAgainst)
	assert.Equal(t, 3, a.GoalDifference)
	assert.Equal(t, "WW", a.Form)
	assert.Equal(t, 1, a.HomeWon)
	assert.Equal(t, 1, a.AwayWon)

	// B: W3-1 L0-2 -> 3 pts, GD 0
	b := table[1]
	assert.Equal(t, "B", b.ClubID)
	assert.Equal(t, 3, b.Points)
	assert.Equal(t, "LW", b.Form)

	// D: D1-1 L0-1 -> 1 pt, GD -1, GF 1. C: D1-1 L1-3 -> 1 pt, GD -2
	assert.Equal(t, "D", table[2].ClubID)
	assert.Equal(t, "C", table[3].ClubID)
	assert.Equal(t, 4, table[3].Position)
}

func TestComputeLeagueTableTieBreaks(t *testing.T) {
	league := DefaultConfig().League
	clubs := []Club{{ClubID: "Z", Name: "Zeta"}, {ClubID: "Y", Name: "Alpha"}, {ClubID: "X", Name: "Alpha"}}
	table, err := ComputeLeagueTable(league, "2024/25", clubs, nil)
	require.NoError(t, err)
	// level on everything, so name then id decide
	assert.Equal(t, []string{"X", "Y", "Z"}, []string{table[0].ClubID, table[1].ClubID, table[2].ClubID})

	matches := []Match{
		result("M1", 1, "Z", "Y", 3, 1),
		result("M2", 2, "X", "Y", 2, 0),
	}
	table, err = ComputeLeagueTable(league, "2024/25", clubs, matches)
	require.NoError(t, err)
	// level on points and goal difference, Z has scored more
	assert.Equal(t, "Z", table[0].ClubID)
	assert.Equal(t, "X", table[1].ClubID)
	assert.Equal(t, "Y", table[2].ClubID)
}

func TestComputeLeagueTableIgnoresOrderAndUnplayed(t *testing.T) {
	league := DefaultConfig().League
	matches := []Match{
		result("M1", 1, "A", "B", 2, 0),
		result("M2", 1, "C", "D", 1, 1),
		result("M3", 2, "B", "C", 3, 1),
		result("M4", 2, "D", "A", 0, 1),
	}
	reversed := []Match{matches[3], matches[2], matches[1], matches[0]}

	scheduled := result("M5", 3, "A", "C", 9, 0)
	scheduled.Status = StatusScheduled
	otherSeason := result("M6", 1, "A", "D", 0, 9)
	otherSeason.Season = "2023/24"
	reversed = append(reversed, scheduled, otherSeason)

	want, err := ComputeLeagueTable(league, "2024/25", tableClubs(), matches)
	require.NoError(t, err)
	got, err := ComputeLeagueTable(league, "2024-2025", tableClubs(), reversed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestComputeLeagueTableFormKeepsLastFive(t *testing.T) {
	league := DefaultConfig().League
	var matches []Match
	scores := [][2]int{{0, 1}, {1, 0}, {1, 1}, {2, 0}, {3, 0}, {0, 0}, {1, 2}}
	for i, sc := range scores {
		matches = append(matches, result(string(rune('a'+i)), i+1, "A", "B", sc[0], sc[1]))
	}
	table, err := ComputeLeagueTable(league, "2024/25", nil, matches)
	require.NoError(t, err)
	for _, r := range table {
		if r.ClubID == "A" {
			// L W D W W D L -> last five D W W D L
			assert.Equal(t, "DWWDL", r.Form)
			assert.Equal(t, 7, r.Played)
		}
	}
}

func TestComputeLeagueTableRejectsSelfMatch(t *testing.T) {
	_, err := ComputeLeagueTable(DefaultConfig().League, "2024/25", nil, []Match{result("M1", 1, "A", "A", 1, 0)})
	assert.Error(t, err)
	_, err = ComputeLeagueTable(DefaultConfig().League, "24/25", nil, nil)
	assert.Error(t, err)
}

func TestReconcileLeagueTable(t *testing.T) {
	league := DefaultConfig().League
	matches := []Match{
		result("M1", 1, "A", "B", 2, 0),
		result("M2", 1, "C", "D", 1, 1),
	}
	table, err := ComputeLeagueTable(league, "2024/25", tableClubs(), matches)
	require.NoError(t, err)
	require.NoError(t, ReconcileLeagueTable(league, "2024/25", table, matches))

	tampered := append([]LeagueTableRow(nil), table...)
	tampered[1].Points++
	err = ReconcileLeagueTable(league, "2024/25", tampered, matches)
	assert.ErrorIs(t, err, ErrTableMismatch)
	assert.Contains(t, err.Error(), "points")

	assert.ErrorIs(t, ReconcileLeagueTable(league, "2024/25", table[:3], matches), ErrTableMismatch)

	changed := append([]Match(nil), matches...)
	changed[0].HomeGoals = 0
	assert.ErrorIs(t, ReconcileLeagueTable(league, "2024/25", table, changed), ErrTableMismatch)
}

func TestCheckTableArithmetic(t *testing.T) {
	league := DefaultConfig().League
	good := LeagueTableRow{ClubID: "A", Played: 3, Won: 2, Drawn: 1, GoalsFor: 5, GoalsAgainst: 2, GoalDifference: 3, Points: 7}
	require.NoError(t, CheckTableArithmetic(league, []LeagueTableRow{good}))

	bad := good
	bad.Played = 4
	assert.ErrorIs(t, CheckTableArithmetic(league, []LeagueTableRow{bad}), ErrTableMismatch)
	bad = good
	bad.GoalDifference = 2
	assert.ErrorIs(t, CheckTableArithmetic(league, []LeagueTableRow{bad}), ErrTableMismatch)
	bad = good
	bad.Points = 6
	assert.ErrorIs(t, CheckTableArithmetic(league, []LeagueTableRow{bad}), ErrTableMismatch)
}
