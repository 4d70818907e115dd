package fdl

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrTableMismatch is returned when a persisted table disagrees with its match results
var ErrTableMismatch = errors.New("league table does not match results")

const formLength = 5

var _ Persistable = (*LeagueTableRow)(nil)

// LeagueTableRow is one row of the season's league table file
type LeagueTableRow struct {
	Season         string `json:"season" column:"season" dbtype:"TEXT NOT NULL" primary:"true"`
	Position       int    `json:"position" column:"position" dbtype:"INTEGER NOT NULL"`
	ClubID         string `json:"club_id" column:"club_id" dbtype:"TEXT NOT NULL" primary:"true" fk:"clubs.club_id"`
	ClubName       string `json:"club_name" column:"club_name" dbtype:"TEXT NOT NULL"`
	Played         int    `json:"played" column:"played" dbtype:"INTEGER NOT NULL"`
	Won            int    `json:"won" column:"won" dbtype:"INTEGER NOT NULL"`
	Drawn          int    `json:"drawn" column:"drawn" dbtype:"INTEGER NOT NULL"`
	Lost           int    `json:"lost" column:"lost" dbtype:"INTEGER NOT NULL"`
	GoalsFor       int    `json:"goals_for" column:"goals_for" dbtype:"INTEGER NOT NULL"`
	GoalsAgainst   int    `json:"goals_against" column:"goals_against" dbtype:"INTEGER NOT NULL"`
	GoalDifference int    `json:"goal_difference" column:"goal_difference" dbtype:"INTEGER NOT NULL"`
	Points         int    `json:"points" column:"points" dbtype:"INTEGER NOT NULL"`
	Form           string `json:"form" column:"form" dbtype:"TEXT"`
	HomeWon        int    `json:"home_won" column:"home_won" dbtype:"INTEGER"`
	HomeDrawn      int    `json:"home_drawn" column:"home_drawn" dbtype:"INTEGER"`
	HomeLost       int    `json:"home_lost" column:"home_lost" dbtype:"INTEGER"`
	AwayWon        int    `json:"away_won" column:"away_won" dbtype:"INTEGER"`
	AwayDrawn      int    `json:"away_drawn" column:"away_drawn" dbtype:"INTEGER"`
	AwayLost       int    `json:"away_lost" column:"away_lost" dbtype:"INTEGER"`
}

func (r *LeagueTableRow) GetTableName() string {
	return "league_table"
}

func (r *LeagueTableRow) record(result string, home bool, gf, ga int, pts LeagueConfig) {
	r.Played++
	r.GoalsFor += gf
	r.GoalsAgainst += ga
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
	switch result {
	case "W":
		r.Won++
		r.Points += pts.PointsForWin
		if home {
			r.HomeWon++
		} else {
			r.AwayWon++
		}
	case "D":
		r.Drawn++
		r.Points += pts.PointsForDraw
		if home {
			r.HomeDrawn++
		} else {
			r.AwayDrawn++
		}
	default:
		r.Lost++
		r.Points += pts.PointsForLoss
		if home {
			r.HomeLost++
		} else {
			r.AwayLost++
		}
	}
	r.Form += result
	if len(r.Form) > formLength {
		r.Form = r.Form[len(r.Form)-formLength:]
	}
}

// ComputeLeagueTable folds the completed matches of season into a sorted table.
// Every club in clubs gets a row; clubs that only appear in matches are added too.
// Matches are applied in matchday then id order, so the input order does not matter.
func ComputeLeagueTable(league LeagueConfig, season string, clubs []Club, matches []Match) ([]LeagueTableRow, error) {
	season, err := ParseSeason(season)
	if err != nil {
		return nil, err
	}

	rows := map[string]*LeagueTableRow{}
	var order []string
	ensure := func(id, name string) *LeagueTableRow {
		if r, ok := rows[id]; ok {
			return r
		}
		r := &LeagueTableRow{Season: season, ClubID: id, ClubName: name}
		rows[id] = r
		order = append(order, id)
		return r
	}
	for _, c := range clubs {
		ensure(c.ClubID, c.Name)
	}

	played := make([]*Match, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		same, err := IsSameSeason(m.Season, season)
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", m.MatchID, err)
		}
		if !same || m.Status != StatusCompleted {
			continue
		}
		if m.HomeClubID == m.AwayClubID {
			return nil, fmt.Errorf("match %s has %s playing itself", m.MatchID, m.HomeClubID)
		}
		played = append(played, m)
	}
	sort.SliceStable(played, func(i, j int) bool {
		if played[i].Matchday != played[j].Matchday {
			return played[i].Matchday < played[j].Matchday
		}
		return played[i].MatchID < played[j].MatchID
	})

	for _, m := range played {
		home := ensure(m.HomeClubID, m.HomeClubName)
		away := ensure(m.AwayClubID, m.AwayClubName)
		home.record(m.Result(m.HomeClubID), true, m.HomeGoals, m.AwayGoals, league)
		away.record(m.Result(m.AwayClubID), false, m.AwayGoals, m.HomeGoals, league)
	}

	table := make([]LeagueTableRow, 0, len(order))
	for _, id := range order {
		table = append(table, *rows[id])
	}
	resortTable(table)
	return table, nil
}

// ReconcileLeagueTable recomputes the table from matches and compares it with persisted,
// reporting the first differing row and column.
func ReconcileLeagueTable(league LeagueConfig, season string, persisted []LeagueTableRow, matches []Match) error {
	computed, err := ComputeLeagueTable(league, season, nil, matches)
	if err != nil {
		return err
	}
	// clubs without a completed match only exist in the persisted table
	present := map[string]bool{}
	for _, r := range computed {
		present[r.ClubID] = true
	}
	for _, r := range persisted {
		if !present[r.ClubID] && r.Played == 0 {
			computed = append(computed, LeagueTableRow{Season: r.Season, ClubID: r.ClubID, ClubName: r.ClubName})
		}
	}
	if len(computed) != len(persisted) {
		return fmt.Errorf("%w: %d rows persisted, %d recomputed", ErrTableMismatch, len(persisted), len(computed))
	}
	resortTable(computed)
	for i := range persisted {
		if diff := diffRows(&persisted[i], &computed[i]); diff != "" {
			return fmt.Errorf("%w: row %d (%s): %s", ErrTableMismatch, i+1, persisted[i].ClubID, diff)
		}
	}
	return nil
}

// resortTable orders by points, goal difference, goals for, then name and id, and numbers the positions
func resortTable(table []LeagueTableRow) {
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.ClubName != b.ClubName {
			return a.ClubName < b.ClubName
		}
		return a.ClubID < b.ClubID
	})
	for i := range table {
		table[i].Position = i + 1
	}
}

func diffRows(a, b *LeagueTableRow) string {
	cols := Columns(a)
	av, bv := Values(a), Values(b)
	var diffs []string
	for i := range cols {
		if av[i] != bv[i] {
			diffs = append(diffs, fmt.Sprintf("%s persisted %s, recomputed %s", cols[i], av[i], bv[i]))
		}
	}
	return strings.Join(diffs, "; ")
}

// CheckTableArithmetic verifies the per-row identities of a table
func CheckTableArithmetic(league LeagueConfig, table []LeagueTableRow) error {
	for _, r := range table {
		if r.Played != r.Won+r.Drawn+r.Lost {
			return fmt.Errorf("%w: %s played %d but W+D+L is %d", ErrTableMismatch, r.ClubID, r.Played, r.Won+r.Drawn+r.Lost)
		}
		if r.GoalDifference != r.GoalsFor-r.GoalsAgainst {
			return fmt.Errorf("%w: %s goal difference %d but GF-GA is %d", ErrTableMismatch, r.ClubID, r.GoalDifference, r.GoalsFor-r.GoalsAgainst)
		}
		pts := r.Won*league.PointsForWin + r.Drawn*league.PointsForDraw + r.Lost*league.PointsForLoss
		if r.Points != pts {
			return fmt.Errorf("%w: %s has %d points but results give %d", ErrTableMismatch, r.ClubID, r.Points, pts)
		}
	}
	return nil
}
