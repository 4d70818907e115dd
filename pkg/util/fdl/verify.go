package fdl

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/richard-senior/footballlab/internal/logger"
	"github.com/richard-senior/footballlab/pkg/util"
)

func leagueFromInfo(info *LeagueInfo) LeagueConfig {
	return LeagueConfig{
		ID:            info.LeagueID,
		Name:          info.Name,
		NumClubs:      info.NumTeams,
		PointsForWin:  info.PointsForWin,
		PointsForDraw: info.PointsForDraw,
		PointsForLoss: info.PointsForLoss,
	}
}

func readLeagueInfo(dir string) (*LeagueInfo, error) {
	infos, err := ReadTable[LeagueInfo](filepath.Join(dir, LeagueInfoFile))
	if err != nil {
		return nil, err
	}
	if len(infos) != 1 {
		return nil, fmt.Errorf("%s holds %d rows, want 1", LeagueInfoFile, len(infos))
	}
	return &infos[0], nil
}

// VerifyDataset recomputes the league table of season from the match file in dir and
// checks that it renders to exactly the bytes of the persisted table file. An empty
// season means the dataset's current season.
func VerifyDataset(dir, season string) error {
	info, err := readLeagueInfo(dir)
	if err != nil {
		return err
	}
	if season == "" {
		season = info.CurrentSeason
	}
	season, err = ParseSeason(season)
	if err != nil {
		return err
	}
	league := leagueFromInfo(info)

	clubs, err := ReadTable[Club](filepath.Join(dir, ClubsFile))
	if err != nil {
		return err
	}
	matches, err := ReadTable[Match](filepath.Join(dir, MatchesFile(season)))
	if err != nil {
		return err
	}
	computed, err := ComputeLeagueTable(league, season, clubs, matches)
	if err != nil {
		return err
	}
	want, err := EncodeCSV(computed)
	if err != nil {
		return err
	}

	tablePath := filepath.Join(dir, LeagueTableFile(season))
	got, err := os.ReadFile(tablePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", tablePath, err)
	}
	if bytes.Equal(got, want) {
		logger.Info("League table verified", tablePath, len(matches), "matches")
		return nil
	}

	// find the first differing row for a useful message
	persisted, err := ReadTable[LeagueTableRow](tablePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTableMismatch, err)
	}
	if err := ReconcileLeagueTable(league, season, persisted, matches); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s differs from the recomputed table", ErrTableMismatch, tablePath)
}

// VerifySQLite recomputes the league table of season from the matches stored in a
// SQLite export and compares it with the stored table
func VerifySQLite(path, season string) error {
	if !util.FileExists(path) {
		return fmt.Errorf("no database at %s", path)
	}
	store, err := OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := FindAll[LeagueInfo](store, (&LeagueInfo{}).GetTableName())
	if err != nil {
		return err
	}
	if len(infos) != 1 {
		return fmt.Errorf("%s holds %d league rows, want 1", path, len(infos))
	}
	if season == "" {
		season = infos[0].CurrentSeason
	}
	season, err = ParseSeason(season)
	if err != nil {
		return err
	}

	matches, err := FindWhere[Match](store, (&Match{}).GetTableName(), "season = ?", season)
	if err != nil {
		return err
	}
	table, err := FindWhere[LeagueTableRow](store, (&LeagueTableRow{}).GetTableName(), "season = ?", season)
	if err != nil {
		return err
	}
	if err := ReconcileLeagueTable(leagueFromInfo(&infos[0]), season, table, matches); err != nil {
		return err
	}
	logger.Info("SQLite league table verified", path, len(matches), "matches")
	return nil
}
