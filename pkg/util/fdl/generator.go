package fdl

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/richard-senior/footballlab/internal/logger"
	"github.com/richard-senior/footballlab/pkg/util"
)

// ErrOutOfBounds means a generated dataset broke one of its own guarantees
var ErrOutOfBounds = errors.New("generated value out of bounds")

const (
	LeagueInfoFile = "league_info.csv"
	SeasonsFile    = "seasons.csv"
	ClubsFile      = "clubs.csv"
	StaffFile      = "staff.csv"
	PlayersFile    = "players.csv"
	YouthFile      = "youth_academy.csv"
	TransfersFile  = "transfer_history.csv"
)

// MatchesFile names the match file of season, e.g. matches_2024_25.csv
func MatchesFile(season string) string {
	return "matches_" + SeasonTag(season) + ".csv"
}

// LeagueTableFile names the league table file of season
func LeagueTableFile(season string) string {
	return "league_table_" + SeasonTag(season) + ".csv"
}

// Dataset is everything one generation run produces
type Dataset struct {
	Seed      int64
	Season    string
	League    *LeagueInfo
	Seasons   []Season
	Clubs     []Club
	Staff     []StaffMember
	Players   []Player
	Youth     []Player
	Matches   []Match
	Table     []LeagueTableRow
	Transfers []TransferRecord
}

// Generate builds a complete dataset from cfg. Every random draw comes from a single
// stream seeded with seed, so the same seed and config always give the same dataset.
func Generate(cfg *Config, seed int64) (*Dataset, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	season, err := ParseSeason(cfg.CurrentSeason)
	if err != nil {
		return nil, err
	}
	s := util.NewSampler(seed)
	ds := &Dataset{Seed: seed, Season: season}

	logger.Info("Generating dataset", cfg.League.Name, season, "seed", seed)

	if ds.League, err = GenerateLeagueInfo(cfg, s, seed); err != nil {
		return nil, fmt.Errorf("failed to generate league info: %w", err)
	}
	if ds.Seasons, err = GenerateSeasons(cfg); err != nil {
		return nil, fmt.Errorf("failed to generate seasons: %w", err)
	}
	if ds.Clubs, err = GenerateClubs(cfg, s, util.NewIDSequence("CLB", 1)); err != nil {
		return nil, fmt.Errorf("failed to generate clubs: %w", err)
	}
	logger.Debug("Generated clubs", len(ds.Clubs))

	staffIDs := util.NewIDSequence("STF", 1)
	for i := range ds.Clubs {
		staff, err := GenerateStaff(cfg, s, staffIDs, &ds.Clubs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to generate staff: %w", err)
		}
		ds.Staff = append(ds.Staff, staff...)
	}

	playerIDs := util.NewIDSequence("PLY", 1)
	for i := range ds.Clubs {
		squad, err := GenerateSquad(cfg, s, playerIDs, &ds.Clubs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to generate squad: %w", err)
		}
		ds.Players = append(ds.Players, squad...)
	}
	logger.Info("Generated players", humanize.Comma(int64(len(ds.Players))))

	youthIDs := util.NewIDSequence("PLY", cfg.Youth.FirstID)
	for i := range ds.Clubs {
		youth, err := GenerateYouth(cfg, s, youthIDs, &ds.Clubs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to generate youth: %w", err)
		}
		ds.Youth = append(ds.Youth, youth...)
	}
	logger.Debug("Generated youth players", len(ds.Youth))

	if ds.Matches, err = GenerateFixtures(cfg, s, util.NewIDSequence("MTH", 1), ds.Clubs, season); err != nil {
		return nil, fmt.Errorf("failed to generate fixtures: %w", err)
	}
	strengths := TeamStrengths(ds.Clubs, ds.Players, cfg.Match.DefaultStrength)
	if err := SimulateSeason(cfg, s, ds.Matches, ds.Clubs, strengths); err != nil {
		return nil, fmt.Errorf("failed to simulate season: %w", err)
	}
	logger.Info("Simulated matches", humanize.Comma(int64(len(ds.Matches))))

	if ds.Table, err = ComputeLeagueTable(cfg.League, season, ds.Clubs, ds.Matches); err != nil {
		return nil, fmt.Errorf("failed to compute league table: %w", err)
	}
	if ds.Transfers, err = GenerateTransferHistory(cfg, s, util.NewIDSequence("TRF", 1), ds.Players, ds.Clubs); err != nil {
		return nil, fmt.Errorf("failed to generate transfer history: %w", err)
	}

	if err := ds.Validate(cfg); err != nil {
		return nil, err
	}
	logger.Info("Dataset complete", "squad value", "€"+humanize.Comma(ds.TotalMarketValue()))
	return ds, nil
}

// TotalMarketValue sums the market value of every senior player
func (ds *Dataset) TotalMarketValue() int64 {
	var total int64
	for _, p := range ds.Players {
		total += p.MarketValue
	}
	return total
}

func outOfBounds(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfBounds, fmt.Sprintf(format, args...))
}

// Validate checks every guarantee the generator makes about its output
func (ds *Dataset) Validate(cfg *Config) error {
	if ds.League == nil {
		return outOfBounds("league info is missing")
	}
	if len(ds.Clubs) != cfg.League.NumClubs {
		return outOfBounds("%d clubs generated, want %d", len(ds.Clubs), cfg.League.NumClubs)
	}
	cities := map[string]bool{}
	for _, c := range ds.Clubs {
		if cities[c.City] {
			return outOfBounds("city %s has two clubs", c.City)
		}
		cities[c.City] = true
	}

	ids := map[string]bool{}
	if err := ds.validatePlayers(cfg, ids); err != nil {
		return err
	}
	if err := ds.validateYouth(cfg, ids); err != nil {
		return err
	}
	if err := ds.validateFixtures(cfg); err != nil {
		return err
	}

	if len(ds.Table) != len(ds.Clubs) {
		return outOfBounds("league table has %d rows for %d clubs", len(ds.Table), len(ds.Clubs))
	}
	if err := CheckTableArithmetic(cfg.League, ds.Table); err != nil {
		return err
	}
	if err := ReconcileLeagueTable(cfg.League, ds.Season, ds.Table, ds.Matches); err != nil {
		return err
	}

	staffPerClub := map[string]int{}
	for _, m := range ds.Staff {
		staffPerClub[m.ClubID]++
	}
	for _, c := range ds.Clubs {
		if staffPerClub[c.ClubID] != 1+len(cfg.Staff.CoachRoles) {
			return outOfBounds("%s has %d staff", c.ClubID, staffPerClub[c.ClubID])
		}
	}
	for _, t := range ds.Transfers {
		if t.FromClubID == t.ToClubID {
			return outOfBounds("transfer %s moves %s from %s to itself", t.TransferID, t.PlayerID, t.FromClubID)
		}
		if t.TransferFee < 0 {
			return outOfBounds("transfer %s has a negative fee", t.TransferID)
		}
	}
	return nil
}

func checkPlayer(cfg *Config, p *Player, ages Range) error {
	bounds := cfg.Players.Rating
	if !ages.Contains(p.Age) {
		return outOfBounds("%s is aged %d", p.PlayerID, p.Age)
	}
	if p.OverallRating < float64(bounds.Min) || p.OverallRating > float64(bounds.Max) {
		return outOfBounds("%s is rated %v", p.PlayerID, p.OverallRating)
	}
	if p.Potential < p.OverallRating || p.Potential > float64(bounds.Max) {
		return outOfBounds("%s has potential %v for rating %v", p.PlayerID, p.Potential, p.OverallRating)
	}
	if p.MarketValue < 0 || float64(p.MarketValue) > cfg.Value.Max {
		return outOfBounds("%s is valued at %d", p.PlayerID, p.MarketValue)
	}
	if p.WeeklyWage < 0 {
		return outOfBounds("%s earns %d a week", p.PlayerID, p.WeeklyWage)
	}
	pos, err := cfg.Position(p.Position)
	if err != nil {
		return outOfBounds("%s: %v", p.PlayerID, err)
	}
	for _, a := range pos.Attributes {
		if v := p.Get(a.Name); v < bounds.Min || v > bounds.Max {
			return outOfBounds("%s has %s of %d", p.PlayerID, a.Name, v)
		}
	}
	return nil
}

func (ds *Dataset) validatePlayers(cfg *Config, ids map[string]bool) error {
	perClub := map[string]map[Position]int{}
	for i := range ds.Players {
		p := &ds.Players[i]
		if ids[p.PlayerID] {
			return outOfBounds("player id %s is used twice", p.PlayerID)
		}
		ids[p.PlayerID] = true
		if err := checkPlayer(cfg, p, Range{cfg.Players.MinAge, cfg.Players.MaxAge}); err != nil {
			return err
		}
		if perClub[p.ClubID] == nil {
			perClub[p.ClubID] = map[Position]int{}
		}
		perClub[p.ClubID][p.Position]++
	}
	for _, c := range ds.Clubs {
		size := 0
		for _, pos := range cfg.Positions {
			n := perClub[c.ClubID][pos.Position]
			if n < pos.SquadMin || n > pos.SquadMax {
				return outOfBounds("%s has %d players at %s", c.ClubID, n, pos.Position)
			}
			size += n
		}
		if !cfg.Squad.Size.Contains(size) {
			return outOfBounds("%s has a squad of %d", c.ClubID, size)
		}
	}
	return nil
}

func (ds *Dataset) validateYouth(cfg *Config, ids map[string]bool) error {
	yc := cfg.Youth
	perClub := map[string]int{}
	for i := range ds.Youth {
		p := &ds.Youth[i]
		if ids[p.PlayerID] {
			return outOfBounds("player id %s is used twice", p.PlayerID)
		}
		ids[p.PlayerID] = true
		if err := checkPlayer(cfg, p, yc.Ages); err != nil {
			return err
		}
		if !p.IsYouth {
			return outOfBounds("academy player %s is not flagged as youth", p.PlayerID)
		}
		if !yc.Potential.Contains(int(p.Potential)) {
			return outOfBounds("academy player %s has potential %v", p.PlayerID, p.Potential)
		}
		if p.OverallRating >= p.Potential {
			return outOfBounds("academy player %s is rated %v against potential %v", p.PlayerID, p.OverallRating, p.Potential)
		}
		perClub[p.ClubID]++
	}
	for _, c := range ds.Clubs {
		if perClub[c.ClubID] != yc.PlayersPerClub {
			return outOfBounds("%s has %d academy players", c.ClubID, perClub[c.ClubID])
		}
	}
	return nil
}

func (ds *Dataset) validateFixtures(cfg *Config) error {
	n := len(ds.Clubs)
	if len(ds.Matches) != n*(n-1) {
		return outOfBounds("%d matches for %d clubs", len(ds.Matches), n)
	}
	maxMatchday := Matchdays(n)
	pairs := map[[2]string]bool{}
	busy := map[string]bool{}
	for _, m := range ds.Matches {
		if m.HomeClubID == m.AwayClubID {
			return outOfBounds("%s has %s playing itself", m.MatchID, m.HomeClubID)
		}
		pair := [2]string{m.HomeClubID, m.AwayClubID}
		if pairs[pair] {
			return outOfBounds("%s hosts %s twice", m.HomeClubID, m.AwayClubID)
		}
		pairs[pair] = true
		if m.Matchday < 1 || m.Matchday > maxMatchday {
			return outOfBounds("%s is on matchday %d", m.MatchID, m.Matchday)
		}
		for _, id := range pair {
			key := fmt.Sprintf("%d/%s", m.Matchday, id)
			if busy[key] {
				return outOfBounds("%s plays twice on matchday %d", id, m.Matchday)
			}
			busy[key] = true
		}
		if m.Status != StatusCompleted || m.HomeGoals < 0 || m.AwayGoals < 0 {
			return outOfBounds("%s has no valid result", m.MatchID)
		}
		if m.HalfTimeHomeGoals > m.HomeGoals || m.HalfTimeAwayGoals > m.AwayGoals {
			return outOfBounds("%s has more goals at half time than full time", m.MatchID)
		}
	}
	return nil
}

// Files lists the CSV files of the dataset in write order
func (ds *Dataset) Files() []string {
	return []string{
		LeagueInfoFile, SeasonsFile, ClubsFile, StaffFile, PlayersFile, YouthFile,
		MatchesFile(ds.Season), LeagueTableFile(ds.Season), TransfersFile,
	}
}

func encodeInto[T any](files map[string][]byte, name string, rows []T) error {
	data, err := EncodeCSV(rows)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	files[name] = data
	return nil
}

// EncodeFiles renders every file of the dataset, keyed by file name
func (ds *Dataset) EncodeFiles() (map[string][]byte, error) {
	var league []LeagueInfo
	if ds.League != nil {
		league = append(league, *ds.League)
	}
	files := map[string][]byte{}
	for _, err := range []error{
		encodeInto(files, LeagueInfoFile, league),
		encodeInto(files, SeasonsFile, ds.Seasons),
		encodeInto(files, ClubsFile, ds.Clubs),
		encodeInto(files, StaffFile, ds.Staff),
		encodeInto(files, PlayersFile, ds.Players),
		encodeInto(files, YouthFile, ds.Youth),
		encodeInto(files, MatchesFile(ds.Season), ds.Matches),
		encodeInto(files, LeagueTableFile(ds.Season), ds.Table),
		encodeInto(files, TransfersFile, ds.Transfers),
	} {
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// WriteCSV writes every file of the dataset into dir. All files are encoded
// before the first one is written, and each is replaced atomically.
func (ds *Dataset) WriteCSV(dir string) error {
	files, err := ds.EncodeFiles()
	if err != nil {
		return err
	}
	if err := util.EnsureDir(dir); err != nil {
		return err
	}
	var total int
	for _, name := range ds.Files() {
		path := filepath.Join(dir, name)
		if err := util.WriteFileAtomic(path, files[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		total += len(files[name])
		logger.Debug("Wrote", path, humanize.Bytes(uint64(len(files[name]))))
	}
	logger.Info("Wrote dataset", dir, humanize.Bytes(uint64(total)))
	return nil
}
