package fdl

import (
	"fmt"
	"strings"

	"github.com/richard-senior/footballlab/pkg/util"
)

// Compile-time check to ensure Season implements Persistable interface
var _ Persistable = (*Season)(nil)

// Season is one row of seasons.csv
type Season struct {
	SeasonID     string `json:"season_id" column:"season_id" dbtype:"TEXT NOT NULL" primary:"true"`
	Season       string `json:"season" column:"season" dbtype:"TEXT NOT NULL" index:"true"`
	StartYear    int    `json:"start_year" column:"start_year" dbtype:"INTEGER NOT NULL"`
	EndYear      int    `json:"end_year" column:"end_year" dbtype:"INTEGER NOT NULL"`
	StartDate    string `json:"start_date" column:"start_date" dbtype:"TEXT NOT NULL"`
	EndDate      string `json:"end_date" column:"end_date" dbtype:"TEXT NOT NULL"`
	NumMatchdays int    `json:"num_matchdays" column:"num_matchdays" dbtype:"INTEGER NOT NULL"`
	IsCurrent    bool   `json:"is_current" column:"is_current" dbtype:"INTEGER NOT NULL"`
}

func (s *Season) GetTableName() string {
	return "seasons"
}

// ParseSeason normalises a season to the YYYY/YY form used throughout the dataset.
// Accepts YYYY/YY, YYYY/YYYY and the same with a hyphen delimiter.
func ParseSeason(season any) (string, error) {
	if season == nil {
		return "", fmt.Errorf("must pass a season")
	}
	ss, err := util.GetAsString(season)
	if err != nil {
		return "", err
	}
	ss = strings.TrimSpace(ss)
	if len(ss) != 7 && len(ss) != 9 {
		return "", fmt.Errorf("invalid season format: %s", ss)
	}
	if ss[4] != '/' && ss[4] != '-' {
		return "", fmt.Errorf("invalid season delimiter: %s", ss)
	}
	first, err := util.GetAsInteger(ss[:4])
	if err != nil {
		return "", fmt.Errorf("invalid season year: %s", ss)
	}
	second, err := util.GetAsInteger(ss[5:])
	if err != nil {
		return "", fmt.Errorf("invalid season year: %s", ss)
	}
	if len(ss) == 7 {
		second = first/100*100 + second
		if second < first {
			second += 100
		}
	}
	if second != first+1 {
		return "", fmt.Errorf("season %s does not span consecutive years", ss)
	}
	return fmt.Sprintf("%04d/%02d", first, second%100), nil
}

// Given a season of the form yyyy/yy return the first year
func GetFirstYear(season any) (int, error) {
	s, err := ParseSeason(season)
	if err != nil {
		return 0, err
	}
	return util.GetAsInteger(s[:4])
}

// Given a season of the form yyyy/yy return the second year in full
func GetSecondYear(season any) (int, error) {
	first, err := GetFirstYear(season)
	if err != nil {
		return 0, err
	}
	return first + 1, nil
}

// IsSameSeason returns true if the two parameters represent the same season
func IsSameSeason(s1 any, s2 any) (bool, error) {
	season1, err := ParseSeason(s1)
	if err != nil {
		return false, err
	}
	season2, err := ParseSeason(s2)
	if err != nil {
		return false, err
	}
	return season1 == season2, nil
}

// SeasonTag turns 2024/25 into 2024_25 for use in file names
func SeasonTag(season string) string {
	s, err := ParseSeason(season)
	if err != nil {
		return strings.NewReplacer("/", "_", "-", "_").Replace(season)
	}
	return strings.Replace(s, "/", "_", 1)
}

// GenerateSeasons lists every configured season. Seasons run from 1 August to 31 May.
func GenerateSeasons(cfg *Config) ([]Season, error) {
	current, err := ParseSeason(cfg.CurrentSeason)
	if err != nil {
		return nil, err
	}
	matchdays := Matchdays(cfg.League.NumClubs)
	seasons := make([]Season, 0, len(cfg.Seasons))
	for i, raw := range cfg.Seasons {
		s, err := ParseSeason(raw)
		if err != nil {
			return nil, err
		}
		first, _ := GetFirstYear(s)
		seasons = append(seasons, Season{
			SeasonID:     fmt.Sprintf("S%02d", i+1),
			Season:       s,
			StartYear:    first,
			EndYear:      first + 1,
			StartDate:    fmt.Sprintf("%04d-08-01", first),
			EndDate:      fmt.Sprintf("%04d-05-31", first+1),
			NumMatchdays: matchdays,
			IsCurrent:    s == current,
		})
	}
	return seasons, nil
}

// Matchdays is the number of rounds in a double round-robin of n clubs
func Matchdays(n int) int {
	if n < 2 {
		return 0
	}
	if n%2 == 1 {
		n++
	}
	return 2 * (n - 1)
}
