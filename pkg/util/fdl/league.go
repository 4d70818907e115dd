package fdl

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/richard-senior/footballlab/pkg/util"
)

var _ Persistable = (*LeagueInfo)(nil)

// LeagueInfo is the single row of league_info.csv
type LeagueInfo struct {
	DatasetID        string `json:"dataset_id" column:"dataset_id" dbtype:"TEXT NOT NULL"`
	LeagueID         string `json:"league_id" column:"league_id" dbtype:"TEXT NOT NULL" primary:"true"`
	Name             string `json:"league_name" column:"league_name" dbtype:"TEXT NOT NULL"`
	ShortName        string `json:"short_name" column:"short_name" dbtype:"TEXT"`
	Country          string `json:"country" column:"country" dbtype:"TEXT"`
	NumTeams         int    `json:"num_teams" column:"num_teams" dbtype:"INTEGER NOT NULL"`
	NumMatchdays     int    `json:"num_matchdays" column:"num_matchdays" dbtype:"INTEGER NOT NULL"`
	PromotionSpots   int    `json:"promotion_spots" column:"promotion_spots" dbtype:"INTEGER"`
	RelegationSpots  int    `json:"relegation_spots" column:"relegation_spots" dbtype:"INTEGER"`
	ContinentalSpots int    `json:"continental_spots" column:"continental_spots" dbtype:"INTEGER"`
	SeasonFormat     string `json:"season_format" column:"season_format" dbtype:"TEXT"`
	PointsForWin     int    `json:"points_for_win" column:"points_for_win" dbtype:"INTEGER NOT NULL"`
	PointsForDraw    int    `json:"points_for_draw" column:"points_for_draw" dbtype:"INTEGER NOT NULL"`
	PointsForLoss    int    `json:"points_for_loss" column:"points_for_loss" dbtype:"INTEGER NOT NULL"`
	CurrentSeason    string `json:"current_season" column:"current_season" dbtype:"TEXT NOT NULL"`
	Seed             int64  `json:"seed" column:"seed" dbtype:"INTEGER NOT NULL"`
}

func (l *LeagueInfo) GetTableName() string {
	return "league_info"
}

// GenerateLeagueInfo describes the league. The dataset id is drawn from the seeded
// stream so it is stable for a given seed.
func GenerateLeagueInfo(cfg *Config, s *util.Sampler, seed int64) (*LeagueInfo, error) {
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset id: %w", err)
	}
	current, err := ParseSeason(cfg.CurrentSeason)
	if err != nil {
		return nil, err
	}
	l := cfg.League
	return &LeagueInfo{
		DatasetID:        id.String(),
		LeagueID:         l.ID,
		Name:             l.Name,
		ShortName:        l.ShortName,
		Country:          l.Country,
		NumTeams:         l.NumClubs,
		NumMatchdays:     Matchdays(l.NumClubs),
		PromotionSpots:   l.PromotionSpots,
		RelegationSpots:  l.RelegationSpots,
		ContinentalSpots: l.ContinentalSpots,
		SeasonFormat:     l.Format,
		PointsForWin:     l.PointsForWin,
		PointsForDraw:    l.PointsForDraw,
		PointsForLoss:    l.PointsForLoss,
		CurrentSeason:    current,
		Seed:             seed,
	}, nil
}
