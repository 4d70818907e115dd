package fdl

import (
	"fmt"
	"math"
	"time"

	"github.com/richard-senior/footballlab/pkg/util"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

var _ Persistable = (*Match)(nil)

// Match is one row of the season's match file
type Match struct {
	MatchID           string `json:"match_id" column:"match_id" dbtype:"TEXT NOT NULL" primary:"true"`
	Season            string `json:"season" column:"season" dbtype:"TEXT NOT NULL" index:"true"`
	Matchday          int    `json:"matchday" column:"matchday" dbtype:"INTEGER NOT NULL" index:"true"`
	Date              string `json:"date" column:"date" dbtype:"TEXT NOT NULL"`
	HomeClubID        string `json:"home_club_id" column:"home_club_id" dbtype:"TEXT NOT NULL" index:"true" fk:"clubs.club_id"`
	HomeClubName      string `json:"home_club_name" column:"home_club_name" dbtype:"TEXT NOT NULL"`
	AwayClubID        string `json:"away_club_id" column:"away_club_id" dbtype:"TEXT NOT NULL" index:"true" fk:"clubs.club_id"`
	AwayClubName      string `json:"away_club_name" column:"away_club_name" dbtype:"TEXT NOT NULL"`
	HomeGoals         int    `json:"home_goals" column:"home_goals" dbtype:"INTEGER NOT NULL"`
	AwayGoals         int    `json:"away_goals" column:"away_goals" dbtype:"INTEGER NOT NULL"`
	HalfTimeHomeGoals int    `json:"ht_home_goals" column:"ht_home_goals" dbtype:"INTEGER"`
	HalfTimeAwayGoals int    `json:"ht_away_goals" column:"ht_away_goals" dbtype:"INTEGER"`
	HomeYellowCards   int    `json:"home_yellow_cards" column:"home_yellow_cards" dbtype:"INTEGER"`
	AwayYellowCards   int    `json:"away_yellow_cards" column:"away_yellow_cards" dbtype:"INTEGER"`
	HomeRedCards      int    `json:"home_red_cards" column:"home_red_cards" dbtype:"INTEGER"`
	AwayRedCards      int    `json:"away_red_cards" column:"away_red_cards" dbtype:"INTEGER"`
	Attendance        int    `json:"attendance" column:"attendance" dbtype:"INTEGER"`
	Status            string `json:"status" column:"status" dbtype:"TEXT NOT NULL"`
}

func (m *Match) GetTableName() string {
	return "matches"
}

// Result returns W, D or L from the point of view of club
func (m *Match) Result(clubID string) string {
	gf, ga := m.HomeGoals, m.AwayGoals
	if clubID == m.AwayClubID {
		gf, ga = ga, gf
	}
	switch {
	case gf > ga:
		return "W"
	case gf < ga:
		return "L"
	default:
		return "D"
	}
}

// GenerateFixtures builds a double round-robin with the circle method. One club stays
// fixed while the others rotate; the fixed club alternates venue each round and the
// second half of the season repeats the first with venues swapped. With an odd number
// of clubs each round has one bye.
func GenerateFixtures(cfg *Config, s *util.Sampler, ids *util.IDSequence, clubs []Club, season string) ([]Match, error) {
	if len(clubs) < 2 {
		return nil, fmt.Errorf("at least two clubs are needed for a fixture list, got %d", len(clubs))
	}
	season, err := ParseSeason(season)
	if err != nil {
		return nil, err
	}
	firstYear, _ := GetFirstYear(season)
	start := time.Date(firstYear, time.Month(cfg.Match.SeasonStartMonth), cfg.Match.SeasonStartDay, 0, 0, 0, 0, time.UTC)

	teams := make([]*Club, len(clubs))
	for i, p := range s.Perm(len(clubs)) {
		teams[i] = &clubs[p]
	}
	if len(teams)%2 != 0 {
		teams = append(teams, nil)
	}
	n := len(teams)
	rounds := n - 1

	type pairing struct {
		home, away *Club
		matchday   int
	}
	var firstHalf []pairing
	for r := 0; r < rounds; r++ {
		for j := 0; j < n/2; j++ {
			home, away := teams[j], teams[n-1-j]
			if j == 0 && r%2 == 1 {
				home, away = away, home
			}
			if home != nil && away != nil {
				firstHalf = append(firstHalf, pairing{home, away, r + 1})
			}
		}
		last := teams[n-1]
		copy(teams[2:], teams[1:n-1])
		teams[1] = last
	}

	matches := make([]Match, 0, 2*len(firstHalf))
	add := func(home, away *Club, matchday int) {
		matches = append(matches, Match{
			MatchID:      ids.Next(),
			Season:       season,
			Matchday:     matchday,
			Date:         start.AddDate(0, 0, (matchday-1)*cfg.Match.DaysBetweenRounds).Format("2006-01-02"),
			HomeClubID:   home.ClubID,
			HomeClubName: home.Name,
			AwayClubID:   away.ClubID,
			AwayClubName: away.Name,
			Status:       StatusScheduled,
		})
	}
	for _, p := range firstHalf {
		add(p.home, p.away, p.matchday)
	}
	for _, p := range firstHalf {
		add(p.away, p.home, p.matchday+rounds)
	}
	return matches, nil
}

// ExpectedGoals splits the configured goals per match by relative strength.
// The home side's strength is lifted by the home advantage first.
func ExpectedGoals(mc MatchConfig, homeStrength, awayStrength float64) (float64, float64) {
	h := math.Pow(math.Max(homeStrength, 1)*(1+mc.HomeAdvantage), mc.StrengthExponent)
	a := math.Pow(math.Max(awayStrength, 1), mc.StrengthExponent)
	homeXG := h / (h + a) * mc.GoalsPerMatch
	return homeXG, mc.GoalsPerMatch - homeXG
}

// SimulateMatch fills in the result of m
func SimulateMatch(mc MatchConfig, s *util.Sampler, m *Match, homeStrength, awayStrength float64, capacity int) {
	homeXG, awayXG := ExpectedGoals(mc, homeStrength, awayStrength)
	m.HomeGoals = s.Poisson(homeXG)
	m.AwayGoals = s.Poisson(awayXG)
	m.HalfTimeHomeGoals = s.Binomial(m.HomeGoals, mc.FirstHalfShare)
	m.HalfTimeAwayGoals = s.Binomial(m.AwayGoals, mc.FirstHalfShare)
	m.HomeYellowCards = s.Poisson(mc.YellowCardsPerSide)
	m.AwayYellowCards = s.Poisson(mc.YellowCardsPerSide)
	m.HomeRedCards = s.Poisson(mc.RedCardsPerSide)
	m.AwayRedCards = s.Poisson(mc.RedCardsPerSide)
	m.Attendance = int(math.Round(float64(capacity) * s.Uniform(mc.AttendanceFill.Min, mc.AttendanceFill.Max)))
	m.Status = StatusCompleted
}

// SimulateSeason plays every match in order. strengths maps club id to team strength;
// clubs missing from it play at the default strength.
func SimulateSeason(cfg *Config, s *util.Sampler, matches []Match, clubs []Club, strengths map[string]float64) error {
	index := ClubIndex(clubs)
	strength := func(id string) float64 {
		if v, ok := strengths[id]; ok {
			return v
		}
		return cfg.Match.DefaultStrength
	}
	for i := range matches {
		m := &matches[i]
		home, ok := index[m.HomeClubID]
		if !ok {
			return fmt.Errorf("match %s refers to unknown club %s", m.MatchID, m.HomeClubID)
		}
		if _, ok := index[m.AwayClubID]; !ok {
			return fmt.Errorf("match %s refers to unknown club %s", m.MatchID, m.AwayClubID)
		}
		SimulateMatch(cfg.Match, s, m, strength(m.HomeClubID), strength(m.AwayClubID), home.StadiumCapacity)
	}
	return nil
}

// TeamStrengths computes the mean overall rating of each club's senior squad
func TeamStrengths(clubs []Club, players []Player, fallback float64) map[string]float64 {
	byClub := map[string][]Player{}
	for _, p := range players {
		byClub[p.ClubID] = append(byClub[p.ClubID], p)
	}
	out := make(map[string]float64, len(clubs))
	for _, c := range clubs {
		out[c.ClubID] = TeamStrength(byClub[c.ClubID], fallback)
	}
	return out
}
