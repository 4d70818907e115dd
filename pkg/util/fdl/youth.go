package fdl

import (
	"math"
	"sort"

	"github.com/richard-senior/footballlab/pkg/util"
)

const (
	ReadinessReady      = "Ready"
	ReadinessAlmost     = "Almost Ready"
	ReadinessDeveloping = "Developing"
)

// PromotionReadiness classifies a prospect by current rating
func PromotionReadiness(y YouthConfig, rating float64) string {
	switch {
	case rating >= float64(y.ReadyRating):
		return ReadinessReady
	case rating >= float64(y.AlmostRating):
		return ReadinessAlmost
	default:
		return ReadinessDeveloping
	}
}

// GenerateYouth creates the academy prospects of club. Prospects are built like senior
// players, then held back by the youth penalty and given a high potential.
func GenerateYouth(cfg *Config, s *util.Sampler, ids *util.IDSequence, club *Club) ([]Player, error) {
	f, err := newPlayerFactory(cfg, s)
	if err != nil {
		return nil, err
	}
	tier, err := cfg.Tier(club.Tier)
	if err != nil {
		return nil, err
	}
	yc := cfg.Youth
	bounds := cfg.Players.Rating

	youth := make([]Player, 0, yc.PlayersPerClub)
	for i := 0; i < yc.PlayersPerClub; i++ {
		pos := &cfg.Positions[s.IntBetween(0, len(cfg.Positions)-1)]
		age := s.IntBetween(yc.Ages.Min, yc.Ages.Max)
		p, err := f.newPlayer(ids.Next(), club, pos, age, tier.RatingOffset-yc.RatingPenalty)
		if err != nil {
			return nil, err
		}

		potential := float64(s.IntBetween(yc.Potential.Min, yc.Potential.Max))
		rating := math.Max(p.OverallRating, float64(yc.RatingFloor))
		rating = math.Min(rating, potential-float64(yc.MinHeadroom))
		p.OverallRating = util.Clamp(rating, float64(bounds.Min), float64(bounds.Max))
		p.Potential = potential
		p.MarketValue = MarketValue(cfg.Value, pos.ValueMultiplier, age, p.OverallRating, p.Potential)
		p.WeeklyWage = WeeklyWage(cfg.Value, p.MarketValue)
		p.ValueScore = ValueScore(p.OverallRating, p.MarketValue)
		p.ContractYears = s.IntBetween(1, 3)
		p.JerseyNumber = 0
		p.IsYouth = true
		p.YouthEntryYear = f.seasonYear - s.IntBetween(0, age-yc.Ages.Min)
		p.PromotionReadiness = PromotionReadiness(yc, p.OverallRating)
		youth = append(youth, p)
	}
	return youth, nil
}

// PromotionCandidates returns the prospects rated Ready, best first
func PromotionCandidates(youth []Player) []Player {
	var out []Player
	for _, p := range youth {
		if p.PromotionReadiness == ReadinessReady {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OverallRating != out[j].OverallRating {
			return out[i].OverallRating > out[j].OverallRating
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}
