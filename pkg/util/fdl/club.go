package fdl

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/richard-senior/footballlab/pkg/util"
)

var _ Persistable = (*Club)(nil)

// Club is one row of clubs.csv
type Club struct {
	ClubID             string `json:"club_id" column:"club_id" dbtype:"TEXT NOT NULL" primary:"true"`
	Name               string `json:"club_name" column:"club_name" dbtype:"TEXT NOT NULL" index:"true"`
	ShortName          string `json:"short_name" column:"short_name" dbtype:"TEXT NOT NULL"`
	Slug               string `json:"slug" column:"slug" dbtype:"TEXT NOT NULL"`
	City               string `json:"city" column:"city" dbtype:"TEXT NOT NULL"`
	Tier               Tier   `json:"tier" column:"tier" dbtype:"TEXT NOT NULL" index:"true"`
	FoundedYear        int    `json:"founded_year" column:"founded_year" dbtype:"INTEGER"`
	StadiumName        string `json:"stadium_name" column:"stadium_name" dbtype:"TEXT"`
	StadiumCapacity    int    `json:"stadium_capacity" column:"stadium_capacity" dbtype:"INTEGER"`
	PrimaryColour      string `json:"primary_color" column:"primary_color" dbtype:"TEXT"`
	SecondaryColour    string `json:"secondary_color" column:"secondary_color" dbtype:"TEXT"`
	BudgetMillions     int    `json:"annual_budget_millions" column:"annual_budget_millions" dbtype:"INTEGER"`
	Reputation         int    `json:"reputation" column:"reputation" dbtype:"INTEGER"`
	TrainingFacilities int    `json:"training_facility_rating" column:"training_facility_rating" dbtype:"INTEGER"`
	YouthAcademy       int    `json:"youth_academy_rating" column:"youth_academy_rating" dbtype:"INTEGER"`
	Formation          string `json:"preferred_formation" column:"preferred_formation" dbtype:"TEXT"`
	PlayingStyle       string `json:"playing_style" column:"playing_style" dbtype:"TEXT"`
}

func (c *Club) GetTableName() string {
	return "clubs"
}

// TierFor assigns a tier to the club at index (0 based) of n by walking the
// cumulative tier shares, so 0.3/0.4/0.3 of 20 clubs gives 6/8/6.
func TierFor(index, n int, tiers []TierProfile) Tier {
	cum := 0.0
	for _, t := range tiers {
		cum += t.Share
		if index+1 <= int(math.Round(cum*float64(n))) {
			return t.Tier
		}
	}
	return tiers[len(tiers)-1].Tier
}

// ShortName builds up to four upper case letters from the city initials and the suffix
func ShortName(city, suffix string) string {
	short := util.Initials(city)
	switch suffix {
	case "FC", "Athletic":
		short += suffix[:1]
	default:
		r := []rune(suffix)
		if len(r) > 3 {
			r = r[:3]
		}
		short += string(r)
	}
	short = strings.ToUpper(short)
	if r := []rune(short); len(r) > 4 {
		short = string(r[:4])
	}
	return short
}

// GenerateClubs creates the league's clubs, each in its own city, sorted by reputation
func GenerateClubs(cfg *Config, s *util.Sampler, ids *util.IDSequence) ([]Club, error) {
	n := cfg.League.NumClubs
	cc := cfg.Clubs
	if len(cc.Cities) < n {
		return nil, fmt.Errorf("%w: not enough cities for %d clubs", ErrInvalidConfig, n)
	}
	cities := s.Perm(len(cc.Cities))[:n]

	clubs := make([]Club, 0, n)
	for i, ci := range cities {
		tier := TierFor(i, n, cfg.Tiers)
		tp, err := cfg.Tier(tier)
		if err != nil {
			return nil, err
		}
		city := cc.Cities[ci]
		suffix := util.Pick(s, cc.Suffixes)
		name := city + " " + suffix
		stadiumType := util.Pick(s, cc.StadiumTypes)
		stadium := city + " " + stadiumType
		if !s.Chance(0.5) {
			stadium = util.Pick(s, cc.StadiumDescriptors) + " " + stadiumType
		}
		colours := util.Pick(s, cc.Colours)

		clubs = append(clubs, Club{
			ClubID:             ids.Next(),
			Name:               name,
			ShortName:          ShortName(city, suffix),
			Slug:               util.Slug(name),
			City:               city,
			Tier:               tier,
			FoundedYear:        s.IntBetween(cc.Founded.Min, cc.Founded.Max),
			StadiumName:        stadium,
			StadiumCapacity:    s.IntBetween(tp.StadiumCapacity.Min, tp.StadiumCapacity.Max),
			PrimaryColour:      colours[0],
			SecondaryColour:    colours[1],
			BudgetMillions:     s.IntBetween(tp.BudgetMillions.Min, tp.BudgetMillions.Max),
			Reputation:         s.IntBetween(tp.Reputation.Min, tp.Reputation.Max),
			TrainingFacilities: s.IntBetween(tp.Facilities.Min, tp.Facilities.Max),
			YouthAcademy:       s.IntBetween(tp.Facilities.Min, tp.Facilities.Max),
			Formation:          util.Pick(s, cc.Formations),
			PlayingStyle:       util.Pick(s, cc.PlayingStyles),
		})
	}

	sort.SliceStable(clubs, func(i, j int) bool {
		if clubs[i].Reputation != clubs[j].Reputation {
			return clubs[i].Reputation > clubs[j].Reputation
		}
		return clubs[i].ClubID < clubs[j].ClubID
	})
	return clubs, nil
}

// ClubIndex maps club id to club
func ClubIndex(clubs []Club) map[string]*Club {
	idx := make(map[string]*Club, len(clubs))
	for i := range clubs {
		idx[clubs[i].ClubID] = &clubs[i]
	}
	return idx
}
