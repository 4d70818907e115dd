package fdl

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/richard-senior/footballlab/pkg/util"
)

var _ Persistable = (*Player)(nil)

// Attributes holds every attribute any position carries. Attributes a position
// does not carry stay at zero.
type Attributes struct {
	Pace           int `json:"pace" column:"pace" dbtype:"INTEGER"`
	Strength       int `json:"strength" column:"strength" dbtype:"INTEGER"`
	Stamina        int `json:"stamina" column:"stamina" dbtype:"INTEGER"`
	Diving         int `json:"diving" column:"diving" dbtype:"INTEGER"`
	Handling       int `json:"handling" column:"handling" dbtype:"INTEGER"`
	Kicking        int `json:"kicking" column:"kicking" dbtype:"INTEGER"`
	Reflexes       int `json:"reflexes" column:"reflexes" dbtype:"INTEGER"`
	Tackling       int `json:"tackling" column:"tackling" dbtype:"INTEGER"`
	Marking        int `json:"marking" column:"marking" dbtype:"INTEGER"`
	Heading        int `json:"heading" column:"heading" dbtype:"INTEGER"`
	Passing        int `json:"passing" column:"passing" dbtype:"INTEGER"`
	BallControl    int `json:"ball_control" column:"ball_control" dbtype:"INTEGER"`
	Dribbling      int `json:"dribbling" column:"dribbling" dbtype:"INTEGER"`
	Shooting       int `json:"shooting" column:"shooting" dbtype:"INTEGER"`
	Finishing      int `json:"finishing" column:"finishing" dbtype:"INTEGER"`
	Positioning    int `json:"positioning" column:"positioning" dbtype:"INTEGER"`
	Concentration  int `json:"concentration" column:"concentration" dbtype:"INTEGER"`
	DecisionMaking int `json:"decision_making" column:"decision_making" dbtype:"INTEGER"`
	Leadership     int `json:"leadership" column:"leadership" dbtype:"INTEGER"`
	Vision         int `json:"vision" column:"vision" dbtype:"INTEGER"`
	WorkRate       int `json:"work_rate" column:"work_rate" dbtype:"INTEGER"`
	Composure      int `json:"composure" column:"composure" dbtype:"INTEGER"`
}

func (a *Attributes) field(name string) *int {
	switch name {
	case "pace":
		return &a.Pace
	case "strength":
		return &a.Strength
	case "stamina":
		return &a.Stamina
	case "diving":
		return &a.Diving
	case "handling":
		return &a.Handling
	case "kicking":
		return &a.Kicking
	case "reflexes":
		return &a.Reflexes
	case "tackling":
		return &a.Tackling
	case "marking":
		return &a.Marking
	case "heading":
		return &a.Heading
	case "passing":
		return &a.Passing
	case "ball_control":
		return &a.BallControl
	case "dribbling":
		return &a.Dribbling
	case "shooting":
		return &a.Shooting
	case "finishing":
		return &a.Finishing
	case "positioning":
		return &a.Positioning
	case "concentration":
		return &a.Concentration
	case "decision_making":
		return &a.DecisionMaking
	case "leadership":
		return &a.Leadership
	case "vision":
		return &a.Vision
	case "work_rate":
		return &a.WorkRate
	case "composure":
		return &a.Composure
	}
	return nil
}

// IsAttribute reports whether name is a known attribute
func IsAttribute(name string) bool {
	var a Attributes
	return a.field(name) != nil
}

// Get returns the named attribute, or 0 for unknown names
func (a *Attributes) Get(name string) int {
	if f := a.field(name); f != nil {
		return *f
	}
	return 0
}

// Set stores v in the named attribute
func (a *Attributes) Set(name string, v int) error {
	f := a.field(name)
	if f == nil {
		return fmt.Errorf("unknown attribute %s", name)
	}
	*f = v
	return nil
}

// Player is one row of players.csv or youth_academy.csv
type Player struct {
	PlayerID           string   `json:"player_id" column:"player_id" dbtype:"TEXT NOT NULL" primary:"true"`
	ClubID             string   `json:"club_id" column:"club_id" dbtype:"TEXT NOT NULL" index:"true" fk:"clubs.club_id"`
	FirstName          string   `json:"first_name" column:"first_name" dbtype:"TEXT NOT NULL"`
	LastName           string   `json:"last_name" column:"last_name" dbtype:"TEXT NOT NULL"`
	FullName           string   `json:"full_name" column:"full_name" dbtype:"TEXT NOT NULL"`
	Nationality        string   `json:"nationality" column:"nationality" dbtype:"TEXT NOT NULL" index:"true"`
	DateOfBirth        string   `json:"date_of_birth" column:"date_of_birth" dbtype:"TEXT"`
	Age                int      `json:"age" column:"age" dbtype:"INTEGER NOT NULL"`
	HeightCm           int      `json:"height_cm" column:"height_cm" dbtype:"INTEGER"`
	WeightKg           int      `json:"weight_kg" column:"weight_kg" dbtype:"INTEGER"`
	PreferredFoot      string   `json:"preferred_foot" column:"preferred_foot" dbtype:"TEXT"`
	Position           Position `json:"position" column:"position" dbtype:"TEXT NOT NULL" index:"true"`
	SpecificPosition   string   `json:"specific_position" column:"specific_position" dbtype:"TEXT"`
	SecondaryPositions string   `json:"secondary_positions" column:"secondary_positions" dbtype:"TEXT"`
	JerseyNumber       int      `json:"jersey_number" column:"jersey_number" dbtype:"INTEGER"`
	OverallRating      float64  `json:"overall_rating" column:"overall_rating" dbtype:"REAL NOT NULL"`
	Potential          float64  `json:"potential" column:"potential" dbtype:"REAL NOT NULL"`
	Attributes
	ContractYears      int     `json:"contract_years_remaining" column:"contract_years_remaining" dbtype:"INTEGER"`
	MarketValue        int64   `json:"market_value" column:"market_value" dbtype:"INTEGER NOT NULL"`
	WeeklyWage         int64   `json:"weekly_wage" column:"weekly_wage" dbtype:"INTEGER NOT NULL"`
	ValueScore         float64 `json:"value_score" column:"value_score" dbtype:"REAL"`
	CurrentForm        float64 `json:"current_form" column:"current_form" dbtype:"REAL"`
	FitnessLevel       int     `json:"fitness_level" column:"fitness_level" dbtype:"INTEGER"`
	Morale             int     `json:"morale" column:"morale" dbtype:"INTEGER"`
	Professionalism    int     `json:"professionalism" column:"professionalism" dbtype:"INTEGER"`
	Consistency        int     `json:"consistency" column:"consistency" dbtype:"INTEGER"`
	InjuryProneness    int     `json:"injury_proneness" column:"injury_proneness" dbtype:"INTEGER"`
	Temperament        string  `json:"temperament" column:"temperament" dbtype:"TEXT"`
	IsYouth            bool    `json:"is_youth" column:"is_youth" dbtype:"INTEGER NOT NULL"`
	YouthEntryYear     int     `json:"youth_entry_year" column:"youth_entry_year" dbtype:"INTEGER"`
	PromotionReadiness string  `json:"promotion_readiness" column:"promotion_readiness" dbtype:"TEXT"`
}

func (p *Player) GetTableName() string {
	if p.IsYouth {
		return "youth_academy"
	}
	return "players"
}

// OverallRating is the position-weighted mean of the attributes, to one decimal place
func OverallRating(pos *PositionProfile, a *Attributes, bounds Range) float64 {
	total, weights := 0.0, 0.0
	for _, w := range pos.RatingWeights {
		total += float64(a.Get(w.Attribute)) * w.Weight
		weights += w.Weight
	}
	if weights == 0 {
		return float64(bounds.Min)
	}
	return util.Clamp(util.RoundTo(total/weights, 1), float64(bounds.Min), float64(bounds.Max))
}

// MarketValue grows with rating and, for young players, with the gap to potential.
// Past the peak age bands it falls away. The result lies in [v.Min, v.Max].
func MarketValue(v ValueConfig, positionMultiplier float64, age int, rating, potential float64) int64 {
	var ageMultiplier float64
	switch {
	case age < v.YoungAge:
		ageMultiplier = v.YoungBase + math.Max(0, potential-rating)/v.YoungHeadroomScale
	case age < v.PrimeAge:
		ageMultiplier = v.PrimeMultiplier
	case age < v.PeakAge:
		ageMultiplier = v.PeakMultiplier
	case age < v.DecliningAge:
		ageMultiplier = v.DecliningMultiplier
	default:
		ageMultiplier = v.VeteranMultiplier
	}
	value := rating * v.PerRatingPoint * ageMultiplier * positionMultiplier
	return int64(math.Round(util.Clamp(value, v.Min, v.Max)))
}

// WeeklyWage is a fixed share of market value spread over 52 weeks, never below the minimum
func WeeklyWage(v ValueConfig, marketValue int64) int64 {
	return int64(math.Round(math.Max(v.MinWeeklyWage, float64(marketValue)*v.AnnualWageShare/52)))
}

// ValueScore is rating per million of market value
func ValueScore(rating float64, marketValue int64) float64 {
	if marketValue <= 0 {
		return 0
	}
	return util.RoundTo(rating/(float64(marketValue)/1e6), 2)
}

type playerFactory struct {
	cfg        *Config
	s          *util.Sampler
	names      *namer
	seasonYear int
}

func newPlayerFactory(cfg *Config, s *util.Sampler) (*playerFactory, error) {
	year, err := GetFirstYear(cfg.CurrentSeason)
	if err != nil {
		return nil, err
	}
	return &playerFactory{cfg: cfg, s: s, names: newNamer(cfg), seasonYear: year}, nil
}

// seniorAge picks an age band by share, then an age inside it
func (f *playerFactory) seniorAge() (int, error) {
	band, err := util.WeightedChoice(f.s, f.cfg.Players.AgeBands, func(b AgeBand) float64 { return b.Share })
	if err != nil {
		return 0, fmt.Errorf("failed to choose age band: %w", err)
	}
	return f.s.IntBetween(band.Ages.Min, band.Ages.Max), nil
}

func (f *playerFactory) ageShift(group AttributeGroup, name string, age int) int {
	for _, e := range f.cfg.Players.AgeEffects {
		if e.Group != group || age > e.MaxAge {
			continue
		}
		if len(e.Attributes) > 0 && !slices.Contains(e.Attributes, name) {
			continue
		}
		return f.s.IntBetween(e.Shift.Min, e.Shift.Max)
	}
	return 0
}

func (f *playerFactory) attributes(pos *PositionProfile, age, offset int) Attributes {
	var a Attributes
	bounds := f.cfg.Players.Rating
	for _, spec := range pos.Attributes {
		v := f.s.IntBetween(spec.Range.Min, spec.Range.Max) + offset + f.ageShift(spec.Group, spec.Name, age)
		// names were checked by ValidateConfig
		_ = a.Set(spec.Name, util.ClampInt(v, bounds.Min, bounds.Max))
	}
	return a
}

func (f *playerFactory) potential(age int, rating float64) float64 {
	bounds := f.cfg.Players.Rating
	for _, h := range f.cfg.Players.Headroom {
		if age <= h.MaxAge {
			p := util.RoundTo(rating+f.s.Uniform(h.Headroom.Min, h.Headroom.Max), 1)
			return util.Clamp(p, rating, float64(bounds.Max))
		}
	}
	return rating
}

func (f *playerFactory) secondaryPositions(role string) string {
	var compatible []string
	for _, l := range f.cfg.Players.RoleLinks {
		if l.Role == role {
			compatible = l.Compatible
			break
		}
	}
	if len(compatible) == 0 {
		return ""
	}
	n, err := f.s.WeightedIndex(f.cfg.Players.SecondaryCount)
	if err != nil || n == 0 {
		return ""
	}
	idx := f.s.Sample(len(compatible), n)
	picked := make([]string, len(idx))
	for i, j := range idx {
		picked[i] = compatible[j]
	}
	return strings.Join(picked, ", ")
}

// dateOfBirth makes age hold on 1 August of the season's first year
func (f *playerFactory) dateOfBirth(age int) string {
	month := f.s.IntBetween(1, 12)
	day := f.s.IntBetween(1, 28)
	year := f.seasonYear - age
	if month >= 8 {
		year--
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// newPlayer builds a complete player for club. offset is the tier rating offset.
func (f *playerFactory) newPlayer(id string, club *Club, pos *PositionProfile, age, offset int) (Player, error) {
	pc := f.cfg.Players
	nat, name, err := f.names.Person(f.s)
	if err != nil {
		return Player{}, err
	}
	role := util.Pick(f.s, pos.Roles)
	secondary := f.secondaryPositions(role)

	attrs := f.attributes(pos, age, offset)
	overall := OverallRating(pos, &attrs, pc.Rating)
	potential := f.potential(age, overall)
	value := MarketValue(f.cfg.Value, pos.ValueMultiplier, age, overall, potential)

	height := f.s.IntBetween(pos.HeightCm.Min, pos.HeightCm.Max)
	weight := int(math.Round(float64(height) * f.s.Uniform(pc.WeightKgPerCm.Min, pc.WeightKgPerCm.Max)))
	foot, err := util.WeightedChoice(f.s, pc.PreferredFoot, func(o WeightedOption) float64 { return o.Weight })
	if err != nil {
		return Player{}, fmt.Errorf("failed to choose preferred foot: %w", err)
	}

	return Player{
		PlayerID:           id,
		ClubID:             club.ClubID,
		FirstName:          name.First,
		LastName:           name.Last,
		FullName:           name.Full(),
		Nationality:        nat.Name,
		DateOfBirth:        f.dateOfBirth(age),
		Age:                age,
		HeightCm:           height,
		WeightKg:           weight,
		PreferredFoot:      foot.Value,
		Position:           pos.Position,
		SpecificPosition:   role,
		SecondaryPositions: secondary,
		OverallRating:      overall,
		Potential:          potential,
		Attributes:         attrs,
		ContractYears:      f.s.IntBetween(pc.ContractYears.Min, pc.ContractYears.Max),
		MarketValue:        value,
		WeeklyWage:         WeeklyWage(f.cfg.Value, value),
		ValueScore:         ValueScore(overall, value),
		CurrentForm:        util.RoundTo(f.s.Uniform(pc.Form.Min, pc.Form.Max), 1),
		FitnessLevel:       f.s.IntBetween(pc.Fitness.Min, pc.Fitness.Max),
		Morale:             f.s.IntBetween(pc.Morale.Min, pc.Morale.Max),
		Professionalism:    f.s.IntBetween(pc.Personality.Min, pc.Personality.Max),
		Consistency:        f.s.IntBetween(pc.Personality.Min, pc.Personality.Max),
		InjuryProneness:    f.s.IntBetween(pc.Personality.Min, pc.Personality.Max),
		Temperament:        util.Pick(f.s, pc.Temperaments),
	}, nil
}

// SquadShape draws a squad size and splits it over the positions. Every position
// gets its minimum, the rest is filled by weight without passing any maximum.
func SquadShape(cfg *Config, s *util.Sampler) ([]int, error) {
	size := s.IntBetween(cfg.Squad.Size.Min, cfg.Squad.Size.Max)
	counts := make([]int, len(cfg.Positions))
	remaining := size
	for i, p := range cfg.Positions {
		counts[i] = p.SquadMin
		remaining -= p.SquadMin
	}
	weights := make([]float64, len(cfg.Positions))
	for ; remaining > 0; remaining-- {
		for i, p := range cfg.Positions {
			weights[i] = 0
			if counts[i] < p.SquadMax {
				weights[i] = p.FillWeight
			}
		}
		i, err := s.WeightedIndex(weights)
		if err != nil {
			return nil, fmt.Errorf("%w: squad of %d cannot be filled: %v", ErrInvalidConfig, size, err)
		}
		counts[i]++
	}
	return counts, nil
}

// jerseyNumbers hands goalkeepers their traditional numbers first and everyone
// else a shuffled number from the rest of the range
type jerseyNumbers struct {
	keeper []int
	pool   []int
}

func newJerseyNumbers(cfg *Config, s *util.Sampler) *jerseyNumbers {
	j := &jerseyNumbers{keeper: slices.Clone(cfg.Squad.GoalkeeperNumbers)}
	for n := cfg.Squad.JerseyNumbers.Min; n <= cfg.Squad.JerseyNumbers.Max; n++ {
		if !slices.Contains(j.keeper, n) {
			j.pool = append(j.pool, n)
		}
	}
	s.Shuffle(len(j.pool), func(a, b int) { j.pool[a], j.pool[b] = j.pool[b], j.pool[a] })
	return j
}

func (j *jerseyNumbers) next(p Position) int {
	if p == Goalkeeper && len(j.keeper) > 0 {
		n := j.keeper[0]
		j.keeper = j.keeper[1:]
		return n
	}
	if len(j.pool) == 0 {
		// unused goalkeeper numbers are the last resort
		n := j.keeper[0]
		j.keeper = j.keeper[1:]
		return n
	}
	n := j.pool[0]
	j.pool = j.pool[1:]
	return n
}

// GenerateSquad creates the senior squad of club
func GenerateSquad(cfg *Config, s *util.Sampler, ids *util.IDSequence, club *Club) ([]Player, error) {
	f, err := newPlayerFactory(cfg, s)
	if err != nil {
		return nil, err
	}
	tier, err := cfg.Tier(club.Tier)
	if err != nil {
		return nil, err
	}
	counts, err := SquadShape(cfg, s)
	if err != nil {
		return nil, err
	}
	numbers := newJerseyNumbers(cfg, s)

	var squad []Player
	for i := range cfg.Positions {
		pos := &cfg.Positions[i]
		for n := 0; n < counts[i]; n++ {
			age, err := f.seniorAge()
			if err != nil {
				return nil, err
			}
			p, err := f.newPlayer(ids.Next(), club, pos, age, tier.RatingOffset)
			if err != nil {
				return nil, fmt.Errorf("failed to generate player for %s: %w", club.Name, err)
			}
			p.JerseyNumber = numbers.next(pos.Position)
			squad = append(squad, p)
		}
	}
	return squad, nil
}

// TeamStrength is the mean overall rating of the given players, or fallback when there are none
func TeamStrength(players []Player, fallback float64) float64 {
	if len(players) == 0 {
		return fallback
	}
	total := 0.0
	for _, p := range players {
		total += p.OverallRating
	}
	return total / float64(len(players))
}
