package fdl

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Range is an inclusive integer interval
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether v lies inside the range
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FloatRange is a half-open interval [Min,Max) for uniform draws
type FloatRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type Position string

const (
	Goalkeeper Position = "GK"
	Defender   Position = "DEF"
	Midfielder Position = "MID"
	Forward    Position = "FWD"
)

type AttributeGroup string

const (
	Physical  AttributeGroup = "physical"
	Technical AttributeGroup = "technical"
	Mental    AttributeGroup = "mental"
)

type Tier string

const (
	TierTop   Tier = "top"
	TierMid   Tier = "mid"
	TierLower Tier = "lower"
)

// AttributeSpec is the sampling range of one attribute for one position
type AttributeSpec struct {
	Name  string         `yaml:"name"`
	Group AttributeGroup `yaml:"group"`
	Range Range          `yaml:"range"`
}

type RatingWeight struct {
	Attribute string  `yaml:"attribute"`
	Weight    float64 `yaml:"weight"`
}

// PositionProfile holds everything that differs between GK, DEF, MID and FWD
type PositionProfile struct {
	Position        Position        `yaml:"position"`
	SquadMin        int             `yaml:"squad_min"`
	SquadMax        int             `yaml:"squad_max"`
	FillWeight      float64         `yaml:"fill_weight"`
	Roles           []string        `yaml:"roles"`
	Attributes      []AttributeSpec `yaml:"attributes"`
	RatingWeights   []RatingWeight  `yaml:"rating_weights"`
	HeightCm        Range           `yaml:"height_cm"`
	ValueMultiplier float64         `yaml:"value_multiplier"`
}

// AgeBand gives the share of senior players whose age falls in Ages
type AgeBand struct {
	Ages  Range   `yaml:"ages"`
	Share float64 `yaml:"share"`
}

// HeadroomBand applies to players up to and including MaxAge
type HeadroomBand struct {
	MaxAge   int        `yaml:"max_age"`
	Headroom FloatRange `yaml:"headroom"`
}

// AgeEffect shifts attributes of Group for players up to MaxAge.
// When Attributes is set only those attributes are shifted.
type AgeEffect struct {
	Group      AttributeGroup `yaml:"group"`
	MaxAge     int            `yaml:"max_age"`
	Attributes []string       `yaml:"attributes,omitempty"`
	Shift      Range          `yaml:"shift"`
}

type TierProfile struct {
	Tier            Tier    `yaml:"tier"`
	Share           float64 `yaml:"share"`
	RatingOffset    int     `yaml:"rating_offset"`
	StadiumCapacity Range   `yaml:"stadium_capacity"`
	BudgetMillions  Range   `yaml:"budget_millions"`
	Reputation      Range   `yaml:"reputation"`
	Facilities      Range   `yaml:"facilities"`
	StaffQuality    Range   `yaml:"staff_quality"`
}

type Nationality struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	Pool   string  `yaml:"pool"`
}

type WeightedOption struct {
	Value  string  `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

type RoleLink struct {
	Role       string   `yaml:"role"`
	Compatible []string `yaml:"compatible"`
}

type LeagueConfig struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	ShortName        string `yaml:"short_name"`
	Country          string `yaml:"country"`
	NumClubs         int    `yaml:"num_clubs"`
	PromotionSpots   int    `yaml:"promotion_spots"`
	RelegationSpots  int    `yaml:"relegation_spots"`
	ContinentalSpots int    `yaml:"continental_spots"`
	PointsForWin     int    `yaml:"points_for_win"`
	PointsForDraw    int    `yaml:"points_for_draw"`
	PointsForLoss    int    `yaml:"points_for_loss"`
	Format           string `yaml:"format"`
}

type ClubConfig struct {
	Cities             []string    `yaml:"cities"`
	Suffixes           []string    `yaml:"suffixes"`
	StadiumTypes       []string    `yaml:"stadium_types"`
	StadiumDescriptors []string    `yaml:"stadium_descriptors"`
	Colours            [][2]string `yaml:"colours"`
	Founded            Range       `yaml:"founded"`
	Formations         []string    `yaml:"formations"`
	PlayingStyles      []string    `yaml:"playing_styles"`
}

type SquadConfig struct {
	Size              Range `yaml:"size"`
	JerseyNumbers     Range `yaml:"jersey_numbers"`
	GoalkeeperNumbers []int `yaml:"goalkeeper_numbers"`
}

type PlayerConfig struct {
	MinAge         int              `yaml:"min_age"`
	MaxAge         int              `yaml:"max_age"`
	AgeBands       []AgeBand        `yaml:"age_bands"`
	AgeEffects     []AgeEffect      `yaml:"age_effects"`
	Headroom       []HeadroomBand   `yaml:"headroom"`
	Rating         Range            `yaml:"rating"`
	RoleLinks      []RoleLink       `yaml:"role_links"`
	SecondaryCount []float64        `yaml:"secondary_count"`
	PreferredFoot  []WeightedOption `yaml:"preferred_foot"`
	Temperaments   []string         `yaml:"temperaments"`
	WeightKgPerCm  FloatRange       `yaml:"weight_kg_per_cm"`
	ContractYears  Range            `yaml:"contract_years"`
	Form           FloatRange       `yaml:"form"`
	Fitness        Range            `yaml:"fitness"`
	Morale         Range            `yaml:"morale"`
	Personality    Range            `yaml:"personality"`
}

type ValueConfig struct {
	PerRatingPoint      float64 `yaml:"per_rating_point"`
	Min                 float64 `yaml:"min"`
	Max                 float64 `yaml:"max"`
	YoungAge            int     `yaml:"young_age"`
	YoungBase           float64 `yaml:"young_base"`
	YoungHeadroomScale  float64 `yaml:"young_headroom_scale"`
	PrimeAge            int     `yaml:"prime_age"`
	PrimeMultiplier     float64 `yaml:"prime_multiplier"`
	PeakAge             int     `yaml:"peak_age"`
	PeakMultiplier      float64 `yaml:"peak_multiplier"`
	DecliningAge        int     `yaml:"declining_age"`
	DecliningMultiplier float64 `yaml:"declining_multiplier"`
	VeteranMultiplier   float64 `yaml:"veteran_multiplier"`
	AnnualWageShare     float64 `yaml:"annual_wage_share"`
	MinWeeklyWage       float64 `yaml:"min_weekly_wage"`
}

type YouthConfig struct {
	PlayersPerClub int   `yaml:"players_per_club"`
	Ages           Range `yaml:"ages"`
	Potential      Range `yaml:"potential"`
	RatingPenalty  int   `yaml:"rating_penalty"`
	RatingFloor    int   `yaml:"rating_floor"`
	MinHeadroom    int   `yaml:"min_headroom"`
	ReadyRating    int   `yaml:"ready_rating"`
	AlmostRating   int   `yaml:"almost_rating"`
	FirstID        int   `yaml:"first_id"`
}

type MatchConfig struct {
	HomeAdvantage      float64    `yaml:"home_advantage"`
	GoalsPerMatch      float64    `yaml:"goals_per_match"`
	StrengthExponent   float64    `yaml:"strength_exponent"`
	DefaultStrength    float64    `yaml:"default_strength"`
	FirstHalfShare     float64    `yaml:"first_half_share"`
	YellowCardsPerSide float64    `yaml:"yellow_cards_per_side"`
	RedCardsPerSide    float64    `yaml:"red_cards_per_side"`
	AttendanceFill     FloatRange `yaml:"attendance_fill"`
	SeasonStartMonth   int        `yaml:"season_start_month"`
	SeasonStartDay     int        `yaml:"season_start_day"`
	DaysBetweenRounds  int        `yaml:"days_between_rounds"`
}

type StaffConfig struct {
	ManagerRole     string   `yaml:"manager_role"`
	CoachRoles      []string `yaml:"coach_roles"`
	ManagerAge      Range    `yaml:"manager_age"`
	CoachAge        Range    `yaml:"coach_age"`
	ManagerContract Range    `yaml:"manager_contract"`
	CoachContract   Range    `yaml:"coach_contract"`
}

type TransferConfig struct {
	PlayerShare   float64    `yaml:"player_share"`
	FreeChance    float64    `yaml:"free_chance"`
	LoanChance    float64    `yaml:"loan_chance"`
	FeeFactor     FloatRange `yaml:"fee_factor"`
	SummerChance  float64    `yaml:"summer_chance"`
	SummerMonths  []int      `yaml:"summer_months"`
	WinterMonths  []int      `yaml:"winter_months"`
	ContractYears Range      `yaml:"contract_years"`
	Reasons       []string   `yaml:"reasons"`
}

// Config holds every tunable of a generation run. Build it with DefaultConfig,
// optionally overlay a YAML file with LoadConfig, then treat it as read-only.
type Config struct {
	League        LeagueConfig      `yaml:"league"`
	Seasons       []string          `yaml:"seasons"`
	CurrentSeason string            `yaml:"current_season"`
	Clubs         ClubConfig        `yaml:"clubs"`
	Tiers         []TierProfile     `yaml:"tiers"`
	Squad         SquadConfig       `yaml:"squad"`
	Positions     []PositionProfile `yaml:"positions"`
	Players       PlayerConfig      `yaml:"players"`
	Nationalities []Nationality     `yaml:"nationalities"`
	NamePools     []NamePool        `yaml:"name_pools"`
	Value         ValueConfig       `yaml:"value"`
	Youth         YouthConfig       `yaml:"youth"`
	Match         MatchConfig       `yaml:"match"`
	Staff         StaffConfig       `yaml:"staff"`
	Transfers     TransferConfig    `yaml:"transfers"`
}

// DefaultConfig returns the Ironforge Premier League configuration
func DefaultConfig() *Config {
	return &Config{
		League: LeagueConfig{
			ID:               "LG_001",
			Name:             "Ironforge Premier League",
			ShortName:        "IPL",
			Country:          "Aetheria",
			NumClubs:         20,
			PromotionSpots:   3,
			RelegationSpots:  3,
			ContinentalSpots: 4,
			PointsForWin:     3,
			PointsForDraw:    1,
			PointsForLoss:    0,
			Format:           "double_round_robin",
		},
		Seasons:       []string{"2020/21", "2021/22", "2022/23", "2023/24", "2024/25"},
		CurrentSeason: "2024/25",
		Clubs: ClubConfig{
			Cities: []string{
				"Stormwind", "Krondor", "Silverpeak", "Moonlight Bay", "Thunder Valley",
				"Crystal Coast", "Shadow Harbor", "Golden Plains", "Frost Ridge", "Emerald Hills",
				"Crimson Port", "Azure Bay", "Sunset Shore", "Dragon's Keep", "Phoenix Rise",
				"Silver Falls", "Granite City", "Maple Grove", "Riverside", "Oakmont",
				"Pinewood", "Cedarville", "Willowbrook", "Birchfield", "Hawthorne",
			},
			Suffixes: []string{
				"United", "City", "Rangers", "Athletic", "Wanderers", "Town", "Rovers", "FC", "Hotspur",
				"Albion", "County", "Hearts", "Celtic", "Dynamos", "Strikers", "Titans", "Warriors",
			},
			StadiumTypes: []string{"Arena", "Stadium", "Park", "Ground", "Field", "Dome", "Fortress", "Citadel", "Colosseum"},
			StadiumDescriptors: []string{
				"Thunder", "Lightning", "Storm", "Crystal", "Golden", "Silver", "Royal", "Imperial",
				"Grand", "Memorial", "Victory", "Glory", "Honor", "United", "Premier",
			},
			Colours: [][2]string{
				{"Red", "White"}, {"Blue", "White"}, {"Green", "White"}, {"Yellow", "Black"}, {"Black", "White"},
				{"Purple", "Gold"}, {"Orange", "Blue"}, {"Maroon", "Sky Blue"}, {"Navy", "Red"}, {"Crimson", "Silver"},
			},
			Founded:       Range{1880, 2010},
			Formations:    []string{"4-3-3", "4-4-2", "4-2-3-1", "3-5-2", "4-1-4-1", "3-4-3"},
			PlayingStyles: []string{"Possession", "Counter-Attack", "High Pressing", "Defensive", "Balanced", "Direct"},
		},
		Tiers: []TierProfile{
			{Tier: TierTop, Share: 0.30, RatingOffset: 8, StadiumCapacity: Range{45000, 75000}, BudgetMillions: Range{150, 300}, Reputation: Range{75, 95}, Facilities: Range{15, 20}, StaffQuality: Range{15, 20}},
			{Tier: TierMid, Share: 0.40, RatingOffset: 0, StadiumCapacity: Range{25000, 44999}, BudgetMillions: Range{50, 149}, Reputation: Range{50, 74}, Facilities: Range{10, 14}, StaffQuality: Range{10, 14}},
			{Tier: TierLower, Share: 0.30, RatingOffset: -8, StadiumCapacity: Range{15000, 24999}, BudgetMillions: Range{20, 49}, Reputation: Range{30, 49}, Facilities: Range{5, 9}, StaffQuality: Range{5, 9}},
		},
		Squad: SquadConfig{
			Size:              Range{23, 30},
			JerseyNumbers:     Range{1, 99},
			GoalkeeperNumbers: []int{1, 12, 13, 22, 25},
		},
		Positions: defaultPositions(),
		Players: PlayerConfig{
			MinAge: 16,
			MaxAge: 41,
			AgeBands: []AgeBand{
				{Ages: Range{16, 20}, Share: 0.20},
				{Ages: Range{21, 24}, Share: 0.25},
				{Ages: Range{25, 29}, Share: 0.40},
				{Ages: Range{30, 33}, Share: 0.12},
				{Ages: Range{34, 38}, Share: 0.03},
			},
			AgeEffects: []AgeEffect{
				{Group: Physical, MaxAge: 20, Shift: Range{-5, 0}},
				{Group: Physical, MaxAge: 27, Shift: Range{0, 3}},
				{Group: Physical, MaxAge: 30, Shift: Range{0, 0}},
				{Group: Physical, MaxAge: 33, Attributes: []string{"pace", "stamina"}, Shift: Range{-5, -2}},
				{Group: Physical, MaxAge: 33, Shift: Range{-2, 0}},
				{Group: Physical, MaxAge: 99, Attributes: []string{"pace", "stamina"}, Shift: Range{-10, -5}},
				{Group: Physical, MaxAge: 99, Shift: Range{-5, -2}},
				{Group: Technical, MaxAge: 20, Shift: Range{-3, 0}},
				{Group: Technical, MaxAge: 30, Shift: Range{0, 2}},
				{Group: Technical, MaxAge: 33, Shift: Range{0, 0}},
				{Group: Technical, MaxAge: 99, Shift: Range{-2, 0}},
				{Group: Mental, MaxAge: 20, Shift: Range{-5, 0}},
				{Group: Mental, MaxAge: 25, Shift: Range{0, 2}},
				{Group: Mental, MaxAge: 32, Shift: Range{2, 5}},
				{Group: Mental, MaxAge: 99, Shift: Range{0, 3}},
			},
			Headroom: []HeadroomBand{
				{MaxAge: 20, Headroom: FloatRange{10, 25}},
				{MaxAge: 24, Headroom: FloatRange{5, 15}},
				{MaxAge: 27, Headroom: FloatRange{2, 8}},
				{MaxAge: 29, Headroom: FloatRange{0, 3}},
				{MaxAge: 99, Headroom: FloatRange{0, 1}},
			},
			Rating: Range{1, 99},
			RoleLinks: []RoleLink{
				{Role: "CB", Compatible: []string{"RB", "LB", "CDM"}},
				{Role: "LB", Compatible: []string{"CB", "LWB", "LM"}},
				{Role: "RB", Compatible: []string{"CB", "RWB", "RM"}},
				{Role: "CDM", Compatible: []string{"CM", "CB"}},
				{Role: "CM", Compatible: []string{"CDM", "CAM", "RM", "LM"}},
				{Role: "CAM", Compatible: []string{"CM", "LW", "RW"}},
				{Role: "LM", Compatible: []string{"LW", "CM", "LB"}},
				{Role: "RM", Compatible: []string{"RW", "CM", "RB"}},
				{Role: "LW", Compatible: []string{"LM", "ST", "CAM"}},
				{Role: "RW", Compatible: []string{"RM", "ST", "CAM"}},
				{Role: "ST", Compatible: []string{"CF", "LW", "RW", "CAM"}},
			},
			SecondaryCount: []float64{0.2, 0.6, 0.2},
			PreferredFoot: []WeightedOption{
				{Value: "Right", Weight: 0.70},
				{Value: "Left", Weight: 0.25},
				{Value: "Both", Weight: 0.05},
			},
			Temperaments:  []string{"Calm", "Balanced", "Aggressive"},
			WeightKgPerCm: FloatRange{0.38, 0.44},
			ContractYears: Range{1, 5},
			Form:          FloatRange{5.0, 8.5},
			Fitness:       Range{85, 100},
			Morale:        Range{12, 18},
			Personality:   Range{1, 20},
		},
		Nationalities: defaultNationalities(),
		NamePools:     defaultNamePools(),
		Value: ValueConfig{
			PerRatingPoint:      100000,
			Min:                 50000,
			Max:                 150000000,
			YoungAge:            23,
			YoungBase:           1.5,
			YoungHeadroomScale:  50,
			PrimeAge:            28,
			PrimeMultiplier:     1.3,
			PeakAge:             31,
			PeakMultiplier:      1.0,
			DecliningAge:        33,
			DecliningMultiplier: 0.6,
			VeteranMultiplier:   0.3,
			AnnualWageShare:     0.0075,
			MinWeeklyWage:       500,
		},
		Youth: YouthConfig{
			PlayersPerClub: 5,
			Ages:           Range{16, 17},
			Potential:      Range{80, 99},
			RatingPenalty:  15,
			RatingFloor:    40,
			MinHeadroom:    10,
			ReadyRating:    70,
			AlmostRating:   65,
			FirstID:        50000,
		},
		Match: MatchConfig{
			HomeAdvantage:      0.15,
			GoalsPerMatch:      2.7,
			StrengthExponent:   2.0,
			DefaultStrength:    65,
			FirstHalfShare:     0.45,
			YellowCardsPerSide: 1.65,
			RedCardsPerSide:    0.1,
			AttendanceFill:     FloatRange{0.75, 1.0},
			SeasonStartMonth:   8,
			SeasonStartDay:     15,
			DaysBetweenRounds:  7,
		},
		Staff: StaffConfig{
			ManagerRole:     "Manager",
			CoachRoles:      []string{"Assistant Manager", "Goalkeeping Coach", "Fitness Coach", "Set Piece Coach"},
			ManagerAge:      Range{35, 70},
			CoachAge:        Range{30, 65},
			ManagerContract: Range{2, 4},
			CoachContract:   Range{1, 3},
		},
		Transfers: TransferConfig{
			PlayerShare:   0.10,
			FreeChance:    0.20,
			LoanChance:    0.15,
			FeeFactor:     FloatRange{0.7, 1.3},
			SummerChance:  0.65,
			SummerMonths:  []int{6, 7, 8},
			WinterMonths:  []int{1},
			ContractYears: Range{1, 5},
			Reasons: []string{
				"Career progression", "Higher wages", "First team opportunity", "Playing time",
				"Relegation clause", "Contract expiry", "Club financial needs", "Manager request",
			},
		},
	}
}

func defaultPositions() []PositionProfile {
	physical := func(pace, strength, stamina Range) []AttributeSpec {
		return []AttributeSpec{
			{Name: "pace", Group: Physical, Range: pace},
			{Name: "strength", Group: Physical, Range: strength},
			{Name: "stamina", Group: Physical, Range: stamina},
		}
	}
	return []PositionProfile{
		{
			Position: Goalkeeper, SquadMin: 2, SquadMax: 3, FillWeight: 3,
			Roles: []string{"GK"},
			Attributes: append(physical(Range{30, 60}, Range{50, 85}, Range{60, 90}),
				AttributeSpec{Name: "diving", Group: Technical, Range: Range{40, 95}},
				AttributeSpec{Name: "handling", Group: Technical, Range: Range{40, 95}},
				AttributeSpec{Name: "kicking", Group: Technical, Range: Range{30, 85}},
				AttributeSpec{Name: "reflexes", Group: Technical, Range: Range{40, 95}},
				AttributeSpec{Name: "positioning", Group: Technical, Range: Range{40, 90}},
				AttributeSpec{Name: "concentration", Group: Mental, Range: Range{40, 90}},
				AttributeSpec{Name: "decision_making", Group: Mental, Range: Range{40, 85}},
				AttributeSpec{Name: "leadership", Group: Mental, Range: Range{30, 90}},
			),
			RatingWeights: []RatingWeight{
				{"diving", 0.20}, {"handling", 0.20}, {"reflexes", 0.20}, {"positioning", 0.15},
				{"kicking", 0.10}, {"concentration", 0.10}, {"decision_making", 0.05},
			},
			HeightCm:        Range{185, 200},
			ValueMultiplier: 0.8,
		},
		{
			Position: Defender, SquadMin: 7, SquadMax: 10, FillWeight: 8,
			Roles: []string{"CB", "LB", "RB"},
			Attributes: append(physical(Range{40, 85}, Range{60, 95}, Range{60, 90}),
				AttributeSpec{Name: "tackling", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "marking", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "heading", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "passing", Group: Technical, Range: Range{40, 85}},
				AttributeSpec{Name: "ball_control", Group: Technical, Range: Range{35, 80}},
				AttributeSpec{Name: "positioning", Group: Mental, Range: Range{50, 95}},
				AttributeSpec{Name: "concentration", Group: Mental, Range: Range{50, 90}},
				AttributeSpec{Name: "decision_making", Group: Mental, Range: Range{40, 85}},
			),
			RatingWeights: []RatingWeight{
				{"tackling", 0.20}, {"marking", 0.20}, {"positioning", 0.15}, {"heading", 0.15},
				{"strength", 0.10}, {"pace", 0.10}, {"passing", 0.10},
			},
			HeightCm:        Range{178, 195},
			ValueMultiplier: 0.9,
		},
		{
			Position: Midfielder, SquadMin: 7, SquadMax: 10, FillWeight: 8,
			Roles: []string{"CDM", "CM", "CAM", "LM", "RM"},
			Attributes: append(physical(Range{50, 90}, Range{45, 80}, Range{65, 95}),
				AttributeSpec{Name: "passing", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "ball_control", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "dribbling", Group: Technical, Range: Range{45, 90}},
				AttributeSpec{Name: "shooting", Group: Technical, Range: Range{35, 85}},
				AttributeSpec{Name: "tackling", Group: Technical, Range: Range{35, 85}},
				AttributeSpec{Name: "vision", Group: Mental, Range: Range{45, 95}},
				AttributeSpec{Name: "decision_making", Group: Mental, Range: Range{50, 90}},
				AttributeSpec{Name: "work_rate", Group: Mental, Range: Range{50, 95}},
			),
			RatingWeights: []RatingWeight{
				{"passing", 0.20}, {"ball_control", 0.18}, {"vision", 0.15}, {"stamina", 0.12},
				{"dribbling", 0.12}, {"decision_making", 0.12}, {"tackling", 0.11},
			},
			HeightCm:        Range{170, 185},
			ValueMultiplier: 1.0,
		},
		{
			Position: Forward, SquadMin: 5, SquadMax: 9, FillWeight: 7.5,
			Roles: []string{"LW", "RW", "ST"},
			Attributes: append(physical(Range{60, 95}, Range{45, 90}, Range{55, 90}),
				AttributeSpec{Name: "shooting", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "finishing", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "dribbling", Group: Technical, Range: Range{50, 95}},
				AttributeSpec{Name: "ball_control", Group: Technical, Range: Range{50, 90}},
				AttributeSpec{Name: "heading", Group: Technical, Range: Range{40, 85}},
				AttributeSpec{Name: "positioning", Group: Mental, Range: Range{50, 95}},
				AttributeSpec{Name: "composure", Group: Mental, Range: Range{45, 90}},
				AttributeSpec{Name: "decision_making", Group: Mental, Range: Range{40, 85}},
			),
			RatingWeights: []RatingWeight{
				{"shooting", 0.22}, {"finishing", 0.22}, {"positioning", 0.15}, {"pace", 0.15},
				{"dribbling", 0.12}, {"ball_control", 0.10}, {"composure", 0.04},
			},
			HeightCm:        Range{170, 190},
			ValueMultiplier: 1.2,
		},
	}
}

// LoadConfig overlays the YAML file at path on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, ValidateConfig(cfg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Position returns the profile for p
func (c *Config) Position(p Position) (*PositionProfile, error) {
	for i := range c.Positions {
		if c.Positions[i].Position == p {
			return &c.Positions[i], nil
		}
	}
	return nil, fmt.Errorf("no profile for position %s", p)
}

// Tier returns the profile for t
func (c *Config) Tier(t Tier) (*TierProfile, error) {
	for i := range c.Tiers {
		if c.Tiers[i].Tier == t {
			return &c.Tiers[i], nil
		}
	}
	return nil, fmt.Errorf("no profile for tier %s", t)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func checkRange(name string, r Range) error {
	if r.Min > r.Max {
		return invalid("%s min %d is greater than max %d", name, r.Min, r.Max)
	}
	return nil
}

func checkFloatRange(name string, r FloatRange) error {
	if r.Min > r.Max {
		return invalid("%s min %v is greater than max %v", name, r.Min, r.Max)
	}
	return nil
}

func checkWeights(name string, weights []float64) error {
	if len(weights) == 0 {
		return invalid("%s has no weights", name)
	}
	total := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return invalid("%s has a negative weight %v", name, w)
		}
		total += w
	}
	if total <= 0 {
		return invalid("%s weights sum to zero", name)
	}
	return nil
}

// ValidateConfig fails fast on the first setting that cannot produce a valid dataset
func ValidateConfig(config *Config) error {
	if config == nil {
		return invalid("config is nil")
	}
	l := config.League
	if l.NumClubs < 2 {
		return invalid("NumClubs must be at least 2, got: %d", l.NumClubs)
	}
	if l.PointsForWin <= l.PointsForDraw || l.PointsForDraw < l.PointsForLoss {
		return invalid("points must satisfy win > draw >= loss, got: %d/%d/%d", l.PointsForWin, l.PointsForDraw, l.PointsForLoss)
	}
	if l.PromotionSpots+l.RelegationSpots > l.NumClubs || l.ContinentalSpots > l.NumClubs {
		return invalid("league places exceed the number of clubs")
	}

	if len(config.Seasons) == 0 {
		return invalid("at least one season is required")
	}
	for _, s := range config.Seasons {
		if _, err := ParseSeason(s); err != nil {
			return invalid("season %q: %v", s, err)
		}
	}
	if !slices.Contains(config.Seasons, config.CurrentSeason) {
		return invalid("CurrentSeason %q is not in Seasons", config.CurrentSeason)
	}

	c := config.Clubs
	if len(c.Cities) < l.NumClubs {
		return invalid("%d cities cannot name %d clubs uniquely", len(c.Cities), l.NumClubs)
	}
	for name, list := range map[string][]string{
		"Suffixes": c.Suffixes, "StadiumTypes": c.StadiumTypes, "StadiumDescriptors": c.StadiumDescriptors,
		"Formations": c.Formations, "PlayingStyles": c.PlayingStyles,
	} {
		if len(list) == 0 {
			return invalid("club %s must not be empty", name)
		}
	}
	if len(c.Colours) == 0 {
		return invalid("club Colours must not be empty")
	}
	if err := checkRange("club Founded", c.Founded); err != nil {
		return err
	}

	if len(config.Tiers) == 0 {
		return invalid("at least one tier is required")
	}
	shares := 0.0
	for _, t := range config.Tiers {
		if t.Share < 0 {
			return invalid("tier %s share must not be negative", t.Tier)
		}
		shares += t.Share
		for name, r := range map[string]Range{
			"StadiumCapacity": t.StadiumCapacity, "BudgetMillions": t.BudgetMillions,
			"Reputation": t.Reputation, "Facilities": t.Facilities, "StaffQuality": t.StaffQuality,
		} {
			if err := checkRange(fmt.Sprintf("tier %s %s", t.Tier, name), r); err != nil {
				return err
			}
		}
	}
	if math.Abs(shares-1) > 1e-6 {
		return invalid("tier shares must sum to 1, got: %v", shares)
	}

	p := config.Players
	if err := checkRange("Players.Rating", p.Rating); err != nil {
		return err
	}
	if p.Rating.Min < 1 || p.Rating.Max > 99 {
		return invalid("rating bounds must lie within [1,99], got: [%d,%d]", p.Rating.Min, p.Rating.Max)
	}
	if p.MinAge > p.MaxAge {
		return invalid("player MinAge %d is greater than MaxAge %d", p.MinAge, p.MaxAge)
	}
	var bandShares []float64
	for _, b := range p.AgeBands {
		if err := checkRange("age band", b.Ages); err != nil {
			return err
		}
		if b.Ages.Min < p.MinAge || b.Ages.Max > p.MaxAge {
			return invalid("age band [%d,%d] lies outside [%d,%d]", b.Ages.Min, b.Ages.Max, p.MinAge, p.MaxAge)
		}
		bandShares = append(bandShares, b.Share)
	}
	if err := checkWeights("age bands", bandShares); err != nil {
		return err
	}
	for _, e := range p.AgeEffects {
		if err := checkRange(fmt.Sprintf("%s age effect up to %d", e.Group, e.MaxAge), e.Shift); err != nil {
			return err
		}
	}
	for _, h := range p.Headroom {
		if err := checkFloatRange(fmt.Sprintf("headroom up to age %d", h.MaxAge), h.Headroom); err != nil {
			return err
		}
		if h.Headroom.Min < 0 {
			return invalid("headroom up to age %d must not be negative", h.MaxAge)
		}
	}
	if len(p.Headroom) == 0 || p.Headroom[len(p.Headroom)-1].MaxAge < p.MaxAge {
		return invalid("headroom bands must cover ages up to %d", p.MaxAge)
	}
	if err := checkWeights("secondary position counts", p.SecondaryCount); err != nil {
		return err
	}
	footWeights := make([]float64, len(p.PreferredFoot))
	for i, f := range p.PreferredFoot {
		footWeights[i] = f.Weight
	}
	if err := checkWeights("preferred foot", footWeights); err != nil {
		return err
	}
	if len(p.Temperaments) == 0 {
		return invalid("Temperaments must not be empty")
	}
	for name, r := range map[string]Range{
		"ContractYears": p.ContractYears, "Fitness": p.Fitness, "Morale": p.Morale, "Personality": p.Personality,
	} {
		if err := checkRange("Players."+name, r); err != nil {
			return err
		}
	}
	for name, r := range map[string]FloatRange{"Form": p.Form, "WeightKgPerCm": p.WeightKgPerCm} {
		if err := checkFloatRange("Players."+name, r); err != nil {
			return err
		}
	}

	sq := config.Squad
	if err := checkRange("Squad.Size", sq.Size); err != nil {
		return err
	}
	if err := checkRange("Squad.JerseyNumbers", sq.JerseyNumbers); err != nil {
		return err
	}
	if sq.JerseyNumbers.Max-sq.JerseyNumbers.Min+1 < sq.Size.Max {
		return invalid("%d jersey numbers cannot cover a squad of %d", sq.JerseyNumbers.Max-sq.JerseyNumbers.Min+1, sq.Size.Max)
	}
	for _, n := range sq.GoalkeeperNumbers {
		if !sq.JerseyNumbers.Contains(n) {
			return invalid("goalkeeper number %d is outside the jersey range", n)
		}
	}

	if len(config.Positions) == 0 {
		return invalid("at least one position profile is required")
	}
	minTotal, maxTotal := 0, 0
	for _, pos := range config.Positions {
		if pos.SquadMin < 0 || pos.SquadMin > pos.SquadMax {
			return invalid("position %s squad min %d / max %d is invalid", pos.Position, pos.SquadMin, pos.SquadMax)
		}
		if pos.FillWeight <= 0 {
			return invalid("position %s fill weight must be positive", pos.Position)
		}
		minTotal += pos.SquadMin
		maxTotal += pos.SquadMax
		if len(pos.Roles) == 0 {
			return invalid("position %s has no roles", pos.Position)
		}
		if err := checkRange(fmt.Sprintf("position %s HeightCm", pos.Position), pos.HeightCm); err != nil {
			return err
		}
		names := map[string]bool{}
		for _, a := range pos.Attributes {
			if err := checkRange(fmt.Sprintf("position %s attribute %s", pos.Position, a.Name), a.Range); err != nil {
				return err
			}
			if !IsAttribute(a.Name) {
				return invalid("position %s has unknown attribute %s", pos.Position, a.Name)
			}
			names[a.Name] = true
		}
		weights := make([]float64, len(pos.RatingWeights))
		for i, w := range pos.RatingWeights {
			if !names[w.Attribute] {
				return invalid("position %s rating weight refers to %s which it does not carry", pos.Position, w.Attribute)
			}
			weights[i] = w.Weight
		}
		if err := checkWeights(fmt.Sprintf("position %s rating weights", pos.Position), weights); err != nil {
			return err
		}
	}
	if minTotal > sq.Size.Min {
		return invalid("position minimums need %d players but the smallest squad is %d", minTotal, sq.Size.Min)
	}
	if maxTotal < sq.Size.Max {
		return invalid("position maximums allow %d players but the largest squad is %d", maxTotal, sq.Size.Max)
	}
	if _, err := config.Position(Goalkeeper); err == nil && len(sq.GoalkeeperNumbers) == 0 {
		return invalid("GoalkeeperNumbers must not be empty")
	}

	natWeights := make([]float64, len(config.Nationalities))
	pools := map[string]bool{}
	for _, np := range config.NamePools {
		if len(np.FirstNames) == 0 || len(np.LastNames) == 0 {
			return invalid("name pool %s must have first and last names", np.Name)
		}
		pools[np.Name] = true
	}
	for i, n := range config.Nationalities {
		if !pools[n.Pool] {
			return invalid("nationality %s uses unknown name pool %s", n.Name, n.Pool)
		}
		natWeights[i] = n.Weight
	}
	if err := checkWeights("nationalities", natWeights); err != nil {
		return err
	}

	v := config.Value
	if v.Min < 0 || v.Min > v.Max {
		return invalid("market value bounds [%v,%v] are invalid", v.Min, v.Max)
	}
	if v.PerRatingPoint <= 0 || v.AnnualWageShare < 0 || v.MinWeeklyWage < 0 {
		return invalid("market value and wage coefficients must be positive")
	}
	if !(v.YoungAge <= v.PrimeAge && v.PrimeAge <= v.PeakAge && v.PeakAge <= v.DecliningAge) {
		return invalid("market value age thresholds must be ascending")
	}

	y := config.Youth
	if y.PlayersPerClub < 0 {
		return invalid("youth PlayersPerClub must not be negative")
	}
	if err := checkRange("Youth.Ages", y.Ages); err != nil {
		return err
	}
	if err := checkRange("Youth.Potential", y.Potential); err != nil {
		return err
	}
	if y.Ages.Min < p.MinAge || y.Ages.Max > p.MaxAge {
		return invalid("youth ages lie outside player ages")
	}
	if y.Potential.Min < p.Rating.Min || y.Potential.Max > p.Rating.Max {
		return invalid("youth potential [%d,%d] lies outside rating bounds", y.Potential.Min, y.Potential.Max)
	}
	if y.RatingFloor+y.MinHeadroom > y.Potential.Min {
		return invalid("youth rating floor %d leaves no headroom under potential %d", y.RatingFloor, y.Potential.Min)
	}
	if y.AlmostRating > y.ReadyRating {
		return invalid("youth AlmostRating %d is greater than ReadyRating %d", y.AlmostRating, y.ReadyRating)
	}

	m := config.Match
	if m.HomeAdvantage < 0 || m.GoalsPerMatch <= 0 || m.StrengthExponent <= 0 || m.DefaultStrength <= 0 {
		return invalid("match simulation coefficients must be positive")
	}
	if m.FirstHalfShare < 0 || m.FirstHalfShare > 1 {
		return invalid("FirstHalfShare must be between 0 and 1, got: %v", m.FirstHalfShare)
	}
	if err := checkFloatRange("Match.AttendanceFill", m.AttendanceFill); err != nil {
		return err
	}
	if m.SeasonStartMonth < 1 || m.SeasonStartMonth > 12 || m.SeasonStartDay < 1 || m.SeasonStartDay > 28 || m.DaysBetweenRounds < 1 {
		return invalid("match calendar settings are invalid")
	}

	st := config.Staff
	for name, r := range map[string]Range{
		"ManagerAge": st.ManagerAge, "CoachAge": st.CoachAge, "ManagerContract": st.ManagerContract, "CoachContract": st.CoachContract,
	} {
		if err := checkRange("Staff."+name, r); err != nil {
			return err
		}
	}

	t := config.Transfers
	if t.PlayerShare < 0 || t.PlayerShare > 1 || t.FreeChance < 0 || t.LoanChance < 0 || t.FreeChance+t.LoanChance > 1 {
		return invalid("transfer probabilities are invalid")
	}
	if err := checkFloatRange("Transfers.FeeFactor", t.FeeFactor); err != nil {
		return err
	}
	if err := checkRange("Transfers.ContractYears", t.ContractYears); err != nil {
		return err
	}
	if len(t.SummerMonths) == 0 || len(t.WinterMonths) == 0 || len(t.Reasons) == 0 {
		return invalid("transfer windows and reasons must not be empty")
	}

	return nil
}
