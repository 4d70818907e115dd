package fdl

import (
	"fmt"
	"math"

	"github.com/richard-senior/footballlab/pkg/util"
)

const (
	TransferPermanent = "Permanent"
	TransferLoan      = "Loan"
	TransferFree      = "Free"

	WindowSummer = "Summer"
	WindowWinter = "Winter"
)

var _ Persistable = (*TransferRecord)(nil)

// TransferRecord is one row of transfer_history.csv. ToClubID is always the player's current club.
type TransferRecord struct {
	TransferID    string  `json:"transfer_id" column:"transfer_id" dbtype:"TEXT NOT NULL" primary:"true"`
	Season        string  `json:"season" column:"season" dbtype:"TEXT NOT NULL" index:"true"`
	Window        string  `json:"transfer_window" column:"transfer_window" dbtype:"TEXT NOT NULL"`
	Date          string  `json:"transfer_date" column:"transfer_date" dbtype:"TEXT NOT NULL"`
	PlayerID      string  `json:"player_id" column:"player_id" dbtype:"TEXT NOT NULL" index:"true" fk:"players.player_id"`
	PlayerName    string  `json:"player_name" column:"player_name" dbtype:"TEXT NOT NULL"`
	FromClubID    string  `json:"from_club_id" column:"from_club_id" dbtype:"TEXT NOT NULL" fk:"clubs.club_id"`
	FromClubName  string  `json:"from_club_name" column:"from_club_name" dbtype:"TEXT NOT NULL"`
	ToClubID      string  `json:"to_club_id" column:"to_club_id" dbtype:"TEXT NOT NULL" fk:"clubs.club_id"`
	ToClubName    string  `json:"to_club_name" column:"to_club_name" dbtype:"TEXT NOT NULL"`
	TransferType  string  `json:"transfer_type" column:"transfer_type" dbtype:"TEXT NOT NULL"`
	TransferFee   int64   `json:"transfer_fee" column:"transfer_fee" dbtype:"INTEGER NOT NULL"`
	ContractYears int     `json:"contract_length_years" column:"contract_length_years" dbtype:"INTEGER"`
	WeeklyWage    int64   `json:"weekly_wage" column:"weekly_wage" dbtype:"INTEGER"`
	PlayerAge     int     `json:"player_age" column:"player_age" dbtype:"INTEGER"`
	PlayerAbility float64 `json:"player_ability" column:"player_ability" dbtype:"REAL"`
	Reason        string  `json:"reason" column:"reason" dbtype:"TEXT"`
}

func (t *TransferRecord) GetTableName() string {
	return "transfer_history"
}

// PastSeasons returns every configured season before the current one
func PastSeasons(cfg *Config) ([]string, error) {
	current, err := GetFirstYear(cfg.CurrentSeason)
	if err != nil {
		return nil, err
	}
	var past []string
	for _, raw := range cfg.Seasons {
		s, err := ParseSeason(raw)
		if err != nil {
			return nil, err
		}
		if first, _ := GetFirstYear(s); first < current {
			past = append(past, s)
		}
	}
	return past, nil
}

// GenerateTransferHistory gives a share of the senior players a past move into their
// current club from a different league club.
func GenerateTransferHistory(cfg *Config, s *util.Sampler, ids *util.IDSequence, players []Player, clubs []Club) ([]TransferRecord, error) {
	past, err := PastSeasons(cfg)
	if err != nil {
		return nil, err
	}
	if len(past) == 0 || len(players) == 0 {
		return nil, nil
	}
	if len(clubs) < 2 {
		return nil, fmt.Errorf("transfers need at least two clubs, got %d", len(clubs))
	}
	currentYear, _ := GetFirstYear(cfg.CurrentSeason)
	index := ClubIndex(clubs)
	tc := cfg.Transfers

	k := int(math.Round(tc.PlayerShare * float64(len(players))))
	var transfers []TransferRecord
	for _, i := range s.Sample(len(players), k) {
		p := &players[i]
		to, ok := index[p.ClubID]
		if !ok {
			return nil, fmt.Errorf("player %s belongs to unknown club %s", p.PlayerID, p.ClubID)
		}
		// draw from every club but the destination
		fi := s.IntBetween(0, len(clubs)-2)
		if clubs[fi].ClubID == to.ClubID {
			fi = len(clubs) - 1
		}
		from := &clubs[fi]

		season := util.Pick(s, past)
		seasonYear, _ := GetFirstYear(season)
		window, year, month := WindowSummer, seasonYear, util.Pick(s, tc.SummerMonths)
		if !s.Chance(tc.SummerChance) {
			window, year, month = WindowWinter, seasonYear+1, util.Pick(s, tc.WinterMonths)
		}
		day := s.IntBetween(1, 28)

		kind := TransferPermanent
		if s.Chance(tc.FreeChance) {
			kind = TransferFree
		} else if s.Chance(tc.LoanChance / (1 - tc.FreeChance)) {
			kind = TransferLoan
		}
		var fee int64
		contract := 1
		switch kind {
		case TransferPermanent:
			fee = int64(math.Round(float64(p.MarketValue) * s.Uniform(tc.FeeFactor.Min, tc.FeeFactor.Max)))
			contract = s.IntBetween(tc.ContractYears.Min, tc.ContractYears.Max)
		case TransferFree:
			contract = s.IntBetween(tc.ContractYears.Min, tc.ContractYears.Max)
		}

		transfers = append(transfers, TransferRecord{
			TransferID:    ids.Next(),
			Season:        season,
			Window:        window,
			Date:          fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			PlayerID:      p.PlayerID,
			PlayerName:    p.FullName,
			FromClubID:    from.ClubID,
			FromClubName:  from.Name,
			ToClubID:      to.ClubID,
			ToClubName:    to.Name,
			TransferType:  kind,
			TransferFee:   fee,
			ContractYears: contract,
			WeeklyWage:    p.WeeklyWage,
			PlayerAge:     max(cfg.Players.MinAge, p.Age-(currentYear-seasonYear)),
			PlayerAbility: p.OverallRating,
			Reason:        util.Pick(s, tc.Reasons),
		})
	}
	return transfers, nil
}
