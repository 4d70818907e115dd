package fdl

import (
	"fmt"

	"github.com/richard-senior/footballlab/pkg/util"
)

var _ Persistable = (*StaffMember)(nil)

// StaffMember is one row of staff.csv
type StaffMember struct {
	StaffID       string `json:"staff_id" column:"staff_id" dbtype:"TEXT NOT NULL" primary:"true"`
	ClubID        string `json:"club_id" column:"club_id" dbtype:"TEXT NOT NULL" index:"true" fk:"clubs.club_id"`
	Role          string `json:"role" column:"role" dbtype:"TEXT NOT NULL"`
	FirstName     string `json:"first_name" column:"first_name" dbtype:"TEXT NOT NULL"`
	LastName      string `json:"last_name" column:"last_name" dbtype:"TEXT NOT NULL"`
	FullName      string `json:"full_name" column:"full_name" dbtype:"TEXT NOT NULL"`
	Nationality   string `json:"nationality" column:"nationality" dbtype:"TEXT NOT NULL"`
	Age           int    `json:"age" column:"age" dbtype:"INTEGER NOT NULL"`
	Rating        int    `json:"rating" column:"rating" dbtype:"INTEGER NOT NULL"`
	ManManagement int    `json:"man_management" column:"man_management" dbtype:"INTEGER"`
	ContractYears int    `json:"contract_years" column:"contract_years" dbtype:"INTEGER"`
}

func (m *StaffMember) GetTableName() string {
	return "staff"
}

// GenerateStaff creates a manager and one of each coaching role for club.
// Ratings come from the club tier's staff quality range.
func GenerateStaff(cfg *Config, s *util.Sampler, ids *util.IDSequence, club *Club) ([]StaffMember, error) {
	tier, err := cfg.Tier(club.Tier)
	if err != nil {
		return nil, err
	}
	names := newNamer(cfg)
	sc := cfg.Staff
	q := tier.StaffQuality

	person := func(role string, ages, contract Range) (StaffMember, error) {
		nat, name, err := names.Person(s)
		if err != nil {
			return StaffMember{}, fmt.Errorf("failed to name %s of %s: %w", role, club.Name, err)
		}
		return StaffMember{
			StaffID:       ids.Next(),
			ClubID:        club.ClubID,
			Role:          role,
			FirstName:     name.First,
			LastName:      name.Last,
			FullName:      name.Full(),
			Nationality:   nat.Name,
			Age:           s.IntBetween(ages.Min, ages.Max),
			Rating:        s.IntBetween(q.Min, q.Max),
			ContractYears: s.IntBetween(contract.Min, contract.Max),
		}, nil
	}

	manager, err := person(sc.ManagerRole, sc.ManagerAge, sc.ManagerContract)
	if err != nil {
		return nil, err
	}
	manager.ManManagement = s.IntBetween(q.Min, q.Max)
	staff := []StaffMember{manager}
	for _, role := range sc.CoachRoles {
		coach, err := person(role, sc.CoachAge, sc.CoachContract)
		if err != nil {
			return nil, err
		}
		staff = append(staff, coach)
	}
	return staff, nil
}
