package fdl

import (
	"testing"

	"github.com/richard-senior/footballlab/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStaff(t *testing.T) {
	cfg := DefaultConfig()
	ids := util.NewIDSequence("STF", 1)
	for _, tier := range []Tier{TierTop, TierMid, TierLower} {
		club := testClub(tier)
		staff, err := GenerateStaff(cfg, util.NewSampler(11), ids, club)
		require.NoError(t, err)
		require.Len(t, staff, 1+len(cfg.Staff.CoachRoles))

		tp, err := cfg.Tier(tier)
		require.NoError(t, err)

		manager := staff[0]
		assert.Equal(t, cfg.Staff.ManagerRole, manager.Role)
		assert.True(t, cfg.Staff.ManagerAge.Contains(manager.Age))
		assert.True(t, cfg.Staff.ManagerContract.Contains(manager.ContractYears))
		assert.True(t, tp.StaffQuality.Contains(manager.ManManagement))

		for i, m := range staff {
			assert.Equal(t, club.ClubID, m.ClubID)
			assert.True(t, tp.StaffQuality.Contains(m.Rating), "%s rated %d", m.Role, m.Rating)
			assert.Equal(t, m.FirstName+" "+m.LastName, m.FullName)
			assert.NotEmpty(t, m.Nationality)
			if i > 0 {
				assert.Equal(t, cfg.Staff.CoachRoles[i-1], m.Role)
				assert.True(t, cfg.Staff.CoachAge.Contains(m.Age))
				assert.Zero(t, m.ManManagement)
			}
		}
	}
	assert.Equal(t, "STF_00016", ids.Next())
}

func TestGenerateStaffUnknownTier(t *testing.T) {
	_, err := GenerateStaff(DefaultConfig(), util.NewSampler(1), util.NewIDSequence("STF", 1), testClub(Tier("elite")))
	assert.Error(t, err)
}
