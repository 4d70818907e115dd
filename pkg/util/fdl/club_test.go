package fdl

import (
	"testing"

	"github.com/richard-senior/footballlab/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	cfg := DefaultConfig()
	counts := map[Tier]int{}
	for i := 0; i < 20; i++ {
		counts[TierFor(i, 20, cfg.Tiers)]++
	}
	assert.Equal(t, map[Tier]int{TierTop: 6, TierMid: 8, TierLower: 6}, counts)
	assert.Equal(t, TierTop, TierFor(0, 20, cfg.Tiers))
	assert.Equal(t, TierLower, TierFor(19, 20, cfg.Tiers))
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "RF", ShortName("Riverside", "FC"))
	assert.Equal(t, "MBA", ShortName("Moonlight Bay", "Athletic"))
	assert.Equal(t, "GCUN", ShortName("Granite City", "United"))
	assert.Equal(t, "OCIT", ShortName("Oakmont", "City"))
}

func TestGenerateClubs(t *testing.T) {
	cfg := DefaultConfig()
	clubs, err := GenerateClubs(cfg, util.NewSampler(42), util.NewIDSequence("CLB", 1))
	require.NoError(t, err)
	require.Len(t, clubs, 20)

	cities := map[string]bool{}
	ids := map[string]bool{}
	tiers := map[Tier]int{}
	for i, c := range clubs {
		assert.False(t, cities[c.City], "city %s used twice", c.City)
		cities[c.City] = true
		assert.False(t, ids[c.ClubID])
		ids[c.ClubID] = true
		tiers[c.Tier]++

		assert.Contains(t, c.Name, c.City)
		assert.NotEmpty(t, c.Slug)
		assert.NotContains(t, c.Slug, " ")
		tp, err := cfg.Tier(c.Tier)
		require.NoError(t, err)
		assert.True(t, tp.StadiumCapacity.Contains(c.StadiumCapacity))
		assert.True(t, tp.Reputation.Contains(c.Reputation))
		assert.True(t, tp.BudgetMillions.Contains(c.BudgetMillions))
		assert.True(t, cfg.Clubs.Founded.Contains(c.FoundedYear))

		if i > 0 {
			assert.GreaterOrEqual(t, clubs[i-1].Reputation, c.Reputation, "clubs are sorted by reputation")
		}
	}
	assert.Equal(t, map[Tier]int{TierTop: 6, TierMid: 8, TierLower: 6}, tiers)

	index := ClubIndex(clubs)
	assert.Len(t, index, 20)
	assert.Equal(t, clubs[3].Name, index[clubs[3].ClubID].Name)
}

func TestGenerateClubsNeedsCities(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clubs.Cities = cfg.Clubs.Cities[:10]
	_, err := GenerateClubs(cfg, util.NewSampler(1), util.NewIDSequence("CLB", 1))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
