package fdl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/richard-senior/footballlab/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, 20, cfg.League.NumClubs)
	assert.Equal(t, "2024/25", cfg.CurrentSeason)
	assert.Len(t, cfg.Positions, 4)
	assert.Len(t, cfg.Tiers, 3)
}

func TestValidateConfigRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"one club", func(c *Config) { c.League.NumClubs = 1 }},
		{"too few cities", func(c *Config) { c.Clubs.Cities = c.Clubs.Cities[:5] }},
		{"draw worth a win", func(c *Config) { c.League.PointsForDraw = 3 }},
		{"unknown current season", func(c *Config) { c.CurrentSeason = "2030/31" }},
		{"malformed season", func(c *Config) { c.Seasons = append(c.Seasons, "2024/26") }},
		{"tier shares", func(c *Config) { c.Tiers[0].Share = 0.5 }},
		{"inverted range", func(c *Config) { c.Squad.Size = Range{30, 23} }},
		{"rating above 99", func(c *Config) { c.Players.Rating.Max = 120 }},
		{"unknown attribute", func(c *Config) { c.Positions[0].Attributes[0].Name = "telepathy" }},
		{"unknown name pool", func(c *Config) { c.Nationalities[0].Pool = "martian" }},
		{"youth without headroom", func(c *Config) { c.Youth.RatingFloor = 85 }},
		{"no goals", func(c *Config) { c.Match.GoalsPerMatch = 0 }},
		{"transfer chances", func(c *Config) { c.Transfers.FreeChance = 0.9; c.Transfers.LoanChance = 0.2 }},
		{"position minimums", func(c *Config) { c.Positions[1].SquadMin = 20 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, ValidateConfig(cfg), ErrInvalidConfig)
		})
	}
	assert.ErrorIs(t, ValidateConfig(nil), ErrInvalidConfig)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	yaml := `
league:
  name: Test League
  num_clubs: 18
match:
  goals_per_match: 3.1
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Test League", cfg.League.Name)
	assert.Equal(t, 18, cfg.League.NumClubs)
	assert.InDelta(t, 3.1, cfg.Match.GoalsPerMatch, 1e-9)
	// untouched keys keep their defaults
	assert.Equal(t, 3, cfg.League.PointsForWin)
	assert.InDelta(t, 0.15, cfg.Match.HomeAdvantage, 1e-9)
	assert.Equal(t, DefaultConfig().Positions, cfg.Positions)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("league: [unclosed"), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("league:\n  num_clubs: 40\n"), 0644))
	_, err = LoadConfig(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigLookups(t *testing.T) {
	cfg := DefaultConfig()
	gk, err := cfg.Position(Goalkeeper)
	require.NoError(t, err)
	assert.Equal(t, Goalkeeper, gk.Position)
	_, err = cfg.Position("SW")
	assert.Error(t, err)

	top, err := cfg.Tier(TierTop)
	require.NoError(t, err)
	assert.Greater(t, top.RatingOffset, 0)
	_, err = cfg.Tier("amateur")
	assert.Error(t, err)
}

func TestEveryNationalityHasNames(t *testing.T) {
	cfg := DefaultConfig()
	n := newNamer(cfg)
	s := util.NewSampler(3)
	for _, nat := range cfg.Nationalities {
		name, err := n.Name(s, nat)
		require.NoError(t, err, nat.Name)
		assert.NotEmpty(t, name.First)
		assert.NotEmpty(t, name.Last)
		assert.Equal(t, name.First+" "+name.Last, name.Full())
	}
}

func TestNationalityWeights(t *testing.T) {
	cfg := DefaultConfig()
	n := newNamer(cfg)
	s := util.NewSampler(11)
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		nat, err := n.Nationality(s)
		require.NoError(t, err)
		counts[nat.Name]++
	}
	// English carries by far the largest weight
	for name, c := range counts {
		if name != "English" {
			assert.Less(t, c, counts["English"], name)
		}
	}
}
