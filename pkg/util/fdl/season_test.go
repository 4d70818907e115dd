package fdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeason(t *testing.T) {
	tests := []struct {
		in      any
		want    string
		wantErr bool
	}{
		{"2024/25", "2024/25", false},
		{"2024-25", "2024/25", false},
		{"2024/2025", "2024/25", false},
		{" 2024-2025 ", "2024/25", false},
		{"1999/00", "1999/00", false},
		{"2024/26", "", true},
		{"2024_25", "", true},
		{"abcd/ef", "", true},
		{"2024", "", true},
		{2024, "", true},
		{nil, "", true},
	}
	for _, tt := range tests {
		got, err := ParseSeason(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSeasonYears(t *testing.T) {
	first, err := GetFirstYear("2023/24")
	require.NoError(t, err)
	assert.Equal(t, 2023, first)
	second, err := GetSecondYear("1999/00")
	require.NoError(t, err)
	assert.Equal(t, 2000, second)

	same, err := IsSameSeason("2023/24", "2023-2024")
	require.NoError(t, err)
	assert.True(t, same)
	same, err = IsSameSeason("2023/24", "2024/25")
	require.NoError(t, err)
	assert.False(t, same)
	_, err = IsSameSeason("2023/24", "nonsense")
	assert.Error(t, err)

	assert.Equal(t, "2024_25", SeasonTag("2024/25"))
	assert.Equal(t, "2024_25", SeasonTag("2024-2025"))
}

func TestMatchdays(t *testing.T) {
	assert.Equal(t, 38, Matchdays(20))
	assert.Equal(t, 10, Matchdays(5))
	assert.Equal(t, 2, Matchdays(2))
	assert.Equal(t, 0, Matchdays(1))
}

func TestGenerateSeasons(t *testing.T) {
	cfg := DefaultConfig()
	seasons, err := GenerateSeasons(cfg)
	require.NoError(t, err)
	require.Len(t, seasons, 5)

	assert.Equal(t, "S01", seasons[0].SeasonID)
	assert.Equal(t, "2020/21", seasons[0].Season)
	assert.Equal(t, "2020-08-01", seasons[0].StartDate)
	assert.Equal(t, "2021-05-31", seasons[0].EndDate)
	assert.False(t, seasons[0].IsCurrent)

	last := seasons[4]
	assert.Equal(t, "S05", last.SeasonID)
	assert.True(t, last.IsCurrent)
	assert.Equal(t, 2024, last.StartYear)
	assert.Equal(t, 2025, last.EndYear)
	assert.Equal(t, 38, last.NumMatchdays)

	past, err := PastSeasons(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"2020/21", "2021/22", "2022/23", "2023/24"}, past)
}
