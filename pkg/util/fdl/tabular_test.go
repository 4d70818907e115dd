package fdl

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsFlattenAttributes(t *testing.T) {
	cols := Columns(&Player{})
	potential := slices.Index(cols, "potential")
	require.GreaterOrEqual(t, potential, 0)
	assert.Equal(t, "pace", cols[potential+1])
	assert.Contains(t, cols, "composure")
	assert.Contains(t, cols, "contract_years_remaining")
	assert.NotContains(t, cols, "attributes")
	assert.Equal(t, "player_id", cols[0])
	assert.Equal(t, "promotion_readiness", cols[len(cols)-1])

	assert.Equal(t, len(cols), len(Values(Player{})))
}

func TestValuesFormatting(t *testing.T) {
	p := Player{PlayerID: "PLY_00001", OverallRating: 71.5, MarketValue: 12_500_000, IsYouth: true}
	values := Values(&p)
	cols := Columns(&p)
	at := func(name string) string { return values[slices.Index(cols, name)] }
	assert.Equal(t, "71.5", at("overall_rating"))
	assert.Equal(t, "12500000", at("market_value"))
	assert.Equal(t, "true", at("is_youth"))
	assert.Equal(t, "0", at("pace"))
}

func TestCSVRoundTrip(t *testing.T) {
	ds := generate(t, 3)

	data, err := EncodeCSV(ds.Players)
	require.NoError(t, err)
	header, _, _ := strings.Cut(string(data), "\n")
	assert.Equal(t, strings.Join(Columns(&Player{}), ","), header)

	players, err := DecodeCSV[Player](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ds.Players, players)

	dir := t.TempDir()
	path := filepath.Join(dir, MatchesFile(ds.Season))
	require.NoError(t, WriteTable(path, ds.Matches))
	matches, err := ReadTable[Match](path)
	require.NoError(t, err)
	assert.Equal(t, ds.Matches, matches)
}

func TestDecodeCSVColumnOrderAndErrors(t *testing.T) {
	rows, err := DecodeCSV[StaffMember](strings.NewReader(
		"rating,staff_id,club_id,role,first_name,last_name,full_name,nationality,age,man_management,contract_years\n" +
			"14,STF_00001,CLB_00001,Manager,Ana,Lopez,Ana Lopez,Spain,51,12,3\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 14, rows[0].Rating)
	assert.Equal(t, "STF_00001", rows[0].StaffID)

	_, err = DecodeCSV[StaffMember](strings.NewReader("staff_id,club_id\nSTF_00001,CLB_00001\n"))
	assert.ErrorContains(t, err, "missing column")

	_, err = DecodeCSV[Season](strings.NewReader(
		"season_id,season,start_year,end_year,start_date,end_date,num_matchdays,is_current\n" +
			"S01,2024/25,twenty,2025,2024-08-15,2025-05-25,38,true\n"))
	assert.ErrorContains(t, err, "start_year")

	_, err = DecodeCSV[Season](strings.NewReader(""))
	assert.Error(t, err)

	empty, err := EncodeCSV([]Season{})
	require.NoError(t, err)
	seasons, err := DecodeCSV[Season](bytes.NewReader(empty))
	require.NoError(t, err)
	assert.Empty(t, seasons)
}
