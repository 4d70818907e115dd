package fdl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	ds := generate(t, 42)
	html, err := RenderReport(ds)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Ironforge Premier League 2024/25", doc.Find("h1").Text())
	assert.Contains(t, doc.Find("#summary").Text(), ds.League.DatasetID)

	rows := doc.Find("#league-table tbody tr")
	assert.Equal(t, len(ds.Table), rows.Length())
	assert.Equal(t, ds.Table[0].ClubName, rows.First().Find("td").Eq(1).Text())

	top := doc.Find("#top-players tbody tr")
	assert.Equal(t, reportTopPlayers, top.Length())

	prospects := doc.Find("#prospects li")
	if n := len(PromotionCandidates(ds.Youth)); n > 0 {
		assert.Equal(t, n, prospects.Length())
	} else {
		assert.Equal(t, "None", strings.TrimSpace(prospects.Text()))
	}

	_, err = RenderReport(&Dataset{})
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	ds := generate(t, 42)
	dir := t.TempDir()
	require.NoError(t, WriteReport(dir, ds))

	html, err := os.ReadFile(filepath.Join(dir, ReportHTMLFile))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table id=\"league-table\">")

	md, err := os.ReadFile(filepath.Join(dir, ReportMarkdownFile))
	require.NoError(t, err)
	assert.Contains(t, string(md), "Ironforge Premier League")
	assert.Contains(t, string(md), ds.Table[0].ClubName)
}
