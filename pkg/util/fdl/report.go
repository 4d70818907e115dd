package fdl

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"sort"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/dustin/go-humanize"
	"github.com/richard-senior/footballlab/internal/logger"
	"github.com/richard-senior/footballlab/pkg/util"
)

const (
	ReportHTMLFile     = "report.html"
	ReportMarkdownFile = "report.md"
	reportTopPlayers   = 10
)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": func(v int64) string { return "€" + humanize.Comma(v) },
	"comma": func(v int) string { return humanize.Comma(int64(v)) },
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.League.Name}} {{.Season}}</title></head>
<body>
<h1>{{.League.Name}} {{.Season}}</h1>
<p id="summary">Dataset {{.League.DatasetID}} generated from seed {{.Seed}}:
{{comma .Clubs}} clubs, {{comma .Players}} players, {{comma .Youth}} academy players,
{{comma .Matches}} matches and {{comma .Goals}} goals. Total squad value {{money .SquadValue}}.</p>
<h2>League table</h2>
<table id="league-table">
<thead><tr><th>Pos</th><th>Club</th><th>P</th><th>W</th><th>D</th><th>L</th><th>GF</th><th>GA</th><th>GD</th><th>Pts</th><th>Form</th></tr></thead>
<tbody>
{{range .Table}}<tr><td>{{.Position}}</td><td>{{.ClubName}}</td><td>{{.Played}}</td><td>{{.Won}}</td><td>{{.Drawn}}</td><td>{{.Lost}}</td><td>{{.GoalsFor}}</td><td>{{.GoalsAgainst}}</td><td>{{.GoalDifference}}</td><td>{{.Points}}</td><td>{{.Form}}</td></tr>
{{end}}</tbody>
</table>
<h2>Top rated players</h2>
<table id="top-players">
<thead><tr><th>Player</th><th>Club</th><th>Position</th><th>Age</th><th>Rating</th><th>Value</th></tr></thead>
<tbody>
{{range .TopPlayers}}<tr><td>{{.FullName}}</td><td>{{.ClubID}}</td><td>{{.Position}}</td><td>{{.Age}}</td><td>{{.OverallRating}}</td><td>{{money .MarketValue}}</td></tr>
{{end}}</tbody>
</table>
<h2>Academy prospects ready for promotion</h2>
<ul id="prospects">
{{range .Prospects}}<li>{{.FullName}} ({{.ClubID}}, {{.Position}}, {{.OverallRating}} / {{.Potential}})</li>
{{else}}<li>None</li>
{{end}}</ul>
</body>
</html>
`))

type reportData struct {
	League     *LeagueInfo
	Season     string
	Seed       int64
	Clubs      int
	Players    int
	Youth      int
	Matches    int
	Goals      int
	SquadValue int64
	Table      []LeagueTableRow
	TopPlayers []Player
	Prospects  []Player
}

// RenderReport renders the HTML summary of ds
func RenderReport(ds *Dataset) (string, error) {
	if ds.League == nil {
		return "", fmt.Errorf("dataset has no league info")
	}
	goals := 0
	for _, m := range ds.Matches {
		goals += m.HomeGoals + m.AwayGoals
	}
	top := append([]Player(nil), ds.Players...)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].OverallRating != top[j].OverallRating {
			return top[i].OverallRating > top[j].OverallRating
		}
		return top[i].PlayerID < top[j].PlayerID
	})
	if len(top) > reportTopPlayers {
		top = top[:reportTopPlayers]
	}

	data := reportData{
		League:     ds.League,
		Season:     ds.Season,
		Seed:       ds.Seed,
		Clubs:      len(ds.Clubs),
		Players:    len(ds.Players),
		Youth:      len(ds.Youth),
		Matches:    len(ds.Matches),
		Goals:      goals,
		SquadValue: ds.TotalMarketValue(),
		Table:      ds.Table,
		TopPlayers: top,
		Prospects:  PromotionCandidates(ds.Youth),
	}
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

// WriteReport writes report.html and its Markdown conversion report.md into dir
func WriteReport(dir string, ds *Dataset) error {
	html, err := RenderReport(ds)
	if err != nil {
		return err
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return fmt.Errorf("failed to convert report to markdown: %w", err)
	}
	htmlPath := filepath.Join(dir, ReportHTMLFile)
	if err := util.WriteFileAtomic(htmlPath, []byte(html)); err != nil {
		return err
	}
	mdPath := filepath.Join(dir, ReportMarkdownFile)
	if err := util.WriteFileAtomic(mdPath, []byte(markdown)); err != nil {
		return err
	}
	logger.Info("Wrote report", htmlPath, mdPath)
	return nil
}
