package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"f1champsseason/pkg/crashstats"
	"f1champsseason/pkg/helper"
	"f1champsseason/pkg/model"
)

const (
	colPos    = "POS"
	colCode   = "COD"
	colDriver = "DRIVER"
	colTeam   = "TEAM"
	colPoints = "PTS"
)

func newWriter() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func rightAligned(cols ...int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	return cfgs
}

func DriverStandings(rows []model.DriverStanding) string {
	t := newWriter()
	t.AppendHeader(table.Row{colPos, colCode, colDriver, colTeam, colPoints})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Position, helper.DriverCode(r.Name), r.Name, r.Team, r.Points})
	}
	t.SetColumnConfigs(rightAligned(1, 5))
	return t.Render()
}

// CompactDriverStandings drops the name and team columns so the table fits a
// phone screen.
func CompactDriverStandings(rows []model.DriverStanding) string {
	t := newWriter()
	t.AppendHeader(table.Row{colPos, colCode, colPoints})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Position, helper.DriverCode(r.Name), r.Points})
	}
	t.SetColumnConfigs(rightAligned(1, 3))
	return t.Render()
}

func TeamStandings(rows []model.TeamStanding) string {
	t := newWriter()
	t.AppendHeader(table.Row{colPos, colTeam, colPoints, "DRIVERS"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Position, r.Name, r.Points, strings.Join(r.Drivers, ", ")})
	}
	t.SetColumnConfigs(rightAligned(1, 3))
	return t.Render()
}

func RaceResults(race string, rows []model.ResultRow) string {
	t := newWriter()
	t.SetTitle(race)
	t.AppendHeader(table.Row{colPos, colDriver, colTeam, colPoints})
	total := 0
	for _, r := range rows {
		t.AppendRow(table.Row{r.Position, r.Driver, r.Team, r.Points})
		total += r.Points
	}
	t.AppendFooter(table.Row{"", "", "TOTAL", total})
	t.SetColumnConfigs(rightAligned(1, 4))
	return t.Render()
}

func CrashStats(rows []crashstats.Row) string {
	t := newWriter()
	t.AppendHeader(table.Row{"SEASON", "DNF COUNT", "DNF %"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Label, r.Count, r.Percentage})
	}
	t.SetColumnConfigs(rightAligned(2, 3))
	return t.Render()
}
