package standings

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1champsseason/pkg/apps"
	"f1champsseason/pkg/menus"
	"f1champsseason/pkg/model"
	"f1champsseason/pkg/pubsub"
	"f1champsseason/pkg/season"
)

type recordingPublisher struct {
	events []model.ResultRecorded
}

func (rp *recordingPublisher) Publish(topic string, data model.ResultRecorded) int {
	if topic == pubsub.TopicResults {
		rp.events = append(rp.events, data)
	}
	return 1
}

func run(t *testing.T, sa *StandingsApp, choice menus.Choice, input string) string {
	t.Helper()
	ok, handler := sa.AcceptChoice(choice)
	require.True(t, ok, choice.String())
	var out bytes.Buffer
	require.NoError(t, handler(context.Background(), apps.NewPrompter(strings.NewReader(input), &out)))
	return out.String()
}

func TestAcceptChoice(t *testing.T) {
	sa := NewStandingsApp(season.NewSeason(), nil)
	for _, c := range []menus.Choice{menus.AddRace, menus.AddDriver, menus.RecordResult, menus.DisplayPositions, menus.DisplayTeamStandings} {
		ok, h := sa.AcceptChoice(c)
		assert.True(t, ok, c.String())
		assert.NotNil(t, h)
	}
	for _, c := range []menus.Choice{menus.LookupChampion, menus.LookupConstructors, menus.CrashStatistics, menus.Exit} {
		ok, _ := sa.AcceptChoice(c)
		assert.False(t, ok, c.String())
	}
}

func TestAddRaces(t *testing.T) {
	s := season.NewSeason()
	sa := NewStandingsApp(s, nil)
	run(t, sa, menus.AddRace, "Bahrain\n\n  Jeddah \ndone\nMonaco\n")

	assert.Equal(t, []string{"Bahrain", "Jeddah"}, s.RaceNames())
}

func TestAddDrivers(t *testing.T) {
	s := season.NewSeason()
	sa := NewStandingsApp(s, nil)
	out := run(t, sa, menus.AddDriver, "Max Verstappen, Red Bull\nno comma here\n , Ferrari\nMax Verstappen, Ferrari\nSergio Perez,Red Bull\nDONE\n")

	assert.Contains(t, out, "Invalid input, please provide data in format 'driver_name, team_name'.")
	assert.Contains(t, out, "Invalid input, please try again.")
	assert.Contains(t, out, "Driver Max Verstappen is already registered.")

	team, ok := s.FindTeam("Red Bull")
	require.True(t, ok)
	assert.Equal(t, []string{"Max Verstappen", "Sergio Perez"}, team.DriverNames())
	_, ok = s.FindTeam("Ferrari")
	assert.False(t, ok)
}

func TestRecordResults(t *testing.T) {
	s := season.NewSeason()
	pub := &recordingPublisher{}
	sa := NewStandingsApp(s, pub)
	run(t, sa, menus.AddDriver, "A, T1\nB, T2\ndone\n")
	run(t, sa, menus.AddRace, "R1\ndone\n")

	out := run(t, sa, menus.RecordResult, "R1\nA, 1\nB, 0\nB, x\nZ, 3\nB,2\nB, 3, 4\nno comma ends the session\nA, 5\ndone\n")
	assert.Contains(t, out, "Invalid position.")
	assert.Contains(t, out, "Invalid driver name: Z")
	assert.Contains(t, out, "Invalid input, please provide data in format 'driver_name, position'.")
	assert.Contains(t, strings.ToLower(out), "r1")

	a, _ := s.FindDriver("A")
	b, _ := s.FindDriver("B")
	assert.Equal(t, 25, a.Points)
	assert.Equal(t, 18, b.Points)

	require.Len(t, pub.events, 2)
	assert.Equal(t, "A", pub.events[0].Driver)
	assert.Equal(t, 25, pub.events[0].Points)
	assert.Equal(t, "B", pub.events[1].Driver)
	assert.Equal(t, "T2", pub.events[1].Team)
	require.Len(t, pub.events[1].Standings.Drivers, 2)
	assert.Equal(t, "A", pub.events[1].Standings.Drivers[0].Name)
}

func TestRecordResultsUnknownRace(t *testing.T) {
	s := season.NewSeason()
	sa := NewStandingsApp(s, nil)
	out := run(t, sa, menus.RecordResult, "Nowhere\nA, 1\ndone\n")
	assert.Contains(t, out, `Unknown race "Nowhere".`)
}

func TestRecordResultsStopsAtEndOfInput(t *testing.T) {
	s := season.NewSeason()
	sa := NewStandingsApp(s, nil)
	run(t, sa, menus.AddDriver, "A, T1\ndone\n")
	run(t, sa, menus.AddRace, "R1\ndone\n")
	run(t, sa, menus.RecordResult, "R1\nA, 3")

	a, _ := s.FindDriver("A")
	assert.Equal(t, 15, a.Points)
}

func TestDisplayPositions(t *testing.T) {
	s := season.NewSeason()
	sa := NewStandingsApp(s, nil)
	assert.Contains(t, run(t, sa, menus.DisplayPositions, ""), "No drivers registered.")

	run(t, sa, menus.AddDriver, "A, T1\nB, T2\ndone\n")
	run(t, sa, menus.AddRace, "R1\ndone\n")
	run(t, sa, menus.RecordResult, "R1\nB, 1\nA, 2\ndone\n")

	out := run(t, sa, menus.DisplayPositions, "")
	assert.Contains(t, out, "Driver: B, Team: T2, Points: 25, Position: 1")
	assert.Contains(t, out, "Driver: A, Team: T1, Points: 18, Position: 2")
	assert.Less(t, strings.Index(out, "Driver: B"), strings.Index(out, "Driver: A"))
}

func TestDisplayTeamStandings(t *testing.T) {
	s := season.NewSeason()
	sa := NewStandingsApp(s, nil)
	assert.Contains(t, run(t, sa, menus.DisplayTeamStandings, ""), "No teams registered.")

	run(t, sa, menus.AddDriver, "A, T1\nB, T2\nC, T2\ndone\n")
	run(t, sa, menus.AddRace, "R1\ndone\n")
	run(t, sa, menus.RecordResult, "R1\nA, 1\nB, 2\nC, 3\ndone\n")

	out := run(t, sa, menus.DisplayTeamStandings, "")
	assert.Contains(t, out, "Position: 1, Team: T2, Points: 33, Drivers: [B, C]")
	assert.Contains(t, out, "Position: 2, Team: T1, Points: 25, Drivers: [A]")
}
