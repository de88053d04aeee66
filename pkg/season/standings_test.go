package season

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1champsseason/pkg/model"
)

func TestStandingsEmptySeason(t *testing.T) {
	s := NewSeason()
	assert.Empty(t, s.DriverStandings())
	assert.Empty(t, s.TeamStandings())
	st := s.Snapshot()
	assert.Empty(t, st.Drivers)
	assert.Empty(t, st.Teams)
}

func TestDriverStandingsOrderAndPositions(t *testing.T) {
	s := NewSeason()
	names := []string{"A", "B", "C", "D", "E"}
	for i, n := range names {
		_, err := s.RegisterDriver(n, fmt.Sprintf("T%d", i%2))
		require.NoError(t, err)
	}
	_, err := s.RegisterRace("R1")
	require.NoError(t, err)
	for driver, pos := range map[string]int{"A": 5, "B": 2, "D": 1, "E": 12} {
		_, err := s.RecordResult("R1", driver, pos)
		require.NoError(t, err)
	}

	drivers := s.DriverStandings()
	require.Len(t, drivers, len(names))
	for i, d := range drivers {
		assert.Equal(t, i+1, d.Position)
		if i > 0 {
			assert.GreaterOrEqual(t, drivers[i-1].Points, d.Points)
		}
	}
	got := make([]string, len(drivers))
	for i, d := range drivers {
		got[i] = d.Name
	}
	// C and E both have zero points and keep registration order
	assert.Equal(t, []string{"D", "B", "A", "C", "E"}, got)
}

func TestDriverStandingsRecomputesPositions(t *testing.T) {
	s := sampleSeason(t)
	_, err := s.RecordResult("R1", "A", 2)
	require.NoError(t, err)
	s.DriverStandings()
	b, _ := s.FindDriver("B")
	assert.Equal(t, 2, b.Position)

	_, err = s.RecordResult("R1", "B", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Position, "positions change only when standings are computed")
	s.DriverStandings()
	assert.Equal(t, 1, b.Position)
}

func TestTeamStandingsRanks(t *testing.T) {
	s := NewSeason()
	for i := 0; i < 6; i++ {
		_, err := s.RegisterDriver(fmt.Sprintf("D%d", i), fmt.Sprintf("T%d", i))
		require.NoError(t, err)
	}
	_, err := s.RegisterRace("R1")
	require.NoError(t, err)
	_, err = s.RecordResult("R1", "D3", 1)
	require.NoError(t, err)
	_, err = s.RecordResult("R1", "D5", 1)
	require.NoError(t, err)

	teams := s.TeamStandings()
	require.Len(t, teams, 6)
	for i, rt := range teams {
		assert.Equal(t, i+1, rt.Rank)
	}
	assert.Equal(t, "T3", teams[0].Team.Name)
	assert.Equal(t, "T5", teams[1].Team.Name)
	assert.Equal(t, "T0", teams[2].Team.Name)
}

func TestSnapshot(t *testing.T) {
	s := sampleSeason(t)
	_, err := s.RegisterDriver("C", "T1")
	require.NoError(t, err)
	_, err = s.RecordResult("R1", "B", 1)
	require.NoError(t, err)
	_, err = s.RecordResult("R1", "C", 3)
	require.NoError(t, err)

	expected := model.Standings{
		Drivers: []model.DriverStanding{
			{Position: 1, Name: "B", Team: "T2", Points: 25},
			{Position: 2, Name: "C", Team: "T1", Points: 15},
			{Position: 3, Name: "A", Team: "T1", Points: 0},
		},
		Teams: []model.TeamStanding{
			{Position: 1, Name: "T2", Points: 25, Drivers: []string{"B"}},
			{Position: 2, Name: "T1", Points: 15, Drivers: []string{"A", "C"}},
		},
	}
	if diff := cmp.Diff(expected, s.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}

	a, _ := s.FindDriver("A")
	assert.Equal(t, 0, a.Position, "snapshot must not assign positions")
}

func TestConcurrentRecordingAndReading(t *testing.T) {
	s := sampleSeason(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.RecordResult("R1", "A", 1)
		}()
		go func() {
			defer wg.Done()
			st := s.Snapshot()
			for _, team := range st.Teams {
				assert.Equal(t, 0, team.Points%25)
			}
		}()
	}
	wg.Wait()
	a, _ := s.FindDriver("A")
	assert.Equal(t, 50*25, a.Points)
	assert.Equal(t, 50*25, a.Team.Points)
}
