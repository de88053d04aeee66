package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverString(t *testing.T) {
	team := NewTeam("Ferrari")
	d := NewDriver("Charles Leclerc", team)
	assert.Equal(t, "Driver: Charles Leclerc, Team: Ferrari, Points: 0, Position: None", d.String())

	d.Points = 43
	d.Position = 2
	assert.Equal(t, "Driver: Charles Leclerc, Team: Ferrari, Points: 43, Position: 2", d.String())
}

func TestTeamString(t *testing.T) {
	team := NewTeam("McLaren")
	assert.Equal(t, "Team: McLaren, Points: 0, Drivers: []", team.String())

	team.Drivers = append(team.Drivers, NewDriver("Lando Norris", team), NewDriver("Oscar Piastri", team))
	team.Points = 33
	assert.Equal(t, "Team: McLaren, Points: 33, Drivers: [Lando Norris, Oscar Piastri]", team.String())
}

func TestResultRecordedString(t *testing.T) {
	rr := ResultRecorded{Race: "Monza", Driver: "A", Team: "T1", Position: 3, Points: 15}
	assert.Equal(t, "  ▸ Race: Monza\n  ▸ Driver: A (T1)\n  ▸ Position: P3 (+15 pts)", rr.String())

	rr.Standings.Drivers = []DriverStanding{{Position: 1, Name: "B", Team: "T2", Points: 40}}
	assert.Contains(t, rr.String(), "Leader: B, 40 pts")
}
