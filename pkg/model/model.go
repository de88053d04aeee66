package model

import (
	"fmt"
	"strings"
)

type Driver struct {
	Name   string
	Team   *Team
	Points int
	// Position is assigned by the last driver standings computation. Zero
	// means it has not been computed yet.
	Position int
}

func NewDriver(name string, team *Team) *Driver {
	return &Driver{
		Name: name,
		Team: team,
	}
}

func (d *Driver) String() string {
	position := "None"
	if d.Position > 0 {
		position = fmt.Sprint(d.Position)
	}
	return fmt.Sprintf("Driver: %s, Team: %s, Points: %d, Position: %s", d.Name, d.Team.Name, d.Points, position)
}

func (d *Driver) Standing() DriverStanding {
	return DriverStanding{
		Position: d.Position,
		Name:     d.Name,
		Team:     d.Team.Name,
		Points:   d.Points,
	}
}

type Team struct {
	Name    string
	Points  int
	Drivers []*Driver // join order
}

func NewTeam(name string) *Team {
	return &Team{
		Name:    name,
		Drivers: []*Driver{},
	}
}

func (t *Team) DriverNames() []string {
	names := make([]string, len(t.Drivers))
	for i, d := range t.Drivers {
		names[i] = d.Name
	}
	return names
}

func (t *Team) String() string {
	return fmt.Sprintf("Team: %s, Points: %d, Drivers: [%s]", t.Name, t.Points, strings.Join(t.DriverNames(), ", "))
}

func (t *Team) Standing(position int) TeamStanding {
	return TeamStanding{
		Position: position,
		Name:     t.Name,
		Points:   t.Points,
		Drivers:  t.DriverNames(),
	}
}

type RaceResult struct {
	Driver   *Driver
	Position int
}

type Race struct {
	Name    string
	Results []*RaceResult // recording order
}

func NewRace(name string) *Race {
	return &Race{
		Name:    name,
		Results: []*RaceResult{},
	}
}

func (r *Race) String() string {
	return fmt.Sprintf("Race: %s", r.Name)
}

// View rows below are plain values, safe to hand over to other goroutines.

type DriverStanding struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
}

type TeamStanding struct {
	Position int      `json:"position"`
	Name     string   `json:"name"`
	Points   int      `json:"points"`
	Drivers  []string `json:"drivers"`
}

type Standings struct {
	Drivers []DriverStanding `json:"drivers"`
	Teams   []TeamStanding   `json:"teams"`
}

type ResultRow struct {
	Driver   string `json:"driver"`
	Team     string `json:"team"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
}

type ResultRecorded struct {
	Race      string    `json:"race"`
	Driver    string    `json:"driver"`
	Team      string    `json:"team"`
	Position  int       `json:"position"`
	Points    int       `json:"points"`
	Standings Standings `json:"standings"`
}

func (rr ResultRecorded) String() string {
	msg := fmt.Sprintf("  ▸ Race: %s\n  ▸ Driver: %s (%s)\n  ▸ Position: P%d (+%d pts)", rr.Race, rr.Driver, rr.Team, rr.Position, rr.Points)
	if len(rr.Standings.Drivers) > 0 {
		leader := rr.Standings.Drivers[0]
		msg += fmt.Sprintf("\n  ▸ Leader: %s, %d pts", leader.Name, leader.Points)
	}
	return msg
}
