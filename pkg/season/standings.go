package season

import (
	"sort"

	"f1champsseason/pkg/model"
)

type RankedTeam struct {
	Rank int
	Team *model.Team
}

// DriverStandings orders all drivers by points, highest first, and stores the
// resulting 1-based position on every driver. Drivers level on points keep
// registration order.
func (s *Season) DriverStandings() []*model.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()

	drivers := s.sortedDrivers()
	for i, d := range drivers {
		d.Position = i + 1
	}
	return drivers
}

// TeamStandings orders all teams by points, highest first, with ranks 1..N.
// Teams are not modified.
func (s *Season) TeamStandings() []RankedTeam {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := s.sortedTeams()
	ranked := make([]RankedTeam, len(teams))
	for i, t := range teams {
		ranked[i] = RankedTeam{Rank: i + 1, Team: t}
	}
	return ranked
}

// Snapshot renders both standings as plain values without touching the
// stored driver positions.
func (s *Season) Snapshot() model.Standings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drivers := s.sortedDrivers()
	teams := s.sortedTeams()
	st := model.Standings{
		Drivers: make([]model.DriverStanding, len(drivers)),
		Teams:   make([]model.TeamStanding, len(teams)),
	}
	for i, d := range drivers {
		row := d.Standing()
		row.Position = i + 1
		st.Drivers[i] = row
	}
	for i, t := range teams {
		st.Teams[i] = t.Standing(i + 1)
	}
	return st
}

func (s *Season) sortedDrivers() []*model.Driver {
	drivers := make([]*model.Driver, len(s.driverOrder))
	copy(drivers, s.driverOrder)
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].Points > drivers[j].Points
	})
	return drivers
}

func (s *Season) sortedTeams() []*model.Team {
	teams := make([]*model.Team, len(s.teamOrder))
	copy(teams, s.teamOrder)
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Points > teams[j].Points
	})
	return teams
}
