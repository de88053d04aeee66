package season

import (
	"strings"
	"sync"

	"f1champsseason/pkg/model"
)

// Season holds the drivers, teams and races of the running championship.
// All methods are safe for concurrent use; composite mutations such as
// recording a result happen under a single lock.
type Season struct {
	mu sync.RWMutex

	drivers map[string]*model.Driver
	teams   map[string]*model.Team
	races   map[string]*model.Race

	// registration order, used as the tie order in standings
	driverOrder []*model.Driver
	teamOrder   []*model.Team
	raceOrder   []string
}

func NewSeason() *Season {
	return &Season{
		drivers: make(map[string]*model.Driver),
		teams:   make(map[string]*model.Team),
		races:   make(map[string]*model.Race),
	}
}

// RegisterDriver creates a driver bound to teamName, creating the team on
// first use. A name that is already registered is rejected and nothing changes.
func (s *Season) RegisterDriver(name, teamName string) (*model.Driver, error) {
	name = strings.TrimSpace(name)
	teamName = strings.TrimSpace(teamName)
	if name == "" || teamName == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drivers[name]; ok {
		return nil, &alreadyRegisteredError{kind: KindDriver, name: name}
	}
	team := s.registerTeam(teamName)
	driver := model.NewDriver(name, team)
	s.drivers[name] = driver
	s.driverOrder = append(s.driverOrder, driver)
	team.Drivers = append(team.Drivers, driver)
	return driver, nil
}

// RegisterTeam returns the existing team or creates an empty one.
func (s *Season) RegisterTeam(name string) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registerTeam(name), nil
}

func (s *Season) registerTeam(name string) *model.Team {
	if team, ok := s.teams[name]; ok {
		return team
	}
	team := model.NewTeam(name)
	s.teams[name] = team
	s.teamOrder = append(s.teamOrder, team)
	return team
}

// RegisterRace stores a race with no results. Registering an existing name
// replaces the race and drops its results; points already awarded are kept.
func (s *Season) RegisterRace(name string) (*model.Race, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.races[name]; !ok {
		s.raceOrder = append(s.raceOrder, name)
	}
	race := model.NewRace(name)
	s.races[name] = race
	return race, nil
}

func (s *Season) FindDriver(name string) (*model.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drivers[strings.TrimSpace(name)]
	return d, ok
}

func (s *Season) FindTeam(name string) (*model.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[strings.TrimSpace(name)]
	return t, ok
}

func (s *Season) FindRace(name string) (*model.Race, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.races[strings.TrimSpace(name)]
	return r, ok
}

// RaceNames lists the registered races in registration order.
func (s *Season) RaceNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.raceOrder))
	copy(names, s.raceOrder)
	return names
}
