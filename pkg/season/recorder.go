package season

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"f1champsseason/pkg/model"
)

// ParsePosition accepts a decimal integer >= 1, surrounding spaces allowed.
func ParsePosition(s string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPosition, "%q", s)
	}
	if position < MinScoringPosition {
		return 0, errors.Wrapf(ErrInvalidPosition, "%d", position)
	}
	return position, nil
}

// RecordResultString parses position before delegating to RecordResult.
func (s *Season) RecordResultString(raceName, driverName, position string) (*model.RaceResult, error) {
	p, err := ParsePosition(position)
	if err != nil {
		return nil, err
	}
	return s.RecordResult(raceName, driverName, p)
}

// RecordResult appends the result to the race and adds the scored points to
// the driver and to the driver's team. Calling it twice for the same result
// scores twice. Positions beyond the scoring table are stored with 0 points.
// On error nothing is changed.
func (s *Season) RecordResult(raceName, driverName string, position int) (*model.RaceResult, error) {
	if position < MinScoringPosition {
		return nil, errors.Wrapf(ErrInvalidPosition, "%d", position)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raceName = strings.TrimSpace(raceName)
	race, ok := s.races[raceName]
	if !ok {
		return nil, unknown(KindRace, raceName)
	}
	driverName = strings.TrimSpace(driverName)
	driver, ok := s.drivers[driverName]
	if !ok {
		return nil, unknown(KindDriver, driverName)
	}

	result := &model.RaceResult{Driver: driver, Position: position}
	race.Results = append(race.Results, result)
	points := PointsFor(position)
	driver.Points += points
	driver.Team.Points += points
	return result, nil
}

// RaceResults lists the results of a race in recording order together with
// the points each one scored.
func (s *Season) RaceResults(raceName string) ([]model.ResultRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raceName = strings.TrimSpace(raceName)
	race, ok := s.races[raceName]
	if !ok {
		return nil, unknown(KindRace, raceName)
	}
	rows := make([]model.ResultRow, 0, len(race.Results))
	for _, r := range race.Results {
		rows = append(rows, model.ResultRow{
			Driver:   r.Driver.Name,
			Team:     r.Driver.Team.Name,
			Position: r.Position,
			Points:   PointsFor(r.Position),
		})
	}
	return rows, nil
}
