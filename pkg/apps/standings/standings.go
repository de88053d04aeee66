package standings

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	"f1champsseason/pkg/apps"
	"f1champsseason/pkg/log"
	"f1champsseason/pkg/menus"
	"f1champsseason/pkg/model"
	"f1champsseason/pkg/pubsub"
	"f1champsseason/pkg/render"
	"f1champsseason/pkg/season"
)

type Publisher interface {
	Publish(topic string, data model.ResultRecorded) int
}

type StandingsApp struct {
	season    *season.Season
	publisher Publisher
}

// NewStandingsApp wires the season. publisher may be nil when nobody listens
// for recorded results.
func NewStandingsApp(s *season.Season, publisher Publisher) *StandingsApp {
	return &StandingsApp{
		season:    s,
		publisher: publisher,
	}
}

func (sa *StandingsApp) AcceptChoice(choice menus.Choice) (bool, apps.Handler) {
	switch choice {
	case menus.AddRace:
		return true, sa.addRaces
	case menus.AddDriver:
		return true, sa.addDrivers
	case menus.RecordResult:
		return true, sa.recordResults
	case menus.DisplayPositions:
		return true, sa.displayPositions
	case menus.DisplayTeamStandings:
		return true, sa.displayTeamStandings
	}
	return false, nil
}

func (sa *StandingsApp) addRaces(ctx context.Context, p *apps.Prompter) error {
	p.Println("Enter race names, one per line. When finished, type 'DONE':")
	for {
		line, err := p.Ask("> ")
		if err != nil {
			return err
		}
		if apps.IsDone(line) {
			return nil
		}
		if _, err := sa.season.RegisterRace(line); err != nil {
			if errors.Is(err, season.ErrEmptyName) {
				continue
			}
			return err
		}
	}
}

func (sa *StandingsApp) addDrivers(ctx context.Context, p *apps.Prompter) error {
	p.Println("Enter driver's name and their team, separated by a comma. When finished, type 'DONE':")
	for {
		line, err := p.Ask("> ")
		if err != nil {
			return err
		}
		if apps.IsDone(line) {
			return nil
		}
		name, team, ok := apps.SplitPair(line)
		if !ok {
			p.Println("Invalid input, please provide data in format 'driver_name, team_name'.")
			continue
		}
		_, err = sa.season.RegisterDriver(name, team)
		switch {
		case errors.Is(err, season.ErrEmptyName):
			p.Println("Invalid input, please try again.")
		case errors.Is(err, season.ErrAlreadyRegistered):
			p.Printf("Driver %s is already registered.\n", name)
		case err != nil:
			return err
		}
	}
}

func (sa *StandingsApp) recordResults(ctx context.Context, p *apps.Prompter) error {
	raceName, err := p.Ask("Enter race name: ")
	if err != nil {
		return err
	}
	if _, ok := sa.season.FindRace(raceName); !ok {
		p.Printf("Unknown race %q.\n", raceName)
		return nil
	}

	recorded := 0
	for {
		line, err := p.Ask("Enter driver's name and position, separated by a comma. When finished, type 'DONE': ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if apps.IsDone(line) || !strings.Contains(line, ",") {
			break
		}
		driverName, position, ok := apps.SplitPair(line)
		if !ok {
			p.Println("Invalid input, please provide data in format 'driver_name, position'.")
			continue
		}
		result, err := sa.season.RecordResultString(raceName, driverName, position)
		if err != nil {
			sa.reportRecordError(p, err)
			continue
		}
		recorded++
		sa.publish(raceName, result)
	}

	if recorded > 0 {
		rows, err := sa.season.RaceResults(raceName)
		if err != nil {
			return err
		}
		p.Println(render.RaceResults(raceName, rows))
	}
	return nil
}

func (sa *StandingsApp) reportRecordError(p *apps.Prompter, err error) {
	var ue *season.UnknownEntityError
	switch {
	case errors.Is(err, season.ErrInvalidPosition):
		p.Println("Invalid position.")
	case errors.As(err, &ue):
		p.Printf("Invalid %s name: %s\n", ue.Kind, ue.Name)
	default:
		p.Printf("An error occurred: %s\n", err)
	}
}

func (sa *StandingsApp) publish(raceName string, result *model.RaceResult) {
	if sa.publisher == nil {
		return
	}
	event := model.ResultRecorded{
		Race:      raceName,
		Driver:    result.Driver.Name,
		Team:      result.Driver.Team.Name,
		Position:  result.Position,
		Points:    season.PointsFor(result.Position),
		Standings: sa.season.Snapshot(),
	}
	n := sa.publisher.Publish(pubsub.TopicResults, event)
	log.Debug("result published", log.String("race", raceName), log.String("driver", event.Driver), log.Int("subscribers", n))
}

func (sa *StandingsApp) displayPositions(ctx context.Context, p *apps.Prompter) error {
	drivers := sa.season.DriverStandings()
	if len(drivers) == 0 {
		p.Println("No drivers registered.")
		return nil
	}
	rows := make([]model.DriverStanding, len(drivers))
	for i, d := range drivers {
		p.Println(d)
		rows[i] = d.Standing()
	}
	p.Println(render.DriverStandings(rows))
	return nil
}

func (sa *StandingsApp) displayTeamStandings(ctx context.Context, p *apps.Prompter) error {
	teams := sa.season.TeamStandings()
	if len(teams) == 0 {
		p.Println("No teams registered.")
		return nil
	}
	rows := make([]model.TeamStanding, len(teams))
	for i, rt := range teams {
		p.Printf("Position: %d, %s\n", rt.Rank, rt.Team)
		rows[i] = rt.Team.Standing(rt.Rank)
	}
	p.Println(render.TeamStandings(rows))
	return nil
}
