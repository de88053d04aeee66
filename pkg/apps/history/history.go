package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"f1champsseason/pkg/apps"
	"f1champsseason/pkg/menus"
)

type Lookuper interface {
	Champion(year int) (string, bool)
	Constructor(year int) (string, bool)
}

type HistoryApp struct {
	lookup Lookuper
}

func NewHistoryApp(lookup Lookuper) *HistoryApp {
	return &HistoryApp{
		lookup: lookup,
	}
}

func (ha *HistoryApp) AcceptChoice(choice menus.Choice) (bool, apps.Handler) {
	switch choice {
	case menus.LookupChampion:
		return true, ha.renderLookup("drivers", ha.lookup.Champion)
	case menus.LookupConstructors:
		return true, ha.renderLookup("constructors", ha.lookup.Constructor)
	}
	return false, nil
}

func (ha *HistoryApp) renderLookup(title string, find func(year int) (string, bool)) apps.Handler {
	return func(ctx context.Context, p *apps.Prompter) error {
		answer, err := p.Ask("Enter year: ")
		if err != nil {
			return err
		}
		year, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			p.Println("Invalid input, please try again.")
			return nil
		}
		p.Println(Sentence(title, year, find))
		return nil
	}
}

// Sentence phrases the answer of a champion lookup.
func Sentence(title string, year int, find func(year int) (string, bool)) string {
	if name, ok := find(year); ok {
		return fmt.Sprintf("The %s champion of %d was %s.", title, year, name)
	}
	return fmt.Sprintf("No information available for the year %d.", year)
}
