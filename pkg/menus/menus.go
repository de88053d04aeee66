package menus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Choice int

const (
	AddRace Choice = iota + 1
	AddDriver
	RecordResult
	DisplayPositions
	DisplayTeamStandings
	LookupChampion
	LookupConstructors
	CrashStatistics
	Exit
)

var ErrUnknownChoice = errors.New("unknown menu choice")

var labels = map[Choice]string{
	AddRace:              "Add Current Season Race",
	AddDriver:            "Add Current Season Driver",
	RecordResult:         "Record Current Season Race Result",
	DisplayPositions:     "Display Current Driver Position",
	DisplayTeamStandings: "Display Current Team Standings",
	LookupChampion:       "Lookup Drivers Previous Champion",
	LookupConstructors:   "Lookup Previous Constructors Champion",
	CrashStatistics:      "Display F1 Crash Statistics",
	Exit:                 "Exit",
}

// Choices lists every choice in menu order.
func Choices() []Choice {
	return []Choice{
		AddRace,
		AddDriver,
		RecordResult,
		DisplayPositions,
		DisplayTeamStandings,
		LookupChampion,
		LookupConstructors,
		CrashStatistics,
		Exit,
	}
}

func (c Choice) Valid() bool {
	_, ok := labels[c]
	return ok
}

func (c Choice) String() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

func Parse(s string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownChoice, "%q", s)
	}
	c := Choice(n)
	if !c.Valid() {
		return 0, errors.Wrapf(ErrUnknownChoice, "%d", n)
	}
	return c, nil
}

// Render prints the numbered menu, one choice per line.
func Render() string {
	var b strings.Builder
	for _, c := range Choices() {
		fmt.Fprintf(&b, "%d. %s\n", int(c), c)
	}
	return b.String()
}
