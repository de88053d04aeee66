package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"f1champsseason/pkg/apps"
	"f1champsseason/pkg/apps/crashes"
	"f1champsseason/pkg/apps/history"
	"f1champsseason/pkg/config"
	"f1champsseason/pkg/menus"
	"f1champsseason/pkg/reference"
)

func NewChampionCmd() *cobra.Command {
	return newLookupCmd("champion YEAR", "prints the drivers champion of a year", "drivers",
		(*reference.Lookup).Champion)
}

func NewConstructorCmd() *cobra.Command {
	return newLookupCmd("constructor YEAR", "prints the constructors champion of a year", "constructors",
		(*reference.Lookup).Constructor)
}

func newLookupCmd(use, short, title string, find func(*reference.Lookup, int) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return errors.Errorf("invalid year %q", args[0])
			}
			lookup := reference.LoadLookup(config.ChampionsFile, config.ConstructorsFile)
			fmt.Fprintln(cmd.OutOrStdout(), history.Sentence(title, year, func(y int) (string, bool) {
				return find(lookup, y)
			}))
			return nil
		},
	}
}

// NewCrashesCmd runs the crash statistics menu entry once.
func NewCrashesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crashes",
		Short: "prints the DNF statistics per season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, handler := crashes.NewCrashesApp(newFetcher()).AcceptChoice(menus.CrashStatistics)
			return handler(cmd.Context(), apps.NewPrompter(strings.NewReader(""), cmd.OutOrStdout()))
		},
	}
}
