package crashes

import (
	"context"

	"github.com/pkg/errors"

	"f1champsseason/pkg/apps"
	"f1champsseason/pkg/crashstats"
	"f1champsseason/pkg/log"
	"f1champsseason/pkg/menus"
	"f1champsseason/pkg/render"
)

type Fetcher interface {
	Fetch(ctx context.Context) ([]crashstats.Row, error)
}

type CrashesApp struct {
	fetcher Fetcher
}

func NewCrashesApp(fetcher Fetcher) *CrashesApp {
	return &CrashesApp{
		fetcher: fetcher,
	}
}

func (ca *CrashesApp) AcceptChoice(choice menus.Choice) (bool, apps.Handler) {
	if choice == menus.CrashStatistics {
		return true, ca.renderCrashStats
	}
	return false, nil
}

func (ca *CrashesApp) renderCrashStats(ctx context.Context, p *apps.Prompter) error {
	rows, err := ca.fetcher.Fetch(ctx)
	if errors.Is(err, crashstats.ErrNoTable) {
		p.Println("No crash data table found on the page.")
		return nil
	}
	if err != nil {
		log.Warn("crash statistics not available", log.ErrorField(err))
		p.Println("Failed to scrape the F1 crash data website.")
		return nil
	}
	p.Println(render.CrashStats(rows))
	return nil
}
