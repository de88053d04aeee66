package mainapp

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"f1champsseason/pkg/apps"
	"f1champsseason/pkg/apps/crashes"
	"f1champsseason/pkg/apps/history"
	"f1champsseason/pkg/apps/standings"
	"f1champsseason/pkg/log"
	"f1champsseason/pkg/menus"
	"f1champsseason/pkg/season"
)

type MainApp struct {
	accepters []apps.Accepter
	handlers  map[menus.Choice]apps.Handler
}

func NewMainApp(s *season.Season, publisher standings.Publisher, lookup history.Lookuper, fetcher crashes.Fetcher) (*MainApp, error) {
	return newMainApp(
		standings.NewStandingsApp(s, publisher),
		history.NewHistoryApp(lookup),
		crashes.NewCrashesApp(fetcher),
	)
}

// newMainApp resolves a handler for every menu choice up front, so a choice
// nobody accepts is reported at startup instead of at selection time.
func newMainApp(accepters ...apps.Accepter) (*MainApp, error) {
	m := &MainApp{
		accepters: accepters,
		handlers:  make(map[menus.Choice]apps.Handler),
	}
	for _, choice := range menus.Choices() {
		if choice == menus.Exit {
			continue
		}
		handler, ok := m.accept(choice)
		if !ok {
			return nil, errors.Errorf("no handler for menu choice %d (%s)", int(choice), choice)
		}
		m.handlers[choice] = handler
	}
	return m, nil
}

func (m *MainApp) accept(choice menus.Choice) (apps.Handler, bool) {
	for _, accepter := range m.accepters {
		if ok, handler := accepter.AcceptChoice(choice); ok {
			return handler, true
		}
	}
	return nil, false
}

// Run shows the menu until Exit is chosen, the input ends or ctx is done.
func (m *MainApp) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p := apps.NewPrompter(in, out)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		p.Printf("%s", menus.Render())
		answer, err := p.Ask("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		choice, err := menus.Parse(answer)
		if err != nil {
			p.Println("Invalid choice, please try again.")
			continue
		}
		if choice == menus.Exit {
			return nil
		}

		log.Debug("menu choice", log.String("choice", choice.String()))
		err = m.handlers[choice](ctx, p)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Error("handler failed", log.String("choice", choice.String()), log.ErrorField(err))
			p.Printf("An error occurred: %s\n", err)
		}
	}
}
