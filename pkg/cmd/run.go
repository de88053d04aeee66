package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"f1champsseason/pkg/apps/mainapp"
	"f1champsseason/pkg/bot"
	"f1champsseason/pkg/config"
	"f1champsseason/pkg/crashstats"
	"f1champsseason/pkg/log"
	"f1champsseason/pkg/model"
	"f1champsseason/pkg/notification"
	"f1champsseason/pkg/pubsub"
	"f1champsseason/pkg/reference"
	"f1champsseason/pkg/season"
	"f1champsseason/pkg/settings"
	"f1champsseason/pkg/webserver"
)

const defaultHTTPTimeout = 10 * time.Second

func runSeason(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)

	s := season.NewSeason()
	lookup := reference.LoadLookup(config.ChampionsFile, config.ConstructorsFile)
	champions, constructors := lookup.Len()
	log.Info("reference tables ready", log.Int("champions", champions), log.Int("constructors", constructors))
	ps := pubsub.NewPubSub[model.ResultRecorded]()

	var wg sync.WaitGroup
	var closers []func()
	defer func() {
		cancel()
		ps.Close()
		wg.Wait()
		for _, c := range closers {
			c()
		}
	}()

	if config.WebserverAddress != "" {
		ws := webserver.NewManager(config.WebserverAddress, s, ps)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ws.Serve(ctx); err != nil {
				log.Error("webserver stopped", log.ErrorField(err))
			}
		}()
	}

	if config.TelegramToken != "" {
		closeTelegram, err := startTelegram(ctx, &wg, s, lookup, ps)
		if err != nil {
			return err
		}
		closers = append(closers, closeTelegram)
	}

	app, err := mainapp.NewMainApp(s, ps, lookup, newFetcher())
	if err != nil {
		return err
	}

	// a blocked read on the input must not hold up a shutdown signal
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx, in, out) }()
	select {
	case err = <-done:
		return err
	case <-ctx.Done():
		log.Info("interrupted, shutting down")
		return nil
	}
}

func startTelegram(
	ctx context.Context,
	wg *sync.WaitGroup,
	s *season.Season,
	lookup *reference.Lookup,
	ps *pubsub.PubSub[model.ResultRecorded],
) (func(), error) {
	api, err := tgbotapi.NewBotAPI(config.TelegramToken)
	if err != nil {
		return nil, errors.Wrap(err, "connecting telegram bot")
	}
	store, err := settings.NewManager(config.SettingsDB)
	if err != nil {
		return nil, err
	}
	log.Info("telegram bot authorized", log.String("account", api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	announcer := notification.NewManager(ps, api, store)
	b := bot.NewBot(api, s, lookup, store)
	wg.Add(2)
	go func() {
		defer wg.Done()
		b.Run(ctx, updates)
	}()
	go func() {
		defer wg.Done()
		announcer.Start(ctx)
	}()

	return func() {
		api.StopReceivingUpdates()
		if err := store.Close(); err != nil {
			log.Warn("closing settings database", log.ErrorField(err))
		}
	}, nil
}

func newFetcher() *crashstats.Fetcher {
	timeout, err := time.ParseDuration(config.HTTPTimeout)
	if err != nil || timeout <= 0 {
		log.Warn("Invalid duration value. Using default",
			log.String("value", config.HTTPTimeout),
			log.String("default", defaultHTTPTimeout.String()))
		timeout = defaultHTTPTimeout
	}
	return crashstats.NewFetcher(config.CrashStatsURL, timeout)
}
