package notification

import (
	"context"
	"strconv"

	"github.com/nikoksr/notify"

	"f1champsseason/pkg/log"
	"f1champsseason/pkg/model"
	"f1champsseason/pkg/pubsub"
	"f1champsseason/pkg/settings"
)

const subject = "Nuevo resultado registrado:"

type Lister interface {
	ListSubscribers() ([]settings.TelegramUser, error)
}

type Manager struct {
	ps      *pubsub.PubSub[model.ResultRecorded]
	results <-chan model.ResultRecorded
	lister  Lister
	bot     MessageSender
}

// NewManager subscribes to result events right away so nothing published
// before Start is missed. Every result is announced, also those published
// while a previous announcement is still being sent.
func NewManager(ps *pubsub.PubSub[model.ResultRecorded], bot MessageSender, lister Lister) *Manager {
	return &Manager{
		ps:      ps,
		results: ps.SubscribeQueue(pubsub.TopicResults),
		bot:     bot,
		lister:  lister,
	}
}

// Start announces every result event until ctx is done or the pubsub closes.
func (m *Manager) Start(ctx context.Context) {
	defer m.ps.Unsubscribe(pubsub.TopicResults, m.results)
	for {
		select {
		case <-ctx.Done():
			return
		case result, ok := <-m.results:
			if !ok {
				return
			}
			m.handleNotification(ctx, result)
		}
	}
}

func (m *Manager) handleNotification(ctx context.Context, result model.ResultRecorded) {
	recipients, err := m.lister.ListSubscribers()
	if err != nil {
		log.Error("listing subscribers", log.ErrorField(err))
		return
	}
	log.Debug("announcing result",
		log.String("race", result.Race),
		log.String("driver", result.Driver),
		log.Int("recipients", len(recipients)))
	if err = m.sendNotification(ctx, recipients, result); err != nil {
		log.Warn("notifying users", log.ErrorField(err))
	}
}

func (m *Manager) sendNotification(ctx context.Context, users []settings.TelegramUser, result model.ResultRecorded) error {
	if len(users) == 0 {
		return nil
	}

	tg := Telegram{}
	tg.SetClient(m.bot)
	for _, user := range users {
		chatID, err := strconv.ParseInt(user.ChatID, 10, 64)
		if err != nil {
			log.Warn("skipping invalid chat id", log.String("user", user.ID), log.String("chatID", user.ChatID))
			continue
		}
		tg.AddReceivers(chatID)
	}

	n := notify.NewWithServices(tg)
	return n.Send(ctx, subject, result.String())
}
