package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"f1champsseason/pkg/log"
	"f1champsseason/pkg/model"
	"f1champsseason/pkg/render"
	"f1champsseason/pkg/season"
)

const (
	commandStart        = "start"
	commandDrivers      = "pilotos"
	commandTeams        = "equipos"
	commandChampion     = "campeon"
	commandConstructors = "constructores"
	commandAlerts       = "avisos"
	commandRaces        = "carreras"
	commandRace         = "carrera"
)

var helpText = strings.Join([]string{
	"Comandos disponibles:",
	"/" + commandDrivers + " - clasificación de pilotos",
	"/" + commandTeams + " - clasificación de equipos",
	"/" + commandRaces + " - carreras de la temporada",
	"/" + commandRace + " NOMBRE - resultados de una carrera",
	"/" + commandChampion + " AÑO - campeón de pilotos",
	"/" + commandConstructors + " AÑO - campeón de constructores",
	"/" + commandAlerts + " - activa o desactiva los avisos de resultados",
}, "\n")

var menuKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("/"+commandDrivers),
		tgbotapi.NewKeyboardButton("/"+commandTeams),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("/"+commandRaces),
		tgbotapi.NewKeyboardButton("/"+commandAlerts),
	),
)

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type StandingsSource interface {
	Snapshot() model.Standings
	RaceNames() []string
	RaceResults(raceName string) ([]model.ResultRow, error)
}

type Lookuper interface {
	Champion(year int) (string, bool)
	Constructor(year int) (string, bool)
}

type Subscriptions interface {
	ToggleResultsSubscription(userID, name, chatID string) (bool, error)
}

// Bot answers read-only commands about the running season.
type Bot struct {
	sender Sender
	source StandingsSource
	lookup Lookuper
	subs   Subscriptions
}

func NewBot(sender Sender, source StandingsSource, lookup Lookuper, subs Subscriptions) *Bot {
	return &Bot{
		sender: sender,
		source: source,
		lookup: lookup,
		subs:   subs,
	}
}

// Run handles updates until ctx is done or the channel closes.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		if err := b.handleCallback(update.CallbackQuery); err != nil {
			log.Warn("handling telegram callback", log.String("data", update.CallbackQuery.Data), log.ErrorField(err))
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil || !message.IsCommand() {
		return
	}
	log.Debug("telegram command",
		log.String("user", message.From.UserName),
		log.Int64("chatID", message.Chat.ID),
		log.String("text", message.Text))

	if err := b.handleCommand(message); err != nil {
		log.Warn("handling telegram command", log.String("command", message.Command()), log.ErrorField(err))
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	switch message.Command() {
	case commandStart:
		msg := tgbotapi.NewMessage(chatID, helpText)
		msg.ReplyMarkup = menuKeyboard
		_, err := b.sender.Send(msg)
		return err
	case commandDrivers:
		rows := b.source.Snapshot().Drivers
		if len(rows) == 0 {
			return b.reply(chatID, "No hay pilotos registrados.")
		}
		return b.replyTable(chatID, "Pilotos", render.CompactDriverStandings(rows))
	case commandTeams:
		rows := b.source.Snapshot().Teams
		if len(rows) == 0 {
			return b.reply(chatID, "No hay equipos registrados.")
		}
		return b.replyTable(chatID, "Equipos", render.TeamStandings(rows))
	case commandRaces:
		return b.sendRaces(chatID, 0, nil)
	case commandRace:
		return b.replyRace(chatID, strings.TrimSpace(message.CommandArguments()))
	case commandChampion:
		return b.replyLookup(chatID, commandChampion, "pilotos", message.CommandArguments(), b.lookup.Champion)
	case commandConstructors:
		return b.replyLookup(chatID, commandConstructors, "constructores", message.CommandArguments(), b.lookup.Constructor)
	case commandAlerts:
		return b.toggleAlerts(message)
	default:
		return b.reply(chatID, fmt.Sprintf("Comando desconocido. Prueba /%s", commandStart))
	}
}

func (b *Bot) replyLookup(chatID int64, command, title, args string, find func(int) (string, bool)) error {
	year, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return b.reply(chatID, fmt.Sprintf("Uso: /%s AÑO", command))
	}
	name, ok := find(year)
	if !ok {
		return b.reply(chatID, fmt.Sprintf("No hay información para el año %d.", year))
	}
	return b.reply(chatID, fmt.Sprintf("El campeón de %s de %d fue %s.", title, year, name))
}

func (b *Bot) replyRace(chatID int64, name string) error {
	if name == "" {
		return b.reply(chatID, fmt.Sprintf("Uso: /%s NOMBRE", commandRace))
	}
	rows, err := b.source.RaceResults(name)
	if errors.Is(err, season.ErrUnknownEntity) {
		return b.reply(chatID, fmt.Sprintf("Carrera desconocida: %s.", name))
	}
	if err != nil {
		return err
	}
	return b.replyTable(chatID, "Resultados", render.RaceResults(name, rows))
}

func (b *Bot) toggleAlerts(message *tgbotapi.Message) error {
	user := message.From
	name := user.UserName
	if name == "" {
		name = user.FirstName
	}
	subscribed, err := b.subs.ToggleResultsSubscription(
		strconv.FormatInt(user.ID, 10), name, strconv.FormatInt(message.Chat.ID, 10))
	if err != nil {
		_ = b.reply(message.Chat.ID, "No se pudo cambiar la suscripción.")
		return err
	}
	if subscribed {
		return b.reply(message.Chat.ID, "Avisos de resultados activados.")
	}
	return b.reply(message.Chat.ID, "Avisos de resultados desactivados.")
}

func (b *Bot) reply(chatID int64, text string) error {
	_, err := b.sender.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) replyTable(chatID int64, title, table string) error {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("```\n%s\n\n%s\n```", escapeCode(title), escapeCode(table)))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	_, err := b.sender.Send(msg)
	return err
}

// escapeCode escapes what MarkdownV2 requires inside pre blocks.
func escapeCode(s string) string {
	return strings.NewReplacer(`\`, `\\`, "`", "\\`").Replace(s)
}
