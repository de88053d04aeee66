package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	racesPerPage = 10
	pagerPrefix  = "pager"
	pagerPrev    = "prev"
	pagerNext    = "next"
)

func pageCount(total, perPage int) int {
	return (total + perPage - 1) / perPage
}

// sendRaces sends a page of race names, editing messageID in place when set.
func (b *Bot) sendRaces(chatID int64, page int, messageID *int) error {
	names := b.source.RaceNames()
	if len(names) == 0 {
		return b.reply(chatID, "No hay carreras registradas.")
	}
	page = max(0, min(page, pageCount(len(names), racesPerPage)-1))
	text, keyboard := racesTextMarkup(page, racesPerPage, names)

	var cfg tgbotapi.Chattable
	if messageID == nil {
		msg := tgbotapi.NewMessage(chatID, text)
		if keyboard != nil {
			msg.ReplyMarkup = *keyboard
		}
		cfg = msg
	} else {
		msg := tgbotapi.NewEditMessageText(chatID, *messageID, text)
		msg.ReplyMarkup = keyboard
		cfg = msg
	}
	_, err := b.sender.Send(cfg)
	return err
}

func racesTextMarkup(page, perPage int, names []string) (string, *tgbotapi.InlineKeyboardMarkup) {
	start := page * perPage
	end := min(start+perPage, len(names))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, names[i]))
	}

	var buttons []tgbotapi.InlineKeyboardButton
	if page > 0 {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData("Anterior",
			fmt.Sprintf("%s:%s:%d", pagerPrefix, pagerPrev, page)))
	}
	if page < pageCount(len(names), perPage)-1 {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData("Siguiente",
			fmt.Sprintf("%s:%s:%d", pagerPrefix, pagerNext, page)))
	}
	if len(buttons) == 0 {
		return strings.Join(lines, "\n"), nil
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(buttons)
	return strings.Join(lines, "\n"), &markup
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) error {
	split := strings.Split(query.Data, ":")
	if len(split) != 3 || split[0] != pagerPrefix || query.Message == nil || query.Message.Chat == nil {
		return nil
	}
	page, err := strconv.Atoi(split[2])
	if err != nil {
		return err
	}
	switch split[1] {
	case pagerNext:
		page++
	case pagerPrev:
		page--
	default:
		return nil
	}
	return b.sendRaces(query.Message.Chat.ID, page, &query.Message.MessageID)
}
