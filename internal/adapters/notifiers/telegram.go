package notifiers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/imharvol/bog-utils-bot/internal/ports"
)

// TelegramNotifier delivers rendered notifications through the bot API. It
// shares the bot client with the command handler so both use one session.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
}

var _ ports.Messenger = (*TelegramNotifier)(nil)

func NewTelegramNotifier(bot *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

func (n *TelegramNotifier) Send(userID int64, html string) error {
	msg := tgbotapi.NewMessage(userID, html)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message to %d: %w", userID, err)
	}
	return nil
}
