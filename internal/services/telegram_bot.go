package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/imharvol/bog-utils-bot/internal/domain"
	"github.com/imharvol/bog-utils-bot/internal/ports"
	"github.com/imharvol/bog-utils-bot/internal/templates"
)

// TelegramBotService routes chat commands and inline-keyboard callbacks to
// the price, balance and subscription features. Replies expected by a
// conversational flow go through the expectation registry.
type TelegramBotService struct {
	bot    *tgbotapi.BotAPI
	users  ports.UserStore
	subs   ports.SubscriptionStore
	chain  ports.ChainReader
	price  *PriceCache
	expect *ExpectationRegistry

	sniperContract string
	log            *zap.Logger
}

func NewTelegramBotService(
	bot *tgbotapi.BotAPI,
	users ports.UserStore,
	subs ports.SubscriptionStore,
	chain ports.ChainReader,
	price *PriceCache,
	expect *ExpectationRegistry,
	sniperContract string,
	log *zap.Logger,
) *TelegramBotService {
	return &TelegramBotService{
		bot:            bot,
		users:          users,
		subs:           subs,
		chain:          chain,
		price:          price,
		expect:         expect,
		sniperContract: sniperContract,
		log:            log,
	}
}

// Run long-polls Telegram updates until the context is canceled.
func (t *TelegramBotService) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message != nil {
				t.handleMessage(ctx, update.Message)
			} else if update.CallbackQuery != nil {
				t.handleCallbackQuery(ctx, update.CallbackQuery)
			}
		}
	}
}

func (t *TelegramBotService) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	msg := domain.IncomingMessage{
		MessageID: message.MessageID,
		ChatID:    message.Chat.ID,
		From:      message.From.ID,
		Text:      strings.TrimSpace(message.Text),
	}
	if message.ReplyToMessage != nil {
		msg.ReplyTo = message.ReplyToMessage.MessageID
	}

	// Every message is offered to pending conversational flows first.
	t.expect.HandleMessage(msg)

	if strings.HasPrefix(msg.Text, "/") {
		t.handleCommand(ctx, message, msg)
	}
}

func (t *TelegramBotService) handleCommand(ctx context.Context, message *tgbotapi.Message, msg domain.IncomingMessage) {
	fields := strings.Fields(msg.Text)
	command := strings.SplitN(fields[0], "@", 2)[0]
	args := fields[1:]

	switch command {
	case "/start":
		t.handleStart(ctx, message)
	case "/help":
		t.sendTemplate(msg.ChatID, templates.Help, nil)
	case "/menu":
		t.sendMenu(msg.ChatID)
	case "/price":
		t.handlePrice(ctx, msg.ChatID)
	case "/setaddress":
		t.handleSetAddress(ctx, msg, args)
	case "/earnings":
		t.handleEarnings(ctx, msg, args)
	case "/resume":
		t.handleResume(ctx, msg.ChatID, msg.From)
	case "/bogtousd":
		t.handleBogToUsd(ctx, msg.ChatID, args)
	case "/usdtobog":
		t.handleUsdToBog(ctx, msg.ChatID, args)
	case "/balance":
		t.handleBalance(ctx, msg, args)
	case "/subscribe":
		t.handleSubscribe(ctx, msg, args)
	case "/subscriptions":
		t.handleSubscriptions(ctx, msg.ChatID, msg.From)
	case "/unsubscribe":
		t.handleUnsubscribe(ctx, msg, args)
	case "/source":
		t.sendTemplate(msg.ChatID, templates.Source, nil)
	default:
		t.sendTemplate(msg.ChatID, templates.UnknownCommand, nil)
	}
}

func (t *TelegramBotService) handleStart(ctx context.Context, message *tgbotapi.Message) {
	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	if err := t.users.EnsureUser(ctx, message.From.ID, username); err != nil {
		t.log.Error("failed to register user", zap.Int64("user_id", message.From.ID), zap.Error(err))
		t.sendTemplate(message.Chat.ID, templates.InternalError, nil)
		return
	}
	t.sendTemplate(message.Chat.ID, templates.Welcome, map[string]string{"Username": username})
}

func (t *TelegramBotService) handlePrice(ctx context.Context, chatID int64) {
	price, err := t.price.Price(ctx, 4)
	if err != nil {
		t.log.Error("failed to get price", zap.Error(err))
		t.sendTemplate(chatID, templates.InternalError, nil)
		return
	}
	t.sendTemplate(chatID, templates.Price, map[string]any{"Price": price})
}

func (t *TelegramBotService) handleSetAddress(ctx context.Context, msg domain.IncomingMessage, args []string) {
	if len(args) != 1 {
		t.sendTemplate(msg.ChatID, templates.SetAddressNoAddress, nil)
		return
	}
	address := strings.ToLower(args[0])

	err := t.users.SetAddress(ctx, msg.From, address)
	if errors.Is(err, domain.ErrNotRegistered) {
		t.sendTemplate(msg.ChatID, templates.NotRegistered, nil)
		return
	}
	if err != nil {
		t.log.Error("failed to set address", zap.Int64("user_id", msg.From), zap.Error(err))
		t.sendTemplate(msg.ChatID, templates.InternalError, nil)
		return
	}
	t.sendTemplate(msg.ChatID, templates.SetAddress, map[string]string{"Address": address})
}

// resolveAddress picks the explicit address argument when present, otherwise
// the user's stored default. The second return is false when neither exists.
func (t *TelegramBotService) resolveAddress(ctx context.Context, userID int64, args []string) (string, bool) {
	if len(args) >= 1 {
		return strings.ToLower(args[0]), true
	}
	address, err := t.users.GetAddress(ctx, userID)
	if err != nil || address == "" {
		return "", false
	}
	return address, true
}

func (t *TelegramBotService) handleEarnings(ctx context.Context, msg domain.IncomingMessage, args []string) {
	address, ok := t.resolveAddress(ctx, msg.From, args)
	if !ok {
		t.sendTemplate(msg.ChatID, templates.EarningsNoAddress, nil)
		return
	}

	earningsBOG, err := t.chain.StakingEarnings(ctx, address)
	if err != nil {
		t.log.Error("failed to get staking earnings", zap.String("address", address), zap.Error(err))
		t.sendTemplate(msg.ChatID, templates.InternalError, nil)
		return
	}
	earningsUSD, err := t.price.BogToUSD(ctx, earningsBOG)
	if err != nil {
		t.log.Error("failed to convert earnings", zap.Error(err))
		t.sendTemplate(msg.ChatID, templates.InternalError, nil)
		return
	}

	t.sendTemplate(msg.ChatID, templates.Earnings, map[string]any{
		"Address":     address,
		"EarningsBOG": RoundDecimals(earningsBOG, 2),
		"EarningsUSD": RoundDecimals(earningsUSD, 2),
	})
}

func (t *TelegramBotService) handleResume(ctx context.Context, chatID int64, userID int64) {
	address, err := t.users.GetAddress(ctx, userID)
	if err != nil || address == "" {
		t.sendTemplate(chatID, templates.NoDefaultAddress, nil)
		return
	}

	var price, earningsBOG, balanceBOG float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		price, err = t.price.Price(gctx, -1)
		return err
	})
	g.Go(func() error {
		var err error
		earningsBOG, err = t.chain.StakingEarnings(gctx, address)
		return err
	})
	g.Go(func() error {
		var err error
		balanceBOG, err = t.chain.TokenBalance(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		t.log.Error("failed to build resume", zap.String("address", address), zap.Error(err))
		t.sendTemplate(chatID, templates.InternalError, nil)
		return
	}

	t.sendTemplate(chatID, templates.Resume, map[string]any{
		"Address":     address,
		"Price":       RoundDecimals(price, 2),
		"BalanceBOG":  RoundDecimals(balanceBOG, 2),
		"BalanceUSD":  RoundDecimals(balanceBOG*price, 2),
		"EarningsBOG": RoundDecimals(earningsBOG, 2),
		"EarningsUSD": RoundDecimals(earningsBOG*price, 2),
	})
}

func (t *TelegramBotService) handleBogToUsd(ctx context.Context, chatID int64, args []string) {
	amount, ok := parseAmount(args)
	if !ok {
		t.sendTemplate(chatID, templates.BogToUsdNoAmount, nil)
		return
	}
	usd, err := t.price.BogToUSD(ctx, amount)
	if err != nil {
		t.log.Error("failed to convert bog to usd", zap.Error(err))
		t.sendTemplate(chatID, templates.InternalError, nil)
		return
	}
	t.sendTemplate(chatID, templates.BogToUsd, map[string]any{
		"BogAmount": amount,
		"UsdAmount": RoundDecimals(usd, 2),
	})
}

func (t *TelegramBotService) handleUsdToBog(ctx context.Context, chatID int64, args []string) {
	amount, ok := parseAmount(args)
	if !ok {
		t.sendTemplate(chatID, templates.UsdToBogNoAmount, nil)
		return
	}
	bog, err := t.price.USDToBog(ctx, amount)
	if err != nil {
		t.log.Error("failed to convert usd to bog", zap.Error(err))
		t.sendTemplate(chatID, templates.InternalError, nil)
		return
	}
	t.sendTemplate(chatID, templates.UsdToBog, map[string]any{
		"UsdAmount": amount,
		"BogAmount": RoundDecimals(bog, 2),
	})
}

func parseAmount(args []string) (float64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func (t *TelegramBotService) handleBalance(ctx context.Context, msg domain.IncomingMessage, args []string) {
	address, ok := t.resolveAddress(ctx, msg.From, args)
	if !ok {
		t.sendTemplate(msg.ChatID, templates.BalanceNoAddress, nil)
		return
	}

	balanceBOG, err := t.chain.TokenBalance(ctx, address)
	if err != nil {
		t.log.Error("failed to get balance", zap.String("address", address), zap.Error(err))
		t.sendTemplate(msg.ChatID, templates.InternalError, nil)
		return
	}
	balanceUSD, err := t.price.BogToUSD(ctx, balanceBOG)
	if err != nil {
		t.log.Error("failed to convert balance", zap.Error(err))
		t.sendTemplate(msg.ChatID, templates.InternalError, nil)
		return
	}

	t.sendTemplate(msg.ChatID, templates.Balance, map[string]any{
		"Address":    address,
		"BalanceBOG": RoundDecimals(balanceBOG, 4),
		"BalanceUSD": RoundDecimals(balanceUSD, 4),
	})
}

// parseSubscriptionArgs extracts (eventName, address) from command arguments,
// falling back to the user's default address when only the event is given.
func (t *TelegramBotService) parseSubscriptionArgs(ctx context.Context, userID int64, args []string) (string, string, bool) {
	if len(args) == 0 {
		return "", "", false
	}
	eventName := args[0]

	var address string
	if len(args) >= 2 {
		address = strings.ToLower(args[1])
	} else {
		stored, err := t.users.GetAddress(ctx, userID)
		if err != nil || stored == "" {
			return "", "", false
		}
		address = stored
	}
	return eventName, address, true
}

func (t *TelegramBotService) handleSubscribe(ctx context.Context, msg domain.IncomingMessage, args []string) {
	eventName, address, ok := t.parseSubscriptionArgs(ctx, msg.From, args)
	if !ok {
		t.sendSubscribeHelp(ctx, msg.ChatID)
		return
	}

	err := t.subs.Subscribe(ctx, domain.Subscription{UserID: msg.From, EventName: eventName, Address: address})
	if errors.Is(err, domain.ErrAlreadySubscribed) {
		t.sendTemplate(msg.ChatID, templates.AlreadySubscribed, nil)
		return
	}
	if err != nil {
		t.log.Error("failed to subscribe", zap.Int64("user_id", msg.From), zap.Error(err))
		t.sendTemplate(msg.ChatID, templates.InternalError, nil)
		return
	}

	t.sendTemplate(msg.ChatID, templates.Subscribe, map[string]string{
		"EventName": eventName,
		"Address":   address,
	})
}

func (t *TelegramBotService) sendSubscribeHelp(ctx context.Context, chatID int64) {
	events, err := t.chain.EventNames(ctx, t.sniperContract)
	if err != nil {
		t.log.Warn("failed to list contract events", zap.Error(err))
	}
	t.sendTemplate(chatID, templates.SubscribeNoArgs, map[string]any{"Events": events})
}

func (t *TelegramBotService) handleSubscriptions(ctx context.Context, chatID int64, userID int64) {
	subs, err := t.subs.ListSubscriptions(ctx, userID)
	if err != nil {
		t.log.Error("failed to list subscriptions", zap.Int64("user_id", userID), zap.Error(err))
		t.sendTemplate(chatID, templates.InternalError, nil)
		return
	}
	if len(subs) == 0 {
		t.sendTemplate(chatID, templates.NoSubscriptions, nil)
		return
	}
	t.sendTemplate(chatID, templates.Subscriptions, map[string]any{"Subscriptions": subs})
}

func (t *TelegramBotService) handleUnsubscribe(ctx context.Context, msg domain.IncomingMessage, args []string) {
	eventName, address, ok := t.parseSubscriptionArgs(ctx, msg.From, args)
	if !ok {
		t.sendTemplate(msg.ChatID, templates.UnsubscribeNoArgs, nil)
		return
	}

	err := t.subs.Unsubscribe(ctx, domain.Subscription{UserID: msg.From, EventName: eventName, Address: address})
	if errors.Is(err, domain.ErrNotSubscribed) {
		t.sendTemplate(msg.ChatID, templates.NotSubscribed, nil)
		return
	}
	if err != nil {
		t.log.Error("failed to unsubscribe", zap.Int64("user_id", msg.From), zap.Error(err))
		t.sendTemplate(msg.ChatID, templates.InternalError, nil)
		return
	}

	t.sendTemplate(msg.ChatID, templates.Unsubscribe, map[string]string{
		"EventName": eventName,
		"Address":   address,
	})
}

func (t *TelegramBotService) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Telegram omits Message on callbacks for messages that are too old or
	// no longer accessible; a stale button press must not crash the loop.
	if query.Message == nil {
		t.answerCallback(query.ID, templates.OptionNotSupported)
		return
	}

	action, ok := domain.ParseCallbackAction(query.Data)
	if !ok {
		t.answerCallback(query.ID, templates.OptionNotSupported)
		return
	}

	// Acknowledge so the button stops spinning.
	if _, err := t.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		t.log.Warn("failed to acknowledge callback", zap.Error(err))
	}

	chatID := query.Message.Chat.ID
	userID := query.From.ID

	switch action {
	case domain.CallbackHelp:
		t.sendTemplate(chatID, templates.Help, nil)
	case domain.CallbackResume:
		t.handleResume(ctx, chatID, userID)
	case domain.CallbackPrice:
		t.handlePrice(ctx, chatID)
	case domain.CallbackBalance:
		t.handleBalance(ctx, domain.IncomingMessage{ChatID: chatID, From: userID}, nil)
	case domain.CallbackEarnings:
		t.handleEarnings(ctx, domain.IncomingMessage{ChatID: chatID, From: userID}, nil)
	case domain.CallbackMyAddress:
		t.showMyAddress(ctx, chatID, query.Message.MessageID, userID)
	case domain.CallbackSetAddress:
		t.startSetAddressFlow(chatID, userID)
	case domain.CallbackRemoveAddress:
		t.handleRemoveAddress(ctx, chatID, query.Message.MessageID, userID)
	case domain.CallbackCopyAddress:
		t.showCopyAddress(ctx, chatID, query.Message.MessageID, userID)
	case domain.CallbackReturn:
		t.editToMenu(chatID, query.Message.MessageID)
	}
}

func (t *TelegramBotService) showMyAddress(ctx context.Context, chatID int64, messageID int, userID int64) {
	address, err := t.users.GetAddress(ctx, userID)
	if errors.Is(err, domain.ErrNotRegistered) {
		t.sendTemplate(chatID, templates.NotRegistered, nil)
		return
	}
	if err != nil {
		t.log.Error("failed to load address", zap.Int64("user_id", userID), zap.Error(err))
		t.sendTemplate(chatID, templates.InternalError, nil)
		return
	}

	if address == "" {
		t.editTemplate(chatID, messageID, templates.MyAddressUnset, nil, setAddressKeyboard())
		return
	}
	t.editTemplate(chatID, messageID, templates.MyAddress, map[string]string{"Address": address}, addressKeyboard())
}

// startSetAddressFlow sends a force-reply prompt and waits for the reply
// through the expectation registry. An invalid reply resolves the
// expectation with feedback; the user presses the button again to retry.
func (t *TelegramBotService) startSetAddressFlow(chatID int64, userID int64) {
	prompt, err := templates.Render(templates.SetAddressPrompt, nil)
	if err != nil {
		t.log.Error("failed to render prompt", zap.Error(err))
		return
	}

	msg := tgbotapi.NewMessage(chatID, prompt)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true, Selective: true}
	sent, err := t.bot.Send(msg)
	if err != nil {
		t.log.Error("failed to send address prompt", zap.Error(err))
		return
	}

	err = t.expect.Expect(Expectation{
		ReplyTo:     sent.MessageID,
		MessageFrom: userID,
		Check: func(m domain.IncomingMessage) bool {
			return common.IsHexAddress(strings.TrimSpace(m.Text))
		},
		OnMatch: func(m domain.IncomingMessage) {
			address := strings.ToLower(strings.TrimSpace(m.Text))
			if err := t.users.SetAddress(context.Background(), m.From, address); err != nil {
				t.log.Error("failed to store address", zap.Int64("user_id", m.From), zap.Error(err))
				t.sendTemplate(m.ChatID, templates.InternalError, nil)
				return
			}
			t.sendTemplate(m.ChatID, templates.SetAddressUpdated, map[string]string{"Address": address})
		},
		OnMismatch: func(m domain.IncomingMessage) {
			t.sendTemplate(m.ChatID, templates.SetAddressInvalid, nil)
		},
	})
	if err != nil {
		t.log.Error("failed to register expectation", zap.Error(err))
	}
}

func (t *TelegramBotService) handleRemoveAddress(ctx context.Context, chatID int64, messageID int, userID int64) {
	err := t.users.ClearAddress(ctx, userID)
	if errors.Is(err, domain.ErrNotRegistered) {
		t.sendTemplate(chatID, templates.NotRegistered, nil)
		return
	}
	if err != nil {
		t.log.Error("failed to clear address", zap.Int64("user_id", userID), zap.Error(err))
		t.sendTemplate(chatID, templates.InternalError, nil)
		return
	}
	t.editTemplate(chatID, messageID, templates.RemoveAddress, nil, setAddressKeyboard())
}

func (t *TelegramBotService) showCopyAddress(ctx context.Context, chatID int64, messageID int, userID int64) {
	address, err := t.users.GetAddress(ctx, userID)
	if err != nil || address == "" {
		t.editTemplate(chatID, messageID, templates.MyAddressUnset, nil, setAddressKeyboard())
		return
	}
	t.editTemplate(chatID, messageID, templates.CopyAddress, map[string]string{"Address": address}, addressKeyboard())
}

func (t *TelegramBotService) sendMenu(chatID int64) {
	text, err := templates.Render(templates.Menu, nil)
	if err != nil {
		t.log.Error("failed to render menu", zap.Error(err))
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = menuKeyboard()
	if _, err := t.bot.Send(msg); err != nil {
		t.log.Error("failed to send menu", zap.Error(err))
	}
}

func (t *TelegramBotService) editToMenu(chatID int64, messageID int) {
	t.editTemplate(chatID, messageID, templates.Menu, nil, menuKeyboard())
}

func menuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Help ❓", string(domain.CallbackHelp)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Resume 📋", string(domain.CallbackResume)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💵 Price 💵", string(domain.CallbackPrice)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Balance 💰", string(domain.CallbackBalance)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💸 Staking Earnings 💸", string(domain.CallbackEarnings)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 My Address 📝", string(domain.CallbackMyAddress)),
		),
	)
}

func addressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Copy Address ✏️", string(domain.CallbackCopyAddress)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Remove Address ❌", string(domain.CallbackRemoveAddress)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Return ⬅️", string(domain.CallbackReturn)),
		),
	)
}

func setAddressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Set Address ✏️", string(domain.CallbackSetAddress)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Return ⬅️", string(domain.CallbackReturn)),
		),
	)
}

func (t *TelegramBotService) sendTemplate(chatID int64, name string, data any) {
	text, err := templates.Render(name, data)
	if err != nil {
		t.log.Error("failed to render message", zap.String("template", name), zap.Error(err))
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		t.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (t *TelegramBotService) editTemplate(chatID int64, messageID int, name string, data any, keyboard tgbotapi.InlineKeyboardMarkup) {
	text, err := templates.Render(name, data)
	if err != nil {
		t.log.Error("failed to render message", zap.String("template", name), zap.Error(err))
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(edit); err != nil {
		t.log.Error("failed to edit message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (t *TelegramBotService) answerCallback(callbackID string, templateName string) {
	text, err := templates.Render(templateName, nil)
	if err != nil {
		t.log.Error("failed to render callback answer", zap.Error(err))
		return
	}
	if _, err := t.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}
}
