// Package templates holds the bot's user-facing message catalog. Messages
// use Telegram HTML parse mode; placeholders are filled with text/template.
package templates

import (
	"fmt"
	"strings"
	"text/template"
)

const (
	Welcome             = "welcome"
	Help                = "help"
	Menu                = "menu"
	Price               = "price"
	SetAddress          = "set-address"
	SetAddressNoAddress = "set-address-no-address"
	NotRegistered       = "not-registered"
	NoDefaultAddress    = "no-default-address"
	Earnings            = "earnings"
	EarningsNoAddress   = "earnings-no-address"
	Resume              = "resume"
	Balance             = "balance"
	BalanceNoAddress    = "balance-no-address"
	BogToUsd            = "bog-to-usd"
	BogToUsdNoAmount    = "bog-to-usd-no-amount"
	UsdToBog            = "usd-to-bog"
	UsdToBogNoAmount    = "usd-to-bog-no-amount"
	Subscribe           = "subscribe"
	SubscribeNoArgs     = "subscribe-no-args"
	AlreadySubscribed   = "already-subscribed"
	Subscriptions       = "subscriptions"
	NoSubscriptions     = "no-subscriptions"
	Unsubscribe         = "unsubscribe"
	UnsubscribeNoArgs   = "unsubscribe-no-args"
	NotSubscribed       = "not-subscribed"
	Source              = "source"
	UnknownCommand      = "unknown-command"
	EventTriggered      = "event-triggered"
	MyAddress           = "my-address"
	MyAddressUnset      = "my-address-unset"
	SetAddressPrompt    = "set-address-prompt"
	SetAddressInvalid   = "set-address-invalid"
	SetAddressUpdated   = "set-address-updated"
	RemoveAddress       = "remove-address"
	CopyAddress         = "copy-address"
	OptionNotSupported  = "option-not-supported"
	InternalError       = "internal-error"
)

var raw = map[string]string{
	Welcome: "👋 Welcome{{if .Username}}, {{.Username}}{{end}}!\n\n" +
		"I can tell you the $BOG price, your balance and your staking earnings, " +
		"and notify you about sniper contract events.\n\n" +
		"Use /help to see every command or /menu to navigate with buttons.",

	Help: "<b>Commands</b>\n\n" +
		"/menu - Show the button menu\n" +
		"/price - Current $BOG price\n" +
		"/balance [address] - $BOG balance of an address\n" +
		"/earnings [address] - Staking earnings of an address\n" +
		"/resume - Price, balance and earnings at a glance\n" +
		"/setaddress address - Set your default address\n" +
		"/bogtousd amount - Convert $BOG to USD\n" +
		"/usdtobog amount - Convert USD to $BOG\n" +
		"/subscribe event [address] - Get notified about sniper events. " +
		"Use <code>all</code> as the event or the address to match everything\n" +
		"/subscriptions - List your subscriptions\n" +
		"/unsubscribe event [address] - Remove subscriptions, wildcards allowed\n" +
		"/source - Where the bot's code lives\n\n" +
		"Commands that take an optional address fall back to your default one.",

	Menu: "📋 BogUtilsBot Menu 📋\n\nUse the buttons below to navigate",

	Price: "💵 1 $BOG = <b>{{.Price}}$</b>",

	SetAddress:          "📝 Your default address is now <code>{{.Address}}</code>",
	SetAddressNoAddress: "Usage: /setaddress address",
	NotRegistered:       "You are not registered yet. Send /start first.",
	NoDefaultAddress:    "You have no default address. Set one with /setaddress or pass an address to the command.",

	Earnings: "💸 Staking earnings of <code>{{.Address}}</code>:\n\n" +
		"<b>{{.EarningsBOG}} $BOG</b> ≈ {{.EarningsUSD}}$",
	EarningsNoAddress: "Usage: /earnings [address]\n\nSet a default address with /setaddress to omit the argument.",

	Resume: "📊 Resume for <code>{{.Address}}</code>\n\n" +
		"💵 Price: <b>{{.Price}}$</b>\n" +
		"💰 Balance: <b>{{.BalanceBOG}} $BOG</b> ≈ {{.BalanceUSD}}$\n" +
		"💸 Staking earnings: <b>{{.EarningsBOG}} $BOG</b> ≈ {{.EarningsUSD}}$",

	Balance: "💰 Balance of <code>{{.Address}}</code>:\n\n" +
		"<b>{{.BalanceBOG}} $BOG</b> ≈ {{.BalanceUSD}}$",
	BalanceNoAddress: "Usage: /balance [address]\n\nSet a default address with /setaddress to omit the argument.",

	BogToUsd:         "{{.BogAmount}} $BOG ≈ <b>{{.UsdAmount}}$</b>",
	BogToUsdNoAmount: "Usage: /bogtousd amount",
	UsdToBog:         "{{.UsdAmount}}$ ≈ <b>{{.BogAmount}} $BOG</b>",
	UsdToBogNoAmount: "Usage: /usdtobog amount",

	Subscribe: "🔔 Subscribed to <b>{{.EventName}}</b> events on <code>{{.Address}}</code>",
	SubscribeNoArgs: "Usage: /subscribe event [address]\n\n" +
		"Use <code>all</code> as the event or the address to match everything.\n\n" +
		"Possible events:\n{{range .Events}}• <code>{{.}}</code>\n{{end}}",
	AlreadySubscribed: "You are already subscribed to that event on that address.",

	Subscriptions: "🔔 Your subscriptions:\n\n" +
		"{{range .Subscriptions}}• <b>{{.EventName}}</b> on <code>{{.Address}}</code>\n{{end}}",
	NoSubscriptions: "You have no subscriptions. Use /subscribe to add one.",

	Unsubscribe:       "🔕 Unsubscribed from <b>{{.EventName}}</b> events on <code>{{.Address}}</code>",
	UnsubscribeNoArgs: "Usage: /unsubscribe event [address]\n\nWildcard <code>all</code> is allowed in both positions.",
	NotSubscribed:     "You are not subscribed to that event on that address.",

	Source: "The bot's source code lives at https://github.com/imharvol/bog-utils-bot",

	UnknownCommand: "Unknown command. Use /help to see available commands.",

	EventTriggered: "⚡ <b>{{.EventName}}</b> triggered!\n\n" +
		"Order: <code>{{.OrderID}}</code>\n" +
		"Owner: <code>{{.Address}}</code>",

	MyAddress:      "📝 Your default address is <code>{{.Address}}</code>",
	MyAddressUnset: "📝 You have no default address set.",

	SetAddressPrompt:  "Reply to this message with your address",
	SetAddressInvalid: "Either that's not an address or the checksum isn't correct",
	SetAddressUpdated: "This is your new address: <code>{{.Address}}</code>",
	RemoveAddress:     "Your default address has been removed.",
	CopyAddress:       "<code>{{.Address}}</code>",

	OptionNotSupported: "That option is not supported.",
	InternalError:      "Something went wrong, please try again later.",
}

var catalog = func() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(raw))
	for name, text := range raw {
		parsed[name] = template.Must(template.New(name).Parse(text))
	}
	return parsed
}()

// Render fills the named message with data. Data may be nil for static
// messages.
func Render(name string, data any) (string, error) {
	tmpl, ok := catalog[name]
	if !ok {
		return "", fmt.Errorf("unknown message template %q", name)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render message %q: %w", name, err)
	}
	return sb.String(), nil
}
