package domain

// Wildcard is the sentinel value accepted in place of a concrete event name
// or address. A wildcard subscription matches any value in that position.
const Wildcard = "all"

// User is a registered chat user. Address is the default on-chain address
// used by commands when none is given; empty when unset.
type User struct {
	ID       int64
	Username string
	Address  string
}

// Subscription ties a user to an event name and an address, either of which
// may be the wildcard.
type Subscription struct {
	UserID    int64
	EventName string
	Address   string
}

// ContractEvent is one decoded log emitted by the sniper contract. The owner
// address is not part of the event payload; it is resolved afterwards from
// the order id.
type ContractEvent struct {
	Name    string
	OrderID string
	TxHash  string
}

// IncomingMessage is a chat message reduced to the fields the conversational
// core cares about. ReplyTo is zero when the message is not a reply.
type IncomingMessage struct {
	MessageID int
	ChatID    int64
	From      int64
	ReplyTo   int
	Text      string
}
