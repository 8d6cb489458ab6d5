package ports

import "github.com/imharvol/bog-utils-bot/internal/domain"

// EventBus is an internal pub/sub for ContractEvent.
type EventBus interface {
	Publish(event domain.ContractEvent)
	Subscribe() (<-chan domain.ContractEvent, func()) // returns channel and unsubscribe
}
