package ports

import "context"

// OrderResolver looks up the owner address of a sniper order.
type OrderResolver interface {
	ResolveOwner(ctx context.Context, orderID string) (string, error)
}

// ChainReader exposes the contract-state reads the bot commands need.
// Amounts are returned in whole tokens, already scaled by the contract's
// decimals.
type ChainReader interface {
	TokenPriceUSD(ctx context.Context) (float64, error)
	StakingEarnings(ctx context.Context, address string) (float64, error)
	TokenBalance(ctx context.Context, address string) (float64, error)
	EventNames(ctx context.Context, contract string) ([]string, error)
}

// PriceSource is the slice of ChainReader the price cache depends on.
type PriceSource interface {
	TokenPriceUSD(ctx context.Context) (float64, error)
}
