package ports

import "context"

// ABICache stores raw contract ABI JSON keyed by contract address, so the
// explorer API is only hit once per contract.
type ABICache interface {
	Get(ctx context.Context, address string) (string, bool)
	Set(ctx context.Context, address, abiJSON string)
	Close() error
}
