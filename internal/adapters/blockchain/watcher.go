package blockchain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/imharvol/bog-utils-bot/internal/domain"
	"github.com/imharvol/bog-utils-bot/internal/ports"
)

const redialBackoff = 10 * time.Second

// EventWatcher subscribes to the sniper contract's logs over a websocket
// connection and publishes decoded order events onto the bus. The connection
// is re-established after failures until the context is cancelled.
type EventWatcher struct {
	wsURL    string
	contract common.Address
	abis     *ABIProvider
	bus      ports.EventBus
	log      *zap.Logger
}

func NewEventWatcher(wsURL, contract string, abis *ABIProvider, bus ports.EventBus, log *zap.Logger) *EventWatcher {
	return &EventWatcher{
		wsURL:    wsURL,
		contract: common.HexToAddress(contract),
		abis:     abis,
		bus:      bus,
		log:      log,
	}
}

// Run blocks until ctx is cancelled, redialing on subscription failures.
func (w *EventWatcher) Run(ctx context.Context) {
	for {
		err := w.watch(ctx)
		if ctx.Err() != nil {
			return
		}
		w.log.Warn("log subscription lost, redialing",
			zap.String("contract", w.contract.Hex()),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(redialBackoff):
		}
	}
}

func (w *EventWatcher) watch(ctx context.Context) error {
	contractABI, err := w.abis.ABI(ctx, w.contract.Hex())
	if err != nil {
		return err
	}

	client, err := ethclient.DialContext(ctx, w.wsURL)
	if err != nil {
		return err
	}
	defer client.Close()

	logs := make(chan types.Log, 64)
	sub, err := client.SubscribeFilterLogs(ctx, ethereum.FilterQuery{
		Addresses: []common.Address{w.contract},
	}, logs)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	w.log.Info("watching contract logs", zap.String("contract", w.contract.Hex()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return err
		case entry := <-logs:
			w.publish(contractABI, entry)
		}
	}
}

// publish decodes a raw log and puts it on the bus. Logs that can't be
// decoded or that carry no order id are dropped with a warning.
func (w *EventWatcher) publish(contractABI abi.ABI, entry types.Log) {
	if len(entry.Topics) == 0 {
		return
	}
	event, err := contractABI.EventByID(entry.Topics[0])
	if err != nil {
		w.log.Warn("unknown event signature",
			zap.String("topic", entry.Topics[0].Hex()),
			zap.String("tx", entry.TxHash.Hex()))
		return
	}

	args := make(map[string]interface{})
	if err := contractABI.UnpackIntoMap(args, event.Name, entry.Data); err != nil {
		w.log.Warn("failed to decode event data",
			zap.String("event", event.Name),
			zap.String("tx", entry.TxHash.Hex()),
			zap.Error(err))
		return
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if err := abi.ParseTopicsIntoMap(args, indexed, entry.Topics[1:]); err != nil {
			w.log.Warn("failed to decode event topics",
				zap.String("event", event.Name),
				zap.String("tx", entry.TxHash.Hex()),
				zap.Error(err))
			return
		}
	}

	orderID, ok := args["orderID"].(*big.Int)
	if !ok {
		w.log.Warn("event carries no order id", zap.String("event", event.Name))
		return
	}

	w.bus.Publish(domain.ContractEvent{
		Name:    event.Name,
		OrderID: orderID.String(),
		TxHash:  entry.TxHash.Hex(),
	})
}
