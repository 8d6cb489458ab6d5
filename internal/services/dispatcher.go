package services

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/imharvol/bog-utils-bot/internal/domain"
	"github.com/imharvol/bog-utils-bot/internal/ports"
	"github.com/imharvol/bog-utils-bot/internal/templates"
)

// maxInFlightEvents bounds how many contract events are processed at once.
// The bus keeps draining while events are mid-flight; only past this bound
// does intake apply backpressure.
const maxInFlightEvents = 16

// Dispatcher turns contract events into notifications: it resolves the order
// owner, matches subscribers against the subscription table and fans the
// rendered message out to each of them.
type Dispatcher struct {
	bus       ports.EventBus
	subs      ports.SubscriptionStore
	resolver  ports.OrderResolver
	messenger ports.Messenger
	log       *zap.Logger

	sem chan struct{}
	wg  sync.WaitGroup
}

func NewDispatcher(bus ports.EventBus, subs ports.SubscriptionStore, resolver ports.OrderResolver, messenger ports.Messenger, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		bus:       bus,
		subs:      subs,
		resolver:  resolver,
		messenger: messenger,
		log:       log,
		sem:       make(chan struct{}, maxInFlightEvents),
	}
}

// Run consumes events until the context is canceled. In-flight events are
// drained before returning.
func (d *Dispatcher) Run(ctx context.Context) {
	ch, unsubscribe := d.bus.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			d.wg.Wait()
			return
		case evt := <-ch:
			select {
			case d.sem <- struct{}{}:
			case <-ctx.Done():
				d.wg.Wait()
				return
			}
			d.wg.Add(1)
			go func(evt domain.ContractEvent) {
				defer func() {
					<-d.sem
					d.wg.Done()
				}()
				d.process(ctx, evt)
			}(evt)
		}
	}
}

// process handles a single event. Failures never propagate: a resolution
// failure drops the event, a delivery failure affects only that recipient.
func (d *Dispatcher) process(ctx context.Context, evt domain.ContractEvent) {
	owner, err := d.resolver.ResolveOwner(ctx, evt.OrderID)
	if err != nil {
		d.log.Warn("dropping event, owner resolution failed",
			zap.String("event", evt.Name),
			zap.String("order_id", evt.OrderID),
			zap.Error(err))
		return
	}

	userIDs, err := d.subs.MatchSubscribers(ctx, evt.Name, owner)
	if err != nil {
		d.log.Error("failed to match subscribers",
			zap.String("event", evt.Name),
			zap.Error(err))
		return
	}
	if len(userIDs) == 0 {
		return
	}

	// One payload shared by every recipient.
	html, err := templates.Render(templates.EventTriggered, map[string]string{
		"EventName": evt.Name,
		"OrderID":   evt.OrderID,
		"Address":   owner,
	})
	if err != nil {
		d.log.Error("failed to render notification", zap.Error(err))
		return
	}

	g := new(errgroup.Group)
	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			if err := d.messenger.Send(userID, html); err != nil {
				d.log.Warn("notification delivery failed",
					zap.Int64("user_id", userID),
					zap.String("event", evt.Name),
					zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	d.log.Info("event dispatched",
		zap.String("event", evt.Name),
		zap.String("owner", owner),
		zap.Int("recipients", len(userIDs)))
}
