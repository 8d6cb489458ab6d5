package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imharvol/bog-utils-bot/internal/ports"
)

// PriceCache keeps the most recent token price and refreshes it in the
// background. A cached value older than the threshold triggers a synchronous
// fetch; the threshold exceeds the refresh interval so a single missed
// refresh cycle does not force one.
type PriceCache struct {
	source    ports.PriceSource
	interval  time.Duration
	threshold time.Duration
	log       *zap.Logger

	mu        sync.RWMutex
	price     float64
	fetchedAt time.Time

	stopOnce sync.Once
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewPriceCache(source ports.PriceSource, interval, threshold time.Duration, log *zap.Logger) *PriceCache {
	return &PriceCache{
		source:    source,
		interval:  interval,
		threshold: threshold,
		log:       log,
		done:      make(chan struct{}),
	}
}

// Start launches the background refresher.
func (c *PriceCache) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	go c.refreshLoop(ctx)
}

// Stop halts the background refresher and waits for it to exit.
func (c *PriceCache) Stop() {
	c.stopOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
			<-c.done
		}
	})
}

func (c *PriceCache) refreshLoop(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.refresh(ctx); err != nil {
				c.log.Warn("price refresh failed", zap.Error(err))
			}
		}
	}
}

// Price returns the cached price rounded to the requested decimals, fetching
// synchronously when the cache is stale. Negative decimals disable rounding.
func (c *PriceCache) Price(ctx context.Context, decimals int) (float64, error) {
	c.mu.RLock()
	price, fetchedAt := c.price, c.fetchedAt
	c.mu.RUnlock()

	if time.Since(fetchedAt) > c.threshold {
		if err := c.refresh(ctx); err != nil {
			return 0, err
		}
		c.mu.RLock()
		price = c.price
		c.mu.RUnlock()
	}

	return RoundDecimals(price, decimals), nil
}

// BogToUSD converts a $BOG amount to USD at the cached price.
func (c *PriceCache) BogToUSD(ctx context.Context, amount float64) (float64, error) {
	price, err := c.Price(ctx, -1)
	if err != nil {
		return 0, err
	}
	return amount * price, nil
}

// USDToBog converts a USD amount to $BOG at the cached price.
func (c *PriceCache) USDToBog(ctx context.Context, amount float64) (float64, error) {
	price, err := c.Price(ctx, -1)
	if err != nil {
		return 0, err
	}
	if price == 0 {
		return 0, fmt.Errorf("token price is zero")
	}
	return amount / price, nil
}

func (c *PriceCache) refresh(ctx context.Context) error {
	price, err := c.source.TokenPriceUSD(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch token price: %w", err)
	}

	c.mu.Lock()
	c.price = price
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return nil
}

// RoundDecimals rounds n to d decimals. A negative d returns n unchanged.
func RoundDecimals(n float64, d int) float64 {
	if d < 0 {
		return n
	}
	shift := math.Pow(10, float64(d))
	return math.Round(n*shift) / shift
}
