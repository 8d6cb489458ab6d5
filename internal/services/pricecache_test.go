package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePriceSource struct {
	price float64
	err   error
	calls atomic.Int64
}

func (f *fakePriceSource) TokenPriceUSD(context.Context) (float64, error) {
	f.calls.Add(1)
	return f.price, f.err
}

func TestPriceServesCachedValue(t *testing.T) {
	source := &fakePriceSource{price: 1.5}
	cache := NewPriceCache(source, time.Hour, time.Hour, zap.NewNop())

	// Cold cache forces one fetch; the second read is served from memory.
	price, err := cache.Price(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, price)

	price, err = cache.Price(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, price)
	assert.Equal(t, int64(1), source.calls.Load())
}

func TestPriceStaleCacheRefetches(t *testing.T) {
	source := &fakePriceSource{price: 1.5}
	cache := NewPriceCache(source, time.Hour, 0, zap.NewNop())

	_, err := cache.Price(context.Background(), -1)
	require.NoError(t, err)
	_, err = cache.Price(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), source.calls.Load())
}

func TestPriceFetchErrorPropagates(t *testing.T) {
	source := &fakePriceSource{err: errors.New("rpc down")}
	cache := NewPriceCache(source, time.Hour, time.Hour, zap.NewNop())

	_, err := cache.Price(context.Background(), -1)
	assert.Error(t, err)
}

func TestPriceRounding(t *testing.T) {
	source := &fakePriceSource{price: 1.23456789}
	cache := NewPriceCache(source, time.Hour, time.Hour, zap.NewNop())

	price, err := cache.Price(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 1.2346, price)
}

func TestConversions(t *testing.T) {
	source := &fakePriceSource{price: 2}
	cache := NewPriceCache(source, time.Hour, time.Hour, zap.NewNop())

	usd, err := cache.BogToUSD(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 20.0, usd)

	bog, err := cache.USDToBog(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 5.0, bog)
}

func TestRoundDecimals(t *testing.T) {
	assert.Equal(t, 1.23, RoundDecimals(1.2345, 2))
	assert.Equal(t, 1.24, RoundDecimals(1.236, 2))
	assert.Equal(t, 1.0, RoundDecimals(1.2345, 0))
	assert.Equal(t, 1.2345, RoundDecimals(1.2345, -1))
}

func TestBackgroundRefresh(t *testing.T) {
	source := &fakePriceSource{price: 1.5}
	cache := NewPriceCache(source, 5*time.Millisecond, time.Hour, zap.NewNop())

	cache.Start(context.Background())
	defer cache.Stop()

	assert.Eventually(t, func() bool {
		return source.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}
