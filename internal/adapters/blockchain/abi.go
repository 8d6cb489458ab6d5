package blockchain

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/imharvol/bog-utils-bot/internal/ports"
)

// ABIProvider fetches contract ABIs from the bscscan API and keeps them in a
// cache. Parsed ABIs are additionally memoized in-process, since parsing is
// per-contract work that never changes within a run.
type ABIProvider struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	cache      ports.ABICache
	log        *zap.Logger

	mu     sync.Mutex
	parsed map[string]abi.ABI
}

func NewABIProvider(apiURL, apiKey string, cache ports.ABICache, log *zap.Logger) *ABIProvider {
	return &ABIProvider{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiURL:     apiURL,
		apiKey:     apiKey,
		cache:      cache,
		log:        log,
		parsed:     make(map[string]abi.ABI),
	}
}

// ABI returns the parsed ABI of the contract at address.
func (p *ABIProvider) ABI(ctx context.Context, address string) (abi.ABI, error) {
	key := strings.ToLower(address)

	p.mu.Lock()
	if parsed, ok := p.parsed[key]; ok {
		p.mu.Unlock()
		return parsed, nil
	}
	p.mu.Unlock()

	raw, ok := p.cache.Get(ctx, key)
	if !ok {
		fetched, err := p.fetch(ctx, address)
		if err != nil {
			return abi.ABI{}, err
		}
		raw = fetched
		p.cache.Set(ctx, key, raw)
	}

	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI for %s: %w", address, err)
	}

	p.mu.Lock()
	p.parsed[key] = parsed
	p.mu.Unlock()
	return parsed, nil
}

func (p *ABIProvider) fetch(ctx context.Context, address string) (string, error) {
	params := url.Values{}
	params.Set("module", "contract")
	params.Set("action", "getabi")
	params.Set("address", address)
	params.Set("format", "raw")
	if p.apiKey != "" {
		params.Set("apikey", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build ABI request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch ABI for %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ABI request for %s returned status %d", address, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ABI response: %w", err)
	}

	p.log.Debug("fetched contract ABI", zap.String("address", address))
	return string(body), nil
}
