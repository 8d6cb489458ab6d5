package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/imharvol/bog-utils-bot/internal/ports"
)

// Client reads contract state over BSC: oracle price, staking earnings,
// token balances and sniper order owners. ABIs come from the provider, so
// no bindings are generated ahead of time.
type Client struct {
	eth  *ethclient.Client
	abis *ABIProvider
	log  *zap.Logger

	sniper  common.Address
	oracle  common.Address
	staking common.Address
	token   common.Address
}

type ClientConfig struct {
	RPCURL          string
	SniperContract  string
	OracleContract  string
	StakingContract string
	TokenContract   string
}

func NewClient(ctx context.Context, cfg ClientConfig, abis *ABIProvider, log *zap.Logger) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC node at %s: %w", cfg.RPCURL, err)
	}

	return &Client{
		eth:     eth,
		abis:    abis,
		log:     log,
		sniper:  common.HexToAddress(cfg.SniperContract),
		oracle:  common.HexToAddress(cfg.OracleContract),
		staking: common.HexToAddress(cfg.StakingContract),
		token:   common.HexToAddress(cfg.TokenContract),
	}, nil
}

var (
	_ ports.ChainReader   = (*Client)(nil)
	_ ports.OrderResolver = (*Client)(nil)
)

func (c *Client) Close() {
	c.eth.Close()
}

// TokenPriceUSD derives the $BOG price from the oracle's BNB and BOG spot
// prices, both expressed against the oracle's own decimals.
func (c *Client) TokenPriceUSD(ctx context.Context) (float64, error) {
	decimals, err := c.callFloat(ctx, c.oracle, "getDecimals")
	if err != nil {
		return 0, err
	}
	bogSpot, err := c.callFloat(ctx, c.oracle, "getSpotPrice")
	if err != nil {
		return 0, err
	}
	bnbSpot, err := c.callFloat(ctx, c.oracle, "getBNBSpotPrice")
	if err != nil {
		return 0, err
	}
	if bogSpot == 0 || bnbSpot == 0 {
		return 0, fmt.Errorf("oracle returned zero spot price")
	}

	scale := pow10(decimals)
	bnbUSD := scale / bnbSpot
	bogBNB := scale / bogSpot
	return bnbUSD * bogBNB, nil
}

// StakingEarnings returns the address's staking earnings in whole tokens.
func (c *Client) StakingEarnings(ctx context.Context, address string) (float64, error) {
	decimals, err := c.callFloat(ctx, c.staking, "decimals")
	if err != nil {
		return 0, err
	}
	earnings, err := c.callFloat(ctx, c.staking, "getEarnings", common.HexToAddress(address))
	if err != nil {
		return 0, err
	}
	return earnings / pow10(decimals), nil
}

// TokenBalance returns the address's token balance in whole tokens.
func (c *Client) TokenBalance(ctx context.Context, address string) (float64, error) {
	decimals, err := c.callFloat(ctx, c.token, "decimals")
	if err != nil {
		return 0, err
	}
	balance, err := c.callFloat(ctx, c.token, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return 0, err
	}
	return balance / pow10(decimals), nil
}

// EventNames lists the event names declared by the contract's ABI, sorted.
func (c *Client) EventNames(ctx context.Context, contract string) ([]string, error) {
	contractABI, err := c.abis.ABI(ctx, contract)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(contractABI.Events))
	for name := range contractABI.Events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ResolveOwner reads the sniper contract's order table and returns the
// order's owner address in canonical lower-case form.
func (c *Client) ResolveOwner(ctx context.Context, orderID string) (string, error) {
	id, ok := new(big.Int).SetString(orderID, 10)
	if !ok {
		return "", fmt.Errorf("invalid order id %q", orderID)
	}

	contractABI, err := c.abis.ABI(ctx, c.sniper.Hex())
	if err != nil {
		return "", err
	}
	method, ok := contractABI.Methods["orders"]
	if !ok {
		return "", fmt.Errorf("sniper contract has no orders method")
	}

	values, err := c.call(ctx, c.sniper, "orders", id)
	if err != nil {
		return "", fmt.Errorf("failed to read order %s: %w", orderID, err)
	}

	for i, output := range method.Outputs {
		if output.Name != "owner" {
			continue
		}
		owner, ok := values[i].(common.Address)
		if !ok {
			return "", fmt.Errorf("order %s owner field has unexpected type %T", orderID, values[i])
		}
		return strings.ToLower(owner.Hex()), nil
	}
	return "", fmt.Errorf("order %s has no owner field", orderID)
}

func (c *Client) call(ctx context.Context, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	contractABI, err := c.abis.ABI(ctx, contract.Hex())
	if err != nil {
		return nil, err
	}

	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	output, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	values, err := contractABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return values, nil
}

// callFloat runs a call expected to return a single numeric value.
func (c *Client) callFloat(ctx context.Context, contract common.Address, method string, args ...interface{}) (float64, error) {
	values, err := c.call(ctx, contract, method, args...)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%s returned no values", method)
	}
	return toFloat(values[0], method)
}

func toFloat(value interface{}, method string) (float64, error) {
	switch v := value.(type) {
	case *big.Int:
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%s returned unexpected type %T", method, value)
	}
}

func pow10(decimals float64) float64 {
	result := 1.0
	for i := 0.0; i < decimals; i++ {
		result *= 10
	}
	return result
}
