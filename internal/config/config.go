package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Contract addresses the bot talks to on BSC.
const (
	DefaultSniperContract  = "0x8dc28ba111cde2342c083936157f6a8e53fe5514"
	DefaultOracleContract  = "0xb9A8e322aff57556a2CC00c89Fad003a61C5ac41"
	DefaultStakingContract = "0xD7B729ef857Aa773f47D37088A1181bB3fbF0099"
	DefaultTokenContract   = "0xB09FE1613fE03E7361319d2a43eDc17422f36B09"
)

type Config struct {
	TelegramBotToken string

	RPCURL   string
	RPCWSURL string

	BscScanURL    string
	BscScanAPIKey string

	SQLitePath string

	SniperContract  string
	OracleContract  string
	StakingContract string
	TokenContract   string

	PriceCacheInterval  time.Duration
	PriceCacheThreshold time.Duration

	AdminPort string
	JWTSecret string

	RedisAddress  string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment, honoring a local .env file
// when present. The price cache threshold is longer than the refresh interval
// so one missed refresh cycle never forces a synchronous fetch.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		TelegramBotToken: getEnv("TELEGRAM_TOKEN", ""),

		RPCURL:   getEnv("BSC_RPC_URL", "https://bsc-dataseed.binance.org/"),
		RPCWSURL: getEnv("BSC_RPC_WS_URL", "wss://bsc-ws-node.nariox.org:443"),

		BscScanURL:    getEnv("BSCSCAN_API_URL", "https://api.bscscan.com/api"),
		BscScanAPIKey: getEnv("BSCSCAN_API_KEY", ""),

		SQLitePath: getEnv("SQLITE_PATH", "db.sqlite"),

		SniperContract:  getEnv("SNIPER_CONTRACT", DefaultSniperContract),
		OracleContract:  getEnv("ORACLE_CONTRACT", DefaultOracleContract),
		StakingContract: getEnv("STAKING_CONTRACT", DefaultStakingContract),
		TokenContract:   getEnv("TOKEN_CONTRACT", DefaultTokenContract),

		PriceCacheInterval:  getEnvMillis("PRICE_CACHE_INTERVAL_MS", 1000),
		PriceCacheThreshold: getEnvMillis("PRICE_CACHE_THRESHOLD_MS", 2500),

		AdminPort: getEnv("ADMIN_PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret"),

		RedisAddress:  getEnv("REDIS_ADDRESS", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvMillis(key string, def int) time.Duration {
	return time.Duration(getEnvInt(key, def)) * time.Millisecond
}
