package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/imharvol/bog-utils-bot/internal/adapters/blockchain"
	"github.com/imharvol/bog-utils-bot/internal/adapters/notifiers"
	"github.com/imharvol/bog-utils-bot/internal/config"
	"github.com/imharvol/bog-utils-bot/internal/infra/abicache"
	"github.com/imharvol/bog-utils-bot/internal/infra/eventbus"
	"github.com/imharvol/bog-utils-bot/internal/infra/httpserver"
	"github.com/imharvol/bog-utils-bot/internal/infra/repository"
	"github.com/imharvol/bog-utils-bot/internal/ports"
	"github.com/imharvol/bog-utils-bot/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(cfg.SQLitePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	users := repository.NewUserRepository(db)
	subs := repository.NewSubscriptionRepository(db)

	var cache ports.ABICache
	if cfg.RedisAddress != "" {
		redisCache, err := abicache.NewRedis(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB, logger)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory ABI cache", zap.Error(err))
			cache = abicache.NewMemory()
		} else {
			cache = redisCache
		}
	} else {
		cache = abicache.NewMemory()
	}
	defer cache.Close()

	abis := blockchain.NewABIProvider(cfg.BscScanURL, cfg.BscScanAPIKey, cache, logger)

	chain, err := blockchain.NewClient(ctx, blockchain.ClientConfig{
		RPCURL:          cfg.RPCURL,
		SniperContract:  cfg.SniperContract,
		OracleContract:  cfg.OracleContract,
		StakingContract: cfg.StakingContract,
		TokenContract:   cfg.TokenContract,
	}, abis, logger)
	if err != nil {
		logger.Fatal("failed to create chain client", zap.Error(err))
	}
	defer chain.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal("failed to create telegram bot", zap.Error(err))
	}
	logger.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	eb := eventbus.NewInMemoryEventBus()
	notifier := notifiers.NewTelegramNotifier(bot)

	price := services.NewPriceCache(chain, cfg.PriceCacheInterval, cfg.PriceCacheThreshold, logger)
	price.Start(ctx)
	defer price.Stop()

	expect := services.NewExpectationRegistry(logger)
	defer expect.Stop()

	dispatcher := services.NewDispatcher(eb, subs, chain, notifier, logger)
	go dispatcher.Run(ctx)

	watcher := blockchain.NewEventWatcher(cfg.RPCWSURL, cfg.SniperContract, abis, eb, logger)
	go watcher.Run(ctx)

	botService := services.NewTelegramBotService(bot, users, subs, chain, price, expect, cfg.SniperContract, logger)
	go func() {
		if err := botService.Run(ctx); err != nil {
			logger.Error("telegram bot stopped", zap.Error(err))
		}
	}()

	srv := httpserver.NewServer(cfg, subs, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Warn("admin API stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("graceful shutdown error", zap.Error(err))
	}
}
