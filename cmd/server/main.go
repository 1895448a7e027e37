package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/anshuchowdary926-eng/visamate/internal/api"
	"github.com/anshuchowdary926-eng/visamate/internal/chat"
	"github.com/anshuchowdary926-eng/visamate/internal/config"
	"github.com/anshuchowdary926-eng/visamate/internal/llm"
	"github.com/anshuchowdary926-eng/visamate/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	sessionStore, err := newStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize session store",
			zap.Error(err),
			zap.String("driver", cfg.StoreDriver))
	}
	defer sessionStore.Close()

	llmService, err := llm.New(cfg.LLMBaseURL, cfg.LLMToken, cfg.LLMModel)
	if err != nil {
		logger.Fatal("failed to initialize LLM service", zap.Error(err))
	}

	manager, err := chat.NewManager(context.Background(), sessionStore, llmService, logger, chat.Config{
		SessionKey:          cfg.SessionKey,
		MaxMessageTokens:    cfg.MaxMessageTokens,
		CapabilityFirstOnly: cfg.CapabilityFirstOnly,
	})
	if err != nil {
		logger.Fatal("failed to restore session", zap.Error(err))
	}

	handler := api.NewHandler(manager, logger)

	http.HandleFunc("/api/message", handler.HandleMessage)
	http.HandleFunc("/api/messages", handler.GetMessages)
	http.HandleFunc("/api/stop", handler.StopGeneration)
	http.HandleFunc("/api/clear", handler.ClearSession)

	// Serve static files
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	logger.Info("Starting server", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return store.New(store.DriverRedis,
			store.WithRedisClient(client),
			store.WithRedisTTL(cfg.RedisTTL))
	case "memory":
		return store.New(store.DriverMemory)
	default:
		return store.New(store.DriverSQLite, store.WithSQLitePath(cfg.SQLitePath))
	}
}
