package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/config"
	"github.com/akash-23-k/Tech-Query/internal/db"
	apihttp "github.com/akash-23-k/Tech-Query/internal/http"
	"github.com/akash-23-k/Tech-Query/internal/llm"
	"github.com/akash-23-k/Tech-Query/internal/repository"
	"github.com/akash-23-k/Tech-Query/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Área durable: Postgres si hay DATABASE_URL, archivo SQLite si no.
	var durable repository.KVStore
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		pg := repository.NewPostgresKV(pool)
		if err := pg.Init(ctx); err != nil {
			logger.Fatal("db init", zap.Error(err))
		}
		durable = pg
	} else {
		sqlite, err := repository.NewSQLiteKV(cfg.DataPath)
		if err != nil {
			logger.Fatal("sqlite open", zap.Error(err))
		}
		defer sqlite.Close()
		durable = sqlite
	}

	// Área efímera: memoria de proceso, o Redis con TTL si está configurado.
	var (
		ephemeral  repository.KVStore = repository.NewMemoryKV()
		tokenStore service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			ephemeral = repository.NewRedisKV(redisClient, 24*time.Hour)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	sessions := service.NewSessionStore(logger, durable, ephemeral, nil)
	if err := sessions.Load(ctx); err != nil {
		logger.Warn("session load failed", zap.Error(err))
	}

	directory := service.NewCredentialDirectory(logger, durable, cfg.AuthDelay)
	prefs := service.NewPreferences(durable)

	var remote llm.Client
	if cfg.LLMAPIKey != "" {
		remote = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Info("no llm credential configured, using local responses")
	}
	responder := service.NewQueryResponder(logger, sessions, remote, cfg.LocalReplyDelay)

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	tokens := service.NewTokenServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)

	authHandler := apihttp.NewAuthHandler(logger, directory, sessions, tokens)
	queryHandler := apihttp.NewQueryHandler(logger, responder)
	prefHandler := apihttp.NewPreferencesHandler(logger, prefs)
	router := apihttp.NewRouter(logger, authHandler, queryHandler, prefHandler, tokens)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
