package main

import (
	"context"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/cache"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/config"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/database"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/gemini"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/generator"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/handler"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/logger"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.New(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool)

	var source generator.Source
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		source = generator.NewOpenAISource(cfg.AI.OpenAI.APIKey, cfg.AI.OpenAI.Model, cfg.AI.OpenAI.Timeout)
	default:
		client := gemini.NewClient(cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model, cfg.AI.Gemini.Timeout)
		source = generator.NewGeminiSource(client)
	}
	gen := generator.New(source, generator.NewFallback(), repo, log)

	var statsCache *cache.StatsCache
	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, rdb); err != nil {
			sugar.Warnw("redis unreachable, stats cache disabled", "err", err)
		} else {
			statsCache = cache.NewStatsCache(rdb, cfg.Redis.StatsTTL)
		}
	}

	handlerApp := &handler.Handler{
		Logger:       log,
		Questions:    repo,
		Sets:         repo,
		Ratings:      repo,
		Stats:        repo,
		Generator:    gen,
		StatsCache:   statsCache,
		DefaultCount: cfg.Generation.DefaultCount,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
