package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Rishit-Ranjan/Task-Pallete/internal/cache"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/config"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/repo"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/service"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/suggest"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

// Core holds the services shared by the HTTP server and the CLI.
type Core struct {
	Tasks    *service.TaskService
	Queries  *service.QueryService
	Settings *service.SettingsService
	Engine   *suggest.Engine

	closers []func()
}

// NewCore opens the configured store, loads the task collection and builds
// the services.
func NewCore(ctx context.Context, cfg config.Config) (*Core, error) {
	c := &Core{}
	ok := false
	defer func() {
		if !ok {
			c.Close()
		}
	}()

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.CacheEnabled() {
		rdb, err = newRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	kv, err := c.openStore(ctx, cfg, rdb)
	if err != nil {
		return nil, err
	}
	r := repo.NewKVRepo(kv)

	var taskCache *cache.TaskCache
	if rdb != nil {
		taskCache = cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	c.Tasks = service.NewTaskService(r, taskCache, nil, nil)
	if err := c.Tasks.Load(ctx); err != nil {
		return nil, err
	}
	c.Queries = service.NewQueryService(c.Tasks, taskCache, nil, loc)
	c.Settings = service.NewSettingsService(r)
	c.Engine = newEngine(cfg.Suggest)

	ok = true
	return c, nil
}

// Close releases store and cache connections.
func (c *Core) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func (c *Core) openStore(ctx context.Context, cfg config.Config, rdb *redis.Client) (repo.KV, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		if err := runMigrations(cfg.PG.DSN, cfg.PG.MigrationsDir); err != nil {
			return nil, err
		}
		db, err := newPostgres(ctx, cfg.PG.DSN)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, db.Close)
		return repo.NewPGKV(db), nil
	case config.DriverRedis:
		return repo.NewRedisKV(rdb, cfg.Redis.KeyPrefix), nil
	case config.DriverMemory:
		return repo.NewMemoryKV(), nil
	default:
		kv, err := repo.OpenSQLiteKV(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = kv.Close() })
		return kv, nil
	}
}

func newEngine(cfg config.SuggestConfig) *suggest.Engine {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	var gen suggest.Generator
	if cfg.APIKey != "" {
		gen = suggest.NewGeminiClient(suggest.GeminiOptions{
			APIKey:          cfg.APIKey,
			URL:             cfg.APIURL,
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
			HTTPClient:      &http.Client{},
		})
	} else {
		logger.Printf("GEMINI_API_KEY not set, suggestions use the keyword table only")
	}
	return suggest.NewEngine(gen, cfg.Timeout.Duration(), logger)
}

// App is the HTTP application.
type App struct {
	cfg    config.Config
	core   *Core
	router *gin.Engine
}

func New(cfg config.Config) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	core, err := NewCore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, core: core, router: newRouter(cfg, core)}, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	a.core.Close()
	return nil
}

func newPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(dsn string, migrationsDir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newRouter(cfg config.Config, core *Core) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, core)
	return r
}
