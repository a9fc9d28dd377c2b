// Package relay wires configuration, infrastructure, services, and HTTP
// routes into a runnable SERAPH relay server.
package relay

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/thaumiel-labs/seraph-relay/internal/api"
	"github.com/thaumiel-labs/seraph-relay/internal/config"
	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/services/cache"
	"github.com/thaumiel-labs/seraph-relay/internal/services/database"
	"github.com/thaumiel-labs/seraph-relay/internal/services/dispatch"
	"github.com/thaumiel-labs/seraph-relay/internal/services/gemini"
	"github.com/thaumiel-labs/seraph-relay/internal/services/quiz"
	"github.com/thaumiel-labs/seraph-relay/internal/services/sessions"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

// Relay represents a SERAPH relay server instance.
type Relay struct {
	config *config.Config
	app    *fiber.App
	redis  *redis.Client
	db     *database.DB
	cache  cache.Store
}

// New creates a new Relay instance with the given configuration.
func New(cfg *config.Config) *Relay {
	if cfg == nil {
		panic("config cannot be nil - use config.LoadFromFile() to create config")
	}
	return &Relay{config: cfg}
}

// Run starts the relay server and blocks until shutdown.
func (r *Relay) Run() error {
	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogLevel(r.config)

	listenAddr := ":" + r.config.Server.Port

	r.app = createFiberApp(r.config)

	if err := r.initializeInfrastructure(); err != nil {
		return err
	}
	defer r.closeInfrastructure()

	setupMiddleware(r.app, r.config)

	if err := r.setupRoutes(); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	fmt.Printf("SERAPH relay starting on %s\n", listenAddr)
	fmt.Printf("   Environment: %s\n", r.config.Server.Environment)
	fmt.Printf("   Go version: %s\n", runtime.Version())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := r.app.Listen(listenAddr); err != nil {
			serverErrChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		fiberlog.Infof("Received signal: %v. Starting graceful shutdown...", sig)
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	}

	fiberlog.Info("Server shutting down gracefully...")
	if err := r.app.ShutdownWithTimeout(30 * time.Second); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	fiberlog.Info("Server shutdown completed successfully")
	return nil
}

func (r *Relay) initializeInfrastructure() error {
	if r.config.Cache.Backend == models.CacheBackendRedis {
		client, err := createRedisClient(r.config.Cache.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create Redis client: %w", err)
		}
		r.redis = client
		fiberlog.Info("Redis client initialized successfully")
	}

	store, err := cache.New(r.config.Cache, r.redis)
	if err != nil {
		return fmt.Errorf("failed to create response cache: %w", err)
	}
	r.cache = store

	if r.config.Database != nil {
		db, err := database.New(*r.config.Database)
		if err != nil {
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		r.db = db
		fiberlog.Infof("Database (%s) initialized successfully", db.DriverName())

		if err := sessions.NewService(db.DB).AutoMigrate(); err != nil {
			return fmt.Errorf("failed to migrate session tables: %w", err)
		}
		fiberlog.Info("Database migrations completed successfully")
	} else {
		fiberlog.Info("Database not configured - session endpoints disabled")
	}

	return nil
}

func (r *Relay) closeInfrastructure() {
	if r.cache != nil {
		if err := r.cache.Close(); err != nil {
			fiberlog.Errorf("Failed to close response cache: %v", err)
		}
	}
	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			fiberlog.Errorf("Failed to close Redis client: %v", err)
		}
	}
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			fiberlog.Errorf("Failed to close database connection: %v", err)
		}
	}
}

func (r *Relay) setupRoutes() error {
	geminiClient := gemini.NewClient(r.config.Gemini)
	throttle := dispatch.NewThrottle(time.Duration(r.config.Dispatch.ThrottleIntervalMs) * time.Millisecond)
	dispatcher := dispatch.NewDispatcher(r.config.Gemini.Generation, geminiClient, r.cache, throttle)

	dispatchHandler := api.NewDispatchHandler(dispatcher)
	quizHandler := api.NewQuizHandler(quiz.NewService(geminiClient))
	debugHandler := api.NewDebugHandler(r.config, r.db)
	healthHandler := api.NewHealthHandler(r.config, r.db, r.redis)

	r.app.Get("/", debugHandler.Root)
	r.app.Get("/health", healthHandler.HealthCheck)
	r.app.Get("/debug_info", debugHandler.DebugInfo)

	r.app.Post("/gemini_request", dispatchHandler.GeminiRequest)
	r.app.Post("/echo", dispatchHandler.Echo)
	r.app.Post("/team_quiz", quizHandler.TeamQuiz)

	if r.db != nil {
		sessionsHandler := api.NewSessionsHandler(sessions.NewService(r.db.DB))
		r.app.Post("/game_start_signal", sessionsHandler.GameStartSignal)
		r.app.Post("/game_status_update", sessionsHandler.GameStatusUpdate)
		r.app.Post("/game_cleanup", sessionsHandler.GameCleanup)
	}

	return nil
}

func createFiberApp(cfg *config.Config) *fiber.App {
	isProd := cfg.IsProduction()

	return fiber.New(fiber.Config{
		AppName:           "SeraphRelay v1.0",
		EnablePrintRoutes: !isProd,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       5 * time.Minute,
		CaseSensitive:     true,
		ServerHeader:      "SeraphRelay",
	})
}

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	isProd := cfg.IsProduction()

	// Recover middleware (must be first): an unexpected panic in one
	// request must never take down the process.
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !isProd,
	}))

	// Inbound rate limiter, keyed per client. Distinct from the outbound
	// Gemini throttle, which is global.
	app.Use(limiter.New(limiter.Config{
		Max:               300,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if isProd {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency} ${bytesSent}b\n",
			Output: os.Stdout,
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
			Output: os.Stdout,
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
}

func setupLogLevel(cfg *config.Config) {
	logLevel := cfg.GetNormalizedLogLevel()

	switch logLevel {
	case "trace":
		fiberlog.SetLevel(fiberlog.LevelTrace)
	case "debug":
		fiberlog.SetLevel(fiberlog.LevelDebug)
	case "info":
		fiberlog.SetLevel(fiberlog.LevelInfo)
	case "warn", "warning":
		fiberlog.SetLevel(fiberlog.LevelWarn)
	case "error":
		fiberlog.SetLevel(fiberlog.LevelError)
	default:
		fiberlog.SetLevel(fiberlog.LevelInfo)
		fiberlog.Warnf("Unknown log level '%s', defaulting to 'info'", logLevel)
	}
}

func createRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 20
	opt.MinIdleConns = 4
	opt.DialTimeout = 10 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second
	opt.MaxRetries = 3

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
