package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/ponsiv/backend/internal/application/catalog"
	closetapp "github.com/ponsiv/backend/internal/application/closet"
	commerceapp "github.com/ponsiv/backend/internal/application/commerce"
	engagementapp "github.com/ponsiv/backend/internal/application/engagement"
	identityapp "github.com/ponsiv/backend/internal/application/identity"
	outfitapp "github.com/ponsiv/backend/internal/application/outfit"
	"github.com/ponsiv/backend/internal/infrastructure/auth"
	"github.com/ponsiv/backend/internal/infrastructure/cache"
	"github.com/ponsiv/backend/internal/infrastructure/config"
	"github.com/ponsiv/backend/internal/infrastructure/logger"
	"github.com/ponsiv/backend/internal/infrastructure/persistence"
	"github.com/ponsiv/backend/internal/interfaces/http/handler"
	"github.com/ponsiv/backend/internal/interfaces/http/middleware"
	"github.com/ponsiv/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionCache is the cache surface main needs: the lookup interface the
// identity service consumes plus a Close for shutdown.
type sessionCache interface {
	identityapp.SessionCache
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Ponsiv backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Session cache: Redis when configured, in-process otherwise
	var sessions sessionCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisSessionCache(cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		sessions = redisCache
		log.Info("Session cache backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		sessions = cache.NewInMemorySessionCache()
		log.Info("Session cache in-process, Redis disabled")
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Error("Error closing session cache", zap.Error(err))
		}
	}()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	lookRepo := persistence.NewGormLookRepository(db.DB)
	closetRepo := persistence.NewGormClosetRepository(db.DB)
	outfitRepo := persistence.NewGormOutfitRepository(db.DB)
	interactionRepo := persistence.NewGormInteractionRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Application services
	sessionClient := auth.NewHTTPSessionClient(cfg.Identity)
	identityService := identityapp.NewService(sessionClient, sessions, log)
	feedService := catalogapp.NewFeedServiceWithLimits(productRepo, cfg.Feed.DefaultPageSize, cfg.Feed.MaxPageSize)
	productService := catalogapp.NewProductService(productRepo, brandRepo, categoryRepo)
	lookService := catalogapp.NewLookService(lookRepo, productRepo)
	closetService := closetapp.NewService(closetRepo, productRepo)
	outfitService := outfitapp.NewService(outfitRepo, closetRepo)
	engagementService := engagementapp.NewService(interactionRepo, productRepo, closetService, log)
	commerceService := commerceapp.NewService(cartRepo, orderRepo, productRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	requireSession := middleware.RequireSession(identityService, cfg.Cookie.Name)
	optionalSession := middleware.OptionalSession(identityService, cfg.Cookie.Name)

	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	r.Register(systemHandler).
		Register(handler.NewAuthHandler(identityService, cfg.Cookie, requireSession)).
		Register(handler.NewFeedHandler(feedService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewLookHandler(lookService)).
		Register(handler.NewWardrobeHandler(closetService, requireSession)).
		Register(handler.NewOutfitHandler(outfitService, requireSession, optionalSession)).
		Register(handler.NewInteractionHandler(engagementService, requireSession)).
		Register(handler.NewCartHandler(commerceService, requireSession))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	stop()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}
