package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/griffix/backend/internal/application/catalog"
	orderapp "github.com/griffix/backend/internal/application/order"
	shippingapp "github.com/griffix/backend/internal/application/shipping"
	"github.com/griffix/backend/internal/infrastructure/cache"
	"github.com/griffix/backend/internal/infrastructure/config"
	"github.com/griffix/backend/internal/infrastructure/logger"
	"github.com/griffix/backend/internal/infrastructure/notification"
	"github.com/griffix/backend/internal/infrastructure/persistence"
	"github.com/griffix/backend/internal/infrastructure/sheets"
	"github.com/griffix/backend/internal/infrastructure/shippo"
	"github.com/griffix/backend/internal/interfaces/http/handler"
	"github.com/griffix/backend/internal/interfaces/http/middleware"
	"github.com/griffix/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	zapLogger, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(zapLogger) }()

	zapLogger.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Open the order store
	gormLevel := gormlogger.Warn
	if cfg.App.Env == "development" {
		gormLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(zapLogger, gormLevel))
	if err != nil {
		zapLogger.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zapLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	// Infrastructure adapters
	orderRepo := persistence.NewGormOrderRepository(db.DB, zapLogger)
	rateClient := shippo.NewClient(cfg.Shipping, zapLogger)
	sheetClient := sheets.NewClient(cfg.Catalog, zapLogger)
	catalogCache := cache.NewCatalogCache(sheetClient, cfg.Catalog.TTL, zapLogger)

	smtpMailer, err := notification.NewSMTPMailer(cfg.SMTP, cfg.Payment.PayPalMeURL)
	if err != nil {
		zapLogger.Fatal("failed to initialize mailer", zap.Error(err))
	}
	smtpConfigured := cfg.SMTP.Username != "" && cfg.SMTP.Password != ""
	var mailer notification.Mailer = smtpMailer
	if !smtpConfigured {
		mailer = notification.NewLoggingMailer(zapLogger)
	}
	dispatcher := notification.NewDispatcher(mailer, zapLogger)

	// Application services
	quoteService := shippingapp.NewQuoteService(rateClient)
	orderService := orderapp.NewService(orderRepo, dispatcher, zapLogger)
	catalogService := catalogapp.NewService(catalogCache, cfg.Catalog)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(logger.GinMiddleware(zapLogger))
	engine.Use(logger.Recovery(zapLogger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Secure())
	engine.Use(bodyLimit(cfg.HTTP.MaxBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsCfg))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(limiter.Middleware())
	}
	loginLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	contactLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)

	// Routes
	router.NewRouter(engine).
		Register(handler.NewQuoteHandler(quoteService)).
		Register(handler.NewOrderHandler(orderService, cfg.Admin.Secret)).
		Register(handler.NewCatalogHandler(catalogService)).
		Register(handler.NewContactHandler(smtpMailer, smtpConfigured, zapLogger,
			handler.WithSubmitLimiter(contactLimiter.Middleware()))).
		Register(handler.NewAdminHandler(cfg.Admin.Password, cfg.Admin.Secret,
			handler.WithLoginLimiter(loginLimiter.Middleware()))).
		Register(handler.NewSystemHandler(db, cfg.Payment.PayPalMeURL)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}

	// Let in-flight order emails finish before exiting
	dispatcher.Wait()

	zapLogger.Info("server exited gracefully")
}

// bodyLimit caps request body reads so oversized JSON cannot exhaust memory
func bodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
