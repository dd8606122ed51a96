package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/storefront/configs"
	"github.com/Keoroanthony/storefront/internal/buyer"
	"github.com/Keoroanthony/storefront/internal/db"
	"github.com/Keoroanthony/storefront/internal/handlers"
	"github.com/Keoroanthony/storefront/internal/middleware"
	"github.com/Keoroanthony/storefront/internal/store"
	"github.com/Keoroanthony/storefront/internal/telemetry"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	conn, err := db.Open(cfg.Database)
	if err != nil {
		logger.Error("database init failed", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	logger.Info("database connected and migrated", "driver", cfg.Database.Driver)

	if cfg.Database.Seed {
		seeded, err := db.Seed(conn)
		if err != nil {
			logger.Error("catalog seed failed", "error", err)
		} else if seeded > 0 {
			logger.Info("catalog seeded", "products", seeded)
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// prices go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	products := store.NewProducts(conn)
	baskets := store.NewBaskets(conn)
	resolver := buyer.NewResolver(baskets, cfg.BuyerTTL(), !cfg.IsDevelopment())

	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger),
		middleware.Exception(logger, cfg.IsDevelopment()),
		middleware.CORS(cfg.CORSOrigins),
	)

	// ── public endpoints ──
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	handlers.Register(
		r.Group("/api"),
		handlers.NewProductHandler(products, logger),
		handlers.NewBasketHandler(resolver, products, baskets, logger),
	)

	var handler http.Handler = r
	if cfg.TracingEnabled {
		shutdownTracing, err := telemetry.Setup(os.Stdout)
		if err != nil {
			logger.Error("tracing init failed", "error", err)
			os.Exit(1)
		}
		defer shutdownTracing(context.Background())
		handler = telemetry.Handler(r)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg config.AppConfig) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
