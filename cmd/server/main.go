package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/artemkv/storefront/internal/config"
	"github.com/artemkv/storefront/internal/events"
	"github.com/artemkv/storefront/internal/httpserver"
	"github.com/artemkv/storefront/internal/logging"
	loggingmw "github.com/artemkv/storefront/internal/middleware/logging"
	"github.com/artemkv/storefront/internal/repo"
	"github.com/artemkv/storefront/internal/search"
	"github.com/artemkv/storefront/internal/service"
	"github.com/artemkv/storefront/internal/storage"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := storage.Open(initCtx, cfg.DatabaseURL, cfg.SQLitePath)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}
	if err := storage.Seed(db); err != nil {
		log.Fatalf("db seed error: %v", err)
	}

	r := &repo.GormRepo{DB: db}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if !producer.Enabled() {
		logger.Info("kafka disabled, domain events will not be published")
	}

	searchHandler := &httpserver.SearchHTTP{Index: "products"}
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler.ES = esClient
	} else {
		logger.Info("elasticsearch disabled, product search unavailable")
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}, Producer: producer},
		AuthHandler:    &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret}, Producer: producer},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: r}, Producer: producer},
		SearchHandler:  searchHandler,
		JWTSecret:      cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
