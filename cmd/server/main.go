package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"brixia-rugby/backend/config"
	"brixia-rugby/backend/internal/api/handler"
	"brixia-rugby/backend/internal/api/router"
	"brixia-rugby/backend/internal/repository"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/database"
	"brixia-rugby/backend/pkg/jwt"
	applogger "brixia-rugby/backend/pkg/logger"
	"brixia-rugby/backend/pkg/redis"
)

func main() {
	// 1. config
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.String("club", cfg.Club.Name),
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database + migrations
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// 4. redis is optional; without it logout is not enforced and rate limits stay per process
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, running without token blacklist", zap.Error(err))
			rdb = nil
		}
	}
	var blacklist service.TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	// 5. wiring
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, blacklist, logger)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.Auth.SeedAdmin(seedCtx); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
	seedCancel()

	h := handler.NewHandler(svc)
	engine := router.Setup(cfg, h, jwtMgr, rdb, repo, logger)

	// 6. http server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
