package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"portfoliokollen/internal/config"
	"portfoliokollen/internal/handler"
	"portfoliokollen/internal/httpserver"
	"portfoliokollen/internal/service/auth"
	"portfoliokollen/internal/service/portfolio"
	"portfoliokollen/internal/store"
	"portfoliokollen/internal/store/memory"
	"portfoliokollen/internal/store/postgres"
	"portfoliokollen/pkg/db"
	"portfoliokollen/pkg/logger"
	redisclient "portfoliokollen/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting portfoliokollen...",
		zap.String("port", cfg.Server.Port),
		zap.Bool("db_configured", cfg.DB.Configured()),
		zap.Bool("redis_configured", cfg.Redis.Configured()),
	)

	// Domain store: postgres when configured, in-memory emulation
	// otherwise. Picked once here; nothing downstream knows which one it
	// got.
	var (
		domainStore store.Store
		userStore   auth.UserStore
		ready       httpserver.ReadyChecker
	)
	if cfg.DB.Configured() {
		dbConn, err := db.NewConnection(cfg.DB, log)
		if err != nil {
			log.Fatal("Failed to init DB", zap.Error(err))
		}
		defer dbConn.Close()

		pgStore := postgres.New(dbConn, log)
		domainStore = pgStore
		userStore = pgStore
		ready = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return dbConn.Ping(ctx)
		}
	} else {
		log.Info("No database configured, running on the in-memory demo store")
		memStore := memory.New(log)
		if err := memStore.Seed(context.Background()); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
		domainStore = memStore
		userStore = memStore
		ready = func() error { return nil }
	}

	// Session revocation: Redis when configured, process-local otherwise.
	var blacklist auth.Blacklist
	if cfg.Redis.Configured() {
		rdb := redisclient.NewRedisClient(cfg.Redis)
		defer rdb.Close()
		blacklist = auth.NewRedisBlacklist(rdb)
	} else {
		blacklist = auth.NewMemoryBlacklist()
	}

	// Services
	authService := auth.NewService(userStore, blacklist, cfg.JWT.Secret, log)
	portfolioService := portfolio.NewService(domainStore, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, log)
	projectHandler := handler.NewProjectHandler(portfolioService, log)
	activityHandler := handler.NewActivityHandler(portfolioService, log)
	milestoneHandler := handler.NewMilestoneHandler(portfolioService, log)
	dependencyHandler := handler.NewDependencyHandler(portfolioService, log)

	router := httpserver.NewRouter(
		authHandler,
		projectHandler,
		activityHandler,
		milestoneHandler,
		dependencyHandler,
		authService,
		ready,
		log,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.Engine,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down portfoliokollen gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("portfoliokollen shutdown complete")
}
