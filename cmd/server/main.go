package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/api"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/config"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/database"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/migrations"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/redis"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/ws"
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode, err := cfg.Mode()
	if err != nil {
		log.Fatalf("Invalid trainer configuration: %v", err)
	}
	engine := game.NewEngine(mode, game.NewCurriculum(cfg.MaxEI), game.NewRand(cfg.RandomSeed))
	log.Printf("[TRAINER] Mode %s (%d balls), max EI %.1f, snap on %s", mode.Name, mode.MaxBalls, engine.Curriculum().MaxEI, mode.Aids.Snap)

	// Postgres attempt log (optional)
	var db *sqlx.DB
	var attempts game.AttemptLog
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if cfg.MigrateOnStart {
			log.Println("↗ Running DB migrations on startup...")
			if err := migrations.RunMigrations(cfg.DatabaseURL); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}
		attempts = game.NewSQLAttemptLog(db)
	} else {
		log.Println("[DB] DATABASE_URL not set; attempt log disabled")
	}

	hub := ws.NewHub()

	// Redis session cache and event fan-out (optional)
	var rdb *goredis.Client
	var store game.SessionStore
	var events game.EventPublisher = hub
	if cfg.RedisURL != "" {
		rdb, err = redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		redisStore := game.NewRedisStore(rdb)
		store = redisStore
		events = redisStore
	} else {
		log.Println("[REDIS] REDIS_URL not set; sessions kept in memory only")
	}

	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	manager := game.NewManager(engine, store, attempts, events, ttl)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api.SetupRoutes(router, manager, hub, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		game.StartExpiryWorker(gctx, manager, time.Duration(cfg.ExpiryPollSeconds)*time.Second)
		return nil
	})
	if rdb != nil {
		g.Go(func() error {
			return ws.StartEventSubscriber(gctx, rdb, hub)
		})
	}
	g.Go(func() error {
		log.Printf("Starting EI trainer server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("Shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
