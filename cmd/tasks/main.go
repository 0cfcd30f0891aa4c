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

	"library-services/internal/auth"
	"library-services/internal/config"
	"library-services/internal/handlers"
	"library-services/internal/middleware"
	"library-services/internal/models"
	"library-services/internal/monitoring"
	"library-services/internal/server"
	"library-services/internal/store"

	"gorm.io/gorm"
)

func main() {
	log.Println("task tracker service starting...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db := openDatabase(cfg)
	if err := db.AutoMigrate(&models.Task{}, &models.User{}); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	tasks := store.NewTaskStore(db, cfg.Server.MaxPageSize)
	users := store.NewUserStore(db)
	authService := auth.NewService(users, cfg.Auth)

	mon := monitoring.NewMonitor()
	mon.RegisterHealthCheck("database", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	engine := server.NewEngine(cfg, mon)
	server.RegisterAuth(engine, handlers.NewAuthHandler(authService))
	server.RegisterResource(engine, "/tasks", handlers.NewTaskHandler(tasks), middleware.RequireAuth(cfg.Auth.JWTSecret))

	srv := server.New(cfg, engine)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.GetServerAddr())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("received %v, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	case err := <-serverErr:
		log.Fatalf("server error: %v", err)
	}

	log.Println("service stopped")
}

// openDatabase connects to Postgres. An unreachable database is logged,
// not fatal: the service comes up on an in-memory SQLite instead.
func openDatabase(cfg *config.Config) *gorm.DB {
	db, err := store.Open(cfg)
	if err == nil {
		return db
	}
	log.Printf("database connection error: %v", err)
	log.Println("falling back to in-memory sqlite")

	db, err = store.OpenMemory()
	if err != nil {
		log.Fatalf("open fallback database: %v", err)
	}
	return db
}
