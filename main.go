package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/letsshopbd/subtrack/internal/api"
	"github.com/letsshopbd/subtrack/internal/config"
	"github.com/letsshopbd/subtrack/internal/database"
	"github.com/letsshopbd/subtrack/internal/logger"
	"github.com/letsshopbd/subtrack/internal/services"
	"github.com/letsshopbd/subtrack/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.IsProduction())

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up services
	entryService := services.NewEntryService(db)
	userService := services.NewUserService(db)

	// Seed the single application user on first start
	if err := userService.EnsureDefaultUser(cfg.SeedUserEmail, cfg.SeedUserPassword); err != nil {
		log.Fatalf("Failed to seed default user: %v", err)
	}

	// Set up session manager and router
	sessions := session.NewManager(cfg.IsProduction())
	router := api.NewRouter(sessions, entryService, userService, cfg.CORSOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
