package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"house-rental-backend/internal/api/handlers"
	"house-rental-backend/internal/api/routes"
	"house-rental-backend/internal/auth"
	"house-rental-backend/internal/config"
	"house-rental-backend/internal/database"
	"house-rental-backend/internal/events"
	"house-rental-backend/internal/logger"
	"house-rental-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "house-rental-backend/docs" // This is needed for swag
)

//	@title			House Rental Backend API
//	@version		1.0
//	@description	Backend for a house rental listing site: owner accounts with cookie sessions, listings with images, and tenant contact requests.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3000
//	@BasePath	/

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = time.Minute
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	healthChecks := make(map[string]handlers.HealthCheck)
	var closers []func(context.Context) error

	// Image store
	var images storage.ImageStore
	switch cfg.ImageStore {
	case "gridfs":
		store, err := storage.NewGridFSStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			logrus.Fatal("Failed to connect image store: ", err)
		}
		images = store
		healthChecks["image_store"] = store.Ping
		closers = append(closers, store.Close)
	default:
		store, err := storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			logrus.Fatal("Failed to prepare upload directory: ", err)
		}
		images = store
	}

	// Event publisher. Without a broker events only go to the log.
	var publisher events.Publisher = events.NewLogPublisher()
	if cfg.AMQPURL != "" {
		rabbit, err := events.NewRabbitPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logrus.Fatal("Failed to connect to message broker: ", err)
		}
		publisher = rabbit
		healthChecks["message_broker"] = rabbit.Ping
	}
	closers = append(closers, func(context.Context) error { return publisher.Close() })

	// Sessions
	sessionStore := auth.NewMemorySessionStore()
	go sessionStore.RunJanitor(ctx, janitorInterval)
	sessions, err := auth.NewSessionManager(sessionStore, auth.SessionConfig{
		Secret:     cfg.SessionSecret,
		TTL:        cfg.SessionTTL,
		CookieName: cfg.SessionCookieName,
		Secure:     cfg.IsProduction(),
	})
	if err != nil {
		logrus.Fatal("Failed to initialize sessions: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, routes.Dependencies{
		Images:       images,
		Publisher:    publisher,
		Sessions:     sessions,
		HealthChecks: healthChecks,
	})

	port := cfg.Port
	if port == "" {
		port = "3000"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	for _, closeFn := range closers {
		if err := closeFn(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("Failed to close resource")
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
