package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/weiwang118/Wei-s-chatbot/api"
	"github.com/weiwang118/Wei-s-chatbot/chai"
	"github.com/weiwang118/Wei-s-chatbot/config"
	"github.com/weiwang118/Wei-s-chatbot/hub"
	"github.com/weiwang118/Wei-s-chatbot/service"
	"github.com/weiwang118/Wei-s-chatbot/store"
	"github.com/weiwang118/Wei-s-chatbot/ws"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}
	cfg := config.Load()

	log.Printf("Starting chat relay...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)

	// Initialize store
	sessionStore := store.NewMemoryStore()

	// Initialize CHAI client; the connection pool lives for the process
	// lifetime and is released on shutdown.
	chaiClient := chai.NewClient(chai.Options{
		BaseURL:         cfg.ChaiBaseURL,
		APIKey:          cfg.ChaiAPIKey,
		Timeout:         cfg.ChaiTimeout,
		MaxConns:        cfg.PoolMaxConns,
		MaxConnsPerHost: cfg.PoolMaxConnsPerHost,
		Retry: chai.RetryPolicy{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   500 * time.Millisecond,
			MaxElapsed:  cfg.MaxBackoff,
			Retryable:   chai.DefaultRetryable,
		},
	})
	defer chaiClient.Close()

	// Initialize service
	svc := service.New(sessionStore, chaiClient)

	// Initialize handlers
	h := api.NewHandler(svc)
	connectionHub := hub.NewHub()
	wsServer := ws.NewServer(connectionHub, svc, cfg.WSMaxMessageSize)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))

	// Register routes
	h.RegisterRoutes(e)
	e.GET("/ws/chat/:session_id", wsServer.HandleChat)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Chat relay started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down chat relay...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Chat relay stopped")
}
