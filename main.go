// File: staymate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staymate/config"
	"staymate/database"
	bookingRepoPkg "staymate/database/repository/booking"
	listingRepoPkg "staymate/database/repository/listing"
	userRepoPkg "staymate/database/repository/user"
	"staymate/handlers"
	"staymate/middleware"
	"staymate/routes"
	"staymate/services/assistant"
	"staymate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// Session store and tool registry.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLSeconds) * time.Second
	sessionStore := assistant.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	toolRegistry := assistant.NewToolRegistry(sessionStore, listingRepo, userRepo, bookingRepo)

	// Gemini client.
	geminiClient, err := assistant.NewGeminiClient(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		toolRegistry.Declarations(),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()

	// services.
	assistantService := assistant.NewDefaultAssistantService(geminiClient, sessionStore, toolRegistry)

	chatHandler := handlers.NewChatHandler(assistantService, logger)
	handlerBundle := routes.DefaultHandlerBundle(chatHandler)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
