package routes

import (
	"time"

	"staymate/config"
	"staymate/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the HTTP handlers wired in main.
type HandlerBundle struct {
	ChatHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc
}

// RegisterRoutes attaches CORS and all application routes to the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL, "http://localhost"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", hb.HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/chat", hb.ChatHandler)
	}
}

// DefaultHandlerBundle builds the bundle from constructed handlers.
func DefaultHandlerBundle(chat *handlers.ChatHandler) *HandlerBundle {
	return &HandlerBundle{
		ChatHandler:   chat.HandleChat,
		HealthHandler: handlers.HealthHandler,
	}
}
