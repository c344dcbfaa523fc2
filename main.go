package main

import (
	"log"
	"time"

	"portfolio-be/internal/broadcast"
	"portfolio-be/internal/config"
	"portfolio-be/internal/controllers"
	"portfolio-be/internal/crypto"
	"portfolio-be/internal/database"
	"portfolio-be/internal/middleware"
	"portfolio-be/internal/repository"
	"portfolio-be/internal/service"
	"portfolio-be/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Data store gateway (one connection per call, nothing pooled)
	store := database.NewStore(
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
	)

	// Credential and session codecs
	oneway := crypto.NewOneWay(cfg.OneWaySalt, cfg.OneWayN, cfg.OneWayR, cfg.OneWayP)
	codec := crypto.NewCodec(cfg.ReversibleKey)

	// Create and seed the schema when asked to
	if cfg.ProvisionOnStart {
		if err := store.Provision(cfg.SeedDataPath, cfg.PurgeOnProvision, oneway.Digest); err != nil {
			log.Fatalf("Failed to provision database: %v", err)
		}
		log.Println("Database provisioned")
	}

	// Initialize session store (fall back to memory if Redis is unavailable)
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisSessions, err := session.NewRedisStore(cfg.RedisURL, time.Duration(cfg.SessionTTLHrs)*time.Hour)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis (%v). Using in-memory sessions.", err)
			sessions = session.NewMemoryStore()
		} else {
			log.Println("Connected to Redis session store")
			sessions = redisSessions
		}
	} else {
		sessions = session.NewMemoryStore()
	}

	// Initialize repositories
	resumeRepo := repository.NewResumeRepository(store)
	userRepo := repository.NewUserRepository(store)

	// Initialize services
	resumeService := service.NewResumeService(resumeRepo)
	authService := service.NewAuthService(userRepo, oneway, codec)
	chatService := service.NewChatService(
		cfg.OpenAIBaseURL,
		cfg.OpenAIAPIKey,
		cfg.OpenAIModel,
		cfg.OpenAIMaxTokens,
		cfg.OpenAITemperature,
	)

	// Broadcast hub for fanning chat replies out to connected clients
	hub := broadcast.NewHub()

	// Initialize controllers
	resumeController := controllers.NewResumeController(resumeService)
	authController := controllers.NewAuthController(authService, sessions)
	chatController := controllers.NewChatController(chatService, sessions, hub, cfg.OpenAISystemPrompt, cfg.OpenAIMaxHistory)
	eventsController := controllers.NewEventsController(hub)
	qrcodeController := controllers.NewQRCodeController(cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	chatRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitChatRPS), cfg.RateLimitChatBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.WithSession())

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Live message stream (long-lived, no rate limiting)
	router.GET("/events", eventsController.Stream)

	// API routes with general rate limiting and no-cache headers
	api := router.Group("")
	api.Use(middleware.NoCache(), generalRateLimiter.LimitMiddleware())
	{
		api.GET("/api/resume", resumeController.GetResume)
		api.GET("/api/me", authController.Me)
		api.GET("/qrcode", qrcodeController.GenerateQRCode)

		// Chat relay with stricter rate limiting (LLM-backed)
		api.POST("/chat", chatRateLimiter.LimitMiddleware(), chatController.Chat)

		// Auth routes with stricter rate limiting
		api.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)
		api.GET("/logout", authController.Logout)
	}

	// Start the server on port 8080
	log.Println("Server starting on http://localhost:8080")
	router.Run(":8080")
}
