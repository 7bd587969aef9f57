package main

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/client"
	"github.com/habitloop/backend/internal/config"
	"github.com/habitloop/backend/internal/db"
	"github.com/habitloop/backend/internal/handler"
	"github.com/habitloop/backend/internal/service"
	"github.com/habitloop/backend/internal/token"
)

// @title HabitLoop API
// @version 1.0
// @description Habit tracking and idea capture backend.
// @BasePath /
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	codec, err := token.NewCodec(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret)
	if err != nil {
		logger.Fatal("token codec init failed", zap.Error(err))
	}

	ctx := context.Background()
	store, err := db.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() { _ = store.Close(ctx) }()

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("mongo index setup failed", zap.Error(err))
	}

	authService, err := service.NewAuthService(store, codec, cfg.Auth, logger)
	if err != nil {
		logger.Fatal("auth service init failed", zap.Error(err))
	}
	habitService := service.NewHabitService(store, logger)
	ideaService := service.NewIdeaService(store, logger)
	topicService := service.NewTopicService(store, logger)
	dailyLogService := service.NewDailyLogService(store, logger)

	// Idea prompts stay off unless an API key is configured.
	var promptService *service.PromptService
	if cfg.AI.APIKey != "" {
		promptClient, err := client.NewPromptClient(cfg.AI)
		if err != nil {
			logger.Fatal("prompt client init failed", zap.Error(err))
		}
		promptService = service.NewPromptService(store, promptClient, logger)
	}

	router := buildRouter(cfg, logger, codec, authService, habitService, ideaService, topicService, dailyLogService, promptService)

	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := router.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildRouter(
	cfg config.Config,
	logger *zap.Logger,
	codec *token.Codec,
	authService *service.AuthService,
	habitService *service.HabitService,
	ideaService *service.IdeaService,
	topicService *service.TopicService,
	dailyLogService *service.DailyLogService,
	promptService *service.PromptService,
) *gin.Engine {
	router := gin.New()
	router.Use(handler.RequestLogger(logger), gin.Recovery())
	if cfg.Server.AllowedOrigins != "" {
		router.Use(handler.CORSMiddleware(strings.Split(cfg.Server.AllowedOrigins, ",")))
	}
	router.LoadHTMLGlob("web/templates/*.html")

	authHandler := handler.NewAuthHandler(authService)
	habitHandler := handler.NewHabitHandler(habitService)
	ideaHandler := handler.NewIdeaHandler(ideaService)
	topicHandler := handler.NewTopicHandler(topicService)
	dailyLogHandler := handler.NewDailyLogHandler(dailyLogService)
	pageHandler := handler.NewPageHandler(authService, habitService, ideaService, topicService, dailyLogService, logger)

	router.GET("/healthz", handler.Ping)
	router.GET("/api/openapi.json", handler.OpenAPIDoc)

	// auth endpoints reachable without a session
	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	api := router.Group("/api/v1", handler.AuthMiddleware(authService))
	{
		api.GET("/auth/me", authHandler.Me)
		api.GET("/profile/theme", authHandler.Theme)
		api.PUT("/profile/theme", authHandler.UpdateTheme)

		api.POST("/habits", habitHandler.CreateHabit)
		api.GET("/habits", habitHandler.GetHabits)
		api.GET("/habits/today", habitHandler.GetTodayHabits)
		api.DELETE("/habits/:id", habitHandler.DeleteHabit)
		api.POST("/habits/:id/logs", habitHandler.LogHabit)
		api.GET("/habits/:id/streak", habitHandler.GetStreak)
		api.GET("/logs", habitHandler.GetLogs)

		api.POST("/ideas", ideaHandler.CreateIdea)
		api.GET("/ideas", ideaHandler.GetIdeas)
		api.PATCH("/ideas/:id", ideaHandler.UpdateIdea)
		api.DELETE("/ideas/:id", ideaHandler.DeleteIdea)

		api.POST("/topics", topicHandler.CreateTopic)
		api.GET("/topics", topicHandler.GetTopics)
		api.DELETE("/topics/:id", topicHandler.DeleteTopic)

		api.PUT("/journal", dailyLogHandler.UpsertDailyLog)
		api.GET("/journal", dailyLogHandler.GetDailyLog)

		if promptService != nil {
			api.GET("/habits/:id/idea-prompt", handler.NewPromptHandler(promptService).GetIdeaPrompt)
		}
	}

	pages := router.Group("/", handler.PageGate(codec))
	{
		pages.GET("/", pageHandler.Home)
		pages.GET("/auth/login", pageHandler.Login)
		pages.GET("/auth/signup", pageHandler.Signup)
		pages.GET("/dashboard", pageHandler.Dashboard)
		pages.GET("/habits", pageHandler.Habits)
		pages.GET("/ideas", pageHandler.Ideas)
		pages.GET("/profile", pageHandler.Profile)
	}

	return router
}
