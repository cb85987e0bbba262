package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/copilot-demo/task-manager/internal/config"
	"github.com/copilot-demo/task-manager/internal/database"
	"github.com/copilot-demo/task-manager/internal/handlers"
	"github.com/copilot-demo/task-manager/internal/logger"
	"github.com/copilot-demo/task-manager/internal/middleware"
	"github.com/copilot-demo/task-manager/internal/models"
	"github.com/copilot-demo/task-manager/internal/repository"
	"github.com/copilot-demo/task-manager/internal/services"
)

func main() {
	cfg := config.Load()

	logger.Setup(logger.ParseLevel(cfg.LogLevel))
	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	taskRepo := repository.NewTaskRepository(database.GetDB())
	userRepo := repository.NewUserRepository(database.GetDB())

	tokens := services.NewTokenManager(services.TokenConfig{
		SecretKey:      cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
		Issuer:         cfg.JWTIssuer,
	})
	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo)

	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(authService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokens))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/my/assigned", taskHandler.ListMyAssigned)
			tasks.GET("/my/created", taskHandler.ListMyCreated)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/archive", taskHandler.ArchiveTask)
			tasks.POST("/:id/unarchive", taskHandler.UnarchiveTask)
		}

		users := api.Group("/users")
		users.Use(middleware.RequireAuth(tokens))
		{
			users.GET("", middleware.RequireRole(models.RoleManager, models.RoleAdmin), userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}
	}

	addr := ":" + cfg.Port
	slog.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
