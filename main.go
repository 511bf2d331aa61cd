package main

import (
	"log/slog"
	"os"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/internal/routes"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on process environment")
	}

	config.LoadJwtKey()
	config.LoadFilterPolicy()
	config.ConnectDB()
	config.ConnectRedis()
	if err := config.InitGoogleServices(); err != nil {
		slog.Error("Failed to initialize Google services", "error", err)
		os.Exit(1)
	}

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.School{},
		&models.WikiArticle{},
		&models.Announcement{},
		&models.OnboardingTask{},
		&models.AssistantMessage{},
		&models.TranscriptReport{},
		&models.RecommendationSheet{},
	); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Starting FangYang Nexus API", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
