package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Obesity Triage API
// @version 1.0
// @description API сервиса триажа риска ожирения: классификация категории веса, ИМТ и предупреждения о факторах риска

// @host localhost:8053
// @BasePath /api/v1

// @tag.name triage
// @tag.description Анализ анкеты пациента

// @tag.name health
// @tag.description Мониторинг состояния сервиса

// SetupRoutes настраивает маршруты REST API
func SetupRoutes(handler *TriageHandler) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:80", "*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// API группа
	api := r.Group("/api/v1")

	triage := api.Group("/triage")
	{
		triage.POST("/analyze", handler.Analyze)
		triage.POST("/features", handler.Features)
		triage.GET("/schema", handler.Schema)
		triage.GET("/health", handler.Health)
	}

	return r
}
