package main

import (
	"log"
	"os"

	"auth"
	"scheduler"
	"team-scheduler-api/config"
	_ "team-scheduler-api/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Team Scheduler API
// @version         1.0
// @description     API for managing teams, matches, appointments and availability propositions

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()

	r := gin.Default()
	r.Use(cors.Default())

	// Setup auth module (register/login/refresh/reset-password routes)
	authModule := auth.NewModule(config.DB)
	authModule.SetupRoutes(r)

	// Users routes (protected)
	users := r.Group("/users")
	users.Use(auth.JWTMiddleware())
	{
		users.GET("/me", authModule.Handler.Profile)
		users.DELETE("/me", authModule.Handler.DeleteAccount)
	}

	// Scheduler module: teams, matches, appointments, propositions
	schedulerModule := scheduler.NewModule(config.DB)
	schedulerModule.SetupRoutes(r, auth.JWTMiddleware(), auth.RequireRole(config.DB, auth.RoleAdmin))

	if err := schedulerModule.StartRetention(); err != nil {
		log.Printf("Failed to start retention scheduler: %v", err)
	}
	defer schedulerModule.StopRetention()

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	database := "connected"
	if sqlDB, err := config.DB.DB(); err != nil || sqlDB.Ping() != nil {
		database = "unreachable"
	}
	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: database,
	})
}
