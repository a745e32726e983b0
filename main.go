package main

import (
	"log"

	"web-store/config"
	_ "web-store/docs"
	"web-store/logging"
	"web-store/middleware"
	"web-store/models"
	"web-store/routes"
	"web-store/utils"

	"github.com/gin-gonic/gin"
)

// @title Web Store API
// @version 1.0
// @description E-commerce backend: users, items, cart, orders behind bearer-token auth.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger := logging.Init("web-store", config.AppConfig.LogFile)

	config.ConnectDB()
	defer config.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	tokens := utils.NewTokenService(config.AppConfig.JWTSecret, config.AppConfig.JWTExpiry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.AuthMiddleware(tokens))
	routes.SetupRoutes(router, tokens)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
