package routes

import (
	"web-store/config"
	"web-store/controllers"
	"web-store/middleware"
	"web-store/models"
	"web-store/repositories"
	"web-store/services"
	"web-store/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, tokens *utils.TokenService) {
	userRepo := repositories.NewUserRepository(config.DB)
	itemRepo := repositories.NewItemRepository(config.DB, models.RedisClient)
	cartRepo := repositories.NewCartRepository(config.DB)
	orderRepo := repositories.NewOrderRepository(config.DB)

	userCtrl := controllers.NewUserController(services.NewUserService(userRepo, tokens))
	itemCtrl := controllers.NewItemController(services.NewItemService(itemRepo))
	cartCtrl := controllers.NewCartController(services.NewCartService(userRepo, itemRepo, cartRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(userRepo, cartRepo, orderRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/user/create", userCtrl.Create)
	api.POST("/user/login", userCtrl.Login)

	auth := api.Group("/")
	auth.Use(middleware.RequirePrincipal())
	{
		auth.GET("/user/id/:id", userCtrl.GetByID)
		auth.GET("/user/:username", userCtrl.GetByUsername)

		auth.GET("/item", itemCtrl.List)
		auth.GET("/item/:id", itemCtrl.GetByID)
		auth.GET("/item/name/:name", itemCtrl.GetByName)

		auth.POST("/cart/addToCart", cartCtrl.AddToCart)
		auth.POST("/cart/removeFromCart", cartCtrl.RemoveFromCart)

		auth.POST("/order/submit/:username", orderCtrl.Submit)
		auth.GET("/order/history/:username", orderCtrl.History)
	}
}
