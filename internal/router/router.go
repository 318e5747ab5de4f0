package router

import (
	"github.com/shopcore/internal/config"
	"github.com/shopcore/internal/http/handlers"
	"github.com/shopcore/internal/http/response"
	"github.com/shopcore/internal/logger"
	"github.com/shopcore/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		cart := api.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.POST("/items", handler.UpsertCartItem)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", handler.CreateOrder)
			orders.GET("", handler.ListOrders)
			orders.GET("/:id", handler.GetOrder)
			orders.POST("/:id/ship", handler.ShipOrder)
			orders.POST("/:id/complete", handler.CompleteOrder)
			orders.POST("/:id/cancel", handler.CancelOrder)
		}

		api.POST("/order-items/:id/buy-again", handler.BuyAgain)
	}

	return r
}
