package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"touchpay-system/config"
	"touchpay-system/internal/gateway/handlers"
	"touchpay-system/internal/gateway/middleware"
	"touchpay-system/internal/remote"
	"touchpay-system/internal/state"
)

func registerRoutes(r *gin.Engine, cfg config.Config, store *state.Store, remoteClient *remote.Client, redisClient *redis.Client, sugar *zap.SugaredLogger) {
	secret := []byte(cfg.Auth.JWTSecret)

	authHandler := handlers.NewAuthHandler(store, secret, cfg.Auth.TokenTTL, sugar)
	catalogHandler := handlers.NewCatalogHandler(store, sugar)
	floorHandler := handlers.NewFloorHandler(store, sugar)
	reportsHandler := handlers.NewReportsHandler(store, sugar)

	var advancedHandler *handlers.AdvancedHandler
	if remoteClient != nil {
		advancedHandler = handlers.NewAdvancedHandler(remoteClient, store, sugar)
	}

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(secret))
	{
		protected.POST("/auth/logout", authHandler.Logout)

		users := protected.Group("/users")
		{
			users.GET("", authHandler.ListUsers)
			users.POST("", authHandler.CreateUser)
			users.PUT("/:id", authHandler.UpdateUser)
			users.DELETE("/:id", authHandler.DeleteUser)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", catalogHandler.ListCategories)
			categories.POST("", catalogHandler.CreateCategory)
			categories.PUT("/:id", catalogHandler.UpdateCategory)
			categories.DELETE("/:id", catalogHandler.DeleteCategory)
		}

		products := protected.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.POST("", catalogHandler.CreateProduct)
			products.PUT("/:id", catalogHandler.UpdateProduct)
			products.DELETE("/:id", catalogHandler.DeleteProduct)
		}

		tables := protected.Group("/tables")
		{
			tables.GET("", floorHandler.ListTables)
			tables.POST("", floorHandler.CreateTable)
			tables.PUT("/:id", floorHandler.UpdateTable)
			tables.DELETE("/:id", floorHandler.DeleteTable)
			tables.POST("/select", floorHandler.SelectTable)
		}

		orders := protected.Group("/orders")
		{
			orders.GET("", floorHandler.ListOrders)
			orders.POST("", floorHandler.CreateOrder)
			orders.PUT("/:id", floorHandler.UpdateOrder)
			orders.PATCH("/:id/status", floorHandler.UpdateOrderStatus)
			orders.DELETE("/:id", floorHandler.DeleteOrder)
			orders.POST("/select", floorHandler.SelectCurrentOrder)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", floorHandler.ListPayments)
			payments.POST("/settle", floorHandler.SettlePayment)
		}

		protected.GET("/transactions", floorHandler.ListTransactions)

		settings := protected.Group("/settings")
		{
			settings.GET("", floorHandler.GetSettings)
			settings.PUT("", floorHandler.UpdateSettings)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/dashboard", reportsHandler.Dashboard)
			reports.GET("/sales", reportsHandler.SalesByDay)
			reports.GET("/top-products", reportsHandler.TopProducts)
			reports.GET("/payment-methods", reportsHandler.PaymentMethodDistribution)
			reports.GET("/export", reportsHandler.Export)
			reports.POST("/import", reportsHandler.Import)
		}

		if advancedHandler != nil {
			kitchen := protected.Group("/kitchen")
			{
				kitchen.GET("/orders", advancedHandler.ListKitchenOrders)
				kitchen.POST("/orders", advancedHandler.CreateKitchenOrder)
				kitchen.PATCH("/orders/:id/status", advancedHandler.UpdateKitchenOrderStatus)
			}

			promos := protected.Group("/promos")
			{
				promos.GET("", advancedHandler.ListPromoCodes)
				promos.POST("", advancedHandler.CreatePromoCode)
				promos.PUT("/:id", advancedHandler.UpdatePromoCode)
				promos.DELETE("/:id", advancedHandler.DeletePromoCode)
				promos.POST("/validate", advancedHandler.ValidatePromo)
				promos.POST("/:id/redeem", advancedHandler.RedeemPromo)
			}

			customers := protected.Group("/customers")
			{
				customers.GET("", advancedHandler.ListCustomers)
				customers.POST("", advancedHandler.CreateCustomer)
				customers.PUT("/:id", advancedHandler.UpdateCustomer)
				customers.DELETE("/:id", advancedHandler.DeleteCustomer)
				customers.POST("/:id/visits", advancedHandler.RecordVisit)
			}

			checklist := protected.Group("/checklist")
			{
				checklist.GET("/tasks", advancedHandler.ListChecklistTasks)
				checklist.POST("/tasks", advancedHandler.CreateChecklistTask)
				checklist.PUT("/tasks/:id", advancedHandler.UpdateChecklistTask)
				checklist.GET("/completions", advancedHandler.ListTodayCompletions)
				checklist.POST("/completions", advancedHandler.CompleteChecklistTask)
				checklist.DELETE("/completions/:id", advancedHandler.UncompleteChecklistTask)
			}

			methods := protected.Group("/payment-methods")
			{
				methods.GET("", advancedHandler.ListPaymentMethods)
				methods.POST("", advancedHandler.CreatePaymentMethod)
				methods.PUT("/:id", advancedHandler.UpdatePaymentMethod)
				methods.DELETE("/:id", advancedHandler.DeletePaymentMethod)
			}
		} else {
			protected.GET("/kitchen/orders", collectionsUnavailableHandler())
			protected.GET("/promos", collectionsUnavailableHandler())
			protected.GET("/customers", collectionsUnavailableHandler())
			protected.GET("/checklist/tasks", collectionsUnavailableHandler())
			protected.GET("/payment-methods", collectionsUnavailableHandler())
		}
	}

	r.GET("/health", healthCheckHandler(remoteClient, redisClient))
}

func collectionsUnavailableHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Remote collections are currently unavailable",
			"error":   "SERVICE_UNAVAILABLE",
		})
	}
}

func healthCheckHandler(remoteClient *remote.Client, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		unavailable := []string{}
		if remoteClient == nil {
			unavailable = append(unavailable, "remote-collections")
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			unavailable = append(unavailable, "redis")
		}

		if len(unavailable) > 0 {
			status = "degraded"
			httpStatus = http.StatusPartialContent
		}

		c.JSON(httpStatus, gin.H{
			"status":               status,
			"message":              "Server is running",
			"unavailable_services": unavailable,
			"timestamp":            time.Now(),
		})
	}
}
