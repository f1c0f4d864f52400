package routes

import (
	"github.com/gin-gonic/gin"

	"bar-pos-api/controllers"
	"bar-pos-api/middlewares"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/auth/login", controllers.Login)

	// Tables
	tables := r.Group("/tables")
	tables.Use(middlewares.AuthMiddleware())
	{
		tables.GET("/", controllers.GetTables)
		tables.POST("/:id/reserve", controllers.ReserveTable)
		tables.POST("/:id/release", controllers.ReleaseTable)
	}

	// Orders
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.GET("/", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.POST("/", controllers.CreateOrder)
		orders.PUT("/:id/add-items", controllers.AddOrderItems)
		orders.PUT("/:id/complete", controllers.CompleteOrder)
		orders.PUT("/:id/cancel", controllers.CancelOrder)
	}

	// Products (catalog writes are admin only)
	products := r.Group("/products")
	products.Use(middlewares.AuthMiddleware())
	{
		products.GET("/", controllers.GetProducts)
		products.GET("/low-stock", controllers.GetLowStockProducts)
		products.GET("/export", controllers.ExportProducts)
		products.GET("/:id", controllers.GetProductByID)
		products.POST("/", middlewares.RoleMiddleware("admin"), controllers.CreateProduct)
		products.PUT("/:id", middlewares.RoleMiddleware("admin"), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteProduct)
	}

	// Combos
	combos := r.Group("/combos")
	combos.Use(middlewares.AuthMiddleware())
	{
		combos.GET("/", controllers.GetCombos)
		combos.GET("/:id", controllers.GetComboByID)
		combos.POST("/", middlewares.RoleMiddleware("admin"), controllers.CreateCombo)
		combos.PUT("/:id", middlewares.RoleMiddleware("admin"), controllers.UpdateCombo)
		combos.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteCombo)
	}

	// Reports (admin dashboard)
	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		reports.GET("/dashboard", controllers.GetDashboard)
		reports.GET("/monthly", controllers.GetMonthlyRevenue)
		reports.GET("/daily", controllers.GetDailyRevenue)
		reports.GET("/yearly", controllers.GetYearlyRevenue)
		reports.GET("/months", controllers.GetMonthsReport)
		reports.GET("/years", controllers.GetYearsReport)
		reports.GET("/best-selling", controllers.GetBestSelling)
	}
}
