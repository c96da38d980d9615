package routes

import (
	"github.com/gin-gonic/gin"

	"qr-order-api/handlers"
	"qr-order-api/middleware"
	"qr-order-api/models"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/logout", handlers.Logout)

		// Customer ordering page (reached via QR scan, no account)
		public.GET("/store/qr/:slug", handlers.GetStoreByQR)
		public.GET("/store/:storeId", handlers.GetStore)
		public.GET("/store/:storeId/menu", handlers.GetPublicMenu)
		public.GET("/store/:storeId/orders/active-tables", handlers.GetActiveTables)

		public.POST("/order/create", handlers.CreateOrder)
		public.PUT("/order/updateStatus", handlers.UpdateOrderStatus)
		public.POST("/order/call-bill", handlers.CallBill)

		// Lifecycle info (great for docs/Postman)
		public.GET("/order/statuses", handlers.GetStatuses)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/profile", handlers.GetProfile)
	}

	// ── Store owner routes ─────────────────────────────────────────
	store := r.Group("/api")
	store.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleStore))
	{
		store.GET("/store/profile", handlers.GetStoreProfile)
		store.PUT("/store/profile", handlers.UpdateStoreProfile)

		store.GET("/store/menu", handlers.GetMyMenu)
		store.POST("/store/menu", handlers.AddMenuItem)
		store.PUT("/store/menu/:itemId", handlers.UpdateMenuItem)
		store.DELETE("/store/menu/:itemId", handlers.DeleteMenuItem)

		store.GET("/order/list", handlers.ListOrders)
		store.GET("/order/status", handlers.GetOrderStatus)
		store.DELETE("/order/:id", handlers.DeleteOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/stores", handlers.AdminGetAllStores)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PATCH("/stores/:id/suspend", handlers.AdminSuspendStore)
		admin.DELETE("/stores/:id", handlers.AdminDeleteStore)
		admin.DELETE("/orders/:id", handlers.AdminDeleteOrder)
	}
}
