package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/order"
	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, catalog *countries.Catalog) {
	orders := r.Group("/orders")
	{
		// Create a new order
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, catalog))

		// Fetch all orders (admin)
		orders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

		// Fetch a single order by id or order_ref
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Fetch orders for a specific user
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))

		// Update order status (e.g., shipped, cancelled)
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// Update payment status (e.g., paid, refunded)
		orders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

		// Delete an order
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
