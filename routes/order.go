package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/auth"
	orderControllers "github.com/webshop-go/storefront-api/controllers/order"
	"github.com/webshop-go/storefront-api/middleware"
)

// SetupOrderRoutes registers the "/orders/*" endpoints. Listing and detail
// are visibility-scoped inside the controller; mutations need the
// manage-orders capability.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth)
	{
		orders.GET("", orderControllers.ListOrders(db))        // GET /orders
		orders.GET("/:orderID", orderControllers.GetOrder(db)) // GET /orders/:orderID

		manage := orders.Group("")
		manage.Use(middleware.RequireCapability(auth.CapManageOrders))
		{
			manage.POST("", orderControllers.CreateOrder(db))                    // POST /orders
			manage.POST("/:orderID/deliver", orderControllers.DeliverOrder(db))  // POST /orders/:orderID/deliver
			manage.POST("/:orderID/cancel", orderControllers.CancelOrder(db))    // POST /orders/:orderID/cancel
			manage.POST("/:orderID/products", orderControllers.AddOrderLine(db)) // POST /orders/:orderID/products
			manage.DELETE("/products/:lineID", orderControllers.RemoveOrderLine(db))
		}
	}
}
