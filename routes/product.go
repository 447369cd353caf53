package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/auth"
	productcontroller "github.com/webshop-go/storefront-api/controllers/product"
	"github.com/webshop-go/storefront-api/middleware"
)

// SetupProductRoutes registers catalog browsing (public) and catalog
// management (capability-gated) endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))        // GET /products
		products.GET("/:id", productcontroller.GetProductByID(db)) // GET /products/:id

		products.POST("", middleware.RequireAuth,
			middleware.RequireCapability(auth.CapAddProduct),
			productcontroller.CreateProduct(db)) // POST /products
		products.PUT("/:id", middleware.RequireAuth,
			middleware.RequireCapability(auth.CapChangeProduct),
			productcontroller.UpdateProduct(db)) // PUT /products/:id
		products.DELETE("/:id", middleware.RequireAuth,
			middleware.RequireCapability(auth.CapDeleteProduct),
			productcontroller.DeleteProduct(db)) // DELETE /products/:id
	}
}
