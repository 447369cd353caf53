package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	basketControllers "github.com/webshop-go/storefront-api/controllers/basket"
	"github.com/webshop-go/storefront-api/session"
)

// SetupBasketRoutes registers the session-basket endpoints. All of them
// work for anonymous sessions; checkout picks up the identity when present.
func SetupBasketRoutes(r *gin.Engine, db *gorm.DB, store session.Store) {
	basketGroup := r.Group("/basket")
	{
		basketGroup.GET("", basketControllers.View(db, store))               // GET /basket
		basketGroup.POST("/change", basketControllers.Change(db, store))     // POST /basket/change
		basketGroup.POST("/checkout", basketControllers.Checkout(db, store)) // POST /basket/checkout
	}
}
