package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/session"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store session.Store, secret string) {
	SetupAuthRoutes(r, db, secret)
	SetupProductRoutes(r, db)
	SetupBasketRoutes(r, db, store)
	SetupOrderRoutes(r, db)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
