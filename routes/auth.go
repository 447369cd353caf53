package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/auth"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, secret string) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession(secret)) // POST /auth/session
		authGroup.POST("/register", auth.Register(db, secret)) // POST /auth/register
		authGroup.POST("/login", auth.Login(db, secret))       // POST /auth/login
	}
}
