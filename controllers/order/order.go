package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/auth"
	"github.com/webshop-go/storefront-api/httperr"
	"github.com/webshop-go/storefront-api/middleware"
	"github.com/webshop-go/storefront-api/models"
)

type ManualOrderInput struct {
	UserID    *uint  `json:"user_id"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// scopedOrders narrows the query to what ident may see. Privileged callers
// get everything; everyone else only their own orders. The filter lives in
// the query itself so an out-of-scope id reads as not-found, never as
// forbidden.
func scopedOrders(db *gorm.DB, ident *auth.Identity) *gorm.DB {
	q := db.Preload("Products").Preload("Products.Product")
	if !ident.Can(auth.CapViewAllOrders) {
		q = q.Where("user_id = ?", ident.UserID)
	}
	return q
}

// ListOrders returns the caller's visible orders, newest first.
// URL: GET /orders
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.Identity(c)

		var orders []models.Order
		if err := scopedOrders(db, ident).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrder returns one order within the caller's scope.
// URL param: /orders/:orderID
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		ident := middleware.Identity(c)

		var order models.Order
		if err := scopedOrders(db, ident).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Render(c, httperr.ErrNotFound)
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// CreateOrder is the staff path: direct order entry with no basket and no
// lines. Lines are attached afterwards through AddOrderLine.
// URL: POST /orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ManualOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order := models.Order{
			UserID:    input.UserID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
			Email:     input.Email,
			Status:    models.OrderStatusNew,
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// DeliverOrder marks an order delivered. No transition guard: any status
// may move to any other.
// URL: POST /orders/:orderID/deliver
func DeliverOrder(db *gorm.DB) gin.HandlerFunc {
	return setStatus(db, models.OrderStatusDelivered)
}

// CancelOrder marks an order canceled.
// URL: POST /orders/:orderID/cancel
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return setStatus(db, models.OrderStatusCanceled)
}

func setStatus(db *gorm.DB, status models.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Render(c, httperr.ErrNotFound)
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		order.Status = status
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
