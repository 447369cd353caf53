package basketControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/auth"
	"github.com/webshop-go/storefront-api/basket"
	"github.com/webshop-go/storefront-api/httperr"
	"github.com/webshop-go/storefront-api/middleware"
	"github.com/webshop-go/storefront-api/models"
	"github.com/webshop-go/storefront-api/session"
)

type CheckoutInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// Checkout turns the session basket into a persisted order.
// URL: POST /basket/checkout
func Checkout(db *gorm.DB, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		// A rejected form never touches the database: bind first.
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		b, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load basket"})
			return
		}

		order, err := CheckoutBasket(c.Request.Context(), db, b, input, middleware.Identity(c))
		if err != nil {
			httperr.Render(c, err)
			return
		}

		// Clear after commit. A failure here leaves a stale basket, not a
		// broken order.
		if err := store.Delete(c.Request.Context(), sid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order placed but basket not cleared"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// CheckoutBasket validates the basket, creates the order together with one
// line per distinct product, all inside a single transaction.
func CheckoutBasket(ctx context.Context, db *gorm.DB, b basket.Basket, input CheckoutInput, ident *auth.Identity) (*models.Order, error) {
	if b.IsEmpty() {
		return nil, httperr.NewValidation("basket", "basket has no items")
	}

	var userID *uint
	if ident.Authenticated() {
		userID = ident.UserID
	}

	// One line per distinct product, in first-added order.
	quantities := b.Aggregate()
	var lines []models.OrderProduct
	seen := make(map[uint]bool, len(quantities))
	for _, id := range b {
		if seen[id] {
			continue
		}
		seen[id] = true
		lines = append(lines, models.OrderProduct{ProductID: id, Amount: quantities[id]})
	}

	order := models.Order{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Status:    models.OrderStatusNew,
		Products:  lines,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
