package basketControllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/basket"
	"github.com/webshop-go/storefront-api/httperr"
	"github.com/webshop-go/storefront-api/models"
	"github.com/webshop-go/storefront-api/session"
)

type ChangeInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Action    string `json:"action" binding:"required"` // "add" or "remove"
}

// Change applies one add/remove to the caller's basket.
//
// Add requires the product to exist (404 otherwise) and silently does
// nothing when the product is not purchasable. Anything other than "add"
// removes the first matching reference, Django-basket style.
func Change(db *gorm.DB, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input ChangeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		b, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load basket"})
			return
		}

		b, err = ChangeBasket(c.Request.Context(), db, b, input.ProductID, input.Action)
		if err != nil {
			httperr.Render(c, err)
			return
		}

		if err := store.Put(c.Request.Context(), sid, b); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save basket"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": b.Count()})
	}
}

// ChangeBasket is the transport-free core of Change.
func ChangeBasket(ctx context.Context, db *gorm.DB, b basket.Basket, productID uint, action string) (basket.Basket, error) {
	if action != "add" {
		return b.Remove(productID), nil
	}

	var product models.Product
	if err := db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound
		}
		return nil, err
	}
	if !product.InOrder {
		// Not purchasable: leave the basket as it was.
		return b, nil
	}
	return b.Add(productID), nil
}

// View prices the basket at current catalog prices.
// URL: GET /basket
func View(db *gorm.DB, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		b, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load basket"})
			return
		}

		lines, total, err := b.Totals(c.Request.Context(), catalog{db})
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"basket":       lines,
			"basket_total": total,
			"count":        b.Count(),
		})
	}
}

// catalog adapts gorm to basket.ProductGetter. A soft-deleted product is
// gone as far as basket pricing is concerned.
type catalog struct {
	db *gorm.DB
}

func (g catalog) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := g.db.WithContext(ctx).Where("in_order = ?", true).First(&product, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("product %d: %w", id, httperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func sessionID(c *gin.Context) (string, bool) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header is required"})
		return "", false
	}
	return sid, true
}
