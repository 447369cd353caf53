package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/httperr"
	"github.com/webshop-go/storefront-api/models"
)

type OrderLineInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Amount    int  `json:"amount" binding:"required,min=1"`
}

// AddOrderLine attaches one line to an existing order.
// URL: POST /orders/:orderID/products
func AddOrderLine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input OrderLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
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

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Render(c, httperr.ErrNotFound)
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		line := models.OrderProduct{
			OrderID:   order.ID,
			ProductID: product.ID,
			Amount:    input.Amount,
		}
		if err := db.Create(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order line"})
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

// RemoveOrderLine deletes a single line. Sibling lines and the parent order
// stay untouched.
// URL: DELETE /orders/products/:lineID
func RemoveOrderLine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("lineID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line ID"})
			return
		}

		result := db.Delete(&models.OrderProduct{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order line"})
			return
		}
		if result.RowsAffected == 0 {
			httperr.Render(c, httperr.ErrNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order line deleted"})
	}
}
