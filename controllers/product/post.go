package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/models"
)

type ProductInput struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Photo    string          `json:"photo"`
	InOrder  *bool           `json:"in_order"`
}

// CreateProduct creates a new catalog product. Capability-gated in routes.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		inOrder := true
		if input.InOrder != nil {
			inOrder = *input.InOrder
		}

		product := models.Product{
			Name:     input.Name,
			Category: input.Category,
			Price:    input.Price,
			Photo:    input.Photo,
			InOrder:  inOrder,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
