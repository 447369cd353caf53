package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/webshop-go/storefront-api/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestGetProductsListsPurchasableOnly(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Product{Name: "Listed", Price: price("5.00"), InOrder: true}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Hidden", Price: price("5.00"), InOrder: false}).Error)

	r := newRouter()
	r.GET("/products", GetProducts(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Listed", got[0].Name)
}

func TestGetProductByIDIncludesSoftDeleted(t *testing.T) {
	db := setupDB(t)
	p := models.Product{Name: "Hidden", Price: price("5.00"), InOrder: false}
	require.NoError(t, db.Create(&p).Error)

	r := newRouter()
	r.GET("/products/:id", GetProductByID(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products/%d", p.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code, "detail view still shows soft-deleted products")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProduct(t *testing.T) {
	db := setupDB(t)

	r := newRouter()
	r.POST("/products", CreateProduct(db))

	body, _ := json.Marshal(gin.H{"name": "Pepperoni", "category": "pizza", "price": "10.00"})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got models.Product
	require.NoError(t, db.First(&got, "name = ?", "Pepperoni").Error)
	assert.True(t, got.InOrder, "products are purchasable by default")
	assert.True(t, got.Price.Equal(price("10.00")))
}

func TestDeleteProductIsSoft(t *testing.T) {
	db := setupDB(t)
	p := models.Product{Name: "Pepperoni", Price: price("10.00"), InOrder: true}
	require.NoError(t, db.Create(&p).Error)

	r := newRouter()
	r.DELETE("/products/:id", DeleteProduct(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", p.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Row survives, only the purchasable flag is cleared.
	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.False(t, got.InOrder)
}

func TestUpdateProductMissing(t *testing.T) {
	db := setupDB(t)

	r := newRouter()
	r.PUT("/products/:id", UpdateProduct(db))

	body, _ := json.Marshal(gin.H{"name": "X", "price": "1.00"})
	req := httptest.NewRequest(http.MethodPut, "/products/999", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
