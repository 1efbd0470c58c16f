package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCRUDByAdmin(t *testing.T) {
	app := setupTestApp(t)
	adminToken := loginAsAdmin(t, app)

	productID := createProduct(t, app, adminToken, "Mechanical Keyboard", 750000, 25)

	status, body := doRequest(t, app, http.MethodGet, "/api/products/"+productID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Mechanical Keyboard", data["name"])
	assert.Equal(t, float64(25), data["stock"])

	// partial update: only the price moves
	status, _ = doRequest(t, app, http.MethodPut, "/api/products/"+productID, adminToken, fiber.Map{
		"price": 800000,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/products/"+productID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(800000), data["price"])
	assert.Equal(t, "Mechanical Keyboard", data["name"])
	assert.Equal(t, float64(25), data["stock"])

	status, _ = doRequest(t, app, http.MethodDelete, "/api/products/"+productID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/products/"+productID, adminToken, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product Not Found", body["message"])
}

func TestProductWritesRequireAdminRole(t *testing.T) {
	app := setupTestApp(t)
	adminToken := loginAsAdmin(t, app)

	registerCustomer(t, app, "Customer", "customer@gmail.com", "password123")
	customerToken := login(t, app, "customer@gmail.com", "password123")

	status, body := doRequest(t, app, http.MethodPost, "/api/products", customerToken, fiber.Map{
		"name":  "Not Allowed",
		"price": 100,
		"stock": 1,
	})
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You are not allowed to access this resource", body["message"])

	// browsing stays open to customers
	createProduct(t, app, adminToken, "Wireless Mouse", 250000, 40)
	status, body = doRequest(t, app, http.MethodGet, "/api/products", customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]interface{}), 1)
}

func TestProductValidation(t *testing.T) {
	app := setupTestApp(t)
	adminToken := loginAsAdmin(t, app)

	status, body := doRequest(t, app, http.MethodPost, "/api/products", adminToken, fiber.Map{
		"name":  "Broken",
		"price": -5,
		"stock": -1,
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["errors"])
}

func TestProductListPagination(t *testing.T) {
	app := setupTestApp(t)
	adminToken := loginAsAdmin(t, app)

	for i := 0; i < 5; i++ {
		createProduct(t, app, adminToken, fmt.Sprintf("Product %d", i), 1000, 10)
	}

	status, body := doRequest(t, app, http.MethodGet, "/api/products?page=2&limit=2", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), body["total_data"])
	assert.Equal(t, float64(3), body["total_page"])
	assert.Equal(t, float64(2), body["current_page"])
	assert.Len(t, body["data"].([]interface{}), 2)
}
