package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"tokoku/initializers"
	"tokoku/models"
	"tokoku/routes"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	mr := miniredis.RunT(t)

	initializers.AppConfig = &initializers.Config{
		TokenSecret:    "test-secret",
		TokenExpiresIn: time.Hour,
		TokenMaxAge:    60,
		UploadDir:      t.TempDir(),
		ClientOrigin:   "http://localhost:3000",
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tokoku.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Cart{},
		&models.File{},
	))

	initializers.DB = db
	initializers.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	initializers.RabbitChannel = nil

	app := fiber.New()
	routes.SetupRoutes(app.Group("/api"))
	routes.NotFoundRoute(app)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func registerCustomer(t *testing.T, app *fiber.App, name, email, password string) {
	t.Helper()

	status, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":            name,
		"email":           email,
		"password":        password,
		"passwordConfirm": password,
	})
	require.Equal(t, http.StatusCreated, status)
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "login response should carry a token")
	return token
}

// loginAsAdmin seeds an admin row directly; registration only ever
// produces customers.
func loginAsAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := models.User{
		ID:       uuid.NewV4(),
		Name:     "Admin",
		Email:    fmt.Sprintf("admin-%s@tokoku.test", uuid.NewV4().String()[:8]),
		Password: string(hashed),
	}
	admin.SetAsAdmin()
	require.NoError(t, initializers.DB.Create(&admin).Error)

	return login(t, app, admin.Email, "admin-password")
}

func createProduct(t *testing.T, app *fiber.App, adminToken, name string, price float64, stock int) string {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/products", adminToken, fiber.Map{
		"name":        name,
		"price":       price,
		"stock":       stock,
		"description": "test product",
	})
	require.Equal(t, http.StatusCreated, status)

	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func getProductStock(t *testing.T, app *fiber.App, token, productID string) int {
	t.Helper()

	status, body := doRequest(t, app, http.MethodGet, "/api/products/"+productID, token, nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	return int(data["stock"].(float64))
}

func createOrder(t *testing.T, app *fiber.App, token, title string) string {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/orders/create/customer", token, fiber.Map{
		"title":       title,
		"name":        "Rodericus Ifo",
		"phoneNumber": "081233456787",
		"email":       "rodericus123@gmail.com",
		"address":     "Hello Street",
	})
	require.Equal(t, http.StatusCreated, status)

	data := body["data"].(map[string]interface{})
	require.Equal(t, string(models.OrderStatusDraft), data["status"])
	return data["id"].(string)
}

func addProductToOrder(t *testing.T, app *fiber.App, token, orderID, productID string, quantity int) {
	t.Helper()

	status, _ := doRequest(t, app, http.MethodPost, "/api/orders/"+orderID+"/add-product/customer", token, fiber.Map{
		"productId": productID,
		"quantity":  quantity,
	})
	require.Equal(t, http.StatusCreated, status)
}

func getOrderDetail(t *testing.T, app *fiber.App, token, orderID string) map[string]interface{} {
	t.Helper()

	status, body := doRequest(t, app, http.MethodGet, "/api/orders/"+orderID+"/detail/customer", token, nil)
	require.Equal(t, http.StatusOK, status)
	return body["data"].(map[string]interface{})
}

func uploadPaymentProof(t *testing.T, app *fiber.App, token, orderID, filename, contentType, origin string) (int, map[string]interface{}) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake payment proof bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID+"/submit-payment-proof/customer", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}
