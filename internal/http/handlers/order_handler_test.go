package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopcore/internal/constants"
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/provider"
	"github.com/shopcore/internal/repository"
	"github.com/shopcore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.ProductOption{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Transaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	container := &provider.Container{}
	container.CustomerRepo = repository.NewCustomerRepository(db)
	container.ProductRepo = repository.NewProductRepository(db)
	container.CartRepo = repository.NewCartRepository(db)
	container.OrderRepo = repository.NewOrderRepository(db)
	container.TransactionRepo = repository.NewTransactionRepository(db)
	container.InventoryService = service.NewInventoryService(container.ProductRepo)
	container.TransactionService = service.NewTransactionService(container.TransactionRepo)
	container.CartService = service.NewCartService(container.CartRepo, container.ProductRepo, container.CustomerRepo)
	container.OrderService = service.NewOrderService(
		container.OrderRepo,
		container.CartRepo,
		container.CustomerRepo,
		container.ProductRepo,
		container.CartService,
		container.InventoryService,
		container.TransactionService,
		nil,
	)

	handler := New(container)
	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/cart", handler.GetCart)
	api.POST("/cart/items", handler.UpsertCartItem)
	api.POST("/orders", handler.CreateOrder)
	api.GET("/orders", handler.ListOrders)
	api.GET("/orders/:id", handler.GetOrder)
	api.POST("/orders/:id/ship", handler.ShipOrder)
	api.POST("/orders/:id/cancel", handler.CancelOrder)
	return r, db
}

func doHandlerRequest(t *testing.T, r *gin.Engine, method, path, customerID, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if customerID != "" {
		req.Header.Set(CustomerIDHeader, customerID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("parse response failed: %v (%s)", err, w.Body.String())
	}
	code := int(parsed["status_code"].(float64))
	return code, parsed
}

func seedHandlerFixtures(t *testing.T, db *gorm.DB) (models.Customer, models.Product) {
	t.Helper()

	customer := models.Customer{FirstName: "An", LastName: "Nguyen", PhoneNumber: "1", Address: "a"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	product := models.Product{
		Slug: "widget", Name: "widget",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(25)),
		Quantity: 10, IsPublished: true, IsAllowedToOrder: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return customer, product
}

func TestCartAndOrderFlowOverHTTP(t *testing.T) {
	r, db := setupHandlerTest(t)
	customer, product := seedHandlerFixtures(t, db)

	code, _ := doHandlerRequest(t, r, http.MethodPost, "/api/v1/cart/items", customer.ID,
		fmt.Sprintf(`{"product_id":%q,"quantity":2}`, product.ID))
	if code != 0 {
		t.Fatalf("add cart item failed with code %d", code)
	}

	code, body := doHandlerRequest(t, r, http.MethodGet, "/api/v1/cart", customer.ID, "")
	if code != 0 {
		t.Fatalf("get cart failed with code %d", code)
	}
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 cart item, got %d", len(items))
	}

	code, body = doHandlerRequest(t, r, http.MethodPost, "/api/v1/orders", customer.ID,
		`{"delivery_method":"GRAB_EXPRESS","transaction_type":"COD"}`)
	if code != 0 {
		t.Fatalf("create order failed: %+v", body)
	}
	data := body["data"].(map[string]interface{})
	orderID := data["id"].(string)
	if data["status"] != constants.OrderStatusProcessing {
		t.Fatalf("expected processing, got %v", data["status"])
	}
	if data["total"] != "50.00" {
		t.Fatalf("expected total 50.00, got %v", data["total"])
	}

	code, body = doHandlerRequest(t, r, http.MethodPost, "/api/v1/orders/"+orderID+"/ship", customer.ID, "")
	if code != 0 {
		t.Fatalf("ship failed: %+v", body)
	}
	if body["data"].(map[string]interface{})["status"] != constants.OrderStatusShipping {
		t.Fatalf("expected shipping status")
	}
}

func TestHandlerRequiresCustomerHeader(t *testing.T) {
	r, _ := setupHandlerTest(t)
	code, _ := doHandlerRequest(t, r, http.MethodGet, "/api/v1/cart", "", "")
	if code != 400 {
		t.Fatalf("expected code 400 without customer header, got %d", code)
	}
}

func TestHandlerMapsDomainErrors(t *testing.T) {
	r, db := setupHandlerTest(t)
	customer, product := seedHandlerFixtures(t, db)

	// 库存上限
	code, _ := doHandlerRequest(t, r, http.MethodPost, "/api/v1/cart/items", customer.ID,
		fmt.Sprintf(`{"product_id":%q,"quantity":99}`, product.ID))
	if code != 400 {
		t.Fatalf("expected code 400 for stock cap, got %d", code)
	}

	// 没有活跃购物车时下单
	code, _ = doHandlerRequest(t, r, http.MethodPost, "/api/v1/orders", customer.ID,
		`{"delivery_method":"GRAB_EXPRESS","transaction_type":"COD"}`)
	if code != 400 {
		t.Fatalf("expected code 400 for missing cart, got %d", code)
	}

	// 未知订单
	code, _ = doHandlerRequest(t, r, http.MethodPost, "/api/v1/orders/missing/ship", customer.ID, "")
	if code != 404 {
		t.Fatalf("expected code 404 for unknown order, got %d", code)
	}

	// 他人订单详情按不存在处理
	stranger := models.Customer{FirstName: "B", LastName: "C", PhoneNumber: "2", Address: "b"}
	if err := db.Create(&stranger).Error; err != nil {
		t.Fatalf("create stranger failed: %v", err)
	}
	doHandlerRequest(t, r, http.MethodPost, "/api/v1/cart/items", customer.ID,
		fmt.Sprintf(`{"product_id":%q,"quantity":1}`, product.ID))
	code, body := doHandlerRequest(t, r, http.MethodPost, "/api/v1/orders", customer.ID,
		`{"delivery_method":"GRAB_EXPRESS","transaction_type":"COD"}`)
	if code != 0 {
		t.Fatalf("create order failed: %+v", body)
	}
	orderID := body["data"].(map[string]interface{})["id"].(string)
	code, _ = doHandlerRequest(t, r, http.MethodGet, "/api/v1/orders/"+orderID, stranger.ID, "")
	if code != 404 {
		t.Fatalf("expected code 404 for foreign order, got %d", code)
	}
}
