package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	DB           *gorm.DB
	Cart         *CartService
	Order        *OrderService
	Inventory    *InventoryService
	Transactions *TransactionService
}

func setupServiceTest(t *testing.T, name string) *serviceTestEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	// 与 sqlite 生产连接池一致，写入经单连接串行化
	sqlDB.SetMaxOpenConns(1)
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

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	inventory := NewInventoryService(productRepo)
	transactions := NewTransactionService(transactionRepo)
	cart := NewCartService(cartRepo, productRepo, customerRepo)
	order := NewOrderService(orderRepo, cartRepo, customerRepo, productRepo, cart, inventory, transactions, nil)

	return &serviceTestEnv{
		DB:           db,
		Cart:         cart,
		Order:        order,
		Inventory:    inventory,
		Transactions: transactions,
	}
}

func createTestCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()

	row := models.Customer{
		FirstName:   "An",
		LastName:    "Nguyen",
		PhoneNumber: "+84-912-000-001",
		Address:     "12 Ly Thuong Kiet, Hanoi",
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return row
}

func createIncompleteTestCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()

	row := models.Customer{
		FirstName: "An",
		LastName:  "Nguyen",
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return row
}

func createTestProduct(t *testing.T, db *gorm.DB, slug string, price float64, discount *int64, quantity int64) models.Product {
	t.Helper()

	row := models.Product{
		Slug:             slug,
		Name:             slug,
		Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Quantity:         quantity,
		IsPublished:      true,
		IsAllowedToOrder: true,
	}
	if discount != nil {
		d := models.NewMoneyFromInt(*discount)
		row.Discount = &d
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return row
}

func reloadTestProduct(t *testing.T, db *gorm.DB, id string) models.Product {
	t.Helper()

	var row models.Product
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	return row
}

func reloadTestOrder(t *testing.T, db *gorm.DB, id string) models.Order {
	t.Helper()

	var row models.Order
	if err := db.Preload("Items").Preload("Transaction").First(&row, "id = ?", id).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	return row
}

func listFilter(customerID, status string, page, pageSize int) repository.OrderListFilter {
	return repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		Status:     status,
	}
}

func fillTestCart(t *testing.T, env *serviceTestEnv, customerID string, items map[string]int) *models.Cart {
	t.Helper()

	cart, err := env.Cart.EnsureActiveCart(customerID)
	if err != nil {
		t.Fatalf("ensure active cart failed: %v", err)
	}
	for productID, quantity := range items {
		if err := env.Cart.AddOrIncrementItem(cart, productID, "", quantity); err != nil {
			t.Fatalf("add cart item failed: %v", err)
		}
	}
	return cart
}
