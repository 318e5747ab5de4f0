package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopcore/internal/constants"
	"github.com/shopcore/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:order_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Cart{},
		&models.Order{},
		&models.OrderItem{},
		&models.Transaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func seedRepositoryOrder(t *testing.T, repo *GormOrderRepository, db *gorm.DB) (*models.Order, models.Customer, models.Product) {
	t.Helper()

	customer := models.Customer{FirstName: "An", LastName: "Nguyen", PhoneNumber: "1", Address: "a"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	product := models.Product{
		Slug: "widget", Name: "widget",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		Quantity: 7, IsPublished: true, IsAllowedToOrder: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	cart := models.Cart{CustomerID: customer.ID, Status: constants.CartStatusCompleted}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	order := &models.Order{
		OrderNo:        "SC0001",
		CustomerID:     customer.ID,
		CartID:         cart.ID,
		Status:         constants.OrderStatusProcessing,
		DeliveryMethod: constants.DeliveryMethodGrabExpress,
		ContactName:    "An Nguyen",
		PhoneNumber:    "1",
		Address:        "a",
		Total:          models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
	}
	items := []models.OrderItem{
		{ProductID: product.ID, Quantity: 2, Total: models.NewMoneyFromDecimal(decimal.NewFromInt(20))},
	}
	transaction := &models.Transaction{Type: constants.TransactionTypeCOD, Status: constants.TransactionStatusPending}
	if err := repo.Create(order, items, transaction); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order, customer, product
}

func TestOrderRepositoryCreatePersistsChildren(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order, _, _ := seedRepositoryOrder(t, repo, db)

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected order, got nil")
	}
	if len(loaded.Items) != 1 || loaded.Items[0].OrderID != order.ID {
		t.Fatalf("unexpected items: %+v", loaded.Items)
	}
	if loaded.Transaction == nil || loaded.Transaction.OrderID != order.ID {
		t.Fatalf("unexpected transaction: %+v", loaded.Transaction)
	}
}

func TestUpdateStatusFromGuardsCurrentStatus(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order, _, _ := seedRepositoryOrder(t, repo, db)

	affected, err := repo.UpdateStatusFrom(order.ID, constants.OrderStatusProcessing, constants.OrderStatusShipping)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	// 第二次以同一前置状态竞争必然落空
	affected, err = repo.UpdateStatusFrom(order.ID, constants.OrderStatusProcessing, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected, got %d", affected)
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if loaded.Status != constants.OrderStatusShipping {
		t.Fatalf("expected shipping, got %s", loaded.Status)
	}
}

func TestGetItemDetailJoinsOwnershipAndStock(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order, customer, product := seedRepositoryOrder(t, repo, db)

	detail, err := repo.GetItemDetail(order.Items[0].ID)
	if err != nil {
		t.Fatalf("get item detail failed: %v", err)
	}
	if detail == nil {
		t.Fatalf("expected detail, got nil")
	}
	if detail.CustomerID != customer.ID {
		t.Fatalf("expected customer %s, got %s", customer.ID, detail.CustomerID)
	}
	if detail.ProductID != product.ID || detail.ProductQuantity != 7 {
		t.Fatalf("unexpected product detail: %+v", detail)
	}
	if detail.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", detail.Quantity)
	}

	missing, err := repo.GetItemDetail("missing")
	if err != nil {
		t.Fatalf("get missing detail failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing item, got %+v", missing)
	}
}
