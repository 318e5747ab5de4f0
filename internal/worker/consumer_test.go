package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/provider"
	"github.com/shopcore/internal/queue"
	"github.com/shopcore/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type recordingIndexer struct {
	products []string
	orders   []string
}

func (r *recordingIndexer) IndexProduct(product *models.Product) error {
	r.products = append(r.products, product.ID)
	return nil
}

func (r *recordingIndexer) IndexOrder(order *models.Order) error {
	r.orders = append(r.orders, order.ID)
	return nil
}

func setupConsumerTest(t *testing.T) (*Consumer, *recordingIndexer, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:worker_consumer_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Transaction{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	container := &provider.Container{
		ProductRepo: repository.NewProductRepository(db),
		OrderRepo:   repository.NewOrderRepository(db),
	}
	indexer := &recordingIndexer{}
	return NewConsumer(container, indexer), indexer, db
}

func TestHandleProductResyncIndexesProduct(t *testing.T) {
	consumer, indexer, db := setupConsumerTest(t)
	product := models.Product{
		Slug: "widget", Name: "widget",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		Quantity: 3, IsPublished: true, IsAllowedToOrder: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	body, _ := json.Marshal(queue.ProductResyncPayload{ProductID: product.ID})
	task := asynq.NewTask(queue.TaskProductResync, body)
	if err := consumer.handleProductResync(context.Background(), task); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if len(indexer.products) != 1 || indexer.products[0] != product.ID {
		t.Fatalf("expected product indexed, got %+v", indexer.products)
	}
}

func TestHandleProductResyncSkipsMissingProduct(t *testing.T) {
	consumer, indexer, _ := setupConsumerTest(t)

	body, _ := json.Marshal(queue.ProductResyncPayload{ProductID: "missing"})
	task := asynq.NewTask(queue.TaskProductResync, body)
	if err := consumer.handleProductResync(context.Background(), task); err != nil {
		t.Fatalf("expected stale signal to be dropped, got %v", err)
	}
	if len(indexer.products) != 0 {
		t.Fatalf("expected no index calls, got %+v", indexer.products)
	}
}

func TestHandleOrderResyncIndexesOrder(t *testing.T) {
	consumer, indexer, db := setupConsumerTest(t)
	order := models.Order{
		OrderNo:        "SC0001",
		CustomerID:     "c1",
		CartID:         "cart1",
		Status:         "processing",
		DeliveryMethod: "GRAB_EXPRESS",
		ContactName:    "An Nguyen",
		PhoneNumber:    "1",
		Address:        "a",
		Total:          models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	body, _ := json.Marshal(queue.OrderResyncPayload{OrderID: order.ID})
	task := asynq.NewTask(queue.TaskOrderResync, body)
	if err := consumer.handleOrderResync(context.Background(), task); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if len(indexer.orders) != 1 || indexer.orders[0] != order.ID {
		t.Fatalf("expected order indexed, got %+v", indexer.orders)
	}
}

func TestHandleResyncRejectsMalformedPayload(t *testing.T) {
	consumer, _, _ := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskProductResync, []byte("{"))
	if err := consumer.handleProductResync(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}
