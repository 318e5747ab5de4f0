package service

import (
	"errors"
	"sync"
	"testing"
)

func TestInventoryDecrementAndRestock(t *testing.T) {
	env := setupServiceTest(t, "inventory_roundtrip")
	product := createTestProduct(t, env.DB, "widget", 10.00, nil, 5)

	if err := env.Inventory.Decrement(product.ID, 3); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if got := reloadTestProduct(t, env.DB, product.ID).Quantity; got != 2 {
		t.Fatalf("expected stock 2, got %d", got)
	}

	if err := env.Inventory.Restock(product.ID, 3); err != nil {
		t.Fatalf("restock failed: %v", err)
	}
	if got := reloadTestProduct(t, env.DB, product.ID).Quantity; got != 5 {
		t.Fatalf("expected stock restored to 5, got %d", got)
	}
}

func TestInventoryDecrementNeverGoesNegative(t *testing.T) {
	env := setupServiceTest(t, "inventory_floor")
	product := createTestProduct(t, env.DB, "scarce", 10.00, nil, 2)

	if err := env.Inventory.Decrement(product.ID, 3); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	// 失败的扣减不得部分生效
	if got := reloadTestProduct(t, env.DB, product.ID).Quantity; got != 2 {
		t.Fatalf("expected stock unchanged at 2, got %d", got)
	}

	if err := env.Inventory.Decrement(product.ID, 2); err != nil {
		t.Fatalf("exact decrement failed: %v", err)
	}
	if got := reloadTestProduct(t, env.DB, product.ID).Quantity; got != 0 {
		t.Fatalf("expected stock 0, got %d", got)
	}
	if err := env.Inventory.Decrement(product.ID, 1); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock at zero, got %v", err)
	}
}

func TestInventoryConcurrentDecrementKeepsFloor(t *testing.T) {
	env := setupServiceTest(t, "inventory_concurrent")
	product := createTestProduct(t, env.DB, "hotcake", 10.00, nil, 6)

	const workers = 10
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			errCh <- env.Inventory.Decrement(product.ID, 1)
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInsufficientStock):
		default:
			t.Fatalf("unexpected decrement error: %v", err)
		}
	}
	if succeeded != 6 {
		t.Fatalf("expected exactly 6 successful decrements, got %d", succeeded)
	}
	if got := reloadTestProduct(t, env.DB, product.ID).Quantity; got != 0 {
		t.Fatalf("expected stock 0, got %d", got)
	}
}

func TestInventoryUnknownProduct(t *testing.T) {
	env := setupServiceTest(t, "inventory_unknown")

	if err := env.Inventory.Decrement("missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on decrement, got %v", err)
	}
	if err := env.Inventory.Restock("missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on restock, got %v", err)
	}
}

func TestInventoryIsOrderable(t *testing.T) {
	env := setupServiceTest(t, "inventory_orderable")
	product := createTestProduct(t, env.DB, "widget", 10.00, nil, 1)

	ok, err := env.Inventory.IsOrderable(product.ID)
	if err != nil || !ok {
		t.Fatalf("expected orderable, got ok=%v err=%v", ok, err)
	}

	if err := env.Inventory.Decrement(product.ID, 1); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	ok, err = env.Inventory.IsOrderable(product.ID)
	if err != nil || ok {
		t.Fatalf("expected not orderable at zero stock, got ok=%v err=%v", ok, err)
	}
}
