package worker

import (
	"context"
	"encoding/json"

	"github.com/shopcore/internal/logger"
	"github.com/shopcore/internal/provider"
	"github.com/shopcore/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
	indexer SearchIndexer
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container, indexer SearchIndexer) *Consumer {
	if indexer == nil {
		indexer = LogIndexer{}
	}
	return &Consumer{
		Container: c,
		indexer:   indexer,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskProductResync, c.handleProductResync)
	mux.HandleFunc(queue.TaskOrderResync, c.handleOrderResync)
}

func (c *Consumer) handleProductResync(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.ProductResyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_product_resync_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == "" {
		logger.Debugw("worker_product_resync_skip_empty_payload")
		return nil
	}
	product, err := c.ProductRepo.GetByID(payload.ProductID)
	if err != nil {
		logger.Warnw("worker_product_resync_fetch_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	if product == nil {
		// 商品已删除，信号过期，直接丢弃
		logger.Debugw("worker_product_resync_skip_not_found", "product_id", payload.ProductID)
		return nil
	}
	if err := c.indexer.IndexProduct(product); err != nil {
		logger.Warnw("worker_product_resync_index_failed", "product_id", product.ID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleOrderResync(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderResyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_resync_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == "" {
		logger.Debugw("worker_order_resync_skip_empty_payload")
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_resync_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_resync_skip_not_found", "order_id", payload.OrderID)
		return nil
	}
	if err := c.indexer.IndexOrder(order); err != nil {
		logger.Warnw("worker_order_resync_index_failed", "order_id", order.ID, "error", err)
		return err
	}
	return nil
}
