package queue

import (
	"encoding/json"

	"github.com/shopcore/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskProductResync 商品搜索索引重建任务
	TaskProductResync = constants.TaskProductResync
	// TaskOrderResync 订单搜索索引重建任务
	TaskOrderResync = constants.TaskOrderResync
)

// ProductResyncPayload 商品索引重建任务载荷
type ProductResyncPayload struct {
	ProductID string `json:"product_id"`
}

// OrderResyncPayload 订单索引重建任务载荷
type OrderResyncPayload struct {
	OrderID string `json:"order_id"`
}

// NewProductResyncTask 创建商品索引重建任务
func NewProductResyncTask(payload ProductResyncPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProductResync, body), nil
}

// NewOrderResyncTask 创建订单索引重建任务
func NewOrderResyncTask(payload OrderResyncPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderResync, body), nil
}
