package worker

import (
	"github.com/shopcore/internal/logger"
	"github.com/shopcore/internal/models"
)

// SearchIndexer 搜索索引写端。订单域只负责发出重建信号，
// 真正的索引后端通过该接口接入。
type SearchIndexer interface {
	IndexProduct(product *models.Product) error
	IndexOrder(order *models.Order) error
}

// LogIndexer 默认索引实现：仅记录日志，用于未接入搜索后端的部署
type LogIndexer struct{}

// IndexProduct 记录商品索引重建
func (LogIndexer) IndexProduct(product *models.Product) error {
	logger.Infow("search_index_product",
		"product_id", product.ID,
		"slug", product.Slug,
		"quantity", product.Quantity,
	)
	return nil
}

// IndexOrder 记录订单索引重建
func (LogIndexer) IndexOrder(order *models.Order) error {
	logger.Infow("search_index_order",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"status", order.Status,
	)
	return nil
}
