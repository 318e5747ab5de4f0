package service

import (
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/repository"
)

// OrderListResult 订单列表分页结果
type OrderListResult struct {
	Orders   []models.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// GetOrderDetail 获取订单详情（含订单项与交易记录）
func (s *OrderService) GetOrderDetail(orderID string) (*models.Order, error) {
	return s.getOrder(orderID)
}

// ListByCustomer 分页查询客户订单
func (s *OrderService) ListByCustomer(filter repository.OrderListFilter) (*OrderListResult, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	orders, total, err := s.orderRepo.ListByCustomer(filter)
	if err != nil {
		return nil, err
	}
	return &OrderListResult{
		Orders:   orders,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
