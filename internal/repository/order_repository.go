package repository

import (
	"errors"

	"github.com/shopcore/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem, transaction *models.Transaction) error
	GetByID(id string) (*models.Order, error)
	GetItemDetail(itemID string) (*OrderItemDetail, error)
	ListByCustomer(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatusFrom(id, fromStatus, toStatus string) (int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建订单、订单项与交易记录
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem, transaction *models.Transaction) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	if transaction != nil {
		transaction.OrderID = order.ID
		if err := r.db.Create(transaction).Error; err != nil {
			return err
		}
	}
	order.Items = items
	order.Transaction = transaction
	return nil
}

// GetByID 根据 ID 获取订单（含订单项与交易）
func (r *GormOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("Transaction").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetItemDetail 获取订单项明细视图（关联订单归属与商品当前库存）
func (r *GormOrderRepository) GetItemDetail(itemID string) (*OrderItemDetail, error) {
	var detail OrderItemDetail
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.id AS item_id, order_items.order_id, orders.customer_id, order_items.product_id, order_items.option_id, order_items.quantity, products.quantity AS product_quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.id = ?", itemID).
		Take(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListByCustomer 获取客户订单列表
func (r *GormOrderRepository) ListByCustomer(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{}).Where("customer_id = ?", filter.CustomerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Preload("Transaction").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatusFrom 状态守卫更新：仅当当前状态等于 fromStatus 时写入 toStatus，
// 返回受影响行数，供调用方判定并发竞争或非法流转。
func (r *GormOrderRepository) UpdateStatusFrom(id, fromStatus, toStatus string) (int64, error) {
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
