package service

import (
	"github.com/shopcore/internal/repository"

	"gorm.io/gorm"
)

// InventoryService 库存台账：products.quantity 的唯一写入口。
// 所有扣减/回补走条件更新，任何并发序列下库存都不会为负。
type InventoryService struct {
	productRepo repository.ProductRepository
}

// NewInventoryService 创建库存服务
func NewInventoryService(productRepo repository.ProductRepository) *InventoryService {
	return &InventoryService{productRepo: productRepo}
}

// WithTx 绑定事务，返回事务内可用的副本
func (s *InventoryService) WithTx(tx *gorm.DB) *InventoryService {
	if tx == nil {
		return s
	}
	return &InventoryService{productRepo: s.productRepo.WithTx(tx)}
}

// IsOrderable 判断商品当前是否可下单
func (s *InventoryService) IsOrderable(productID string) (bool, error) {
	return s.productRepo.IsOrderable(productID)
}

// Decrement 原子扣减库存；结果为负时整条更新不生效并返回 ErrInsufficientStock。
func (s *InventoryService) Decrement(productID string, quantity int) error {
	affected, err := s.productRepo.DecrementQuantity(productID, quantity)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}
	// 未命中任何行：区分商品不存在与库存不足
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return ErrInsufficientStock
}

// Restock 回补库存（取消发货中的订单时回滚扣减量）
func (s *InventoryService) Restock(productID string, quantity int) error {
	affected, err := s.productRepo.IncrementQuantity(productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
