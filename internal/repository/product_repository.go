package repository

import (
	"errors"

	"github.com/shopcore/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口。
// quantity 字段只允许通过本仓库的条件更新修改，调用方不得直接写入。
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	IsOrderable(id string) (bool, error)
	DecrementQuantity(id string, quantity int) (int64, error)
	IncrementQuantity(id string, quantity int) (int64, error)
	Create(product *models.Product) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// IsOrderable 判断商品是否可下单（已上架、允许下单且有库存）
func (r *GormProductRepository) IsOrderable(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("id = ? AND is_published = ? AND is_allowed_to_order = ? AND quantity > 0", id, true, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DecrementQuantity 条件扣减库存；库存不足时不命中任何行，返回受影响行数。
func (r *GormProductRepository) DecrementQuantity(id string, quantity int) (int64, error) {
	if id == "" || quantity <= 0 {
		return 0, errors.New("invalid quantity decrement params")
	}
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// IncrementQuantity 回补库存（无上限约束）
func (r *GormProductRepository) IncrementQuantity(id string, quantity int) (int64, error) {
	if id == "" || quantity <= 0 {
		return 0, errors.New("invalid quantity increment params")
	}
	result := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}
