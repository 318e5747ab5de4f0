package repository

import (
	"errors"

	"github.com/shopcore/internal/constants"
	"github.com/shopcore/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListActiveByCustomer(customerID string) ([]models.Cart, error)
	GetByID(id string) (*models.Cart, error)
	Create(cart *models.Cart) error
	MarkCompleted(cartID string) error
	GetItemQuantity(cartID, productID, optionID string) (*CartItemQuantity, error)
	ListItems(cartID string) ([]models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(itemID string, quantity int) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListActiveByCustomer 获取客户的全部活跃购物车（正常情况下最多一个，
// 多于一个说明数据出现一致性问题，由服务层判定冲突）
func (r *GormCartRepository) ListActiveByCustomer(customerID string) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.db.Preload("Items").
		Where("customer_id = ? AND status = ?", customerID, constants.CartStatusActive).
		Order("created_at asc").
		Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// GetByID 根据 ID 获取购物车（含购物车项）
func (r *GormCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// MarkCompleted 将购物车置为已完成
func (r *GormCartRepository) MarkCompleted(cartID string) error {
	return r.db.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("status", constants.CartStatusCompleted).Error
}

// GetItemQuantity 按（购物车, 商品, 选项）定位购物车项的数量视图
func (r *GormCartRepository) GetItemQuantity(cartID, productID, optionID string) (*CartItemQuantity, error) {
	var item models.CartItem
	err := r.db.Select("id", "quantity").
		Where("cart_id = ? AND product_id = ? AND option_id = ?", cartID, productID, optionID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &CartItemQuantity{ItemID: item.ID, Quantity: item.Quantity}, nil
}

// ListItems 获取购物车的全部购物车项（含商品）
func (r *GormCartRepository) ListItems(cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem 创建购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItemQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}
