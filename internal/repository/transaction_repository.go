package repository

import (
	"errors"

	"github.com/shopcore/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository 支付交易数据访问接口
type TransactionRepository interface {
	GetByOrderID(orderID string) (*models.Transaction, error)
	UpdateStatus(id, status string) error
	WithTx(tx *gorm.DB) TransactionRepository
}

// GormTransactionRepository GORM 实现
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository 创建交易仓库
func NewTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// WithTx 绑定事务
func (r *GormTransactionRepository) WithTx(tx *gorm.DB) TransactionRepository {
	if tx == nil {
		return r
	}
	return &GormTransactionRepository{db: tx}
}

// GetByOrderID 根据订单 ID 获取交易
func (r *GormTransactionRepository) GetByOrderID(orderID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

// UpdateStatus 更新交易状态
func (r *GormTransactionRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&models.Transaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}
