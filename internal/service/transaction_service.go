package service

import (
	"github.com/shopcore/internal/constants"
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/repository"

	"gorm.io/gorm"
)

// TransactionService 支付交易记录：只做状态写入，
// 状态守卫完全由订单服务的状态机承担。
type TransactionService struct {
	transactionRepo repository.TransactionRepository
}

// NewTransactionService 创建交易服务
func NewTransactionService(transactionRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// Open 构建一条 pending 状态的交易，随订单创建一并落库
func (s *TransactionService) Open(transactionType string) *models.Transaction {
	return &models.Transaction{
		Type:   transactionType,
		Status: constants.TransactionStatusPending,
	}
}

// GetByOrderID 根据订单 ID 获取交易
func (s *TransactionService) GetByOrderID(orderID string) (*models.Transaction, error) {
	return s.transactionRepo.GetByOrderID(orderID)
}

// MarkCompleted 将交易置为已完成
func (s *TransactionService) MarkCompleted(tx *gorm.DB, transactionID string) error {
	return s.transactionRepo.WithTx(tx).UpdateStatus(transactionID, constants.TransactionStatusCompleted)
}

// MarkCancelled 将交易置为已取消
func (s *TransactionService) MarkCancelled(tx *gorm.DB, transactionID string) error {
	return s.transactionRepo.WithTx(tx).UpdateStatus(transactionID, constants.TransactionStatusCancelled)
}
