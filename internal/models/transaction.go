package models

// Transaction 支付交易表（与订单一对一）
type Transaction struct {
	BaseModel
	OrderID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"order_id"` // 订单ID
	Type    string `gorm:"type:varchar(20);not null" json:"type"`                 // 交易类型（COD/BANKING）
	Status  string `gorm:"type:varchar(20);index;not null" json:"status"`         // 交易状态
}

// TableName 指定表名
func (Transaction) TableName() string {
	return "transactions"
}
