package models

// OrderItem 订单项表（下单时的不可变快照，此后不再重算）
type OrderItem struct {
	BaseModel
	OrderID   string `gorm:"type:varchar(36);index;not null" json:"order_id"`           // 订单ID
	ProductID string `gorm:"type:varchar(36);index;not null" json:"product_id"`         // 商品ID
	OptionID  string `gorm:"type:varchar(36);default:''" json:"option_id,omitempty"`    // 商品选项ID（空串表示无选项）
	Quantity  int    `gorm:"not null" json:"quantity"`                                  // 数量
	Total     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"total"`        // 小计（含折扣）
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
