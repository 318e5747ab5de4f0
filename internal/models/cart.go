package models

// Cart 购物车表
type Cart struct {
	BaseModel
	CustomerID string `gorm:"type:varchar(36);index;not null" json:"customer_id"` // 客户ID
	Status     string `gorm:"type:varchar(20);index;not null" json:"status"`      // 状态（active/completed）

	Items    []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`       // 购物车项
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"` // 关联客户
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}
