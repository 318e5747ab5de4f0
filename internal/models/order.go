package models

// Order 订单表
type Order struct {
	BaseModel
	OrderNo        string `gorm:"uniqueIndex;not null" json:"order_no"`                // 订单编号
	CustomerID     string `gorm:"type:varchar(36);index;not null" json:"customer_id"`  // 客户ID
	CartID         string `gorm:"type:varchar(36);index;not null" json:"cart_id"`      // 来源购物车ID
	Status         string `gorm:"type:varchar(20);index;not null" json:"status"`       // 订单状态
	DeliveryMethod string `gorm:"type:varchar(32);not null" json:"delivery_method"`    // 配送方式
	ContactName    string `gorm:"type:varchar(200);not null" json:"contact_name"`      // 收件人（下单时快照）
	PhoneNumber    string `gorm:"type:varchar(32);not null" json:"phone_number"`       // 联系电话（下单时快照）
	Address        string `gorm:"type:varchar(255);not null" json:"address"`           // 收货地址（下单时快照）
	Total          Money  `gorm:"type:decimal(20,2);not null;default:0" json:"total"`  // 订单总额

	Items       []OrderItem  `gorm:"foreignKey:OrderID" json:"items,omitempty"`       // 订单项
	Transaction *Transaction `gorm:"foreignKey:OrderID" json:"transaction,omitempty"` // 支付交易
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
