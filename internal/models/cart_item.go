package models

// CartItem 购物车项表
type CartItem struct {
	BaseModel
	CartID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_product_option" json:"cart_id"`    // 购物车ID
	ProductID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_product_option" json:"product_id"` // 商品ID
	OptionID  string `gorm:"type:varchar(36);default:'';uniqueIndex:idx_cart_product_option" json:"option_id,omitempty"` // 商品选项ID（空串表示无选项）
	Quantity  int    `gorm:"not null" json:"quantity"`                                                        // 数量

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
