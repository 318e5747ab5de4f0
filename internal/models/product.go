package models

// Product 商品表
type Product struct {
	BaseModel
	Slug             string `gorm:"uniqueIndex;not null" json:"slug"`                         // 唯一标识
	Name             string `gorm:"not null" json:"name"`                                     // 商品名称
	Price            Money  `gorm:"type:decimal(20,2);not null;default:0" json:"price"`      // 单价
	Discount         *Money `gorm:"type:decimal(6,2)" json:"discount,omitempty"`             // 折扣百分比（NULL 表示无折扣）
	Quantity         int64  `gorm:"not null;default:0" json:"quantity"`                       // 库存数量
	IsPublished      bool   `gorm:"default:false;index" json:"is_published"`                 // 是否上架
	IsAllowedToOrder bool   `gorm:"default:false;index" json:"is_allowed_to_order"`          // 是否允许下单

	Options []ProductOption `gorm:"foreignKey:ProductID" json:"options,omitempty"` // 商品选项
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// Orderable 判断商品当前是否可下单
func (p *Product) Orderable() bool {
	return p.IsPublished && p.IsAllowedToOrder && p.Quantity > 0
}
