package models

// ProductOption 商品选项表（如颜色/规格）
type ProductOption struct {
	BaseModel
	ProductID string `gorm:"type:varchar(36);index;not null" json:"product_id"` // 商品ID
	Name      string `gorm:"not null" json:"name"`                              // 选项名称
}

// TableName 指定表名
func (ProductOption) TableName() string {
	return "product_options"
}
