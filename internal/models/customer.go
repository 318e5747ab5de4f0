package models

import "strings"

// Customer 客户表
type Customer struct {
	BaseModel
	FirstName   string `gorm:"type:varchar(100)" json:"first_name"`  // 名
	LastName    string `gorm:"type:varchar(100)" json:"last_name"`   // 姓
	PhoneNumber string `gorm:"type:varchar(32)" json:"phone_number"` // 电话
	Address     string `gorm:"type:varchar(255)" json:"address"`     // 地址

	Carts  []Cart  `gorm:"foreignKey:CustomerID" json:"carts,omitempty"`  // 购物车
	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"` // 订单
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// FullName 拼接姓名；任一部分为空时返回空串
func (c *Customer) FullName() string {
	first := strings.TrimSpace(c.FirstName)
	last := strings.TrimSpace(c.LastName)
	if first == "" || last == "" {
		return ""
	}
	return first + " " + last
}

// ProfileComplete 判断下单所需的联系信息是否完整
func (c *Customer) ProfileComplete() bool {
	return strings.TrimSpace(c.FirstName) != "" &&
		strings.TrimSpace(c.LastName) != "" &&
		strings.TrimSpace(c.PhoneNumber) != "" &&
		strings.TrimSpace(c.Address) != ""
}
