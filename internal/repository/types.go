package repository

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page       int
	PageSize   int
	CustomerID string
	Status     string
	OrderNo    string
}

// OrderItemDetail 订单项明细视图（含商品当前库存，用于再次购买）
type OrderItemDetail struct {
	ItemID          string
	OrderID         string
	CustomerID      string
	ProductID       string
	OptionID        string
	Quantity        int
	ProductQuantity int64
}

// CartItemQuantity 购物车项数量视图（按商品+选项定位）
type CartItemQuantity struct {
	ItemID   string
	Quantity int
}
